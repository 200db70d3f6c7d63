package gen

import (
	"fmt"
	"path/filepath"
	"strings"
)

// GeneratedFileHeader returns the "do not edit" banner for a generated file,
// each line starting with commentPrefix ("//" or "#").
func GeneratedFileHeader(ctx *Context, commentPrefix string) string {
	var b strings.Builder
	source := "bridge definition"
	if ctx.DefPath != "" {
		source = filepath.Base(ctx.DefPath)
	}
	fmt.Fprintf(&b, "%s Code generated by swift-bridge %s from %s. DO NOT EDIT.\n", commentPrefix, ctx.ToolVersion, source)
	meta := ctx.Definition.Bridge
	fmt.Fprintf(&b, "%s Bridge: %s %s\n", commentPrefix, meta.Name, meta.Version)
	return b.String()
}

// prependHeader places header, followed by a blank line, before content.
func prependHeader(header string, content []byte) []byte {
	return append([]byte(header+"\n"), content...)
}

// RustFileName returns the wrapper module file name for a bridge.
func RustFileName(bridgeName string) string {
	return bridgeName + ".rs"
}

// SymbolsFileName returns the symbol table file name for a bridge.
func SymbolsFileName(bridgeName string) string {
	return bridgeName + "_symbols.yaml"
}

// joinOutput resolves a generated file's relative path under outputDir.
func joinOutput(outputDir, rel string) string {
	return filepath.Join(outputDir, rel)
}
