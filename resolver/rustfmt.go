package resolver

import (
	"fmt"
	"os"
	"os/exec"
)

// RustfmtEnv overrides the rustfmt binary location.
const RustfmtEnv = "SWIFT_BRIDGE_RUSTFMT"

// ResolveRustfmt finds the rustfmt binary using the resolution order:
// 1. Explicit flag path (if non-empty)
// 2. SWIFT_BRIDGE_RUSTFMT environment variable
// 3. "rustfmt" in PATH
func ResolveRustfmt(flagPath string) (string, error) {
	if flagPath != "" {
		if _, err := os.Stat(flagPath); err != nil {
			return "", fmt.Errorf("rustfmt not found at specified path: %s", flagPath)
		}
		return flagPath, nil
	}

	if envPath := os.Getenv(RustfmtEnv); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("rustfmt not found at %s: %s", RustfmtEnv, envPath)
		}
		return envPath, nil
	}

	path, err := exec.LookPath("rustfmt")
	if err != nil {
		return "", fmt.Errorf("rustfmt not found in PATH; set --rustfmt-path or %s", RustfmtEnv)
	}
	return path, nil
}
