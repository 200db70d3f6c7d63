package bridge

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrorPolicy decides what a batch does with a declaration that fails.
type ErrorPolicy int

const (
	// FailFast aborts the batch with the first failure in declaration order.
	FailFast ErrorPolicy = iota
	// SkipAndReport drops failing declarations and reports them.
	SkipAndReport
)

// BatchOptions configures SynthesizeAll.
type BatchOptions struct {
	Policy      ErrorPolicy
	Concurrency int // <= 0 means GOMAXPROCS
}

// BatchResult holds the wrappers of a batch in declaration order.
type BatchResult struct {
	Wrappers []*WrapperFunction
	Skipped  []error // SkipAndReport only, in declaration order
}

// Err joins the skipped declarations' errors, or returns nil.
func (r *BatchResult) Err() error {
	return errors.Join(r.Skipped...)
}

// SynthesizeAll synthesizes every declaration concurrently. Output order
// always matches input order, whatever order the workers finish in.
func (s *Synthesizer) SynthesizeAll(ctx context.Context, decls []*FunctionDeclaration, opts BatchOptions) (*BatchResult, error) {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	wrappers := make([]*WrapperFunction, len(decls))
	errs := make([]error, len(decls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, d := range decls {
		i, d := i, d
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			wrappers[i], errs[i] = s.Synthesize(d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &BatchResult{}
	for i, w := range wrappers {
		if errs[i] != nil {
			if opts.Policy == FailFast {
				return nil, errs[i]
			}
			result.Skipped = append(result.Skipped, errs[i])
			continue
		}
		result.Wrappers = append(result.Wrappers, w)
	}
	return result, nil
}
