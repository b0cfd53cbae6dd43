// Package pycst rewrites Python source while preserving every byte the
// rewrite does not touch. It ties the parser, the tree model, the
// traversal engine and the printer together into a batch codemod runner.
package pycst

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pycst-go/pycst/ast"
	"github.com/pycst-go/pycst/parser"
	"github.com/pycst-go/pycst/printer"
	"github.com/pycst-go/pycst/walk"
)

// Result is the outcome of transforming one source file.
type Result struct {
	// Output is the rewritten source. When Changed is false it is
	// byte-identical to the input.
	Output string
	// Changed reports whether the transform replaced any node.
	Changed bool
	// Err is set when the file failed to parse or the transformer
	// returned an error; Output is empty in that case.
	Err error
}

type runConfig struct {
	parallelism int
	parserOpts  []parser.Option
}

// RunOption customizes a Run call.
type RunOption func(*runConfig)

// WithParallelism caps the number of files transformed concurrently. The
// default is GOMAXPROCS.
func WithParallelism(n int) RunOption {
	return func(c *runConfig) {
		if n > 0 {
			c.parallelism = n
		}
	}
}

// WithParserOptions forwards options to the parser for every file.
func WithParserOptions(opts ...parser.Option) RunOption {
	return func(c *runConfig) {
		c.parserOpts = append(c.parserOpts, opts...)
	}
}

// Run parses each source, applies a transformer from factory, and prints
// the result. Each file gets its own transformer instance, so factory may
// return stateful transformers without synchronization. Per-file failures
// land in the Result for that file; Run itself only fails when ctx is
// canceled.
func Run(ctx context.Context, sources map[string]string, factory func() walk.Transformer, opts ...RunOption) (map[string]Result, error) {
	cfg := runConfig{parallelism: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make(map[string]Result, len(sources))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallelism)
	for name, source := range sources {
		name, source := name, source
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := transformOne(source, factory(), cfg.parserOpts)
			mu.Lock()
			results[name] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func transformOne(source string, t walk.Transformer, opts []parser.Option) Result {
	mod, err := parser.Parse(source, opts...)
	if err != nil {
		return Result{Err: err}
	}
	out, err := walk.Transform(mod, t)
	if err != nil {
		return Result{Err: err}
	}
	return Result{
		Output:  printer.Print(out),
		Changed: out != ast.Node(mod),
	}
}
