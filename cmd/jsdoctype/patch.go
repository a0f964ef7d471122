package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/jsdoctype/ast"
	"github.com/signadot/jsdoctype/parse"
	"github.com/signadot/jsdoctype/publish"
	"github.com/signadot/jsdoctype/rewrite"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.P == "" {
		return fmt.Errorf("%w: patch requires -p <patchfile>", cli.ErrUsage)
	}
	d, err := os.ReadFile(cfg.P)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", cfg.P, err)
	}
	f, err := patcher(d, cfg.M)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	ins, err := cfg.inputs(cc, args)
	if err != nil {
		return err
	}
	return patchAll(cc.Out, f, ins, cfg.table(cc.Out), cfg.parseOpts()...)
}

func patcher(d []byte, merge bool) (func(ast.Node) (ast.Node, error), error) {
	if merge {
		return func(n ast.Node) (ast.Node, error) {
			return rewrite.Merge(n, d)
		}, nil
	}
	p, err := rewrite.DecodePatch(d)
	if err != nil {
		return nil, err
	}
	return p.Apply, nil
}

func patchAll(w io.Writer, f func(ast.Node) (ast.Node, error), ins []string, table publish.Table, opts ...parse.ParseOption) error {
	for _, in := range ins {
		n, err := parse.Parse(in, opts...)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", in, err)
		}
		res, err := f(n)
		if err != nil {
			return fmt.Errorf("error patching %q: %w", in, err)
		}
		fmt.Fprintln(w, publish.Publish(res, table))
	}
	return nil
}
