package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/jsdoctype/parse"
	"github.com/signadot/jsdoctype/query"
)

func findCmd(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.E == "" {
		return fmt.Errorf("%w: find requires -e <expr>", cli.ErrUsage)
	}
	q, err := query.Compile(cfg.E, query.WithTable(cfg.table(cc.Out)))
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	ins, err := cfg.inputs(cc, args)
	if err != nil {
		return err
	}
	return findAll(cc.Out, q, ins, cfg.Paths, cfg.parseOpts()...)
}

func findAll(w io.Writer, q *query.Query, ins []string, paths bool, opts ...parse.ParseOption) error {
	for _, in := range ins {
		n, err := parse.Parse(in, opts...)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", in, err)
		}
		ms, err := q.Find(n)
		if err != nil {
			return fmt.Errorf("error querying %q: %w", in, err)
		}
		theLog.Debug("find", "input", in, "matches", len(ms))
		for i := range ms {
			m := &ms[i]
			if paths {
				fmt.Fprintf(w, "%s\t%s\n", m.Path, m.Text)
				continue
			}
			fmt.Fprintln(w, m.Text)
		}
	}
	return nil
}
