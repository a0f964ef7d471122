package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/jsdoctype/ast"
	"github.com/signadot/jsdoctype/parse"
)

func parseCmd(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := cfg.inputs(cc, args)
	if err != nil {
		return err
	}
	return writeTrees(cc.Out, ins, cfg.Y, cfg.parseOpts()...)
}

func writeTrees(w io.Writer, ins []string, asYAML bool, opts ...parse.ParseOption) error {
	for _, in := range ins {
		n, err := parse.Parse(in, opts...)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", in, err)
		}
		d, err := ast.MarshalJSON(n)
		if err != nil {
			return err
		}
		if asYAML {
			d, err = yaml.JSONToYAML(d)
			if err != nil {
				return fmt.Errorf("error encoding yaml: %w", err)
			}
			if _, err := fmt.Fprintf(w, "---\n%s", d); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n", d); err != nil {
			return err
		}
	}
	return nil
}
