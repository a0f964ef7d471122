package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/jsdoctype/ast"
	"github.com/signadot/jsdoctype/parse"
	"github.com/signadot/jsdoctype/traverse"
)

func walkCmd(cfg *WalkConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Walk.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := cfg.inputs(cc, args)
	if err != nil {
		return err
	}
	for _, in := range ins {
		n, err := parse.Parse(in, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", in, err)
		}
		if err := walk(cc.Out, n); err != nil {
			return err
		}
	}
	return nil
}

// walk prints one line per event, indented by depth:
//
//	enter UNION
//	  enter NAME left UNION
func walk(w io.Writer, n ast.Node) error {
	depth := 0
	event := func(what string, node ast.Node, field string, parent ast.Type) error {
		ind := strings.Repeat("  ", depth)
		if parent == ast.NoType {
			_, err := fmt.Fprintf(w, "%s%s %s\n", ind, what, node.Type())
			return err
		}
		_, err := fmt.Fprintf(w, "%s%s %s %s %s\n", ind, what, node.Type(), field, parent)
		return err
	}
	return traverse.Traverse(n,
		func(node ast.Node, field string, parent ast.Type) error {
			err := event("enter", node, field, parent)
			depth++
			return err
		},
		func(node ast.Node, field string, parent ast.Type) error {
			depth--
			return event("leave", node, field, parent)
		})
}
