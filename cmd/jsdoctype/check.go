package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/jsdoctype/parse"
)

func checkCmd(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := cfg.inputs(cc, args)
	if err != nil {
		return err
	}
	bad, err := checkAll(cc.Out, ins, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkAll reports each input on its own line and returns the number
// that failed to parse.  Errors other than syntax errors end the check.
func checkAll(w io.Writer, ins []string, opts ...parse.ParseOption) (int, error) {
	bad := 0
	for _, in := range ins {
		_, err := parse.Parse(in, opts...)
		var se *parse.SyntaxError
		switch {
		case err == nil:
			fmt.Fprintf(w, "%s: ok\n", in)
		case errors.As(err, &se):
			bad++
			theLog.Warn("syntax error", "input", in, "mode", se.Mode, "line", se.Line, "column", se.Column)
			fmt.Fprintf(w, "%s:%d:%d: %s\n", in, se.Line, se.Column, se.Message)
		default:
			return bad, err
		}
	}
	return bad, nil
}
