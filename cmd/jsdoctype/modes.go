package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/jsdoctype/mode"
)

func modesCmd(cfg *ModesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Modes.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: modes takes no arguments", cli.ErrUsage)
	}
	return writeModes(cc.Out)
}

// writeModes prints each gated feature with the dialects accepting it:
//
//	tuple: permissive typescript
func writeModes(w io.Writer) error {
	for _, f := range mode.Features() {
		var ms []string
		for _, m := range mode.Modes() {
			if m.Allows(f) {
				ms = append(ms, m.String())
			}
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", f, strings.Join(ms, " ")); err != nil {
			return err
		}
	}
	return nil
}
