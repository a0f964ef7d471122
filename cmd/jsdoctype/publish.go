package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/jsdoctype/libdiff"
	"github.com/signadot/jsdoctype/parse"
	"github.com/signadot/jsdoctype/publish"
)

type publishOpts struct {
	table   publish.Table
	// plain renders the text compared against the input
	plain   publish.Table
	diff    bool
	check   bool
	colored bool
}

func publishCmd(cfg *PublishConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Publish.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := cfg.inputs(cc, args)
	if err != nil {
		return err
	}
	po := &publishOpts{
		table:   cfg.table(cc.Out),
		diff:    cfg.D,
		check:   cfg.Check,
		colored: cfg.colored(cc.Out),
	}
	if cfg.X {
		po.table = publish.ExpandArrayShorthand(po.table)
		po.plain = publish.ExpandArrayShorthand(nil)
	}
	bad, err := publishAll(cc.Out, ins, po, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	if bad != 0 {
		theLog.Warn("inputs not canonical", "count", bad)
		return cli.ExitCodeErr(1)
	}
	return nil
}

// publishAll prints the canonical form of each input and returns the
// number of inputs that differ from it when po.check is set.
func publishAll(w io.Writer, ins []string, po *publishOpts, opts ...parse.ParseOption) (int, error) {
	bad := 0
	for _, in := range ins {
		n, err := parse.Parse(in, opts...)
		if err != nil {
			return bad, fmt.Errorf("error parsing %q: %w", in, err)
		}
		out := publish.Publish(n, po.table)
		plain := publish.Publish(n, po.plain)
		var edits []libdiff.Edit
		if po.check || po.diff {
			edits = libdiff.Text(in, plain)
		}
		if po.check && libdiff.Changed(edits) {
			bad++
			theLog.Debug("not canonical", "input", in, "canonical", plain, "changed", libdiff.Size(edits))
		}
		if po.diff {
			out = libdiff.Format(edits, po.colored)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return bad, err
		}
	}
	return bad, nil
}
