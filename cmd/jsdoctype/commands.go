package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jsdoctype").
		WithSynopsis("jsdoctype [opts] command [opts] [exprs]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jsMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			PublishCommand(cfg),
			CheckCommand(cfg),
			WalkCommand(cfg),
			FindCommand(cfg),
			PatchCommand(cfg),
			ModesCommand(cfg))
}

const mainDescription = `jsdoctype parses and prints JSDoc type expressions.

Expressions are taken from the arguments or, when there are none, one per
line from stdin.  Empty lines and lines starting with '//' are skipped.

Settings may also come from a TOML file given with -config, or
.jsdoctype.toml in the current directory:

  mode = "typescript"
  start = "TopTypeExpr"
  color = false
  strip_braces = true

Flags take precedence over the file.`

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p").
		WithSynopsis("parse [-y] [exprs]").
		WithDescription("print the syntax tree of expressions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parseCmd(cfg, cc, args)
		})
}

func PublishCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PublishConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Publish, "publish").
		WithAliases("pub", "canon").
		WithSynopsis("publish [-d] [-check] [-x] [exprs]").
		WithDescription("print expressions in canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return publishCmd(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [exprs]").
		WithDescription("report whether expressions parse in the selected dialect").
		WithRun(func(cc *cli.Context, args []string) error {
			return checkCmd(cfg, cc, args)
		})
}

func WalkCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WalkConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Walk, "walk").
		WithAliases("w").
		WithSynopsis("walk [exprs]").
		WithDescription("print the enter and leave events of a traversal").
		WithRun(func(cc *cli.Context, args []string) error {
			return walkCmd(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find -e <expr> [exprs]").
		WithDescription(findDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return findCmd(cfg, cc, args)
		})
}

const findDescription = `find prints the nodes for which an expr-lang expression is true.

The expression sees kind, field, parent, depth, name, key, value, path,
syntax, quote, ancestors, text and leaf.  For example

  jsdoctype find -e 'kind == "NAME" && parent == "UNION"' 'a|b.c'`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithSynopsis("patch -p <patchfile> [-m] [exprs]").
		WithDescription("apply a JSON patch to the syntax tree of expressions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
}

func ModesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ModesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Modes, "modes").
		WithSynopsis("modes").
		WithDescription("list the dialects accepting each gated production").
		WithRun(func(cc *cli.Context, args []string) error {
			return modesCmd(cfg, cc, args)
		})
}
