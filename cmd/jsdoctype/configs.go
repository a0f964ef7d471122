package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/jsdoctype/parse"
	"github.com/signadot/jsdoctype/publish"
)

type MainConfig struct {
	Mode   string `cli:"name=mode aliases=m desc='dialect: permissive, jsdoc, closure or typescript'"`
	Start  string `cli:"name=start desc='start rule, for example NamepathExpr'"`
	Config string `cli:"name=config desc='TOML config file (default .jsdoctype.toml)'"`
	Color  bool   `cli:"name=color desc='publish with color'"`
	B      bool   `cli:"name=b desc='strip surrounding braces from inputs'"`
	V      bool   `cli:"name=v desc='debug logging'"`

	Out      string
	CloseOut func() error

	// color from the config file, when the flag is absent
	fileColor *bool

	Main *cli.Command
}

// optSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) optSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

func (cfg *MainConfig) loadFile() error {
	path, required := cfg.Config, true
	if path == "" {
		path, required = defaultConfigFile, false
	}
	fc, err := LoadFileConfig(path, required)
	if err != nil {
		return err
	}
	if fc == nil {
		return nil
	}
	theLog.Debug("loaded config", "path", path)
	cfg.apply(fc)
	return nil
}

func (cfg *MainConfig) apply(fc *FileConfig) {
	if !cfg.optSet("mode") && fc.Mode != "" {
		cfg.Mode = fc.Mode
	}
	if !cfg.optSet("start") && fc.Start != "" {
		cfg.Start = fc.Start
	}
	if !cfg.optSet("b") {
		cfg.B = fc.StripBraces
	}
	if !cfg.optSet("color") {
		cfg.fileColor = fc.Color
	}
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseModeName(cfg.Mode),
		parse.StartAtName(cfg.Start),
	}
}

func (cfg *MainConfig) table(w io.Writer) publish.Table {
	if cfg.Color {
		return publish.ColorTable(publish.NewColors())
	}
	if cfg.optSet("color") {
		return nil
	}
	if cfg.fileColor != nil {
		if *cfg.fileColor {
			return publish.ColorTable(publish.NewColors())
		}
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return publish.ColorTable(publish.NewColors())
	}
	return nil
}

func (cfg *MainConfig) colored(w io.Writer) bool {
	return cfg.table(w) != nil
}

type ParseConfig struct {
	*MainConfig
	Y bool `cli:"name=y aliases=yaml desc='print the tree as yaml'"`

	Parse *cli.Command
}

type PublishConfig struct {
	*MainConfig
	D     bool `cli:"name=d aliases=diff desc='show the difference from the input'"`
	Check bool `cli:"name=check desc='fail when an input is not canonical'"`
	X     bool `cli:"name=x desc='print T[] as Array<T>'"`

	Publish *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type WalkConfig struct {
	*MainConfig

	Walk *cli.Command
}

type FindConfig struct {
	*MainConfig
	E     string `cli:"name=e desc='query expression'"`
	Paths bool   `cli:"name=paths desc='print the path of each match'"`

	Find *cli.Command
}

type ModesConfig struct {
	*MainConfig

	Modes *cli.Command
}

type PatchConfig struct {
	*MainConfig
	P string `cli:"name=p desc='patch file'"`
	M bool   `cli:"name=m desc='the patch is a merge patch'"`

	Patch *cli.Command
}
