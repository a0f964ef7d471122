package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
)

// readExprs reads one expression per line, skipping empty lines and
// '//' comments.
func readExprs(r io.Reader, strip bool) ([]string, error) {
	var res []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		res = append(res, prepare(line, strip))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading expressions: %w", err)
	}
	return res, nil
}

// stripBraces removes the braces around a JSDoc tag type, as in
// '@param {string} x'.
func stripBraces(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return s
	}
	return strings.TrimSpace(s[1 : len(s)-1])
}

func prepare(s string, strip bool) string {
	if strip {
		return stripBraces(s)
	}
	return s
}

func (cfg *MainConfig) inputs(cc *cli.Context, args []string) ([]string, error) {
	if len(args) == 0 {
		return readExprs(cc.In, cfg.B)
	}
	res := make([]string, len(args))
	for i, a := range args {
		res[i] = prepare(a, cfg.B)
	}
	return res, nil
}
