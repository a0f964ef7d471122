package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Publish bool
	Query   bool
	Rewrite bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JSDOCTYPE_DEBUG_PARSE")
	d.Publish = boolEnv("JSDOCTYPE_DEBUG_PUBLISH")
	d.Query = boolEnv("JSDOCTYPE_DEBUG_QUERY")
	d.Rewrite = boolEnv("JSDOCTYPE_DEBUG_REWRITE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Publish() bool {
	return d.Publish
}
func Query() bool {
	return d.Query
}
func Rewrite() bool {
	return d.Rewrite
}
