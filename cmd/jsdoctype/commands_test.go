package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/signadot/jsdoctype/parse"
	"github.com/signadot/jsdoctype/publish"
	"github.com/signadot/jsdoctype/query"
)

func TestWriteTrees(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := writeTrees(buf, []string{"a", "b"}, false); err != nil {
		t.Fatal(err)
	}
	want := `{"type":"NAME","name":"a"}` + "\n" + `{"type":"NAME","name":"b"}` + "\n"
	if buf.String() != want {
		t.Errorf("got %q", buf.String())
	}
	buf.Reset()
	if err := writeTrees(buf, []string{"a|b"}, true); err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"---\n", "type: UNION", "name: a", "syntax: PIPE"} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("yaml output %q lacks %q", buf.String(), s)
		}
	}
	if err := writeTrees(buf, []string{"a|"}, false); err == nil {
		t.Error("expected a syntax error")
	}
}

func TestPublishAll(t *testing.T) {
	logBuf := &bytes.Buffer{}
	saved := theLog
	theLog = slog.New(slog.NewTextHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	defer func() { theLog = saved }()

	buf := &bytes.Buffer{}
	bad, err := publishAll(buf, []string{"?Foo", "Foo?", "number/boolean"}, &publishOpts{check: true})
	if err != nil {
		t.Fatal(err)
	}
	if bad != 2 {
		t.Errorf("bad %d", bad)
	}
	if got := logBuf.String(); !strings.Contains(got, "input=number/boolean canonical=number|boolean changed=2") {
		t.Errorf("log %q", got)
	}
	if got := buf.String(); got != "?Foo\n?Foo\nnumber|boolean\n" {
		t.Errorf("got %q", got)
	}
	buf.Reset()
	if _, err := publishAll(buf, []string{"number/boolean"}, &publishOpts{diff: true}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "number[-/-]{+|+}boolean\n" {
		t.Errorf("got %q", got)
	}
	buf.Reset()
	po := &publishOpts{
		table: publish.ExpandArrayShorthand(nil),
		plain: publish.ExpandArrayShorthand(nil),
		check: true,
	}
	bad, err = publishAll(buf, []string{"Array<string>", "string[]"}, po)
	if err != nil {
		t.Fatal(err)
	}
	if bad != 1 || buf.String() != "Array<string>\nArray<string>\n" {
		t.Errorf("bad %d got %q", bad, buf.String())
	}
}

func TestWriteModes(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := writeModes(buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %q", buf.String())
	}
	for _, want := range []string{
		"tuple: permissive typescript",
		"typeof: permissive closure typescript",
		"external: permissive jsdoc closure",
		"key-optional: permissive closure typescript",
	} {
		if !strings.Contains(buf.String(), want+"\n") {
			t.Errorf("%q lacks %q", buf.String(), want)
		}
	}
}

func TestCheckAll(t *testing.T) {
	buf := &bytes.Buffer{}
	bad, err := checkAll(buf, []string{"string", "a|", "keyof A"}, parse.ParseJSDoc())
	if err != nil {
		t.Fatal(err)
	}
	if bad != 2 {
		t.Errorf("bad %d", bad)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %q", lines)
	}
	if lines[0] != "string: ok" {
		t.Errorf("got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "a|:1:") {
		t.Errorf("got %q", lines[1])
	}
	if _, err := checkAll(buf, []string{"a"}, parse.ParseModeName("nosuch")); err == nil {
		t.Error("expected a config error")
	}
}

func TestWalk(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := walk(buf, parse.MustParse("a|b")); err != nil {
		t.Fatal(err)
	}
	want := `enter UNION
  enter NAME left UNION
  leave NAME left UNION
  enter NAME right UNION
  leave NAME right UNION
leave UNION
`
	if buf.String() != want {
		t.Errorf("got\n%s", buf.String())
	}
}

func TestFindAll(t *testing.T) {
	q, err := query.Compile(`kind == "NAME"`)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := findAll(buf, q, []string{"a|b.c"}, true); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "/left\ta\n/right/owner\tb\n" {
		t.Errorf("got %q", got)
	}
}

func TestPatchAll(t *testing.T) {
	f, err := patcher([]byte(`[{"op": "replace", "path": "/left/name", "value": "x"}]`), false)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := patchAll(buf, f, []string{"a|b", "c|d"}, nil); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "x|b\nx|d\n" {
		t.Errorf("got %q", got)
	}
	if _, err := patcher([]byte(`{`), false); err == nil {
		t.Error("expected a patch error")
	}
	m, err := patcher([]byte(`{"right": {"name": "z"}}`), true)
	if err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := patchAll(buf, m, []string{"a|b"}, nil); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "a|z\n" {
		t.Errorf("got %q", got)
	}
}
