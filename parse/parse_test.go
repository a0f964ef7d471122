package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jsdoctype/ast"
	"github.com/signadot/jsdoctype/mode"
	"github.com/signadot/jsdoctype/token"
)

func name(s string) *ast.Name {
	return &ast.Name{Name: s}
}

func member(owner ast.Node, n string) *ast.Member {
	return &ast.Member{Owner: owner, Name: n}
}

func array(n ast.Node) *ast.Generic {
	return &ast.Generic{Subject: name("Array"), Objects: []ast.Node{n}, Syntax: ast.SquareBracket}
}

type parseTest struct {
	in  string
	out ast.Node
}

func runParseTests(t *testing.T, pts []parseTest, opts ...ParseOption) {
	t.Helper()
	for _, pt := range pts {
		n, err := Parse(pt.in, opts...)
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if diff := cmp.Diff(pt.out, n); diff != "" {
			t.Errorf("%q (-want +got):\n%s", pt.in, diff)
		}
	}
}

func TestParseNames(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: `TypeName`, out: name("TypeName")},
		{in: `my-type`, out: name("my-type")},
		{in: `$`, out: name("$")},
		{in: `_`, out: name("_")},
		{in: `*`, out: &ast.Any{}},
		{in: `?`, out: &ast.Unknown{}},
		{in: `?=`, out: &ast.Optional{Value: &ast.Unknown{}}},
		{in: ` TypeName `, out: name("TypeName")},
	})
}

func TestParseMembers(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: `owner.Member`, out: member(name("owner"), "Member")},
		{in: `owner . Member`, out: member(name("owner"), "Member")},
		{
			in:  `superOwner.owner.Member`,
			out: member(member(name("superOwner"), "owner"), "Member"),
		},
		{
			in:  `superOwner.owner.Member=`,
			out: &ast.Optional{Value: member(member(name("superOwner"), "owner"), "Member")},
		},
		{
			in:  `owner.event:Member`,
			out: &ast.Member{Owner: name("owner"), Name: "Member", HasEventPrefix: true},
		},
		{in: `owner~innerMember`, out: &ast.InnerMember{Owner: name("owner"), Name: "innerMember"}},
		{in: `owner ~ innerMember`, out: &ast.InnerMember{Owner: name("owner"), Name: "innerMember"}},
		{
			in: `superOwner~owner~innerMember`,
			out: &ast.InnerMember{
				Owner: &ast.InnerMember{Owner: name("superOwner"), Name: "owner"},
				Name:  "innerMember",
			},
		},
		{in: `owner#instanceMember`, out: &ast.InstanceMember{Owner: name("owner"), Name: "instanceMember"}},
		{in: `owner # instanceMember`, out: &ast.InstanceMember{Owner: name("owner"), Name: "instanceMember"}},
		{
			in: `superOwner#owner#instanceMember=`,
			out: &ast.Optional{Value: &ast.InstanceMember{
				Owner: &ast.InstanceMember{Owner: name("superOwner"), Name: "owner"},
				Name:  "instanceMember",
			}},
		},
		{
			in:  `owner."quoted.member"`,
			out: &ast.Member{Owner: name("owner"), Name: "quoted.member", QuoteStyle: ast.DoubleQuote},
		},
		{
			in:  `owner.'quoted'`,
			out: &ast.Member{Owner: name("owner"), Name: "quoted", QuoteStyle: ast.SingleQuote},
		},
	})
}

func TestParseModuleExternal(t *testing.T) {
	path := &ast.FilePath{Path: "path/to/file"}
	runParseTests(t, []parseTest{
		{in: `module:path/to/file`, out: &ast.Module{Value: path}},
		{in: `module : path/to/file`, out: &ast.Module{Value: path}},
		{
			in:  `(module:path/to/file).member`,
			out: member(&ast.Parenthesis{Value: &ast.Module{Value: path}}, "member"),
		},
		{in: `module:path/to/file.member`, out: &ast.Module{Value: member(path, "member")}},
		{
			in:  `module:path/to/file.event:member`,
			out: &ast.Module{Value: &ast.Member{Owner: path, Name: "member", HasEventPrefix: true}},
		},
		{
			in:  `module:"path/to/file.js"`,
			out: &ast.Module{Value: &ast.FilePath{Path: "path/to/file.js", QuoteStyle: ast.DoubleQuote}},
		},
		{in: `external:string`, out: &ast.External{Value: name("string")}},
		{
			in:  `external : String#rot13`,
			out: &ast.External{Value: &ast.InstanceMember{Owner: name("String"), Name: "rot13"}},
		},
		{
			in:  `external:'my.module'`,
			out: &ast.External{Value: name("my.module"), QuoteStyle: ast.SingleQuote},
		},
	})
}

func TestParseUnions(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: `LeftType|RightType`, out: &ast.Union{Left: name("LeftType"), Right: name("RightType")}},
		{
			in: `LeftType|MiddleType|RightType`,
			out: &ast.Union{
				Left:  name("LeftType"),
				Right: &ast.Union{Left: name("MiddleType"), Right: name("RightType")},
			},
		},
		{
			in:  `(LeftType|RightType)`,
			out: &ast.Parenthesis{Value: &ast.Union{Left: name("LeftType"), Right: name("RightType")}},
		},
		{
			in:  `( LeftType | RightType )`,
			out: &ast.Parenthesis{Value: &ast.Union{Left: name("LeftType"), Right: name("RightType")}},
		},
		{
			in:  `LeftType/RightType`,
			out: &ast.Union{Left: name("LeftType"), Right: name("RightType"), Syntax: ast.Slash},
		},
		{
			in: `A & B & C`,
			out: &ast.Intersection{
				Left:  name("A"),
				Right: &ast.Intersection{Left: name("B"), Right: name("C")},
			},
		},
		{
			in: `(A & B) | C`,
			out: &ast.Union{
				Left:  &ast.Parenthesis{Value: &ast.Intersection{Left: name("A"), Right: name("B")}},
				Right: name("C"),
			},
		},
	})
}

func TestParseRecords(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: `{}`, out: &ast.Record{}},
		{
			in:  `{key:ValueType}`,
			out: &ast.Record{Entries: []*ast.RecordEntry{{Key: "key", Value: name("ValueType")}}},
		},
		{
			in:  `{keyOnly}`,
			out: &ast.Record{Entries: []*ast.RecordEntry{{Key: "keyOnly"}}},
		},
		{
			in: `{key1:ValueType1,key2:ValueType2}`,
			out: &ast.Record{Entries: []*ast.RecordEntry{
				{Key: "key1", Value: name("ValueType1")},
				{Key: "key2", Value: name("ValueType2")},
			}},
		},
		{
			in: `{key:ValueType1,keyOnly}`,
			out: &ast.Record{Entries: []*ast.RecordEntry{
				{Key: "key", Value: name("ValueType1")},
				{Key: "keyOnly"},
			}},
		},
		{
			in: `{ key1 : ValueType1 , key2 : ValueType2 }`,
			out: &ast.Record{Entries: []*ast.RecordEntry{
				{Key: "key1", Value: name("ValueType1")},
				{Key: "key2", Value: name("ValueType2")},
			}},
		},
		{
			in: `{'quoted-key':ValueType}`,
			out: &ast.Record{Entries: []*ast.RecordEntry{
				{Key: "quoted-key", Value: name("ValueType"), QuoteStyle: ast.SingleQuote},
			}},
		},
		{
			in: `{a: A; b: B;}`,
			out: &ast.Record{Entries: []*ast.RecordEntry{
				{Key: "a", Value: name("A")},
				{Key: "b", Value: name("B")},
			}},
		},
		{
			in: `{readonly a: A, readonly}`,
			out: &ast.Record{Entries: []*ast.RecordEntry{
				{Key: "a", Value: name("A"), Readonly: true},
				{Key: "readonly"},
			}},
		},
		{
			in: `{a?: A, 0: B}`,
			out: &ast.Record{Entries: []*ast.RecordEntry{
				{Key: "a", Value: &ast.Optional{Value: name("A"), Syntax: ast.SuffixKeyQuestionMark}},
				{Key: "0", Value: name("B")},
			}},
		},
	})
}

func TestParseTuples(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: `[]`, out: &ast.Tuple{}},
		{in: `[TupleType]`, out: &ast.Tuple{Entries: []ast.Node{name("TupleType")}}},
		{
			in:  `[TupleType1, TupleType2]`,
			out: &ast.Tuple{Entries: []ast.Node{name("TupleType1"), name("TupleType2")}},
		},
		{
			in: `[TupleConcreteType, ...TupleVarargsType]`,
			out: &ast.Tuple{Entries: []ast.Node{
				name("TupleConcreteType"),
				&ast.Variadic{Value: name("TupleVarargsType")},
			}},
		},
		{
			in: `[TupleConcreteType, TupleBrokenVarargsType...]`,
			out: &ast.Tuple{Entries: []ast.Node{
				name("TupleConcreteType"),
				&ast.Variadic{Value: name("TupleBrokenVarargsType"), Syntax: ast.SuffixDots},
			}},
		},
		{
			in: `[TupleAnyVarargs, ...]`,
			out: &ast.Tuple{Entries: []ast.Node{
				name("TupleAnyVarargs"),
				&ast.Variadic{Syntax: ast.OnlyDots},
			}},
		},
		{in: `[][]`, out: array(&ast.Tuple{})},
		{in: `[TupleType][]`, out: array(&ast.Tuple{Entries: []ast.Node{name("TupleType")}})},
	})
}

func TestParseGenerics(t *testing.T) {
	runParseTests(t, []parseTest{
		{
			in:  `Generic<ParamType>`,
			out: &ast.Generic{Subject: name("Generic"), Objects: []ast.Node{name("ParamType")}},
		},
		{
			in: `Generic<Inner<ParamType>>`,
			out: &ast.Generic{Subject: name("Generic"), Objects: []ast.Node{
				&ast.Generic{Subject: name("Inner"), Objects: []ast.Node{name("ParamType")}},
			}},
		},
		{
			in:  `Generic < ParamType1, ParamType2 >`,
			out: &ast.Generic{Subject: name("Generic"), Objects: []ast.Node{name("ParamType1"), name("ParamType2")}},
		},
		{
			in: `Generic.<ParamType>`,
			out: &ast.Generic{
				Subject: name("Generic"),
				Objects: []ast.Node{name("ParamType")},
				Syntax:  ast.AngleBracketWithDot,
			},
		},
		{
			in: `Generic .< ParamType1 , ParamType2 >`,
			out: &ast.Generic{
				Subject: name("Generic"),
				Objects: []ast.Node{name("ParamType1"), name("ParamType2")},
				Syntax:  ast.AngleBracketWithDot,
			},
		},
		{in: `ParamType[]`, out: array(name("ParamType"))},
		{in: `ParamType[][]`, out: array(array(name("ParamType")))},
		{in: `ParamType [ ] [ ]`, out: array(array(name("ParamType")))},
		{
			in: `Foo<T=>`,
			out: &ast.Generic{Subject: name("Foo"), Objects: []ast.Node{
				&ast.Optional{Value: name("T")},
			}},
		},
	})
}

func TestParseModifiers(t *testing.T) {
	str := name("string")
	runParseTests(t, []parseTest{
		{in: `string=`, out: &ast.Optional{Value: str}},
		{in: `=string`, out: &ast.Optional{Value: str, Syntax: ast.PrefixEqualsSign}},
		{in: `?string`, out: &ast.Nullable{Value: str}},
		{in: `string?`, out: &ast.Nullable{Value: str, Syntax: ast.SuffixQuestionMark}},
		{in: `string =`, out: &ast.Optional{Value: str}},
		{in: `= string`, out: &ast.Optional{Value: str, Syntax: ast.PrefixEqualsSign}},
		{in: `? string`, out: &ast.Nullable{Value: str}},
		{in: `string ?`, out: &ast.Nullable{Value: str, Syntax: ast.SuffixQuestionMark}},
		{in: `?string=`, out: &ast.Optional{Value: &ast.Nullable{Value: str}}},
		{
			in:  `string?=`,
			out: &ast.Optional{Value: &ast.Nullable{Value: str, Syntax: ast.SuffixQuestionMark}},
		},
		{in: `...PrefixVariadic`, out: &ast.Variadic{Value: name("PrefixVariadic")}},
		{in: `SuffixVariadic...`, out: &ast.Variadic{Value: name("SuffixVariadic"), Syntax: ast.SuffixDots}},
		{in: `...`, out: &ast.Variadic{Syntax: ast.OnlyDots}},
		{in: `...!Object`, out: &ast.Variadic{Value: &ast.NotNullable{Value: name("Object")}}},
		{in: `...?`, out: &ast.Variadic{Value: &ast.Unknown{}}},
		{in: `!Object`, out: &ast.NotNullable{Value: name("Object")}},
		{in: `Object!`, out: &ast.NotNullable{Value: name("Object"), Syntax: ast.SuffixBang}},
		{in: `! Object`, out: &ast.NotNullable{Value: name("Object")}},
		{in: `Object !`, out: &ast.NotNullable{Value: name("Object"), Syntax: ast.SuffixBang}},
		{in: `?string[]`, out: &ast.Nullable{Value: array(str)}},
	})
}

func TestParseFunctions(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: `function()`, out: &ast.Function{}},
		{in: `function(Param)`, out: &ast.Function{Params: []ast.Node{name("Param")}}},
		{
			in:  `function(Param1,Param2)`,
			out: &ast.Function{Params: []ast.Node{name("Param1"), name("Param2")}},
		},
		{
			in:  `function(...VariadicParam)`,
			out: &ast.Function{Params: []ast.Node{&ast.Variadic{Value: name("VariadicParam")}}},
		},
		{
			in: `function(Param,...VariadicParam)`,
			out: &ast.Function{Params: []ast.Node{
				name("Param"),
				&ast.Variadic{Value: name("VariadicParam")},
			}},
		},
		{in: `function():Returned`, out: &ast.Function{Returns: name("Returned")}},
		{in: `function(this:ThisObject)`, out: &ast.Function{This: name("ThisObject")}},
		{
			in:  `function(this:ThisObject, param1)`,
			out: &ast.Function{This: name("ThisObject"), Params: []ast.Node{name("param1")}},
		},
		{in: `function(new:NewObject)`, out: &ast.Function{New: name("NewObject")}},
		{
			in:  `function(new:NewObject, param1)`,
			out: &ast.Function{New: name("NewObject"), Params: []ast.Node{name("param1")}},
		},
		{
			in: `function( Param1 , Param2 ) : Returned`,
			out: &ast.Function{
				Params:  []ast.Node{name("Param1"), name("Param2")},
				Returns: name("Returned"),
			},
		},
		{
			in: `Foo|function():Returned?`,
			out: &ast.Union{
				Left: name("Foo"),
				Right: &ast.Nullable{
					Value:  &ast.Function{Returns: name("Returned")},
					Syntax: ast.SuffixQuestionMark,
				},
			},
		},
		{in: `function`, out: name("function")},
	})
}

func TestParseArrows(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: `() => void`, out: &ast.Arrow{Returns: name("void")}},
		{
			in: `(a: string, b) => number`,
			out: &ast.Arrow{
				Params: []ast.Node{
					&ast.NamedParameter{Name: "a", TypeName: name("string")},
					&ast.NamedParameter{Name: "b"},
				},
				Returns: name("number"),
			},
		},
		{
			in: `(...rest: any[]) => void`,
			out: &ast.Arrow{
				Params: []ast.Node{
					&ast.Variadic{Value: &ast.NamedParameter{Name: "rest", TypeName: array(name("any"))}},
				},
				Returns: name("void"),
			},
		},
		{
			in:  `new () => Foo`,
			out: &ast.Arrow{Returns: name("Foo"), New: true},
		},
	}, ParseTypeScript())
}

func TestParseValues(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: `0123456789`, out: &ast.NumberValue{Number: "0123456789"}},
		{in: `0.0`, out: &ast.NumberValue{Number: "0.0"}},
		{in: `-0`, out: &ast.NumberValue{Number: "-0"}},
		{in: `0b01`, out: &ast.NumberValue{Number: "0b01"}},
		{in: `0o01234567`, out: &ast.NumberValue{Number: "0o01234567"}},
		{in: `0x0123456789abcdef`, out: &ast.NumberValue{Number: "0x0123456789abcdef"}},
		{in: `""`, out: &ast.StringValue{QuoteStyle: ast.DoubleQuote}},
		{in: `"string"`, out: &ast.StringValue{String: "string", QuoteStyle: ast.DoubleQuote}},
		{in: `"マルチバイト"`, out: &ast.StringValue{String: "マルチバイト", QuoteStyle: ast.DoubleQuote}},
		{in: `"\n\"\t"`, out: &ast.StringValue{String: `\n"\t`, QuoteStyle: ast.DoubleQuote}},
		{in: `'it\'s'`, out: &ast.StringValue{String: `it's`, QuoteStyle: ast.SingleQuote}},
	})
}

func TestParseQueries(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: `typeof foo`, out: &ast.TypeQuery{Name: name("foo")}},
		{in: `keyof foo`, out: &ast.KeyQuery{Value: name("foo")}},
		{in: `keyof typeof foo`, out: &ast.KeyQuery{Value: &ast.TypeQuery{Name: name("foo")}}},
		{
			in:  `import("./lib")`,
			out: &ast.Import{Path: &ast.StringValue{String: "./lib", QuoteStyle: ast.DoubleQuote}},
		},
		{
			in:  `import('./lib').Foo`,
			out: member(&ast.Import{Path: &ast.StringValue{String: "./lib", QuoteStyle: ast.SingleQuote}}, "Foo"),
		},
	}, ParseTypeScript())
}

func TestParseSyntaxErrors(t *testing.T) {
	for _, in := range []string{
		``,
		`Invalid type`,
		`Promise*Error`,
		`(unclosedParenthesis, `,
		`?!string`,
		`!?string`,
		`string?!`,
		`function(...VariadicParam, UnexpectedLastParam)`,
		`function(...A=, B)`,
		`function(?...A, B)`,
		`function(!...A=, B)`,
		`function(new:NewObject, this:ThisObject)`,
		`function(this:ThisObject, new:NewObject)`,
		`A|B&C`,
		`"unterminated`,
		`Generic<`,
		`{a: }`,
	} {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("%q: expected error", in)
			continue
		}
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q: %T is not a *SyntaxError", in, err)
			continue
		}
		if !errors.Is(err, ErrSyntax) || !errors.Is(err, ErrPermissiveSyntax) {
			t.Errorf("%q: %v does not wrap the permissive sentinel", in, err)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := Parse(`Foo<"abc`)
	if !errors.Is(err, ErrPermissiveSyntax) || !errors.Is(err, token.ErrUnterminated) {
		t.Fatalf("got %v", err)
	}
	var te *token.TokenizeErr
	if !errors.As(err, &te) {
		t.Fatalf("%v has no tokenize error", err)
	}
	if te.Pos.I != 4 || te.Pos.Line() != 1 || te.Pos.Col() != 5 {
		t.Errorf("got %s", te.Pos)
	}
	var se *SyntaxError
	if !errors.As(err, &se) || se.Offset != len(`Foo<"abc`) {
		t.Errorf("got %v", err)
	}
	if _, err := Parse(`Foo<abc`); errors.Is(err, token.ErrUnterminated) {
		t.Errorf("%v: unexpected tokenize error", err)
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := Parse("Promise*Error")
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("got %v", err)
	}
	want := &SyntaxError{
		Mode:    mode.Permissive,
		Message: `Expected "!", "#", "&", ".", "...", "/", "<", "=", "?", "[", "|", "~", or end of input but '*' found.`,
		Expected: []string{
			`"!"`, `"#"`, `"&"`, `"."`, `"..."`, `"/"`, `"<"`,
			`"="`, `"?"`, `"["`, `"|"`, `"~"`, "end of input",
		},
		Found:    "'*'",
		Offset:   7,
		Line:     1,
		Column:   8,
	}
	if diff := cmp.Diff(want, se); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := se.Error(); got != "permissive syntax error: "+want.Message+" (line 1, column 8)" {
		t.Errorf("got %q", got)
	}

	_, err = Parse("Foo|\n  Bar Baz")
	if !errors.As(err, &se) {
		t.Fatalf("got %v", err)
	}
	if se.Line != 2 || se.Column != 7 || se.Found != "'B'" {
		t.Errorf("got line %d column %d found %s", se.Line, se.Column, se.Found)
	}

	_, err = Parse("")
	if !errors.As(err, &se) {
		t.Fatalf("got %v", err)
	}
	if se.Found != "end of input" || se.Offset != 0 || len(se.Expected) == 0 {
		t.Errorf("got %+v", se)
	}

	_, err = Parse("A|B&C")
	if !errors.As(err, &se) {
		t.Fatalf("got %v", err)
	}
	if se.Message != "Mixed '|' and '&' require parentheses." || se.Offset != 3 {
		t.Errorf("got %+v", se)
	}
}

func TestParseDialects(t *testing.T) {
	type dialectTest struct {
		in string
		ok [4]bool
	}
	dts := []dialectTest{
		{in: `string`, ok: [4]bool{true, true, true, true}},
		{in: `Array.<string>`, ok: [4]bool{true, true, true, true}},
		{in: `[A, B]`, ok: [4]bool{true, false, false, true}},
		{in: `(a: A) => B`, ok: [4]bool{true, false, false, true}},
		{in: `typeof foo`, ok: [4]bool{true, false, true, true}},
		{in: `keyof foo`, ok: [4]bool{true, false, false, true}},
		{in: `import("x")`, ok: [4]bool{true, false, false, true}},
		{in: `external:string`, ok: [4]bool{true, true, true, false}},
		{in: `module:path/to/file`, ok: [4]bool{true, true, true, false}},
		{in: `{a?: A}`, ok: [4]bool{true, false, true, true}},
	}
	for _, dt := range dts {
		for _, m := range mode.Modes() {
			n, err := Parse(dt.in, ParseMode(m))
			if dt.ok[m] {
				if err != nil || n == nil {
					t.Errorf("%s %q: %v", m, dt.in, err)
				}
				continue
			}
			if err == nil {
				t.Errorf("%s %q: expected error", m, dt.in)
				continue
			}
			if !errors.Is(err, ModeSyntaxErr(m)) {
				t.Errorf("%s %q: %v does not wrap %v", m, dt.in, err, ModeSyntaxErr(m))
			}
		}
	}
}

func TestParseStartRules(t *testing.T) {
	n, err := Parse(`owner.Member`, StartAt(NamepathExpr))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(member(name("owner"), "Member"), n); diff != "" {
		t.Error(diff)
	}
	if _, err := Parse(`string[]`, StartAt(NamepathExpr)); err == nil {
		t.Error("namepath accepted a generic")
	}
	n, err = Parse(`external:Foo`, StartAtName("BroadNamepathExpr"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&ast.External{Value: name("Foo")}, n); diff != "" {
		t.Error(diff)
	}
	n, err = Parse(`module:a/b`, StartAt(ModuleNameExpr))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&ast.Module{Value: &ast.FilePath{Path: "a/b"}}, n); diff != "" {
		t.Error(diff)
	}
	if _, err := Parse(`Foo`, StartAt(ExternalNameExpr)); err == nil {
		t.Error("external start rule accepted a bare name")
	}
	if _, err := Parse(`external:Foo`, StartAt(ExternalNameExpr), ParseTypeScript()); err == nil {
		t.Error("typescript accepted an external name")
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, opt := range []ParseOption{
		ParseModeName("coffeescript"),
		StartAtName("Nope"),
		ParseMode(mode.Mode(12)),
		StartAt(StartRule(-1)),
	} {
		_, err := Parse(`string`, opt)
		if !errors.Is(err, ErrConfig) {
			t.Errorf("got %v", err)
		}
		if errors.Is(err, ErrSyntax) {
			t.Errorf("%v wraps the syntax sentinel", err)
		}
	}
	if _, err := Parse(`string`, ParseModeName("ts")); err != nil {
		t.Error(err)
	}
}

func TestStartRuleText(t *testing.T) {
	for _, r := range StartRules() {
		d, err := r.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got StartRule
		if err := got.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if got != r {
			t.Errorf("%s: got %s", r, got)
		}
	}
	if _, err := StartRule(42).MarshalText(); !errors.Is(err, ErrBadStartRule) {
		t.Errorf("got %v", err)
	}
}
