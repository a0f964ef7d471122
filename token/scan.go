package token

func identStart(c byte) bool {
	return c == '$' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func identPart(c byte) bool {
	return identStart(c) || c == '-' || asciiDigit(c)
}

// Ident returns the length of the identifier `[$_A-Za-z][-$_A-Za-z0-9]*`
// at the start of d.
func Ident(d []byte) int {
	if len(d) == 0 || !identStart(d[0]) {
		return 0
	}
	i := 1
	for i < len(d) && identPart(d[i]) {
		i++
	}
	return i
}

// IsIdent reports whether all of v is one identifier.
func IsIdent(v string) bool {
	return v != "" && Ident([]byte(v)) == len(v)
}

func Space(d []byte) int {
	i := 0
	for i < len(d) {
		switch d[i] {
		case ' ', '\t', '\r', '\n':
			i++
		default:
			return i
		}
	}
	return i
}

func filePathPart(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', asciiDigit(c):
		return true
	}
	switch c {
	case '_', '$', '/', '@', '-':
		return true
	}
	return false
}

// FilePath returns the length of an unquoted module path at the start
// of d.
func FilePath(d []byte) int {
	i := 0
	for i < len(d) && filePathPart(d[i]) {
		i++
	}
	return i
}

// Keyword reports whether d starts with the identifier kw, not followed
// by further identifier characters.
func Keyword(d []byte, kw string) bool {
	if len(d) < len(kw) || string(d[:len(kw)]) != kw {
		return false
	}
	return len(d) == len(kw) || !identPart(d[len(kw)])
}
