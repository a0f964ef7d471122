package token

import "strings"

// Quoted scans the string literal at the start of d, whose first byte
// is the delimiting quote.  It returns the length of the literal
// including both quotes and its contents.
//
// A backslash always pairs with the following byte.  An escaped
// delimiter is stored unescaped; every other escape sequence is kept
// verbatim.  An input without a closing quote yields ErrUnterminated.
func Quoted(d []byte) (int, string, error) {
	if len(d) == 0 || (d[0] != '"' && d[0] != '\'') {
		return 0, "", ErrUnterminated
	}
	q := d[0]
	buf := strings.Builder{}
	i := 1
	for i < len(d) {
		c := d[i]
		switch c {
		case q:
			return i + 1, buf.String(), nil
		case '\\':
			if i+1 == len(d) {
				return 0, "", ErrUnterminated
			}
			if d[i+1] != q {
				buf.WriteByte('\\')
			}
			buf.WriteByte(d[i+1])
			i += 2
			continue
		}
		buf.WriteByte(c)
		i++
	}
	return 0, "", ErrUnterminated
}

// Quotable reports whether Quoted(Quote(v, q)) returns v.  It does not
// for a trailing lone backslash or a backslash before q, as in the
// contents `a\"b` scanned from `'a\"b'`.
func Quotable(v string, q byte) bool {
	for i := 0; i < len(v); i++ {
		if v[i] != '\\' {
			continue
		}
		if i+1 == len(v) || v[i+1] == q {
			return false
		}
		i++
	}
	return true
}

// Prefer returns q unless only the other quote makes v Quotable.
func Prefer(v string, q byte) byte {
	other := byte('"')
	if q == '"' {
		other = '\''
	}
	if !Quotable(v, q) && Quotable(v, other) {
		return other
	}
	return q
}

// Quote renders v as a literal delimited by q.  Existing escape pairs
// are kept; bare occurrences of q and a trailing lone backslash are
// escaped.  The result scans back to v only when Quotable(v, q).
func Quote(v string, q byte) string {
	buf := strings.Builder{}
	buf.Grow(len(v) + 2)
	buf.WriteByte(q)
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '\\':
			if i+1 == len(v) {
				buf.WriteString(`\\`)
				continue
			}
			buf.WriteByte(c)
			buf.WriteByte(v[i+1])
			i++
		case q:
			buf.WriteByte('\\')
			buf.WriteByte(q)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte(q)
	return buf.String()
}
