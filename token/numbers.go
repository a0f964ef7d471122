package token

// Number returns the length of the numeric literal at the start of d.
//
// Accepted forms are signed decimals with optional fraction and
// exponent (`-1`, `+.5`, `1.5e-3`) and `0b`, `0o`, `0x` integers with
// an optional leading `-`.
func Number(d []byte) int {
	if n := radix(d); n != 0 {
		return n
	}
	return decimal(d)
}

func radix(d []byte) int {
	i := 0
	if len(d) > 0 && d[0] == '-' {
		i++
	}
	if len(d) < i+3 || d[i] != '0' {
		return 0
	}
	var digit func(byte) bool
	switch d[i+1] {
	case 'b':
		digit = func(c byte) bool { return c == '0' || c == '1' }
	case 'o':
		digit = func(c byte) bool { return c >= '0' && c <= '7' }
	case 'x':
		digit = hexDigit
	default:
		return 0
	}
	j := i + 2
	for j < len(d) && digit(d[j]) {
		j++
	}
	if j == i+2 {
		return 0
	}
	return j
}

func decimal(d []byte) int {
	i := 0
	if len(d) > 0 && (d[0] == '+' || d[0] == '-') {
		i++
	}
	digits := asciiDigits(d[i:])
	f := fract(d[i+digits:])
	if digits+f == 0 {
		return 0
	}
	e := exp(d[i+digits+f:])
	return i + digits + f + e
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) && asciiDigit(d[i]) {
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexDigit(c byte) bool {
	return asciiDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

// fract scans `.` followed by one or more digits.
func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}
