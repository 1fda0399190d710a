package codec

import (
	"fmt"
	"strings"
)

const escapeByte = '%'

const hexDigits = "0123456789ABCDEF"

// safeByte reports whether b may appear unescaped in a file name fragment.
// The set is deliberately conservative: dots are escaped so that "." and ".."
// can never be produced, and the escape byte itself is always encoded.
func safeByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '_' || b == '-':
		return true
	}
	return false
}

// Escape converts an arbitrary namespace string into a filesystem-safe file
// name fragment. The result contains only [A-Za-z0-9_-] and %XX escape
// sequences; it never contains a path separator.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if safeByte(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte(escapeByte)
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0F])
	}
	return b.String()
}

// Unescape is the exact inverse of Escape. It returns an error if the input
// contains a byte outside the safe set or a malformed escape sequence, i.e.
// if the input could not have been produced by Escape.
func Unescape(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != escapeByte {
			if !safeByte(c) {
				return "", fmt.Errorf("codec: unescaped byte %q at offset %d", c, i)
			}
			b.WriteByte(c)
			continue
		}
		if i+2 >= len(s) {
			return "", fmt.Errorf("codec: truncated escape sequence at offset %d", i)
		}
		hi, ok := unhex(s[i+1])
		if !ok {
			return "", fmt.Errorf("codec: invalid escape sequence %q at offset %d", s[i:i+3], i)
		}
		lo, ok := unhex(s[i+2])
		if !ok {
			return "", fmt.Errorf("codec: invalid escape sequence %q at offset %d", s[i:i+3], i)
		}
		b.WriteByte(hi<<4 | lo)
		i += 2
	}
	return b.String(), nil
}

// unhex accepts only the uppercase digits Escape emits, so every namespace
// has exactly one decodable spelling.
func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
