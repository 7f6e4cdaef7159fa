// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. Invalid
// escapes are replaced by the Unicode replacement rune. Unquote reports an
// error for an incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i)
		if src.Len() < 2 {
			return nil, errors.New("incomplete escape sequence")
		}
		if src.At(1) == 'u' && src.Len() < 6 {
			return nil, errors.New("incomplete Unicode escape")
		}

		r, n, ok := Unescape(src)
		if !ok {
			// Skip the backslash and the rune after it, or a whole \u escape.
			if src.At(1) == 'u' {
				n = 6
			} else {
				_, rn := mem.DecodeRune(src.SliceFrom(1))
				n = 1 + max(rn, 1)
			}
			r = utf8.RuneError
		}
		dec = utf8.AppendRune(dec, r)
		src = src.SliceFrom(n)

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// Unescape decodes the single escape sequence at the front of src, and
// reports the decoded rune and the number of bytes consumed. A UTF-16
// surrogate pair written as two consecutive \u escapes decodes to one rune.
//
// If src does not begin with a complete, valid escape sequence, Unescape
// returns 0, 0, false and nothing is consumed.
func Unescape(src mem.RO) (rune, int, bool) {
	if src.Len() < 2 || src.At(0) != '\\' {
		return 0, 0, false
	}
	if c := src.At(1); c != 'u' {
		r, ok := Single(c)
		if !ok {
			return 0, 0, false
		}
		return r, 2, true
	}
	hi, ok := parseHex4(src.SliceFrom(2))
	if !ok {
		return 0, 0, false
	}
	switch {
	case IsLowSurrogate(hi):
		return 0, 0, false
	case !IsHighSurrogate(hi):
		return hi, 6, true
	}
	if src.Len() < 12 || src.At(6) != '\\' || src.At(7) != 'u' {
		return 0, 0, false
	}
	lo, ok := parseHex4(src.SliceFrom(8))
	if !ok || !IsLowSurrogate(lo) {
		return 0, 0, false
	}
	return utf16.DecodeRune(hi, lo), 12, true
}

// Single returns the character denoted by the escape \c, for each c other
// than 'u' that JSON permits after a backslash.
func Single(c byte) (rune, bool) {
	switch c {
	case '"', '\\', '/':
		return rune(c), true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// HexValue returns the value of the hexadecimal digit b.
func HexValue(b byte) (rune, bool) {
	switch {
	case '0' <= b && b <= '9':
		return rune(b - '0'), true
	case 'a' <= b && b <= 'f':
		return rune(b - 'a' + 10), true
	case 'A' <= b && b <= 'F':
		return rune(b - 'A' + 10), true
	}
	return 0, false
}

// IsHighSurrogate reports whether r is the leading half of a UTF-16
// surrogate pair.
func IsHighSurrogate(r rune) bool { return 0xd800 <= r && r < 0xdc00 }

// IsLowSurrogate reports whether r is the trailing half of a UTF-16
// surrogate pair.
func IsLowSurrogate(r rune) bool { return 0xdc00 <= r && r < 0xe000 }

func parseHex4(data mem.RO) (rune, bool) {
	if data.Len() < 4 {
		return 0, false
	}
	var v rune
	for i := range 4 {
		d, ok := HexValue(data.At(i))
		if !ok {
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}
