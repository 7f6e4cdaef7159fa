// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes a string to escape characters for inclusion in a JSON string.
// The enclosing quotation marks are not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if r < utf8.RuneSelf {
			var tmp [6]byte
			if r < ' ' || r == '\\' || r == '"' {
				nw, _ := Escape(r, tmp[:])
				if nw == 0 {
					nw = putHex4(tmp[:], r)
				}
				buf = append(buf, tmp[:nw]...)
			} else {
				buf = append(buf, byte(r))
			}
			src = src.SliceFrom(n)
			continue
		}

		switch r {
		case utf8.RuneError: // replacement rune, or an invalid encoding
			buf = append(buf, `\ufffd`...)
		case '\u2028': // line separator
			buf = append(buf, `\u2028`...)
		case '\u2029': // paragraph separator
			buf = append(buf, `\u2029`...)
		default:
			buf = mem.Append(buf, src.SliceTo(n))
		}
		src = src.SliceFrom(n)
	}
	return buf
}

// QuoteString returns s escaped and enclosed in double quotation marks.
func QuoteString(s string) string {
	q := Quote(mem.S(s))
	out := make([]byte, 0, len(q)+2)
	out = append(out, '"')
	out = append(out, q...)
	return string(append(out, '"'))
}

// Escape writes the escape sequence for r into dst and reports the number of
// bytes written. Only the characters that have a dedicated JSON escape are
// handled: quotation mark, reverse solidus, solidus, backspace, form feed,
// newline, carriage return, tab, and NUL (written as \u0000). For any other
// rune, or if dst is too short, Escape returns 0, false.
func Escape(r rune, dst []byte) (int, bool) {
	switch {
	case r == '"' || r == '\\' || r == '/':
		if len(dst) < 2 {
			return 0, false
		}
		dst[0], dst[1] = '\\', byte(r)
		return 2, true
	case r == 0:
		if len(dst) < 6 {
			return 0, false
		}
		return putHex4(dst, r), true
	case r < ' ' && controlEsc[r] != 0:
		if len(dst) < 2 {
			return 0, false
		}
		dst[0], dst[1] = '\\', controlEsc[r]
		return 2, true
	}
	return 0, false
}

// putHex4 writes the \u00XX escape for a rune below 0x100 into dst, which must
// have room for 6 bytes.
func putHex4(dst []byte, r rune) int {
	copy(dst, `\u00`)
	dst[4] = hexDigit[int(r>>4)&15]
	dst[5] = hexDigit[int(r&15)]
	return 6
}
