// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jbourne

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/creachadair/jbourne/ast"
	"github.com/creachadair/jbourne/internal/escape"
	"go4.org/mem"
)

type strState byte

const (
	strOpen    strState = iota // before the opening quote
	strBody                    // between characters
	strRune                    // inside a multi-byte UTF-8 sequence
	strEscape                  // after a backslash
	strHex                     // inside the digits of a \u escape
	strLowMark                 // after a high surrogate, expecting "\"
	strLowU                    // after a high surrogate and "\", expecting "u"
	strLowHex                  // inside the digits of the low surrogate
)

// A stringReader reads a JSON string and reports its decoded text.
//
// Multi-byte UTF-8 sequences and escapes may be split across buffers. The
// reader validates each sequence as it completes.
type stringReader struct {
	state strState
	text  []byte

	enc  [utf8.UTFMax]byte // bytes of a partial UTF-8 sequence
	encN int               // bytes in enc
	encW int               // total width of the sequence in enc

	hex  rune // value of a partial \u escape
	hexN int  // digits in hex
	high rune // the high surrogate awaiting its pair
}

func (r *stringReader) reset() {
	r.state = strOpen
	r.text = r.text[:0]
	r.encN, r.encW = 0, 0
	r.hex, r.hexN, r.high = 0, 0, 0
}

func (r *stringReader) parse(buf []byte, cur *cursor, final bool) (int, outcome) {
	i := 0
	for i < len(buf) {
		b := buf[i]
		switch r.state {
		case strOpen:
			if b != '"' {
				return i, r.fail(unexpectedAt(buf, i, "string"))
			}
			r.state = strBody

		case strBody:
			// Copy a run of plain ASCII in one step.
			j := i
			for j < len(buf) && isPlain(buf[j]) {
				j++
			}
			if j > i {
				r.text = append(r.text, buf[i:j]...)
				cur.pos += j - i
				cur.col += j - i
				i = j
				continue
			}

			switch {
			case b == '"':
				cur.step(b)
				v := ast.String(r.text)
				r.reset()
				return i + 1, success(v)

			case b == '\\':
				if c, n, ok := escape.Unescape(mem.B(buf[i:])); ok {
					r.text = utf8.AppendRune(r.text, c)
					cur.pos += n
					cur.col += n
					i += n
					continue
				}
				r.state = strEscape

			case b < ' ':
				return i, r.fail(failf(rune(b), "unescaped control character %q in string", b))

			default:
				w := utf8Width(b)
				if w == 0 {
					return i, r.fail(failf(utf8.RuneError, "invalid UTF-8 byte %#02x in string", b))
				}
				r.enc[0], r.encN, r.encW = b, 1, w
				r.state = strRune
			}

		case strRune:
			if b&0xc0 != 0x80 {
				return i, r.fail(failf(utf8.RuneError, "invalid UTF-8 byte %#02x in string", b))
			}
			r.enc[r.encN] = b
			r.encN++
			if r.encN == r.encW {
				if c, n := utf8.DecodeRune(r.enc[:r.encW]); c == utf8.RuneError && n < r.encW {
					return i, r.fail(failf(utf8.RuneError, "invalid UTF-8 sequence % x in string", r.enc[:r.encW]))
				}
				r.text = append(r.text, r.enc[:r.encW]...)
				r.encN, r.encW = 0, 0
				r.state = strBody
			}

		case strEscape:
			if b == 'u' {
				r.hex, r.hexN = 0, 0
				r.state = strHex
			} else if c, ok := escape.Single(b); ok {
				r.text = append(r.text, byte(c))
				r.state = strBody
			} else {
				c := runeAt(buf, i)
				return i, r.fail(failf(c, "invalid escape character %q", c))
			}

		case strHex, strLowHex:
			d, ok := escape.HexValue(b)
			if !ok {
				c := runeAt(buf, i)
				return i, r.fail(failf(c, "invalid hex digit %q in Unicode escape", c))
			}
			r.hex = r.hex<<4 | d
			r.hexN++
			if r.hexN == 4 {
				if out, ok := r.endHex(); !ok {
					return i, out
				}
			}

		case strLowMark:
			if b != '\\' {
				return i, r.fail(r.unpaired(buf, i))
			}
			r.state = strLowU

		case strLowU:
			if b != 'u' {
				return i, r.fail(r.unpaired(buf, i))
			}
			r.hex, r.hexN = 0, 0
			r.state = strLowHex

		default:
			return i, r.fail(internalf("invalid string state %d", r.state))
		}
		cur.step(b)
		i++
	}
	if final {
		return i, r.fail(unexpectedEnd(r.want()))
	}
	return i, needMore
}

// endHex handles the completion of a four-digit Unicode escape.
func (r *stringReader) endHex() (outcome, bool) {
	c := r.hex
	r.hex, r.hexN = 0, 0
	if r.state == strLowHex {
		if !escape.IsLowSurrogate(c) {
			bad := c
			if !utf8.ValidRune(bad) {
				bad = utf8.RuneError
			}
			return r.fail(failf(bad, `invalid low surrogate \u%04x after \u%04x`, c, r.high)), false
		}
		r.text = utf8.AppendRune(r.text, utf16.DecodeRune(r.high, c))
		r.high = 0
		r.state = strBody
		return outcome{}, true
	}
	switch {
	case escape.IsHighSurrogate(c):
		r.high = c
		r.state = strLowMark
	case escape.IsLowSurrogate(c):
		return r.fail(failf(utf8.RuneError, `unpaired low surrogate \u%04x`, c)), false
	default:
		r.text = utf8.AppendRune(r.text, c)
		r.state = strBody
	}
	return outcome{}, true
}

func (r *stringReader) unpaired(buf []byte, i int) outcome {
	c := runeAt(buf, i)
	return failf(c, `unexpected %q, expected low surrogate after \u%04x`, c, r.high)
}

func (r *stringReader) want() string {
	switch r.state {
	case strOpen:
		return "string"
	case strRune:
		return "UTF-8 continuation byte"
	case strEscape:
		return "escape character"
	case strHex, strLowHex:
		return "hex digit"
	case strLowMark, strLowU:
		return "low surrogate"
	}
	return `'"'`
}

// fail resets r and returns out.
func (r *stringReader) fail(out outcome) outcome { r.reset(); return out }

// isPlain reports whether b may be copied verbatim into a string.
func isPlain(b byte) bool { return b >= ' ' && b < utf8.RuneSelf && b != '"' && b != '\\' }

// utf8Width returns the length of the UTF-8 sequence beginning with b, or 0
// if b cannot begin a multi-byte sequence.
func utf8Width(b byte) int {
	switch {
	case b&0xe0 == 0xc0 && b >= 0xc2:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0 && b <= 0xf4:
		return 4
	}
	return 0
}
