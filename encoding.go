// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbourne

import (
	"bytes"
	"errors"

	"github.com/creachadair/jbourne/internal/escape"
	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return escape.QuoteString(src) }

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src []byte) ([]byte, error) {
	if len(src) < 2 || !bytes.HasPrefix(src, []byte(`"`)) || !bytes.HasSuffix(src, []byte(`"`)) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.B(src[1 : len(src)-1]))
}

// Escape writes the escape sequence for r to the front of dst, and reports
// the number of bytes written. The escaped runes are the quotation mark,
// reverse solidus, solidus, backspace, form feed, newline, carriage return,
// tab, and NUL, which is written as \u0000.
//
// If r is not one of these, or dst is too short for its escape sequence,
// Escape writes nothing and reports 0, false.
func Escape(r rune, dst []byte) (int, bool) { return escape.Escape(r, dst) }

// Unescape decodes the escape sequence at the front of src, and reports the
// decoded rune and the number of bytes consumed. The sequence must be one of
// the single-character escapes or a \u escape with four hexadecimal digits.
// A surrogate pair written as two \u escapes decodes to a single rune.
//
// If src does not begin with a valid escape sequence, Unescape reports
// 0, 0, false.
func Unescape(src []byte) (rune, int, bool) { return escape.Unescape(mem.B(src)) }
