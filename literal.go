// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jbourne

import (
	"strings"

	"github.com/creachadair/jbourne/ast"
)

// A literalReader reads one of the constant literals null, true, or false.
// The starts field lists the first bytes of the literals it accepts.
type literalReader struct {
	starts string

	lit string // the literal being matched, or "" before the first byte
	n   int    // bytes of lit matched so far
}

func (r *literalReader) reset() { r.lit, r.n = "", 0 }

func (r *literalReader) parse(buf []byte, cur *cursor, final bool) (int, outcome) {
	var i int
	if r.lit == "" {
		if len(buf) == 0 {
			return 0, r.end(final)
		}
		if strings.IndexByte(r.starts, buf[0]) < 0 {
			return 0, r.fail(buf, 0)
		}
		switch buf[0] {
		case 'n':
			r.lit = "null"
		case 't':
			r.lit = "true"
		case 'f':
			r.lit = "false"
		}
	}
	for i < len(buf) && r.n < len(r.lit) {
		if buf[i] != r.lit[r.n] {
			return i, r.fail(buf, i)
		}
		cur.step(buf[i])
		i++
		r.n++
	}
	if r.n < len(r.lit) {
		return i, r.end(final)
	}
	var v ast.Value = ast.Null
	if r.lit != "null" {
		v = ast.Bool(r.lit == "true")
	}
	r.reset()
	return i, success(v)
}

func (r *literalReader) end(final bool) outcome {
	if !final {
		return needMore
	}
	want := r.want()
	r.reset()
	return unexpectedEnd(want)
}

func (r *literalReader) fail(buf []byte, i int) outcome {
	c := runeAt(buf, i)
	var out outcome
	if r.lit == "" {
		out = failf(c, "invalid character %q, expected %s", c, r.want())
	} else {
		out = failf(c, "invalid character %q in literal %s (expecting %q)", c, r.lit, r.lit[r.n])
	}
	r.reset()
	return out
}

func (r *literalReader) want() string {
	switch {
	case r.lit != "":
		return "literal " + r.lit
	case r.starts == "n":
		return "null"
	default:
		return "true or false"
	}
}
