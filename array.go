// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jbourne

import "github.com/creachadair/jbourne/ast"

// An arrayReader reads a JSON array.
type arrayReader struct {
	nest

	state expect
	elems ast.Array
}

func (r *arrayReader) reset() {
	r.drop()
	r.state = expectOpen
	r.elems = nil
}

func (r *arrayReader) want() string {
	switch r.state {
	case expectOpen:
		return "'['"
	case expectValueOrEnd:
		return "value or ']'"
	case expectValue:
		return "value"
	}
	return "',' or ']'"
}

func (r *arrayReader) parse(buf []byte, cur *cursor, final bool) (int, outcome) {
	i := 0
	for {
		if r.child != nil {
			n, out := r.feed(buf[i:], cur, final)
			i += n
			switch out.status {
			case NeedMoreInput:
				return i, out
			case Failure:
				r.reset()
				return i, out
			}
			r.elems = append(r.elems, out.value)
			r.state = expectCommaOrEnd
			continue
		}
		if i == len(buf) {
			break
		}

		b := buf[i]
		switch tok := Classify(b); {
		case r.state == expectOpen:
			if tok != LSquare {
				return i, r.fail(unexpectedAt(buf, i, r.want()))
			}
			r.state = expectValueOrEnd

		case tok == Whitespace:
			// skip

		case tok.IsValue() && (r.state == expectValue || r.state == expectValueOrEnd):
			if fail, ok := r.start(tok); !ok {
				return i, r.fail(fail)
			}
			continue // the child consumes b

		case tok == Comma && r.state == expectCommaOrEnd:
			r.state = expectValue

		case tok == RSquare && (r.state == expectValueOrEnd || r.state == expectCommaOrEnd):
			cur.step(b)
			v := r.elems
			if v == nil {
				v = ast.Array{}
			}
			r.reset()
			return i + 1, success(v)

		default:
			return i, r.fail(unexpectedAt(buf, i, r.want()))
		}
		cur.step(b)
		i++
	}
	if final {
		return i, r.fail(unexpectedEnd(r.want()))
	}
	return i, needMore
}

// fail resets r and returns out.
func (r *arrayReader) fail(out outcome) outcome { r.reset(); return out }
