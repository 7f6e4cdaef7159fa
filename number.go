// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jbourne

import "github.com/creachadair/jbourne/ast"

type numState byte

const (
	numStart     numState = iota
	numMinus              // after "-"
	numZero               // after a leading "0"
	numInt                // in the integer part
	numDot                // after "."
	numFrac               // in the fraction
	numExp                // after "e" or "E"
	numExpSign            // after the exponent sign
	numExpDigits          // in the exponent
	numDone               // the value ended before the current byte
)

// complete reports whether a number may end in state s.
func (s numState) complete() bool {
	return s == numZero || s == numInt || s == numFrac || s == numExpDigits
}

// want describes what may follow in state s.
func (s numState) want() string {
	switch s {
	case numStart:
		return `'-' or digit`
	case numMinus, numDot, numExpSign:
		return "digit"
	case numExp:
		return `'+', '-', or digit`
	}
	return "end of number"
}

// A numberReader reads a JSON number. It accumulates the text of the number
// and reports it as an ast.Number without conversion.
type numberReader struct {
	state numState
	text  []byte
}

func (r *numberReader) reset() {
	r.state = numStart
	r.text = r.text[:0]
}

// next reports the state following s on byte b. If b cannot follow s, next
// returns a non-empty description of the problem.
func (s numState) next(b byte) (numState, string) {
	digit := isDigit(b)
	switch s {
	case numStart:
		switch {
		case b == '-':
			return numMinus, ""
		case b == '0':
			return numZero, ""
		case digit:
			return numInt, ""
		}
		return s, "invalid number start"
	case numMinus:
		switch {
		case b == '0':
			return numZero, ""
		case digit:
			return numInt, ""
		}
		return s, "missing digit after minus sign"
	case numZero:
		switch {
		case digit:
			return s, "leading zero followed by digit"
		case b == '.':
			return numDot, ""
		case b == 'e' || b == 'E':
			return numExp, ""
		}
		return numDone, ""
	case numInt:
		switch {
		case digit:
			return numInt, ""
		case b == '.':
			return numDot, ""
		case b == 'e' || b == 'E':
			return numExp, ""
		}
		return numDone, ""
	case numDot:
		if digit {
			return numFrac, ""
		}
		return s, "missing digit after decimal point"
	case numFrac:
		switch {
		case digit:
			return numFrac, ""
		case b == 'e' || b == 'E':
			return numExp, ""
		}
		return numDone, ""
	case numExp:
		switch {
		case b == '+' || b == '-':
			return numExpSign, ""
		case digit:
			return numExpDigits, ""
		}
		return s, "missing digit in exponent"
	case numExpSign:
		if digit {
			return numExpDigits, ""
		}
		return s, "missing digit in exponent"
	case numExpDigits:
		if digit {
			return numExpDigits, ""
		}
		return numDone, ""
	}
	return s, "invalid number state"
}

func (r *numberReader) parse(buf []byte, cur *cursor, final bool) (int, outcome) {
	for i, b := range buf {
		next, problem := r.state.next(b)
		if problem != "" {
			c := runeAt(buf, i)
			out := failf(c, "%s %q", problem, c)
			r.reset()
			return i, out
		} else if next == numDone {
			return i, r.finish()
		}
		r.state = next
		r.text = append(r.text, b)
		cur.step(b)
	}
	if !final {
		return len(buf), needMore
	} else if r.state.complete() {
		return len(buf), r.finish()
	}
	want := r.state.want()
	r.reset()
	return len(buf), unexpectedEnd(want + " in number")
}

func (r *numberReader) finish() outcome {
	v := ast.RawNumber(string(r.text))
	r.reset()
	return success(v)
}
