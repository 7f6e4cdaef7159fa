// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jbourne

import "github.com/creachadair/jbourne/ast"

// expect records what an array or object reader will accept next.
type expect byte

const (
	expectOpen       expect = iota // the opening bracket
	expectKeyOrEnd                 // a key or "}", after "{"
	expectKey                      // a key, after ","
	expectColon                    // ":" after a key
	expectValue                    // a value
	expectValueOrEnd               // a value or "]", after "["
	expectCommaOrEnd               // "," or the closing bracket
)

// indexThreshold is the number of members beyond which an object reader
// indexes keys in a map rather than scanning for duplicates.
const indexThreshold = 16

// An objectReader reads a JSON object. Members are kept in order of the first
// occurrence of each key. A repeated key replaces the earlier value in place.
type objectReader struct {
	nest

	state   expect
	key     string
	members ast.Object
	index   map[string]int
}

func (r *objectReader) reset() {
	r.drop()
	r.state = expectOpen
	r.key = ""
	r.members = nil
	r.index = nil
}

func (r *objectReader) want() string {
	switch r.state {
	case expectOpen:
		return "'{'"
	case expectKeyOrEnd:
		return "string or '}'"
	case expectKey:
		return "string"
	case expectColon:
		return "':'"
	case expectValue:
		return "value"
	}
	return "',' or '}'"
}

func (r *objectReader) parse(buf []byte, cur *cursor, final bool) (int, outcome) {
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
			if fail, ok := r.accept(out.value); !ok {
				r.reset()
				return i, fail
			}
			continue
		}
		if i == len(buf) {
			break
		}

		b := buf[i]
		switch tok := Classify(b); {
		case r.state == expectOpen:
			if tok != LBrace {
				return i, r.fail(unexpectedAt(buf, i, r.want()))
			}
			r.state = expectKeyOrEnd

		case tok == Whitespace:
			// skip

		case tok == String && (r.state == expectKey || r.state == expectKeyOrEnd),
			tok.IsValue() && r.state == expectValue:
			if fail, ok := r.start(tok); !ok {
				return i, r.fail(fail)
			}
			continue // the child consumes b

		case tok == Colon && r.state == expectColon:
			r.state = expectValue

		case tok == Comma && r.state == expectCommaOrEnd:
			r.state = expectKey

		case tok == RBrace && (r.state == expectKeyOrEnd || r.state == expectCommaOrEnd):
			cur.step(b)
			v := r.members
			if v == nil {
				v = ast.Object{}
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

// accept records a value completed by the child reader.
func (r *objectReader) accept(v ast.Value) (outcome, bool) {
	switch r.state {
	case expectKey, expectKeyOrEnd:
		s, ok := v.(ast.String)
		if !ok {
			return internalf("object key is %T, not a string", v), false
		}
		r.key = string(s)
		r.state = expectColon
	case expectValue:
		r.put(r.key, v)
		r.key = ""
		r.state = expectCommaOrEnd
	default:
		return internalf("unexpected value in object state %d", r.state), false
	}
	return outcome{}, true
}

func (r *objectReader) put(key string, v ast.Value) {
	if i, ok := r.lookup(key); ok {
		r.members[i].Value = v
		return
	}
	r.members = append(r.members, &ast.Member{Key: key, Value: v})
	if r.index != nil {
		r.index[key] = len(r.members) - 1
	}
}

func (r *objectReader) lookup(key string) (int, bool) {
	if r.index == nil {
		if len(r.members) < indexThreshold {
			for i, m := range r.members {
				if m.Key == key {
					return i, true
				}
			}
			return -1, false
		}
		r.index = make(map[string]int, 2*len(r.members))
		for i, m := range r.members {
			r.index[m.Key] = i
		}
	}
	i, ok := r.index[key]
	return i, ok
}

// fail resets r and returns out.
func (r *objectReader) fail(out outcome) outcome { r.reset(); return out }
