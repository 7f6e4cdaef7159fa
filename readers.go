// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jbourne

import (
	"fmt"

	"github.com/creachadair/jbourne/ast"
)

// An outcome is the result of one call to a valueReader.
type outcome struct {
	status Status
	value  ast.Value    // set when status == Success
	err    *SyntaxError // set when status == Failure
}

var needMore = outcome{status: NeedMoreInput}

func success(v ast.Value) outcome { return outcome{status: Success, value: v} }

// A valueReader is a resumable state machine for one kind of JSON value.
//
// The parse method consumes a prefix of buf, advancing cur past each byte it
// consumes, and returns the number of bytes consumed. A reader that reports
// NeedMoreInput has consumed all of buf and keeps its state for the next
// call. A reader that reports Success or Failure has already reset itself,
// and does not consume the byte that ended its value or the byte at which it
// failed.
//
// If final is true, no input follows buf. Only a number can complete at the
// end of its input, since nothing else marks where a number ends.
type valueReader interface {
	parse(buf []byte, cur *cursor, final bool) (int, outcome)
	reset()
}

type scalarKind int

const (
	nullKind scalarKind = iota
	boolKind
	numberKind
	stringKind
	numScalarKinds
)

var kindStr = [...]string{"null", "bool", "number", "string"}

func (k scalarKind) String() string { return kindStr[k] }

// A readerSet owns one reader for each scalar kind, and lends them to the
// composite readers of a single parse. At most one value is read at a time,
// so each scalar reader is lent to at most one borrower.
type readerSet struct {
	maxDepth int

	null, boolean literalReader
	number        numberReader
	str           stringReader

	lent [numScalarKinds]bool
}

func newReaderSet(maxDepth int) *readerSet {
	return &readerSet{
		maxDepth: maxDepth,
		null:     literalReader{starts: "n"},
		boolean:  literalReader{starts: "tf"},
	}
}

func (s *readerSet) reader(k scalarKind) valueReader {
	switch k {
	case nullKind:
		return &s.null
	case boolKind:
		return &s.boolean
	case numberKind:
		return &s.number
	case stringKind:
		return &s.str
	}
	panic(fmt.Sprintf("invalid scalar kind %d", k))
}

func (s *readerSet) kindOf(r valueReader) scalarKind {
	for k := range numScalarKinds {
		if s.reader(k) == r {
			return k
		}
	}
	panic(fmt.Sprintf("reader %T does not belong to this set", r))
}

// borrow lends out the reader for k. It panics if that reader is already
// lent, since that means two values are being read at once.
func (s *readerSet) borrow(k scalarKind) valueReader {
	if s.lent[k] {
		panic(fmt.Sprintf("%v reader is already in use", k))
	}
	s.lent[k] = true
	return s.reader(k)
}

// release resets r and returns it to s.
func (s *readerSet) release(r valueReader) {
	k := s.kindOf(r)
	r.reset()
	s.lent[k] = false
}

// close resets every reader in s and marks them all available.
func (s *readerSet) close() {
	for k := range numScalarKinds {
		s.reader(k).reset()
		s.lent[k] = false
	}
}

// A nest manages the child reader of a value that contains other values.
// Array and object readers for the next level down are created on first use
// and then kept for reuse by later siblings.
type nest struct {
	set   *readerSet
	depth int // nesting depth of the owner; the root is 0

	child valueReader
	arr   *arrayReader
	obj   *objectReader
}

// start selects a child reader for a value beginning with tok.
func (n *nest) start(tok Token) (fail outcome, ok bool) {
	if n.child != nil {
		return internalf("value started while another is in progress"), false
	}
	switch tok {
	case Null:
		n.child = n.set.borrow(nullKind)
	case True, False:
		n.child = n.set.borrow(boolKind)
	case Number:
		n.child = n.set.borrow(numberKind)
	case String:
		n.child = n.set.borrow(stringKind)
	case LSquare, LBrace:
		if n.depth >= n.set.maxDepth {
			return failWrap(ErrMaxDepth, rune(tok.open()), "limit is %d", n.set.maxDepth), false
		}
		if tok == LSquare {
			if n.arr == nil {
				n.arr = &arrayReader{nest: nest{set: n.set, depth: n.depth + 1}}
			}
			n.child = n.arr
		} else {
			if n.obj == nil {
				n.obj = &objectReader{nest: nest{set: n.set, depth: n.depth + 1}}
			}
			n.child = n.obj
		}
	default:
		return internalf("no reader for %v", tok), false
	}
	return outcome{}, true
}

// feed passes buf to the active child. When the child completes or fails, it
// is released.
func (n *nest) feed(buf []byte, cur *cursor, final bool) (int, outcome) {
	nr, out := n.child.parse(buf, cur, final)
	if out.status != NeedMoreInput {
		n.drop()
	}
	return nr, out
}

// drop discards the active child, if any.
func (n *nest) drop() {
	switch c := n.child.(type) {
	case nil:
		return
	case *arrayReader, *objectReader:
		c.reset()
	default:
		n.set.release(c)
	}
	n.child = nil
}

// open returns the opening byte of a composite token.
func (t Token) open() byte {
	if t == LSquare {
		return '['
	}
	return '{'
}
