// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jbourne

import (
	"io"
	"unicode/utf8"

	"github.com/creachadair/jbourne/ast"
)

// Options are settings for a Reader or Decoder. A nil *Options is ready for
// use and provides default values.
type Options struct {
	// MaxDepth is the maximum nesting depth of arrays and objects.
	// If zero, DefaultMaxDepth is used.
	MaxDepth int

	// BufferSize is the size of the read buffer used by a Decoder.
	// If zero, DefaultBufferSize is used.
	BufferSize int
}

// Default values for Options fields.
const (
	DefaultMaxDepth   = 1000
	DefaultBufferSize = 32 << 10
)

func (o *Options) maxDepth() int {
	if o == nil || o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o *Options) bufferSize() int {
	if o == nil || o.BufferSize <= 0 {
		return DefaultBufferSize
	}
	return o.BufferSize
}

// Result reports the outcome of a call to TryParse or Finish.
type Result struct {
	Status Status

	// Value is the complete value, when Status is Success.
	Value ast.Value

	// Consumed is the number of bytes consumed from the buffer passed to
	// this call. Bytes past the end of a complete value are not consumed.
	Consumed int

	// Location is the location of the complete value, when Status is Success.
	Location Location

	// Err describes the problem, when Status is Failure.
	Err *SyntaxError
}

// LineSpan reports the number of lines covered by the value.
func (r Result) LineSpan() int { return r.Location.LineSpan() }

// ColSpan reports the column span of the value. See Location.ColSpan.
func (r Result) ColSpan() int { return r.Location.ColSpan() }

// A Reader reads a sequence of JSON values from input supplied in buffers of
// any size. A value may be split across buffers at any byte, and the Reader
// resumes where it left off when given the next buffer.
//
// The Reader tracks the offset, line, and column of its input across all the
// values it reads, until it is Reset.
//
// A Reader is not safe for concurrent use by multiple goroutines.
type Reader struct {
	nest
	cur   cursor
	begin cursor // where the current value began
}

// NewReader constructs a new Reader with the given options.
func NewReader(opts *Options) *Reader {
	return &Reader{nest: nest{set: newReaderSet(opts.maxDepth())}}
}

// TryParse consumes input from buf toward the next value.
//
// If buf completes a value, TryParse reports Success with the value, and any
// input following the value is not consumed. If buf ends before the value is
// complete, TryParse consumes all of buf and reports NeedMoreInput. Leading
// whitespace is skipped, so a buffer of only whitespace also reports
// NeedMoreInput.
//
// If the input is invalid, TryParse reports Failure and the value in progress
// is discarded. The offending byte is not consumed.
func (r *Reader) TryParse(buf []byte) Result { return r.parse(buf, false) }

// Finish reports that the input has ended. If a number was in progress and is
// complete, Finish reports Success with that value. If any other value was in
// progress, Finish reports a Failure that wraps io.ErrUnexpectedEOF. If no
// value was in progress, Finish reports a Failure that wraps io.EOF.
func (r *Reader) Finish() Result {
	if r.child == nil {
		out := failf(utf8.RuneError, "no value in input")
		out.err.err = io.EOF
		return r.result(0, out)
	}
	return r.parse(nil, true)
}

// InProgress reports whether r has consumed part of a value it has not yet
// completed.
func (r *Reader) InProgress() bool { return r.child != nil }

// Offset reports the byte offset of the next input r will consume.
func (r *Reader) Offset() int { return r.cur.pos }

// Pos reports the line and column of the next input r will consume.
func (r *Reader) Pos() LineCol { return r.cur.lineCol() }

// Reset discards any value in progress and returns r to the start of a new
// input.
func (r *Reader) Reset() {
	r.drop()
	r.set.close()
	r.cur = cursor{}
	r.begin = cursor{}
}

func (r *Reader) parse(buf []byte, final bool) Result {
	i := 0
	if r.child == nil {
		for i < len(buf) && isSpace(buf[i]) {
			r.cur.step(buf[i])
			i++
		}
		if i == len(buf) {
			return Result{Status: NeedMoreInput, Consumed: i}
		}
		tok := Classify(buf[i])
		if !tok.IsValue() {
			return r.result(i, unexpectedAt(buf, i, "value"))
		}
		if fail, ok := r.start(tok); !ok {
			return r.result(i, fail)
		}
		r.begin = r.cur
	}
	n, out := r.feed(buf[i:], &r.cur, final)
	return r.result(i+n, out)
}

// result packages out as a Result. A failure is located at the current
// position, and ends use of the reader set.
func (r *Reader) result(consumed int, out outcome) Result {
	res := Result{Status: out.status, Value: out.value, Consumed: consumed}
	switch out.status {
	case Success:
		res.Location = r.cur.locate(r.begin)
	case Failure:
		r.drop()
		r.set.close()
		out.err.locate(r.cur)
		res.Err = out.err
	}
	return res
}
