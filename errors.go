// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jbourne

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

var (
	// ErrExtraInput is reported when non-whitespace input follows the value
	// of a single-value parse.
	ErrExtraInput = errors.New("extra input after value")

	// ErrInternal is reported when a reader reaches a state that should be
	// impossible. It indicates a bug in this package, not bad input.
	ErrInternal = errors.New("internal error")

	// ErrMaxDepth is reported when arrays and objects are nested more deeply
	// than the configured limit.
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")
)

// SyntaxError is the concrete type of errors reported for invalid input.
type SyntaxError struct {
	Offset   int     // byte offset of the offending input, 0-based
	Location LineCol // line and column of the offending input
	Message  string

	// Rune is the offending code point, or utf8.RuneError if the input at
	// the failure did not decode as a valid scalar value.
	Rune rune

	err     error
	located bool
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// locate records the position of c in s, unless s already has one.
func (s *SyntaxError) locate(c cursor) {
	if s.located {
		return
	}
	s.Offset = c.pos
	s.Location = c.lineCol()
	s.located = true
}

// Status is the outcome of a single parse call.
type Status byte

// Constants defining the valid Status values.
const (
	Success       Status = iota // a complete value was read
	NeedMoreInput               // the buffer ended inside a value
	Failure                     // the input is invalid
)

var statusStr = [...]string{
	Success:       "Success",
	NeedMoreInput: "NeedMoreInput",
	Failure:       "Failure",
}

func (s Status) String() string {
	if int(s) >= len(statusStr) {
		return fmt.Sprintf("Status(%d)", s)
	}
	return statusStr[s]
}

// runeAt decodes the rune at offset i of buf, or returns utf8.RuneError.
func runeAt(buf []byte, i int) rune {
	r, _ := utf8.DecodeRune(buf[i:])
	return r
}

func failf(r rune, msg string, args ...any) outcome {
	return outcome{status: Failure, err: &SyntaxError{
		Message: fmt.Sprintf(msg, args...),
		Rune:    r,
	}}
}

// failWrap reports a failure that wraps err. The message of err is used as
// a prefix for the message.
func failWrap(err error, r rune, msg string, args ...any) outcome {
	out := failf(r, "%v: "+msg, append([]any{err}, args...)...)
	out.err.err = err
	return out
}

// unexpectedAt reports an unexpected byte at offset i of buf, along with a
// label describing what was expected there.
func unexpectedAt(buf []byte, i int, want string) outcome {
	r := runeAt(buf, i)
	return failf(r, "unexpected %q, expected %s", r, want)
}

// unexpectedEnd reports that input ended inside a value.
func unexpectedEnd(want string) outcome {
	out := failf(utf8.RuneError, "unexpected end of input, expected %s", want)
	out.err.err = io.ErrUnexpectedEOF
	return out
}

func internalf(msg string, args ...any) outcome {
	return failWrap(ErrInternal, utf8.RuneError, msg, args...)
}
