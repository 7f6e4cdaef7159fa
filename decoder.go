// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jbourne

import (
	"io"

	"github.com/creachadair/jbourne/ast"
)

// A Decoder reads a sequence of JSON values from an io.Reader. Values may be
// separated by whitespace, or not at all where the grammar permits.
type Decoder struct {
	r    io.Reader
	rd   *Reader
	buf  []byte
	data []byte // unconsumed input in buf
	rerr error  // the most recent read error
	err  error  // a sticky decoding error
	loc  Location
}

// maxEmptyReads is the number of consecutive empty reads after which Decode
// reports io.ErrNoProgress.
const maxEmptyReads = 100

// NewDecoder constructs a Decoder that reads input from r.
func NewDecoder(r io.Reader, opts *Options) *Decoder {
	return &Decoder{r: r, rd: NewReader(opts), buf: make([]byte, opts.bufferSize())}
}

// Decode reads the next value from the input. It returns io.EOF if the input
// ends without another value. An error of concrete type *SyntaxError means
// the input is invalid, and further calls to Decode report the same error.
func (d *Decoder) Decode() (ast.Value, error) {
	if d.err != nil {
		return nil, d.err
	}
	for empty := 0; ; {
		if len(d.data) == 0 {
			if d.rerr != nil {
				return d.end()
			}
			n, err := d.r.Read(d.buf)
			d.data, d.rerr = d.buf[:n], err
			if n > 0 {
				empty = 0
			} else if err == nil {
				if empty++; empty >= maxEmptyReads {
					d.rerr = io.ErrNoProgress
				}
			}
			continue
		}
		res := d.rd.TryParse(d.data)
		d.data = d.data[res.Consumed:]
		if res.Status != NeedMoreInput {
			return d.result(res)
		}
	}
}

// Location reports the location of the value most recently returned by
// Decode.
func (d *Decoder) Location() Location { return d.loc }

// end handles the end of the underlying input.
func (d *Decoder) end() (ast.Value, error) {
	if d.rerr != io.EOF {
		d.err = d.rerr
		return nil, d.err
	}
	if !d.rd.InProgress() {
		return nil, io.EOF
	}
	res := d.rd.Finish()
	return d.result(res)
}

func (d *Decoder) result(res Result) (ast.Value, error) {
	if res.Status == Failure {
		d.err = res.Err
		return nil, d.err
	}
	d.loc = res.Location
	return res.Value, nil
}
