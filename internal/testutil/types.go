// Package testutil defines support code for unit tests.
package testutil

import (
	"github.com/creachadair/jbourne"
)

// Chunks splits data into consecutive pieces of at most size bytes.
func Chunks(data []byte, size int) [][]byte {
	var out [][]byte
	for len(data) > size {
		out = append(out, data[:size:size])
		data = data[size:]
	}
	return append(out, data)
}

// Split splits data into two pieces at each offset in cuts, which must be in
// increasing order.
func Split(data []byte, cuts ...int) [][]byte {
	var out [][]byte
	last := 0
	for _, c := range cuts {
		out = append(out, data[last:c:c])
		last = c
	}
	return append(out, data[last:])
}

// ReadChunks reads a single value from chunks using r, calling Finish if the
// chunks run out before the value is complete. It returns the final result
// and the total number of bytes consumed across all calls.
func ReadChunks(r *jbourne.Reader, chunks [][]byte) (jbourne.Result, int) {
	var total int
	for _, c := range chunks {
		res := r.TryParse(c)
		total += res.Consumed
		if res.Status != jbourne.NeedMoreInput {
			return res, total
		}
	}
	res := r.Finish()
	return res, total + res.Consumed
}
