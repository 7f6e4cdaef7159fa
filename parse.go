// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jbourne

import (
	"bytes"
	"fmt"

	"github.com/creachadair/jbourne/ast"
	"github.com/tailscale/hujson"
)

// Parse parses a single JSON value from data. The value may be surrounded by
// whitespace, but any other input after the value is reported as an error
// wrapping ErrExtraInput. Parse reports an error of concrete type
// *SyntaxError for invalid input.
func Parse(data []byte) (ast.Value, error) { return ParseOptions(data, nil) }

// ParseOptions is as Parse, with the given options.
func ParseOptions(data []byte, opts *Options) (ast.Value, error) {
	r := NewReader(opts)
	res := r.TryParse(data)
	rest := data[res.Consumed:]
	if res.Status == NeedMoreInput {
		res = r.Finish()
	}
	if res.Status == Failure {
		return nil, res.Err
	}
	if err := r.rest(rest); err != nil {
		return nil, err
	}
	return res.Value, nil
}

// ParseHuJSON parses a single HuJSON value from data. HuJSON extends JSON
// with comments and trailing commas. These are replaced by spaces before
// parsing, so the locations in a *SyntaxError match the original input.
func ParseHuJSON(data []byte) (ast.Value, error) { return ParseHuJSONOptions(data, nil) }

// ParseHuJSONOptions is as ParseHuJSON, with the given options.
func ParseHuJSONOptions(data []byte, opts *Options) (ast.Value, error) {
	std, err := hujson.Standardize(bytes.Clone(data))
	if err != nil {
		return nil, fmt.Errorf("standardize HuJSON: %w", err)
	}
	return ParseOptions(std, opts)
}

// rest consumes buf, which follows a complete value, and reports an error if
// it contains anything other than whitespace.
func (r *Reader) rest(buf []byte) error {
	for i, b := range buf {
		if !isSpace(b) {
			c := runeAt(buf, i)
			out := failWrap(ErrExtraInput, c, "unexpected %q", c)
			out.err.locate(r.cur)
			return out.err
		}
		r.cur.step(b)
	}
	return nil
}
