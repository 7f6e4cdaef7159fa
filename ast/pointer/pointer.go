// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package pointer resolves slash-separated paths into trees of JSON values.
//
// A path is a sequence of tokens separated by "/", as in a JSON Pointer
// (RFC 6901): within a token "~1" denotes "/" and "~0" denotes "~". The
// leading "/" is optional, and the empty path denotes the root.
//
// A token selects an object member by key, or an array element by decimal
// index. A negative index counts backward from the end (-1 is last). A token
// that matches no key of an object but parses as an index selects a member by
// its position.
package pointer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jbourne/ast"
)

// A Pointer is a parsed path into a JSON value. The zero Pointer denotes the
// root of any value.
type Pointer struct {
	steps []step
}

type step struct {
	key     string
	index   int
	isIndex bool // key is a decimal integer
}

// Parse parses s as a Pointer.
func Parse(s string) (Pointer, error) {
	rest := strings.TrimPrefix(s, "/")
	if rest == "" {
		return Pointer{}, nil
	}
	var p Pointer
	for tok := range strings.SplitSeq(rest, "/") {
		key, err := unescape(tok)
		if err != nil {
			return Pointer{}, fmt.Errorf("invalid path %q: %w", s, err)
		}
		st := step{key: key}
		if z, err := strconv.Atoi(key); err == nil {
			st.index, st.isIndex = z, true
		}
		p.steps = append(p.steps, st)
	}
	return p, nil
}

// MustParse is as Parse, but panics if s is invalid.
func MustParse(s string) Pointer {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Len reports the number of tokens in p.
func (p Pointer) Len() int { return len(p.steps) }

// String renders p in canonical form, with a leading "/" and escaped tokens.
// The root renders as "".
func (p Pointer) String() string { return p.prefix(len(p.steps)) }

func (p Pointer) prefix(n int) string {
	var sb strings.Builder
	for _, st := range p.steps[:n] {
		sb.WriteByte('/')
		keyEscaper.WriteString(&sb, st.key)
	}
	return sb.String()
}

// Resolve returns the value in v denoted by p. If some token cannot be
// resolved, the error reports the path up to and including that token.
func (p Pointer) Resolve(v ast.Value) (ast.Value, error) {
	for i, st := range p.steps {
		next, err := st.apply(v)
		if err != nil {
			return nil, fmt.Errorf("at %q: %w", p.prefix(i+1), err)
		}
		v = next
	}
	return v, nil
}

// Get resolves the path s in v and returns the resulting value, which must
// have type T.
func Get[T ast.Value](v ast.Value, s string) (T, error) {
	var zero T
	p, err := Parse(s)
	if err != nil {
		return zero, err
	}
	got, err := p.Resolve(v)
	if err != nil {
		return zero, err
	}
	out, ok := got.(T)
	if !ok {
		return zero, fmt.Errorf("at %q: wrong value type %T", p, got)
	}
	return out, nil
}

func (s step) apply(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case ast.Object:
		if m := t.Find(s.key); m != nil {
			return m.Value, nil
		} else if !s.isIndex {
			return nil, fmt.Errorf("key %q not found", s.key)
		}
		i, ok := fixBound(len(t), s.index)
		if !ok {
			return nil, fmt.Errorf("object index %d out of bounds (n=%d)", s.index, len(t))
		}
		return t[i].Value, nil

	case ast.Array:
		if !s.isIndex {
			return nil, fmt.Errorf("invalid array index %q", s.key)
		}
		i, ok := fixBound(len(t), s.index)
		if !ok {
			return nil, fmt.Errorf("array index %d out of bounds (n=%d)", s.index, len(t))
		}
		return t[i], nil

	default:
		return nil, fmt.Errorf("cannot index %T with %q", v, s.key)
	}
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

var keyEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func unescape(tok string) (string, error) {
	if !strings.Contains(tok, "~") {
		return tok, nil
	}
	var sb strings.Builder
	for i := 0; i < len(tok); i++ {
		if tok[i] != '~' {
			sb.WriteByte(tok[i])
			continue
		}
		if i+1 == len(tok) {
			return "", errors.New("incomplete escape at end of token")
		}
		switch tok[i+1] {
		case '0':
			sb.WriteByte('~')
		case '1':
			sb.WriteByte('/')
		default:
			return "", fmt.Errorf("invalid escape %q", tok[i:i+2])
		}
		i++
	}
	return sb.String(), nil
}
