// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the document values produced by the jbourne readers.
//
// A Value is one of Null, Bool, Number, String, Array, or Object. Values are
// immutable once returned by a reader, and the caller owns them outright.
package ast

import (
	"strconv"
	"strings"

	"github.com/creachadair/jbourne/internal/escape"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON renders the value as compact JSON text.
	JSON() string
}

type nullValue struct{}

// Null is the JSON null constant.
var Null Value = nullValue{}

// JSON satisfies the Value interface.
func (nullValue) JSON() string { return "null" }

func (nullValue) String() string { return "Null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// A String is a decoded string value. Escapes have been resolved.
type String string

// JSON satisfies the Value interface. The result is quoted and escaped.
func (s String) JSON() string { return escape.QuoteString(string(s)) }

// A Number is a numeric value. It retains the text of the token from which
// it was parsed, so no precision is lost until the caller interprets it.
type Number struct{ text string }

// RawNumber constructs a Number from its JSON text. The text is not checked.
func RawNumber(text string) Number { return Number{text: text} }

// Int constructs a Number with the given integer value.
func Int(z int64) Number { return Number{text: strconv.FormatInt(z, 10)} }

// Float constructs a Number with the given floating-point value.
func Float(f float64) Number { return Number{text: strconv.FormatFloat(f, 'g', -1, 64)} }

// JSON satisfies the Value interface.
func (n Number) JSON() string { return n.text }

// Text returns the JSON text of n.
func (n Number) Text() string { return n.text }

// IsInt reports whether n is written as an integer, with no fraction or
// exponent.
func (n Number) IsInt() bool { return n.text != "" && !strings.ContainsAny(n.text, ".eE") }

// Int64 returns the value of n as an int64. It reports an error if n is not
// an integer or is out of range.
func (n Number) Int64() (int64, error) { return strconv.ParseInt(n.text, 10, 64) }

// Float64 returns the value of n as a float64.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(n.text, 64) }

// Equal reports whether n and m have the same text.
func (n Number) Equal(m Number) bool { return n.text == m.text }

func (n Number) String() string { return "Number(" + n.text + ")" }

// An Array is an ordered sequence of values.
type Array []Value

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// An Object is a collection of key-value members with unique keys. The
// members are in the order their keys first occurred in the input.
type Object []*Member

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, value Value) *Member { return &Member{Key: key, Value: value} }

// JSON renders the member as "key":value.
func (m Member) JSON() string { return String(m.Key).JSON() + ":" + m.Value.JSON() }

// Plain converts v into plain Go data: nil, bool, float64, string, []any, or
// map[string]any. Numbers that do not fit a float64 become ±Inf.
func Plain(v Value) any {
	switch t := v.(type) {
	case Bool:
		return bool(t)
	case Number:
		f, _ := t.Float64()
		return f
	case String:
		return string(t)
	case Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = Plain(elt)
		}
		return out
	case Object:
		out := make(map[string]any, len(t))
		for _, m := range t {
			out[m.Key] = Plain(m.Value)
		}
		return out
	default:
		return nil
	}
}
