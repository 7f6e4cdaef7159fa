// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jbourne_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/jbourne"
	"github.com/creachadair/jbourne/ast"
	"github.com/google/go-cmp/cmp"
)

func TestParseHuJSON(t *testing.T) {
	input := []byte(`// Leading comment
{
  "a": [1, 2,], /* trailing comma */
  "b": "c", // note
}
`)
	orig := string(input)
	got, err := jbourne.ParseHuJSON(input)
	if err != nil {
		t.Fatalf("ParseHuJSON: unexpected error: %v", err)
	}
	want := ast.Object{
		ast.Field("a", ast.Array{ast.Int(1), ast.Int(2)}),
		ast.Field("b", ast.String("c")),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseHuJSON (-want, +got):\n%s", diff)
	}
	if string(input) != orig {
		t.Error("ParseHuJSON modified its input")
	}

	// Standard JSON is also HuJSON.
	if _, err := jbourne.ParseHuJSON([]byte(`{"ok": true}`)); err != nil {
		t.Errorf("ParseHuJSON: unexpected error: %v", err)
	}

	// The comment syntax is not accepted by Parse.
	var serr *jbourne.SyntaxError
	if _, err := jbourne.Parse(input); !errors.As(err, &serr) {
		t.Errorf("Parse: got %v, want *SyntaxError", err)
	}
}

func TestParseHuJSONErrors(t *testing.T) {
	for _, input := range []string{
		`{"a": 1 /* unterminated`,
		`{"a" 1}`,
		`[1,,]`,
	} {
		v, err := jbourne.ParseHuJSON([]byte(input))
		if err == nil {
			t.Errorf("ParseHuJSON %#q: got %s, want error", input, v.JSON())
		} else if !strings.Contains(err.Error(), "HuJSON") {
			t.Errorf("ParseHuJSON %#q: error %q does not mention HuJSON", input, err)
		}
	}
}

func TestParseHuJSONOptions(t *testing.T) {
	input := []byte(`[/* c */ [1], [2],]`)
	if _, err := jbourne.ParseHuJSONOptions(input, &jbourne.Options{MaxDepth: 2}); err != nil {
		t.Errorf("ParseHuJSONOptions at depth 2: unexpected error: %v", err)
	}

	_, err := jbourne.ParseHuJSONOptions(input, &jbourne.Options{MaxDepth: 1})
	var serr *jbourne.SyntaxError
	if !errors.As(err, &serr) || !errors.Is(err, jbourne.ErrMaxDepth) {
		t.Fatalf("ParseHuJSONOptions at depth 1: got %v, want %v", err, jbourne.ErrMaxDepth)
	}
	if serr.Offset != 9 {
		t.Errorf("Error offset: got %d, want 9", serr.Offset)
	}
}
