// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pointer_test

import (
	"testing"

	"github.com/creachadair/jbourne"
	"github.com/creachadair/jbourne/ast"
	"github.com/creachadair/jbourne/ast/pointer"
	"github.com/creachadair/mds/mtest"
)

const testJSON = `{
  "list": [{"x": 1}, {"x": 2}],
  "y": {"hello": "there"},
  "o": ["hi", "yourself"],
  "xyz": {"p": true, "d": true, "q": false},
  "a/b": {"~x": "tilde"},
  "": {"0": "zero key", "1": "one key"}
}`

func mustParse(t *testing.T, s string) ast.Value {
	t.Helper()
	v, err := jbourne.Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return v
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string // canonical form
		n     int
	}{
		{"", "", 0},
		{"/", "", 0},
		{"a", "/a", 1},
		{"/list/1/x", "/list/1/x", 3},
		{"o/-1", "/o/-1", 2},
		{"a~1b/~0x", "/a~1b/~0x", 2},
		{"/a//b", "/a//b", 3},
		{"a/", "/a/", 2},
	}
	for _, tc := range tests {
		p, err := pointer.Parse(tc.input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got := p.String(); got != tc.want {
			t.Errorf("Parse(%q): got %q, want %q", tc.input, got, tc.want)
		}
		if got := p.Len(); got != tc.n {
			t.Errorf("Parse(%q): got %d tokens, want %d", tc.input, got, tc.n)
		}
	}

	for _, bad := range []string{"~", "a/b~", "/~2", "x~a"} {
		if p, err := pointer.Parse(bad); err == nil {
			t.Errorf("Parse(%q): got %q, want error", bad, p)
		}
	}
	mtest.MustPanic(t, func() { pointer.MustParse("~") })
}

func TestResolve(t *testing.T) {
	v := mustParse(t, testJSON)

	tests := []struct {
		path string
		want string // JSON of the result, or "" for error
	}{
		{"", v.JSON()},
		{"/list/1", `{"x":2}`},
		{"/list/-1/x", "2"},
		{"/list/0/x", "1"},
		{"/y/hello", `"there"`},
		{"/xyz/-1", "false"},
		{"/xyz/0", "true"},
		{"/a~1b/~0x", `"tilde"`},
		{"//1", `"one key"`},
		{"//-1", `"one key"`},

		{"/nonesuch", ""},
		{"/o/2", ""},
		{"/o/-3", ""},
		{"/o/first", ""},
		{"/y/hello/more", ""},
		{"/xyz/3", ""},
		{"/11", ""},
	}
	for _, tc := range tests {
		got, err := pointer.MustParse(tc.path).Resolve(v)
		if tc.want == "" {
			if err == nil {
				t.Errorf("Resolve(%q): got %s, want error", tc.path, got.JSON())
			} else {
				t.Logf("Resolve(%q): got expected error: %v", tc.path, err)
			}
		} else if err != nil {
			t.Errorf("Resolve(%q): unexpected error: %v", tc.path, err)
		} else if got.JSON() != tc.want {
			t.Errorf("Resolve(%q): got %s, want %s", tc.path, got.JSON(), tc.want)
		}
	}
}

func TestResolveError(t *testing.T) {
	v := mustParse(t, testJSON)
	_, err := pointer.MustParse("list/5/x").Resolve(v)
	const want = `at "/list/5": array index 5 out of bounds (n=2)`
	if err == nil || err.Error() != want {
		t.Errorf("Resolve: got %v, want %q", err, want)
	}
}

func TestGet(t *testing.T) {
	v := mustParse(t, testJSON)

	s, err := pointer.Get[ast.String](v, "o/1")
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	} else if s != "yourself" {
		t.Errorf("Get: got %q, want yourself", s)
	}

	if got, err := pointer.Get[ast.Array](v, "y/hello"); err == nil {
		t.Errorf("Get: got %v, want error", got)
	}
	if got, err := pointer.Get[ast.Value](v, "~"); err == nil {
		t.Errorf("Get: got %v, want error", got)
	}
}
