// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbourne_test

import (
	"testing"

	"github.com/creachadair/jbourne"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 \ufffd"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"a/b", `"a/b"`},
	}
	for _, test := range tests {
		got := jbourne.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},                          // missing quotes
		{`"missing quote`, ``, true},            // missing quotes
		{`missing quote"`, ``, true},            // missing quotes
		{`""`, ``, false},                       // ok
		{`"ok go"`, "ok go", false},             // ok
		{`"abc\ndef"`, "abc\ndef", false},       // C escapes
		{`"\tabc\n"`, "\tabc\n", false},         // C escapes
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false},   // C escapes
		{`"a \u0026 b"`, "a & b", false},        // short Unicode escape
		{`"\ud83d\ude00"`, "\U0001F600", false}, // surrogate pair
		{`"\u"`, ``, true},                      // incomplete Unicode escape
		{`"\u00"`, ``, true},                    // incomplete Unicode escape
		{`"\u00x9"`, "\ufffd", false},           // invalid Unicode escape
		{`"\u019 "`, "\ufffd", false},           // invalid Unicode escape
		{`"a\"b"`, `a"b`, false},                // ok
		{`"a\\b\\cd"`, `a\b\cd`, false},         // ok
	}

	for _, test := range tests {
		got, err := jbourne.Unquote([]byte(test.input))
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if cmp := string(got); cmp != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, cmp, test.want)
		}
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		input rune
		want  string
		ok    bool
	}{
		{'"', `\"`, true},
		{'\\', `\\`, true},
		{'/', `\/`, true},
		{'\b', `\b`, true},
		{'\f', `\f`, true},
		{'\n', `\n`, true},
		{'\r', `\r`, true},
		{'\t', `\t`, true},
		{0, `\u0000`, true},
		{'a', ``, false},
		{'\x01', ``, false},
		{'é', ``, false},
	}
	for _, tc := range tests {
		var buf [6]byte
		n, ok := jbourne.Escape(tc.input, buf[:])
		if ok != tc.ok {
			t.Errorf("Escape(%q): got %v, want %v", tc.input, ok, tc.ok)
		}
		if got := string(buf[:n]); got != tc.want {
			t.Errorf("Escape(%q): got %#q, want %#q", tc.input, got, tc.want)
		}

		// Every escape written decodes back to its input.
		if ok {
			r, nr, ok := jbourne.Unescape(buf[:n])
			if !ok || r != tc.input || nr != n {
				t.Errorf("Unescape(%#q): got %q, %d, %v; want %q, %d, true", buf[:n], r, nr, ok, tc.input, n)
			}
		}
	}

	// A buffer too short for the escape is not written.
	short := make([]byte, 5)
	if n, ok := jbourne.Escape(0, short); ok || n != 0 {
		t.Errorf("Escape(0) into 5 bytes: got %d, %v; want 0, false", n, ok)
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		input string
		want  rune
		n     int // 0 means failure
	}{
		{`\"`, '"', 2},
		{`\\`, '\\', 2},
		{`\/`, '/', 2},
		{`\b`, '\b', 2},
		{`\f`, '\f', 2},
		{`\n`, '\n', 2},
		{`\r`, '\r', 2},
		{`\t`, '\t', 2},
		{`\u0000`, 0, 6},
		{`\u00e9 and more`, 'é', 6},
		{`\ud83d\ude00`, '\U0001F600', 12},
		{`\ta`, '\t', 2},

		{`\a`, 0, 0},
		{`a`, 0, 0},
		{``, 0, 0},
		{`\`, 0, 0},
		{`\u`, 0, 0},
		{`\u12`, 0, 0},
		{`\u12g4`, 0, 0},
		{`\ud83d`, 0, 0},
		{`\ud83d\n`, 0, 0},
		{`\ud83dA`, 0, 0},
		{`\ude00`, 0, 0},
	}
	for _, tc := range tests {
		r, n, ok := jbourne.Unescape([]byte(tc.input))
		if ok != (tc.n != 0) || r != tc.want || n != tc.n {
			t.Errorf("Unescape(%#q): got %q, %d, %v; want %q, %d, %v",
				tc.input, r, n, ok, tc.want, tc.n, tc.n != 0)
		}
	}
}
