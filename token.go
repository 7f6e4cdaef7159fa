// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jbourne

// Token is the type of a lexical token in the JSON grammar, as determined by
// the first byte of the token.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid    Token = iota // invalid token
	LBrace                  // left brace "{"
	RBrace                  // right brace "}"
	LSquare                 // left square bracket "["
	RSquare                 // right square bracket "]"
	Comma                   // comma ","
	Colon                   // colon ":"
	Number                  // number: "-" or a digit
	String                  // quoted string
	True                    // constant: true
	False                   // constant: false
	Null                    // constant: null
	Whitespace              // space, tab, CR, or LF
)

var tokenStr = [...]string{
	Invalid:    "invalid token",
	LBrace:     `"{"`,
	RBrace:     `"}"`,
	LSquare:    `"["`,
	RSquare:    `"]"`,
	Comma:      `","`,
	Colon:      `":"`,
	Number:     "number",
	String:     "string",
	True:       "true",
	False:      "false",
	Null:       "null",
	Whitespace: "whitespace",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// IsValue reports whether t begins a JSON value.
func (t Token) IsValue() bool {
	switch t {
	case LBrace, LSquare, Number, String, True, False, Null:
		return true
	}
	return false
}

var byteToken = [256]Token{
	'{': LBrace, '}': RBrace, '[': LSquare, ']': RSquare, ',': Comma, ':': Colon,
	'-': Number,
	'0': Number, '1': Number, '2': Number, '3': Number, '4': Number,
	'5': Number, '6': Number, '7': Number, '8': Number, '9': Number,
	'"': String,
	't': True, 'f': False, 'n': Null,
	' ': Whitespace, '\t': Whitespace, '\r': Whitespace, '\n': Whitespace,
}

// Classify reports the token that begins with the byte b.
func Classify(b byte) Token { return byteToken[b] }

func isSpace(b byte) bool { return byteToken[b] == Whitespace }

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
