// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nxjson_test

import (
	"errors"
	"testing"

	"github.com/creachadair/nxjson"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"sunny", `"sunny"`},
		{"2\" of snow\n", `"2\" of snow\n"`},
		{"\x07", `"\u0007"`},
	}
	for _, test := range tests {
		if got := nxjson.Quote(test.input); got != test.want {
			t.Errorf("Quote(%q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`""`, ""},
		{`"a\tb"`, "a\tb"},
		{`"\u00e9t\u00e9"`, "été"},
		{`"\ud83d\ude00"`, "\U0001F600"},
		{`"C:\Temp"`, `C:\Temp`},
	}
	for _, test := range tests {
		got, err := nxjson.Unquote(test.input)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", test.input, err)
		} else if got != test.want {
			t.Errorf("Unquote(%#q): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []struct {
		input  string
		kind   nxjson.ErrorKind
		offset int
	}{
		{``, nxjson.UnexpectedEndOfInput, 0},
		{`abc`, nxjson.UnexpectedCharacter, 0},
		{` "a"`, nxjson.UnexpectedCharacter, 0},
		{`"abc`, nxjson.UnterminatedString, 0},
		{`"a" `, nxjson.UnexpectedCharacter, 3},
		{`"a""b"`, nxjson.UnexpectedCharacter, 3},
		{`"\uzzzz"`, nxjson.InvalidUnicodeEscape, 1},
		{`"x\udbff"`, nxjson.InvalidSurrogatePair, 2},
		{`"\udfff"`, nxjson.InvalidCodepoint, 1},
	}
	for _, test := range tests {
		_, err := nxjson.Unquote(test.input)
		var serr *nxjson.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Unquote(%#q): got %v, want %v", test.input, err, test.kind)
			continue
		}
		if serr.Kind != test.kind || serr.Offset != test.offset {
			t.Errorf("Unquote(%#q): got %v at %d, want %v at %d",
				test.input, serr.Kind, serr.Offset, test.kind, test.offset)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	for _, s := range []string{"", "plain", "tab\tnew\nline", `back\slash "quoted"`, "\x01\x1f", "Zürich \U0001F600"} {
		got, err := nxjson.Unquote(nxjson.Quote(s))
		if err != nil {
			t.Errorf("Unquote(Quote(%q)): unexpected error: %v", s, err)
		} else if got != s {
			t.Errorf("Unquote(Quote(%q)): got %q", s, got)
		}
	}
}
