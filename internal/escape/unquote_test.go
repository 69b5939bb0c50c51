// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"errors"
	"testing"

	"github.com/creachadair/nxjson/internal/escape"
	"go4.org/mem"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		input string // without the opening quote
		want  string
		n     int
	}{
		{`"`, "", 1},
		{`ok go"`, "ok go", 6},
		{`abc"def`, "abc", 4},
		{`abc\ndef"`, "abc\ndef", 9},
		{`\b\f\n\r\t"`, "\b\f\n\r\t", 11},
		{`a\"b"`, `a"b`, 5},
		{`a\\b\/c"`, `a\b/c`, 8},
		{`a \u0026 b"`, "a & b", 11},
		{`\u00e9"`, "\xc3\xa9", 7},
		{`\u00E9"`, "é", 7},
		{`\u20ac"`, "€", 7},
		{`\ud83d\ude00"`, "\U0001F600", 13},
		{`x\uD834\uDD1Ey"`, "x\U0001D11Ey", 15},
		{`\q"`, `\q`, 3},        // unknown escapes are kept
		{`a\xb"`, `a\xb`, 5},    // ditto
		{`caf\u00e9 \u2603"`, "café ☃", 17},
		{"héllo\"", "héllo", 7}, // raw UTF-8 passes through
	}
	for _, test := range tests {
		got, n, err := escape.Decode(mem.S(test.input))
		if err != nil {
			t.Errorf("Decode(%#q): unexpected error: %v", test.input, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("Decode(%#q): got %#q, want %#q", test.input, got, test.want)
		}
		if n != test.n {
			t.Errorf("Decode(%#q): consumed %d, want %d", test.input, n, test.n)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		input  string
		code   escape.Code
		offset int
	}{
		{``, escape.Unterminated, -1},
		{`no closing quote`, escape.Unterminated, -1},
		{`trailing backslash\`, escape.Unterminated, -1},
		{`\"`, escape.Unterminated, -1},
		{`\u"`, escape.BadHex, 0},
		{`ab\u00"`, escape.BadHex, 2},
		{`\u00x9"`, escape.BadHex, 0},
		{`\uzzzz"`, escape.BadHex, 0},
		{`\ud83d"`, escape.BadSurrogate, 0},
		{`\ud83dx"`, escape.BadSurrogate, 0},
		{`\ud83d\n"`, escape.BadSurrogate, 0},
		{`\ud83dA"`, escape.BadSurrogate, 0},
		{`\ud83d\ud83d"`, escape.BadSurrogate, 0},
		{`\ud83d\uzz00"`, escape.BadSurrogate, 0},
		{`x\ude00"`, escape.BadCodepoint, 1},
		{"a\tb\"", escape.Control, 1},
		{"\x00\"", escape.Control, 0},
	}
	for _, test := range tests {
		got, _, err := escape.Decode(mem.S(test.input))
		var eerr *escape.Error
		if !errors.As(err, &eerr) {
			t.Errorf("Decode(%#q): got (%#q, %v), want %v", test.input, got, err, test.code)
			continue
		}
		if eerr.Code != test.code || eerr.Offset != test.offset {
			t.Errorf("Decode(%#q): got %v at %d, want %v at %d",
				test.input, eerr.Code, eerr.Offset, test.code, test.offset)
		} else {
			t.Logf("Decode(%#q): got expected error: %v", test.input, err)
		}
	}
}

func TestHexVal(t *testing.T) {
	for i := range 256 {
		b := byte(i)
		want := -1
		switch {
		case b >= '0' && b <= '9':
			want = int(b - '0')
		case b >= 'a' && b <= 'f':
			want = int(b-'a') + 10
		case b >= 'A' && b <= 'F':
			want = int(b-'A') + 10
		}
		if got := escape.HexVal(b); got != want {
			t.Errorf("HexVal(%q): got %d, want %d", b, got, want)
		}
	}
}
