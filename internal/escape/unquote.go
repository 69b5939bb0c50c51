// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape decodes the contents of JSON string literals.
package escape

import (
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// A Code classifies a failure to decode a string literal.
type Code byte

// Constants defining the valid Code values.
const (
	Unterminated Code = iota + 1 // no closing quotation mark
	BadHex                       // non-hex digit in a \u escape
	BadSurrogate                 // high surrogate not followed by a low surrogate
	BadCodepoint                 // unpaired low surrogate
	Control                      // unescaped control character
)

var codeStr = [...]string{
	Unterminated: "unterminated string",
	BadHex:       "invalid Unicode escape",
	BadSurrogate: "invalid surrogate pair",
	BadCodepoint: "invalid code point",
	Control:      "unescaped control character",
}

func (c Code) String() string {
	if int(c) >= len(codeStr) || codeStr[c] == "" {
		return fmt.Sprintf("code %d", byte(c))
	}
	return codeStr[c]
}

// Error reports a failure to decode a string literal. Offset is relative to
// the start of the input passed to Decode; an offset of -1 denotes the
// opening quotation mark, which precedes the input.
type Error struct {
	Code   Code
	Offset int
}

func (e *Error) Error() string { return fmt.Sprintf("%v (offset %d)", e.Code, e.Offset) }

// Decode decodes a JSON string literal whose opening quotation mark has
// already been consumed. It returns the decoded UTF-8 text and the number of
// bytes of src consumed, including the closing quotation mark.
//
// The escapes \" \\ \/ \b \f \n \r \t and \uXXXX are decoded. A \u escape
// for a high surrogate must be followed immediately by a \u escape for a low
// surrogate, and the pair is combined into a single code point. Any other
// escape is copied through verbatim, including its backslash.
func Decode(src mem.RO) ([]byte, int, error) {
	var dec []byte
	var esc bool // whether dec holds output
	lit := 0     // start of the pending run of literal bytes

	i := 0
	for i < src.Len() {
		b := src.At(i)
		if b == '"' {
			if !esc {
				return mem.Append(make([]byte, 0, i), src.SliceTo(i)), i + 1, nil
			}
			return mem.Append(dec, src.Slice(lit, i)), i + 1, nil
		} else if b < ' ' {
			return nil, i, &Error{Code: Control, Offset: i}
		} else if b != '\\' {
			i++
			continue
		}

		if !esc {
			dec = make([]byte, 0, src.Len())
			esc = true
		}
		dec = mem.Append(dec, src.Slice(lit, i))
		if i+1 >= src.Len() {
			return nil, src.Len(), &Error{Code: Unterminated, Offset: -1}
		}
		switch c := src.At(i + 1); c {
		case '"', '\\', '/':
			dec = append(dec, c)
			i += 2
		case 'b':
			dec = append(dec, '\b')
			i += 2
		case 'f':
			dec = append(dec, '\f')
			i += 2
		case 'n':
			dec = append(dec, '\n')
			i += 2
		case 'r':
			dec = append(dec, '\r')
			i += 2
		case 't':
			dec = append(dec, '\t')
			i += 2
		case 'u':
			r, n, err := decodeUnicode(src, i)
			if err != nil {
				return nil, i, err
			}
			dec = utf8.AppendRune(dec, r)
			i += n
		default:
			dec = append(dec, '\\', c)
			i += 2
		}
		lit = i
	}
	return nil, src.Len(), &Error{Code: Unterminated, Offset: -1}
}

// decodeUnicode decodes the \u escape beginning at offset i of src, along with
// its low surrogate if it designates a high surrogate. It returns the code
// point and the number of bytes consumed.
func decodeUnicode(src mem.RO, i int) (rune, int, error) {
	hi, ok := hex4(src, i+2)
	if !ok {
		return 0, 0, &Error{Code: BadHex, Offset: i}
	}
	switch {
	case isLowSurrogate(hi):
		return 0, 0, &Error{Code: BadCodepoint, Offset: i}
	case !isHighSurrogate(hi):
		return hi, 6, nil
	}

	j := i + 6
	if j+1 >= src.Len() || src.At(j) != '\\' || src.At(j+1) != 'u' {
		return 0, 0, &Error{Code: BadSurrogate, Offset: i}
	}
	lo, ok := hex4(src, j+2)
	if !ok || !isLowSurrogate(lo) {
		return 0, 0, &Error{Code: BadSurrogate, Offset: i}
	}
	return 0x10000 + (hi-0xd800)<<10 + (lo - 0xdc00), 12, nil
}

// hex4 decodes the four hexadecimal digits at offset i of src.
func hex4(src mem.RO, i int) (rune, bool) {
	if i+4 > src.Len() {
		return 0, false
	}
	var v rune
	for k := i; k < i+4; k++ {
		d := HexVal(src.At(k))
		if d < 0 {
			return 0, false
		}
		v = v<<4 | rune(d)
	}
	return v, true
}

// HexVal returns the value of the hexadecimal digit b, or -1 if b is not a
// hexadecimal digit.
func HexVal(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b - 'a' + 10)
	case 'A' <= b && b <= 'F':
		return int(b - 'A' + 10)
	}
	return -1
}

func isHighSurrogate(r rune) bool { return 0xd800 <= r && r <= 0xdbff }
func isLowSurrogate(r rune) bool  { return 0xdc00 <= r && r <= 0xdfff }
