// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

// shortEsc maps control characters to their two-byte escapes. A zero entry
// means the character needs a \uXXXX escape.
var shortEsc = [' ']byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

const hexDigit = "0123456789abcdef"

// AppendQuoted appends src to dst as a JSON string literal, with quotation
// marks, and returns the extended slice. Decode reverses the encoding.
//
// Control characters, quotation marks, and backslashes are escaped. Invalid
// UTF-8 is replaced by \ufffd, and the separators U+2028 and U+2029 are
// escaped so the result is also safe to embed in JavaScript source.
func AppendQuoted(dst []byte, src mem.RO) []byte {
	dst = append(dst, '"')
	lit := 0 // start of the pending run of unescaped bytes
	for i := 0; i < src.Len(); {
		b := src.At(i)
		if b >= utf8.RuneSelf {
			r, n := mem.DecodeRune(src.SliceFrom(i))
			if r != utf8.RuneError && r != '\u2028' && r != '\u2029' {
				i += n
				continue
			}
			dst = mem.Append(dst, src.Slice(lit, i))
			dst = appendU(dst, r) // RuneError is U+FFFD
			i += n
			lit = i
			continue
		}

		var esc byte
		switch {
		case b == '"' || b == '\\':
			esc = b
		case b < ' ':
			esc = shortEsc[b]
		default:
			i++
			continue
		}
		dst = mem.Append(dst, src.Slice(lit, i))
		if esc == 0 {
			dst = appendU(dst, rune(b))
		} else {
			dst = append(dst, '\\', esc)
		}
		i++
		lit = i
	}
	dst = mem.Append(dst, src.SliceFrom(lit))
	return append(dst, '"')
}

// appendU appends a \uXXXX escape for r, which must be in the BMP.
func appendU(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigit[r>>12&15], hexDigit[r>>8&15], hexDigit[r>>4&15], hexDigit[r&15])
}
