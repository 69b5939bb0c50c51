// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nxjson

import (
	"github.com/creachadair/nxjson/internal/escape"
	"go4.org/mem"
)

// Quote encodes src as a JSON string literal. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.AppendQuoted(nil, mem.S(src))) }

// Unquote decodes a single JSON string literal, including its quotation
// marks, by the same rules the parser applies to string values. Nothing but
// the literal may appear in src. In case of error, the error has concrete
// type *SyntaxError.
func Unquote(src string) (string, error) {
	m := mem.S(src)
	if m.Len() == 0 {
		return "", newSyntaxError(m, UnexpectedEndOfInput, 0, nil)
	} else if m.At(0) != '"' {
		return "", newSyntaxError(m, UnexpectedCharacter, 0, nil)
	}
	dec, n, err := escape.Decode(m.SliceFrom(1))
	if err != nil {
		return "", escapeError(m, 0, err)
	} else if 1+n != m.Len() {
		return "", newSyntaxError(m, UnexpectedCharacter, 1+n, nil)
	}
	return string(dec), nil
}
