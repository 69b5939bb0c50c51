// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nxjson

import (
	"errors"
	"fmt"

	"github.com/creachadair/nxjson/internal/escape"
	"go4.org/mem"
)

// ErrorKind classifies a parse failure. ErrorKind values satisfy the error
// interface, so that a *SyntaxError can be matched with errors.Is:
//
//	if errors.Is(err, nxjson.InvalidNumber) { ... }
type ErrorKind int

// Constants defining the valid ErrorKind values.
const (
	UnterminatedString    ErrorKind = iota + 1 // no closing quote before end of input
	InvalidUnicodeEscape                       // non-hex digit in a \u escape
	InvalidSurrogatePair                       // high surrogate without a low surrogate
	InvalidCodepoint                           // unpaired low surrogate
	UnterminatedComment                        // block comment without "*/"
	UnexpectedCharacter                        // input does not begin a valid token
	InvalidNumber                              // malformed or out-of-range number
	UnexpectedEndOfInput                       // input ended where more was required
	ExpectedColon                              // object key not followed by ":"
	ExpectedCommaOrCloser                      // value not followed by "," or a closer
	AllocationExhausted                        // arena has no free nodes
	NestingTooDeep                             // containers nested beyond the limit
)

var errorKindStr = [...]string{
	UnterminatedString:    "unterminated string",
	InvalidUnicodeEscape:  "invalid unicode escape",
	InvalidSurrogatePair:  "invalid surrogate pair",
	InvalidCodepoint:      "invalid codepoint",
	UnterminatedComment:   "unterminated comment",
	UnexpectedCharacter:   "unexpected character",
	InvalidNumber:         "invalid number",
	UnexpectedEndOfInput:  "unexpected end of input",
	ExpectedColon:         `expected ":"`,
	ExpectedCommaOrCloser: `expected "," or closing bracket`,
	AllocationExhausted:   "node allocation exhausted",
	NestingTooDeep:        "nesting too deep",
}

func (k ErrorKind) String() string {
	if k <= 0 || int(k) >= len(errorKindStr) {
		return fmt.Sprintf("error kind %d", int(k))
	}
	return errorKindStr[k]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Kind     ErrorKind
	Offset   int     // byte offset of the failure in the input
	Location LineCol // line and column of Offset
	Near     string  // a short excerpt of the input at Offset

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	if s.Near == "" {
		return fmt.Sprintf("at %s: %v", s.Location, s.Kind)
	}
	return fmt.Sprintf("at %s: %v near %q", s.Location, s.Kind, s.Near)
}

// Is reports whether target is the ErrorKind of s.
func (s *SyntaxError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == s.Kind
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// maxNear is the maximum length in bytes of the excerpt in a SyntaxError.
const maxNear = 16

func newSyntaxError(src mem.RO, kind ErrorKind, pos int, cause error) *SyntaxError {
	pos = min(max(pos, 0), src.Len())
	near := src.SliceFrom(pos)
	if near.Len() > maxNear {
		near = near.SliceTo(maxNear)
	}
	return &SyntaxError{
		Kind:     kind,
		Offset:   pos,
		Location: lineColAt(src, pos),
		Near:     near.StringCopy(),
		err:      cause,
	}
}

// escapeError converts an error from the string decoder into a SyntaxError.
// The offset of err is relative to the byte following the quotation mark at
// quote.
func escapeError(src mem.RO, quote int, err error) *SyntaxError {
	var eerr *escape.Error
	if !errors.As(err, &eerr) {
		return newSyntaxError(src, UnterminatedString, quote, err)
	}
	var kind ErrorKind
	switch eerr.Code {
	case escape.Unterminated:
		kind = UnterminatedString
	case escape.BadHex:
		kind = InvalidUnicodeEscape
	case escape.BadSurrogate:
		kind = InvalidSurrogatePair
	case escape.BadCodepoint:
		kind = InvalidCodepoint
	case escape.Control:
		kind = UnexpectedCharacter
	default:
		panic(fmt.Sprintf("unknown escape code %v", eerr.Code))
	}
	return newSyntaxError(src, kind, quote+1+eerr.Offset, err)
}
