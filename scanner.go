// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nxjson

import (
	"io"
	"strings"

	"github.com/creachadair/nxjson/internal/escape"
	"go4.org/mem"
)

// token is the type of a lexical token in the JSON grammar.
type token byte

// Constants defining the valid token values.
const (
	tokInvalid token = iota // invalid token
	tokLBrace               // left brace "{"
	tokRBrace               // right brace "}"
	tokLSquare              // left square bracket "["
	tokRSquare              // right square bracket "]"
	tokComma                // comma ","
	tokColon                // colon ":"
	tokInteger              // number: integer with no fraction or exponent
	tokNumber               // number with fraction and/or exponent
	tokString               // quoted string
	tokTrue                 // constant: true
	tokFalse                // constant: false
	tokNull                 // constant: null

	tokBlockComment // comment: /* ... */
	tokLineComment  // comment: // ... <LF>
)

var tokenStr = [...]string{
	tokInvalid:  "invalid token",
	tokLBrace:   `"{"`,
	tokRBrace:   `"}"`,
	tokLSquare:  `"["`,
	tokRSquare:  `"]"`,
	tokComma:    `","`,
	tokColon:    `":"`,
	tokInteger:  "integer",
	tokNumber:   "number",
	tokString:   "string",
	tokTrue:     "true",
	tokFalse:    "false",
	tokNull:     "null",

	tokBlockComment: "block comment",
	tokLineComment:  "line comment",
}

func (t token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[tokInvalid]
	}
	return tokenStr[v]
}

// A scanner reads lexical tokens from an in-memory input. Each call to Next
// advances the scanner to the next token, or reports an error.
type scanner struct {
	src      mem.RO
	comments bool   // allow comments
	tok      token  // current token
	str      []byte // decoded contents of a string token
	err      error

	pos, end int // start and end offsets of current token
}

func newScanner(src mem.RO) *scanner { return &scanner{src: src} }

// AllowComments configures the scanner to report (true) or reject (false)
// comment tokens. Comments are a non-standard extension of JSON. If enabled,
// block comments (/* ... */) and line comments (// ...) are emitted as tokens.
func (s *scanner) AllowComments(ok bool) { s.comments = ok }

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF. Any other error has concrete
// type *SyntaxError.
func (s *scanner) Next() error {
	s.tok, s.str, s.err = tokInvalid, nil, nil
	s.pos = skipSpace(s.src, s.end)
	s.end = s.pos
	if s.pos >= s.src.Len() {
		return s.setErr(io.EOF)
	}

	ch := s.src.At(s.pos)

	// Handle punctuation.
	if t, ok := selfDelim(ch); ok {
		s.end++
		s.tok = t
		return nil
	}

	switch {
	case isNumStart(ch):
		return s.scanNumber()
	case ch == '"':
		return s.scanString()
	case ch == '/' && s.comments:
		return s.scanComment()
	case ch == 't':
		return s.scanConstant(tokTrue, "true")
	case ch == 'f':
		return s.scanConstant(tokFalse, "false")
	case ch == 'n':
		return s.scanConstant(tokNull, "null")
	}
	return s.fail(UnexpectedCharacter, s.pos)
}

// Token returns the type of the current token.
func (s *scanner) Token() token { return s.tok }

// Err returns the last error reported by Next.
func (s *scanner) Err() error { return s.err }

// Raw returns a view of the undecoded text of the current token.
func (s *scanner) Raw() mem.RO { return s.src.Slice(s.pos, s.end) }

// Text returns a copy of the undecoded text of the current token.
func (s *scanner) Text() string { return s.Raw().StringCopy() }

// Unescaped returns the decoded contents of the current string token, without
// its quotation marks. It returns nil if the current token is not a string.
func (s *scanner) Unescaped() []byte { return s.str }

// Span returns the location span of the current token.
func (s *scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current token.
func (s *scanner) Location() Location { return locationOf(s.src, s.pos, s.end) }

func (s *scanner) scanString() error {
	dec, n, err := escape.Decode(s.src.SliceFrom(s.pos + 1))
	if err != nil {
		return s.setErr(escapeError(s.src, s.pos, err))
	}
	s.str = dec
	s.end = s.pos + 1 + n
	s.tok = tokString
	return nil
}

func (s *scanner) scanNumber() error {
	i := s.pos
	if s.src.At(i) == '-' {
		i++ // a leading sign requires at least one digit
	}
	d := s.digits(i)
	if d == i {
		return s.fail(InvalidNumber, s.pos)
	} else if s.src.At(i) == '0' && d-i > 1 {
		// Extra leading zeroes are disallowed: 0.12 is OK, 01.2 is not.
		return s.fail(InvalidNumber, s.pos)
	}
	i = d

	tok := tokInteger
	if i < s.src.Len() && s.src.At(i) == '.' {
		d = s.digits(i + 1)
		if d == i+1 {
			return s.fail(InvalidNumber, s.pos) // no digits after decimal point
		}
		i, tok = d, tokNumber
	}
	if i < s.src.Len() && (s.src.At(i) == 'e' || s.src.At(i) == 'E') {
		i++
		if i < s.src.Len() && (s.src.At(i) == '-' || s.src.At(i) == '+') {
			i++
		}
		d = s.digits(i)
		if d == i {
			return s.fail(InvalidNumber, s.pos) // missing exponent digits
		}
		i, tok = d, tokNumber
	}
	s.end = i
	s.tok = tok
	return nil
}

func (s *scanner) scanComment() error {
	if s.pos+1 >= s.src.Len() {
		return s.fail(UnexpectedCharacter, s.pos)
	}
	rest := s.src.SliceFrom(s.pos + 2)
	switch s.src.At(s.pos + 1) {
	case '/': // line comment to LF, or the end of input
		if i := mem.IndexByte(rest, '\n'); i >= 0 {
			s.end = s.pos + 2 + i + 1
		} else {
			s.end = s.src.Len()
		}
		s.tok = tokLineComment
		return nil

	case '*': // block comment
		i := mem.Index(rest, mem.S("*/"))
		if i < 0 {
			return s.fail(UnterminatedComment, s.pos)
		}
		s.end = s.pos + 2 + i + 2
		s.tok = tokBlockComment
		return nil

	default:
		return s.fail(UnexpectedCharacter, s.pos)
	}
}

// scanConstant scans a keyword, which must exactly match want.
func (s *scanner) scanConstant(tok token, want string) error {
	i := s.pos
	for i < s.src.Len() && isNameByte(s.src.At(i)) {
		i++
	}
	if !s.src.Slice(s.pos, i).EqualString(want) {
		return s.fail(UnexpectedCharacter, s.pos)
	}
	s.end = i
	s.tok = tok
	return nil
}

// digits returns the offset of the first non-digit at or after offset i.
func (s *scanner) digits(i int) int {
	for i < s.src.Len() && isDigit(s.src.At(i)) {
		i++
	}
	return i
}

func (s *scanner) setErr(err error) error {
	s.err = err
	return err
}

func (s *scanner) fail(kind ErrorKind, pos int) error {
	return s.setErr(newSyntaxError(s.src, kind, pos, nil))
}

// skipSpace returns the offset of the first non-whitespace byte of src at or
// after offset i.
func skipSpace(src mem.RO, i int) int {
	for i < src.Len() && isSpace(src.At(i)) {
		i++
	}
	return i
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNameByte(ch byte) bool { return ch >= 'a' && ch <= 'z' }

var self = [...]token{tokLBrace, tokRBrace, tokLSquare, tokRSquare, tokComma, tokColon}

func selfDelim(ch byte) (token, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return tokInvalid, false
}
