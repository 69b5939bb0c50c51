// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nxjson

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"go4.org/mem"
)

// DefaultMaxDepth is the default limit on the nesting depth of objects and
// arrays accepted by a Parser.
const DefaultMaxDepth = 512

// A Parser parses JSON text into a tree of nodes. The zero value is ready for
// use, and accepts standard JSON (RFC 8259) only. A Parser may be reused for
// multiple inputs, but is not safe for concurrent use.
type Parser struct {
	comments bool // allow comments
	tcomma   bool // allow trailing commas in objects and arrays
	maxDepth int
	arena    *Arena
	report   Reporter
}

// NewParser constructs a new Parser with default settings.
func NewParser() *Parser { return new(Parser) }

// AllowComments configures the parser to skip (true) or reject (false)
// comments. Comments are a non-standard extension of JSON. If enabled, block
// comments (/* ... */) and line comments (// ...) may appear anywhere
// whitespace is allowed.
func (p *Parser) AllowComments(ok bool) { p.comments = ok }

// AllowTrailingCommas configures the parser to allow (true) or reject (false)
// a single comma after the last member of an object or element of an array.
func (p *Parser) AllowTrailingCommas(ok bool) { p.tcomma = ok }

// SetMaxDepth sets the maximum nesting depth of objects and arrays.
// If n <= 0, DefaultMaxDepth is used.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

// UseArena configures the parser to allocate nodes from a, or from the heap
// if a == nil. See Arena for the restrictions on trees allocated this way.
func (p *Parser) UseArena(a *Arena) { p.arena = a }

// ReportTo configures the parser to deliver diagnostics for failed parses to
// r. If r == nil, diagnostics are only returned as errors.
func (p *Parser) ReportTo(r Reporter) { p.report = r }

// Parse parses text as a single JSON value, and returns the root of the
// resulting tree. Only whitespace (and comments, if enabled) may follow the
// value. In case of error, no tree is returned and the error has concrete
// type *SyntaxError.
func (p *Parser) Parse(text []byte) (*Node, error) { return p.parse(mem.B(text)) }

// ParseString parses text as a single JSON value. See Parse.
func (p *Parser) ParseString(text string) (*Node, error) { return p.parse(mem.S(text)) }

func (p *Parser) parse(src mem.RO) (*Node, error) {
	if p.arena != nil {
		p.arena.Reset()
	}
	s := newScanner(src)
	s.AllowComments(p.comments)
	st := &parseState{p: p, s: s, maxDepth: p.maxDepth}
	if st.maxDepth <= 0 {
		st.maxDepth = DefaultMaxDepth
	}

	root, err := st.parseDocument()
	if err != nil {
		// Discard any partial tree; none of it is valid.
		st.top.free()
		if p.arena != nil {
			p.arena.Reset()
		}
		var serr *SyntaxError
		if p.report != nil && errors.As(err, &serr) {
			p.report.Report(serr)
		}
		return nil, err
	}
	root.arena = p.arena
	return root, nil
}

// parseState holds the state of a single parse.
type parseState struct {
	p        *Parser
	s        *scanner
	maxDepth int
	top      *Node // the first node allocated, once there is one
}

// parseDocument parses a single value followed by the end of input.
func (st *parseState) parseDocument() (*Node, error) {
	if _, err := st.advance(UnexpectedCharacter); err != nil {
		return nil, err
	}
	v, err := st.parseValue(nil, "", false, 0)
	if err != nil {
		return nil, err
	}

	// Check for extra input after the value.
	if err := st.next(); err == nil {
		return nil, st.fail(UnexpectedCharacter, st.s.pos)
	} else if err != io.EOF {
		return nil, err
	}
	v.doc, v.kind = v.kind, Root
	return v, nil
}

// parseValue consumes a single value of any type, and attaches it to parent.
// If keyed is true, key is the key of the value within parent.
// Precondition: the current token is the first token of the value.
func (st *parseState) parseValue(parent *Node, key string, keyed bool, depth int) (*Node, error) {
	var n *Node
	var err error
	switch tok := st.s.Token(); tok {
	case tokLBrace, tokLSquare:
		if depth >= st.maxDepth {
			return nil, st.fail(NestingTooDeep, st.s.pos)
		}
		kind := Object
		if tok == tokLSquare {
			kind = Array
		}
		if n, err = st.attach(parent, kind, key, keyed); err != nil {
			return nil, err
		}
		if kind == Object {
			err = st.parseMembers(n, depth+1)
		} else {
			err = st.parseElements(n, depth+1)
		}
		return n, err

	case tokString:
		if n, err = st.attach(parent, String, key, keyed); err == nil {
			n.text = string(st.s.Unescaped())
		}

	case tokInteger, tokNumber:
		var kind Kind
		var v float64
		if kind, v, err = st.number(tok); err != nil {
			return nil, err
		}
		if n, err = st.attach(parent, kind, key, keyed); err == nil {
			n.num = v
		}

	case tokTrue, tokFalse:
		if n, err = st.attach(parent, Bool, key, keyed); err == nil && tok == tokTrue {
			n.num = 1
		}

	case tokNull:
		n, err = st.attach(parent, Null, key, keyed)

	default:
		return nil, st.fail(UnexpectedCharacter, st.s.pos)
	}
	return n, err
}

// parseMembers consumes zero or more key:value object members into obj.
// Precondition: token == LBrace.
// Postcondition: token == RBrace.
func (st *parseState) parseMembers(obj *Node, depth int) error {
	tok, err := st.advance(UnexpectedCharacter, tokRBrace, tokString)
	if err != nil {
		return err
	} else if tok == tokRBrace {
		return nil // end of object
	}
	for {
		// Parse a single member: "key": value
		key := string(st.s.Unescaped())
		if _, err := st.advance(ExpectedColon, tokColon); err != nil {
			return err
		}
		if _, err := st.advance(UnexpectedCharacter); err != nil {
			return err
		}
		if _, err := st.parseValue(obj, key, true, depth); err != nil {
			return err
		}

		// Check whether we have more members (",") or are done ("}").
		tok, err := st.advance(ExpectedCommaOrCloser, tokRBrace, tokComma)
		if err != nil {
			return err
		} else if tok == tokRBrace {
			return nil // end of object
		}

		// If trailing commas are allowed, a close brace may follow the comma.
		// Otherwise, it must be the key of a subsequent member.
		want := []token{tokString}
		if st.p.tcomma {
			want = append(want, tokRBrace)
		}
		if tok, err := st.advance(UnexpectedCharacter, want...); err != nil {
			return err
		} else if tok == tokRBrace {
			return nil // end of object with trailing comma
		}
	}
}

// parseElements consumes zero or more comma-separated array values into arr.
// Precondition: token == LSquare.
// Postcondition: token == RSquare.
func (st *parseState) parseElements(arr *Node, depth int) error {
	tok, err := st.advance(UnexpectedCharacter)
	if err != nil {
		return err
	} else if tok == tokRSquare {
		return nil // end of array
	}
	for {
		if _, err := st.parseValue(arr, "", false, depth); err != nil {
			return err
		}
		tok, err := st.advance(ExpectedCommaOrCloser, tokRSquare, tokComma)
		if err != nil {
			return err
		} else if tok == tokRSquare {
			return nil // end of array
		}

		// If trailing commas are allowed and the next token is a close bracket,
		// consider this a valid end of the array; otherwise it will fail on the
		// next element.
		if next, err := st.advance(UnexpectedCharacter); err != nil {
			return err
		} else if st.p.tcomma && next == tokRSquare {
			return nil // end of array with trailing comma
		}
	}
}

// number converts the text of the current numeric token. A literal with a
// fraction or exponent is a Double; otherwise it is an Integer, which must
// fit in 64 bits.
func (st *parseState) number(tok token) (Kind, float64, error) {
	text := st.s.Raw()
	if tok == tokNumber {
		v, err := mem.ParseFloat(text, 64)
		if err != nil {
			return Invalid, 0, st.failErr(InvalidNumber, st.s.pos, err)
		}
		return Double, v, nil
	}
	if text.At(0) == '-' {
		v, err := mem.ParseInt(text, 10, 64)
		if err != nil {
			return Invalid, 0, st.failErr(InvalidNumber, st.s.pos, err)
		} else if v == 0 {
			return Integer, math.Copysign(0, -1), nil
		}
		return Integer, float64(v), nil
	}
	v, err := mem.ParseUint(text, 10, 64)
	if err != nil {
		return Invalid, 0, st.failErr(InvalidNumber, st.s.pos, err)
	}
	return Integer, float64(v), nil
}

// attach allocates a node of the given kind and adds it as the last child of
// parent. If parent == nil, the node is the top of the tree.
func (st *parseState) attach(parent *Node, kind Kind, key string, keyed bool) (*Node, error) {
	var n *Node
	if a := st.p.arena; a != nil {
		if n = a.alloc(); n == nil {
			return nil, st.fail(AllocationExhausted, st.s.pos)
		}
	} else {
		n = new(Node)
	}
	n.kind = kind
	n.key, n.keyed = key, keyed
	if parent == nil {
		st.top = n
	} else {
		parent.appendChild(n)
	}
	return n, nil
}

// next advances to the next token, skipping comments.
func (st *parseState) next() error {
	for {
		if err := st.s.Next(); err != nil {
			return err
		}
		if tok := st.s.Token(); tok != tokLineComment && tok != tokBlockComment {
			return nil
		}
	}
}

// advance advances to the next token, which must be one of tokens if any are
// given. If the token does not match, advance reports an error of the given
// kind. If the input ends, advance reports UnexpectedEndOfInput.
func (st *parseState) advance(kind ErrorKind, tokens ...token) (token, error) {
	if err := st.next(); err == io.EOF {
		return tokInvalid, st.fail(UnexpectedEndOfInput, st.s.pos)
	} else if err != nil {
		return tokInvalid, err
	}
	tok := st.s.Token()
	if len(tokens) != 0 && !slices.Contains(tokens, tok) {
		return tok, st.fail(kind, st.s.pos)
	}
	return tok, nil
}

func (st *parseState) fail(kind ErrorKind, pos int) error {
	return newSyntaxError(st.s.src, kind, pos, nil)
}

func (st *parseState) failErr(kind ErrorKind, pos int, err error) error {
	return newSyntaxError(st.s.src, kind, pos, err)
}

// Parse parses text as a single standard JSON value using default settings.
// In case of error, the error has concrete type *SyntaxError.
func Parse(text []byte) (*Node, error) { return new(Parser).Parse(text) }

// ParseString parses text as a single standard JSON value using default
// settings. In case of error, the error has concrete type *SyntaxError.
func ParseString(text string) (*Node, error) { return new(Parser).ParseString(text) }

// MustParse parses text as a single standard JSON value using default
// settings, and panics if parsing fails. It is intended for use in
// initializing fixed values and in tests.
func MustParse(text string) *Node {
	root, err := ParseString(text)
	if err != nil {
		panic(fmt.Sprintf("nxjson: MustParse(%q): %v", text, err))
	}
	return root
}
