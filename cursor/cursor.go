// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the nodes of a parsed JSON
// document.
package cursor

import (
	"errors"
	"fmt"

	"github.com/creachadair/nxjson"
)

// ErrNotFound is reported when a path names an object key or array offset
// that is not present.
var ErrNotFound = errors.New("not found")

// Path traverses a sequential path into the structure of n where path
// elements are as documented for the Cursor.Down method. This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// its value.
func Path(n *nxjson.Node, path ...any) (*nxjson.Node, error) {
	c := New(n).Down(path...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Value(), nil
}

// A Cursor is a pointer that navigates into the structure of a document.
type Cursor struct {
	org *nxjson.Node
	stk []*nxjson.Node
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin *nxjson.Node) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin node of c.
func (c *Cursor) Origin() *nxjson.Node { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current node under the cursor.
func (c *Cursor) Value() *nxjson.Node {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of nodes from the origin to the current
// location in c.
func (c *Cursor) Path() []*nxjson.Node {
	return append([]*nxjson.Node{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current node, where path elements are either strings (denoting object
// keys), integers (denoting offsets into arrays), or functions (see below).
// If the path cannot be completely consumed, traversal stops at the last node
// reached and an error is recorded. Use Err to recover the error.
//
// If a path element is a string, the corresponding value must be an object,
// and the string selects the first member with that key.
//
// If a path element is an integer, the corresponding value must be an array,
// and the integer selects an element of the array. Negative indices count
// backward from the end (-1 is last, -2 second last). An error wrapping
// ErrNotFound is reported if the index is out of bounds.
//
// If a path element is a function, the function is executed and its result
// becomes the next node in the sequence. The function must have a signature
//
//	func(*nxjson.Node) (*nxjson.Node, error)
//
// If the function reports an error, traversal stops and the error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			if cur.ValueKind() != nxjson.Object {
				return c.setErrorf("cannot traverse %v with %q", cur.ValueKind(), t)
			}
			next := cur.Get(t)
			if next == nil {
				return c.setErrorf("key %q: %w", t, ErrNotFound)
			}
			cur = c.push(next)

		case int:
			if cur.ValueKind() != nxjson.Array {
				return c.setErrorf("cannot traverse %v with %d", cur.ValueKind(), t)
			}
			i, ok := fixArrayBound(cur.Len(), t)
			if !ok {
				return c.setErrorf("array index %d out of bounds (n=%d): %w", t, cur.Len(), ErrNotFound)
			}
			cur = c.push(cur.Item(i))

		case func(*nxjson.Node) (*nxjson.Node, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(n *nxjson.Node) *nxjson.Node { c.stk = append(c.stk, n); return n }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
