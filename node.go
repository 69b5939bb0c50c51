// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package nxjson

import (
	"fmt"
	"iter"
	"math"
	"strconv"
)

// Kind is the type of a JSON value held by a Node.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // a released node, or a nil *Node
	Null                // null
	Bool                // true or false
	Integer             // number with no fraction or exponent
	Double              // number with a fraction and/or exponent
	String              // string
	Object              // object; members are child nodes with keys
	Array               // array; elements are child nodes without keys
	Root                // the document as a whole
)

var kindStr = [...]string{
	Invalid: "invalid",
	Null:    "null",
	Bool:    "bool",
	Integer: "integer",
	Double:  "double",
	String:  "string",
	Object:  "object",
	Array:   "array",
	Root:    "root",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// A Node is a single JSON value in a parsed document.
//
// The root of a document has kind Root, and carries the contents of the
// top-level value, whose kind is reported by ValueKind. Lookups on a Root
// behave as they would on its top-level value.
//
// Numeric payloads (Integer, Double, and Bool as 0 or 1) share a single
// float64. Children of an Object or Array form a singly-linked list in input
// order.
//
// All the methods of a Node are safe to call on a nil *Node, which behaves
// as an absent value.
type Node struct {
	kind  Kind
	doc   Kind // for a Root, the kind of the top-level value
	keyed bool // whether key is set
	key   string
	text  string
	num   float64

	first, last *Node
	count       int
	next        *Node

	arena *Arena // for a Root allocated from an arena
}

// Kind reports the kind of n. It returns Invalid if n == nil or n has been
// released.
func (n *Node) Kind() Kind {
	if n == nil {
		return Invalid
	}
	return n.kind
}

// ValueKind reports the kind of the value held by n. For a Root this is the
// kind of the top-level value of the document; otherwise it is n.Kind().
func (n *Node) ValueKind() Kind {
	if n == nil {
		return Invalid
	} else if n.kind == Root {
		return n.doc
	}
	return n.kind
}

// Key reports the key of n, and whether n has a key. Only the members of an
// object have keys.
func (n *Node) Key() (string, bool) {
	if n == nil {
		return "", false
	}
	return n.key, n.keyed
}

// Text returns the decoded contents of a string value, or "" if n is not a
// string.
func (n *Node) Text() string {
	if n.ValueKind() != String {
		return ""
	}
	return n.text
}

// Float returns the numeric value of n. A Bool is reported as 0 or 1. It
// returns 0 if n does not hold a number or Boolean.
func (n *Node) Float() float64 {
	switch n.ValueKind() {
	case Integer, Double, Bool:
		return n.num
	}
	return 0
}

// Int returns the numeric value of n truncated to an int64. Values outside
// the range of int64 are clamped to math.MaxInt64 or math.MinInt64.
func (n *Node) Int() int64 {
	switch f := n.Float(); {
	case f >= 0x1p63:
		return math.MaxInt64
	case f < -0x1p63:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// Bool reports whether n is the constant true.
func (n *Node) Bool() bool { return n.ValueKind() == Bool && n.num != 0 }

// IsNull reports whether n is the constant null.
func (n *Node) IsNull() bool { return n.ValueKind() == Null }

// Len reports the number of members or elements of an object or array.
// It returns 0 for all other values.
func (n *Node) Len() int {
	if n == nil || !isContainer(n.kind) {
		return 0
	}
	return n.count
}

// Get returns the first member of object n whose key exactly matches key, or
// nil if there is no such member or n is not an object.
func (n *Node) Get(key string) *Node {
	if n.ValueKind() != Object {
		return nil
	}
	for c := n.first; c != nil; c = c.next {
		if c.keyed && c.key == key {
			return c
		}
	}
	return nil
}

// Item returns the element at offset i of array n, or nil if i is out of
// range or n is not an array.
func (n *Node) Item(i int) *Node {
	if n.ValueKind() != Array || i < 0 || i >= n.count {
		return nil
	}
	c := n.first
	for ; i > 0 && c != nil; i-- {
		c = c.next
	}
	return c
}

// First returns the first child of n, or nil if n has no children.
func (n *Node) First() *Node {
	if n == nil {
		return nil
	}
	return n.first
}

// Next returns the next sibling of n, or nil if n is the last child of its
// parent.
func (n *Node) Next() *Node {
	if n == nil {
		return nil
	}
	return n.next
}

// Children returns a sequence of the children of n, in input order.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for c := n.First(); c != nil; c = c.next {
			if !yield(c) {
				return
			}
		}
	}
}

// Release discards the document whose root is n. After Release, the root
// and every node of the document report kind Invalid and have no children.
// Release does nothing if n is nil, already released, or not a Root, since
// a subtree cannot be detached from its document.
//
// If n is the root of a document parsed into an Arena, its nodes are returned
// to the arena for reuse.
func (n *Node) Release() {
	if n == nil || n.kind != Root {
		return
	}
	arena := n.arena
	n.free()
	if arena != nil {
		arena.Reset()
	}
}

// free zeroes n and all its descendants. It does nothing if n == nil.
func (n *Node) free() {
	if n == nil {
		return
	}

	// Use an explicit work list rather than recursion, so that the stack does
	// not grow with the nesting depth of the input.
	work := []*Node{n}
	for len(work) != 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		for c := cur.first; c != nil; c = c.next {
			work = append(work, c)
		}
		*cur = Node{}
	}
}

// String renders a brief description of n for debugging.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var s string
	switch k := n.ValueKind(); k {
	case Invalid, Null:
		s = k.String()
	case Bool:
		s = strconv.FormatBool(n.num != 0)
	case Integer:
		s = "integer " + strconv.FormatFloat(n.num, 'f', -1, 64)
	case Double:
		s = "double " + strconv.FormatFloat(n.num, 'g', -1, 64)
	case String:
		s = "string " + Quote(n.text)
	case Object, Array:
		s = fmt.Sprintf("%v[%d]", k, n.count)
	default:
		panic(fmt.Sprintf("unknown value kind %v", k))
	}
	if n.kind == Root {
		return "root " + s
	} else if n.keyed {
		return Quote(n.key) + ": " + s
	}
	return s
}

// isContainer reports whether values of kind k have children.
func isContainer(k Kind) bool { return k == Object || k == Array || k == Root }

// appendChild adds c as the last child of n.
func (n *Node) appendChild(c *Node) {
	if n.last == nil {
		n.first = c
	} else {
		n.last.next = c
	}
	n.last = c
	n.count++
}

// Get returns the member of n with the given key, or nil.
// It is shorthand for n.Get(key).
func Get(n *Node, key string) *Node { return n.Get(key) }

// Item returns the element of n at offset i, or nil.
// It is shorthand for n.Item(i).
func Item(n *Node, i int) *Node { return n.Item(i) }

// Release discards the document whose root is n.
// It is shorthand for n.Release().
func Release(n *Node) { n.Release() }
