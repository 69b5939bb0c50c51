// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"

	"github.com/creachadair/nxjson"
)

// A Member is a key-value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// An Object is the members of a JSON object, in input order.
type Object []Member

// Value converts the tree rooted at n into plain Go values, for comparison
// with cmp.Diff. Null is nil, Bool is bool, Integer is int64, Double is
// float64, String is string, an array is []any, and an object is Object.
func Value(n *nxjson.Node) any {
	switch k := n.ValueKind(); k {
	case nxjson.Null:
		return nil
	case nxjson.Bool:
		return n.Bool()
	case nxjson.Integer:
		return n.Int()
	case nxjson.Double:
		return n.Float()
	case nxjson.String:
		return n.Text()
	case nxjson.Array:
		out := make([]any, 0, n.Len())
		for c := range n.Children() {
			out = append(out, Value(c))
		}
		return out
	case nxjson.Object:
		out := make(Object, 0, n.Len())
		for c := range n.Children() {
			key, _ := c.Key()
			out = append(out, Member{Key: key, Value: Value(c)})
		}
		return out
	default:
		panic(fmt.Sprintf("unexpected value kind %v", k))
	}
}

// MustParse parses text with p, and panics if that fails.
func MustParse(p *nxjson.Parser, text string) *nxjson.Node {
	root, err := p.ParseString(text)
	if err != nil {
		panic(fmt.Sprintf("parse %q: %v", text, err))
	}
	return root
}
