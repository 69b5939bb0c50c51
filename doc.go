// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package nxjson implements a small JSON parser that builds a tree of nodes,
// with simple lookups by object key and array offset.
//
// # Parsing
//
// Call Parse or ParseString to parse a complete JSON value. The result is the
// root of a tree of *Node values, or an error of concrete type *SyntaxError:
//
//	root, err := nxjson.ParseString(body)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	defer root.Release()
//
// The kind of failure is reported by the Kind field of the error, and may be
// tested with errors.Is:
//
//	if errors.Is(err, nxjson.UnexpectedEndOfInput) {
//	   log.Print("Input is truncated")
//	}
//
// By default the parser accepts only standard JSON (RFC 8259). A Parser may be
// configured to accept comments and trailing commas, to limit nesting depth,
// to allocate nodes from a bounded Arena, and to deliver diagnostics to a
// Reporter:
//
//	p := nxjson.NewParser()
//	p.AllowComments(true)
//	p.AllowTrailingCommas(true)
//	p.ReportTo(nxjson.LogReporter(nil))
//	root, err := p.Parse(data)
//
// # Lookups
//
// The methods of a Node are safe to call on a nil *Node, so lookups can be
// chained without checking each step:
//
//	today := root.Get("result").Get("2024-06-01").Float()
//	third := root.Get("values").Item(2)
//	if third == nil {
//	   log.Print("No third value")
//	}
//
// The kind of a node is reported by its Kind method:
//
//	Kind    | Accessor        | Description
//	------- | --------------- | ---------------------------------------
//	Null    | IsNull          | null
//	Bool    | Bool, Float     | true, false (Float reports 1 or 0)
//	Integer | Int, Float      | number without fraction or exponent
//	Double  | Float, Int      | number with a fraction and/or exponent
//	String  | Text            | string, with escapes decoded
//	Object  | Get, Len        | { "key": value, ... }
//	Array   | Item, Len       | [ value, ... ]
//	Root    | ValueKind       | the document; behaves as its top-level value
//
// # Release
//
// When the caller is finished with a tree, it may call Release on the root to
// discard it. Release does not recur on the Go stack, so it is safe for
// arbitrarily deep trees. Release is required for trees allocated from an
// Arena, to return their nodes to the pool; for other trees it is optional.
package nxjson
