package nxjson

// An Arena is a fixed-size pool of nodes that a Parser can allocate from
// instead of the heap, to bound the memory used by a parse.
//
// An arena holds at most one document at a time. Parsing into an arena
// resets it, which invalidates any tree previously parsed into the same
// arena: the caller must not use or release the old root after the new parse
// begins. Releasing the root of the current tree returns all of its nodes to
// the arena. An Arena is not safe for concurrent use.
type Arena struct {
	nodes []Node
	used  int
}

// NewArena constructs an arena with room for maxNodes nodes.
// It panics if maxNodes <= 0.
func NewArena(maxNodes int) *Arena {
	if maxNodes <= 0 {
		panic("arena size must be positive")
	}
	return &Arena{nodes: make([]Node, maxNodes)}
}

// Cap reports the total number of nodes in a.
func (a *Arena) Cap() int { return len(a.nodes) }

// Used reports the number of nodes of a currently allocated.
func (a *Arena) Used() int { return a.used }

// Reset returns all the nodes of a to the pool. Any tree allocated from a is
// invalidated.
func (a *Arena) Reset() {
	clear(a.nodes[:a.used])
	a.used = 0
}

// alloc returns a fresh node from a, or nil if a is exhausted.
func (a *Arena) alloc() *Node {
	if a.used >= len(a.nodes) {
		return nil
	}
	n := &a.nodes[a.used]
	a.used++
	return n
}
