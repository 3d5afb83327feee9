// Package unionfind implements a disjoint-set (union-find) structure over
// dense integer elements 0..n-1, with union by rank and path halving.
//
// This file declares DisjointSet, the sentinel errors, and the New
// constructor.
//
// Errors:
//
//	ErrIndexOutOfRange - an element index outside [0, n) was passed to an operation.
package unionfind

import "errors"

// Sentinel errors for disjoint-set operations.
var (
	// ErrIndexOutOfRange indicates an operation referenced an element index
	// outside [0, Len()).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)

// DisjointSet tracks a partition of {0,..,n-1} into disjoint sets.
//
// It is created fresh per use and carries no lock: a single Kruskal run (or
// any other caller) owns its instance for the duration of the computation.
type DisjointSet struct {
	parent []int  // parent[i] = parent of i; parent[root] == root
	rank   []int8 // rank[root] = upper bound on its tree height
	size   []int  // size[root] = number of elements in its set
	count  int    // number of disjoint sets remaining
}

// New creates a DisjointSet with n singleton sets {0}, {1}, .. {n-1}.
// A negative n is treated as zero.
// Complexity: O(n)
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int8, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}
