// File: unionfind.go
// Role: Find/Union/Connected/SetSize/Count over the DisjointSet.
// Determinism:
//   - Union by rank with a fixed tie rule: on equal ranks the second root is
//     attached under the first and the first root's rank grows by one.
// Concurrency:
//   - None. Each computation owns its own instance.

package unionfind

import "fmt"

// Find returns the canonical representative of the set containing x.
// Path halving rewires every other node on the walk to its grandparent, so
// repeated finds flatten the trees toward the near-constant inverse-Ackermann
// bound.
//
// Returns ErrIndexOutOfRange if x lies outside [0, n).
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(x int) (int, error) {
	if x < 0 || x >= len(d.parent) {
		return 0, fmt.Errorf("%w: x=%d, n=%d", ErrIndexOutOfRange, x, len(d.parent))
	}

	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]] // path halving
		x = d.parent[x]
	}

	return x, nil
}

// Union merges the sets containing x and y and reports whether a merge
// happened; false means the two were already in the same set.
//
// Returns ErrIndexOutOfRange if either index lies outside [0, n).
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}
	if rx == ry {
		return false, nil
	}

	// Attach the shallower tree under the deeper one. On equal ranks the
	// second root goes under the first and the first root's rank grows.
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
		d.size[ry] += d.size[rx]
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
		d.size[rx] += d.size[ry]
	default:
		d.parent[ry] = rx
		d.rank[rx]++
		d.size[rx] += d.size[ry]
	}
	d.count--

	return true, nil
}

// Connected reports whether x and y currently belong to the same set.
//
// Returns ErrIndexOutOfRange if either index lies outside [0, n).
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Connected(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// SetSize returns the number of elements in the set containing x.
//
// Returns ErrIndexOutOfRange if x lies outside [0, n).
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) SetSize(x int) (int, error) {
	rx, err := d.Find(x)
	if err != nil {
		return 0, err
	}

	return d.size[rx], nil
}

// Count returns the number of disjoint sets remaining. Starts at n and
// decreases by one on every merging Union.
// Complexity: O(1).
func (d *DisjointSet) Count() int {
	return d.count
}

// Len returns the number of elements n the structure was built over.
// Complexity: O(1).
func (d *DisjointSet) Len() int {
	return len(d.parent)
}
