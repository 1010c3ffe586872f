// ============================================================================
// POINTER-CHASE RING
// ============================================================================
//
// Circular doubly-linked ring laid over the live prefix of an Arena.
//
// Lifecycle per working-set size:
//   - Build:   link slots 0..n-1 in physical order (pure index arithmetic)
//   - Shuffle: relink members into a uniformly random logical order
//   - Walk:    chase successor links, reading one payload per hop
//
// Invariant:
//   - After Build and after every Shuffle swap the prefix is exactly one
//     cycle of length n; no member is ever detached.
//
// ⚠️ Rings below two members are not built; callers report a zero result.

package ring

// sink receives every payload read by Walk. A store to a package-level
// variable cannot be proven dead, so the traversal survives optimisation.
var sink uint32

// Sink returns the last payload read by Walk.
func Sink() uint32 { return sink }

// ============================================================================
// CONSTRUCTION
// ============================================================================

// Build links slots 0..n-1 into one ring in physical order: slot i points
// forward to i+1 and back to i-1, both modulo n. Payloads are set to the
// slot index. Build does nothing for n < 2 and panics when n exceeds the
// arena capacity.
//
//go:norace
//go:nocheckptr
func (a *Arena) Build(n int) {
	if n < 2 {
		return
	}
	if n > len(a.nodes) {
		panic("ring: element count exceeds arena capacity")
	}

	nodes := a.nodes[:n]
	last := uint32(n - 1)

	// Wrap-around members first, then the straight run between them
	nodes[0] = Node{next: 1, prev: last, data: 0}
	nodes[last] = Node{next: 0, prev: last - 1, data: last}
	for i := uint32(1); i < last; i++ {
		nodes[i] = Node{next: i + 1, prev: i - 1, data: i}
	}
}

// ============================================================================
// TRAVERSAL
// ============================================================================

// Walk performs hops successor hops starting at arena index start, storing
// each visited payload into the sink. It returns the index it stopped on.
//
//go:norace
//go:nocheckptr
//go:registerparams
func (a *Arena) Walk(start uint32, hops uint64) uint32 {
	nodes := a.nodes
	p := start
	for i := uint64(0); i < hops; i++ {
		sink = nodes[p].data
		p = nodes[p].next
	}
	return p
}

// Order returns the payloads met by one full traversal of an n-member ring
// starting at start, in visit order. It stops early if the walk returns to
// start before n hops.
func (a *Arena) Order(n int, start uint32) []uint32 {
	if n < 1 {
		return nil
	}
	out := make([]uint32, 0, n)
	p := start
	for i := 0; i < n; i++ {
		out = append(out, a.nodes[p].data)
		p = a.nodes[p].next
		if p == start {
			break
		}
	}
	return out
}

// Valid reports whether the first n slots form exactly one cycle of
// length n whose prev links mirror its next links.
func (a *Arena) Valid(n int) bool {
	if n < 2 {
		return true
	}
	if n > len(a.nodes) {
		return false
	}
	nodes := a.nodes[:n]
	seen := make([]bool, n)
	p := uint32(0)
	for i := 0; i < n; i++ {
		if int(p) >= n || seen[p] {
			return false
		}
		seen[p] = true
		q := nodes[p].next
		if int(q) >= n || nodes[q].prev != p {
			return false
		}
		p = q
	}
	return p == 0
}
