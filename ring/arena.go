// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: arena.go — Preallocated node arena for the latency sweep
//
// Purpose:
//   - Owns the single contiguous node allocation reused by every sweep step.
//   - Hands out the first n slots as the live prefix for one ring.
//
// Notes:
//   - Allocated and zeroed once; never resized, never freed before exit.
//   - The first node is moved onto a cache-line boundary so node i and
//     cache line i of the span coincide exactly.
//
// ⚠️ Single owner: the arena is mutated by the sweep goroutine only.
// ─────────────────────────────────────────────────────────────────────────────

package ring

import (
	"errors"
	"unsafe"

	"memlat/constants"
)

// ErrArenaSize is returned by NewArena for capacities it cannot address.
var ErrArenaSize = errors.New("ring: arena capacity out of range")

// Arena is a cache-line aligned, pointer-free span of nodes.
type Arena struct {
	nodes []Node // aligned view over raw; len == cap == capacity
	raw   []byte // backing allocation, keeps the view alive
}

// NewArena allocates room for capacity nodes.
// Capacity must be positive and addressable by uint32 links.
func NewArena(capacity int) (*Arena, error) {
	if capacity <= 0 || uint64(capacity) > constants.MaxElements {
		return nil, ErrArenaSize
	}
	raw := make([]byte, capacity*NodeSize+constants.CacheLineSize-1)
	return &Arena{nodes: alignNodes(raw, capacity), raw: raw}, nil
}

// alignNodes views capacity nodes inside raw, starting at the first
// cache-line boundary. Node holds no pointers, so a byte backing store
// is safe for the collector and is never scanned.
func alignNodes(raw []byte, capacity int) []Node {
	addr := uintptr(unsafe.Pointer(&raw[0]))
	off := (constants.CacheLineSize - addr%constants.CacheLineSize) % constants.CacheLineSize
	return unsafe.Slice((*Node)(unsafe.Pointer(&raw[off])), capacity)
}

// Cap returns the number of node slots in the arena.
func (a *Arena) Cap() int { return len(a.nodes) }

// Bytes returns the arena footprint in bytes, alignment slack excluded.
func (a *Arena) Bytes() int { return len(a.nodes) * NodeSize }

// At returns the node at arena index i.
func (a *Arena) At(i int) *Node { return &a.nodes[i] }

// Aligned reports whether the first node sits on a cache-line boundary.
func (a *Arena) Aligned() bool {
	return uintptr(unsafe.Pointer(&a.nodes[0]))%constants.CacheLineSize == 0
}
