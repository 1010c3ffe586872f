// ════════════════════════════════════════════════════════════════════════════════════════════════
// Pointer-Chase Node Layout
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: memlat
// Component: Cache-Line Sized Ring Record
//
// Description:
//   One node is one cache line. Links are arena indices rather than pointers, so
//   the arena is pointer-free (never scanned by the GC) and a stale link can only
//   ever land inside the arena, never in freed memory.
//
// Memory Layout (64 bytes):
//   - next: 4B successor index
//   - prev: 4B predecessor index
//   - data: 4B payload read on every hop
//   - pad:  52B inert filler to the line boundary
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package ring

import (
	"unsafe"

	"memlat/constants"
)

// Node is a single ring member occupying exactly one cache line.
// Arena alignment puts every node on its own line; see alignNodes.
type Node struct {
	next uint32   // 4B - Arena index of the successor
	prev uint32   // 4B - Arena index of the predecessor
	data uint32   // 4B - Payload, initialised to the slot index
	_    [52]byte // 52B - Padding to 64-byte boundary
}

// Either array length goes negative, and the build fails, when Node drifts
// away from one cache line in either direction.
var _ [constants.CacheLineSize - int(unsafe.Sizeof(Node{}))]byte
var _ [int(unsafe.Sizeof(Node{})) - constants.CacheLineSize]byte

// NodeSize is the byte size of one ring node.
const NodeSize = int(unsafe.Sizeof(Node{}))

// Next returns the arena index of the successor.
func (n *Node) Next() uint32 { return n.next }

// Prev returns the arena index of the predecessor.
func (n *Node) Prev() uint32 { return n.prev }

// Data returns the payload.
func (n *Node) Data() uint32 { return n.data }
