// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: shuffle.go — Ring position randomiser
//
// Purpose:
//   - Decorrelates logical (traversal) order from physical (arena) order so
//     stride and next-line prefetchers cannot predict the walk.
//
// Notes:
//   - Fisher–Yates over ring positions: members trade places by relinking
//     the four edges around them, payloads never move.
//   - Draws are unbiased IntN calls on the caller's generator.
//   - Swapping two members of a valid ring yields a valid ring, adjacent
//     members and the two-member ring included.
// ─────────────────────────────────────────────────────────────────────────────

package ring

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// NewRand returns a ChaCha8 generator seeded from the operating system's
// entropy source.
func NewRand() *rand.Rand {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand only fails on a broken host; fall back to the
		// runtime-seeded global source for the seed itself.
		for i := 0; i < len(seed); i += 8 {
			binary.LittleEndian.PutUint64(seed[i:], rand.Uint64())
		}
	}
	return rand.New(rand.NewChaCha8(seed))
}

// Shuffle randomises the logical order of an n-member ring built by Build.
// For ix from n-1 down to 1 it picks j uniformly in [0, ix] and swaps the
// ring positions of slots ix and j. No-op for n < 2.
//
//go:norace
//go:nocheckptr
func (a *Arena) Shuffle(n int, r *rand.Rand) {
	if n < 2 {
		return
	}
	for ix := n - 1; ix > 0; ix-- {
		j := r.IntN(ix + 1)
		a.swap(uint32(ix), uint32(j))
	}
}

// swap exchanges the ring positions of slots x and y. Each step resolves
// its neighbour indices at the moment it runs, exactly as the relinking
// requires when x and y are adjacent. x == y leaves the ring untouched.
//
//go:nosplit
//go:norace
func (a *Arena) swap(x, y uint32) {
	n := a.nodes

	px, py := n[x].prev, n[y].prev
	n[px].next, n[py].next = n[py].next, n[px].next
	n[x].prev, n[y].prev = n[y].prev, n[x].prev

	nx, ny := n[x].next, n[y].next
	n[nx].prev, n[ny].prev = n[ny].prev, n[nx].prev
	n[x].next, n[y].next = n[y].next, n[x].next
}
