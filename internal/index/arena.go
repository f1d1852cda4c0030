// Package index holds the synchronized access structures of the ledger:
// an insertion-order list, a date-keyed search tree, a rebuildable max-heap,
// a fixed-bucket hash map, a FIFO bill queue, a prefix trie and a bounded
// undo log. Transaction records live in a shared Arena; the membership
// indexes store handles into it rather than owning records themselves.
package index

import "github.com/iho/fintrack/internal/domain"

// Handle addresses a transaction record in an Arena. A handle stays valid
// until its record is freed; freeing advances the slot generation so a
// stale handle misses instead of resolving to a recycled record.
type Handle struct {
	idx int
	gen uint32
}

type arenaSlot struct {
	record domain.Transaction
	gen    uint32
	live   bool
}

// Arena owns every transaction record in the ledger.
type Arena struct {
	slots []arenaSlot
	free  []int
	count int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc stores a record and returns its handle. O(1).
func (a *Arena) Alloc(t domain.Transaction) Handle {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		slot := &a.slots[idx]
		slot.record = t
		slot.live = true
		a.count++
		return Handle{idx: idx, gen: slot.gen}
	}

	a.slots = append(a.slots, arenaSlot{record: t, live: true})
	a.count++
	return Handle{idx: len(a.slots) - 1}
}

// Get resolves a handle to its record. The pointer is only valid until the
// next mutation of the arena; callers needing a snapshot must copy.
func (a *Arena) Get(h Handle) (*domain.Transaction, bool) {
	if h.idx < 0 || h.idx >= len(a.slots) {
		return nil, false
	}
	slot := &a.slots[h.idx]
	if !slot.live || slot.gen != h.gen {
		return nil, false
	}
	return &slot.record, true
}

// Free releases a record. The slot is recycled on a later Alloc; handles
// issued before the free no longer resolve. O(1).
func (a *Arena) Free(h Handle) bool {
	if _, ok := a.Get(h); !ok {
		return false
	}
	slot := &a.slots[h.idx]
	slot.record = domain.Transaction{}
	slot.live = false
	slot.gen++
	a.free = append(a.free, h.idx)
	a.count--
	return true
}

// Len returns the number of live records.
func (a *Arena) Len() int {
	return a.count
}
