package index

import "github.com/iho/fintrack/internal/domain"

type chronoNode struct {
	handle Handle
	prev   *chronoNode
	next   *chronoNode
}

// ChronoList is the insertion-order index: a doubly linked sequence of
// arena handles. New transactions go to the front, re-inserted historical
// ones to the back. Traversals return copied records, never live views.
type ChronoList struct {
	arena *Arena
	head  *chronoNode
	tail  *chronoNode
	count int
}

// NewChronoList creates an empty list resolving handles through arena.
func NewChronoList(arena *Arena) *ChronoList {
	return &ChronoList{arena: arena}
}

// PushFront prepends a handle. O(1).
func (l *ChronoList) PushFront(h Handle) {
	node := &chronoNode{handle: h}
	if l.head == nil {
		l.head, l.tail = node, node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.count++
}

// PushBack appends a handle. O(1).
func (l *ChronoList) PushBack(h Handle) {
	node := &chronoNode{handle: h}
	if l.tail == nil {
		l.head, l.tail = node, node
	} else {
		node.prev = l.tail
		l.tail.next = node
		l.tail = node
	}
	l.count++
}

// Find scans for the transaction with the given ID. O(n).
func (l *ChronoList) Find(id string) (Handle, bool) {
	for node := l.head; node != nil; node = node.next {
		if t, ok := l.arena.Get(node.handle); ok && t.ID == id {
			return node.handle, true
		}
	}
	return Handle{}, false
}

// Remove unlinks the node holding h. The arena record is untouched;
// freeing it belongs to the caller. O(n).
func (l *ChronoList) Remove(h Handle) bool {
	for node := l.head; node != nil; node = node.next {
		if node.handle != h {
			continue
		}
		if node.prev != nil {
			node.prev.next = node.next
		} else {
			l.head = node.next
		}
		if node.next != nil {
			node.next.prev = node.prev
		} else {
			l.tail = node.prev
		}
		l.count--
		return true
	}
	return false
}

// Forward returns all transactions newest-first. O(n).
func (l *ChronoList) Forward() []domain.Transaction {
	result := make([]domain.Transaction, 0, l.count)
	for node := l.head; node != nil; node = node.next {
		if t, ok := l.arena.Get(node.handle); ok {
			result = append(result, *t)
		}
	}
	return result
}

// Backward returns all transactions oldest-first. O(n).
func (l *ChronoList) Backward() []domain.Transaction {
	result := make([]domain.Transaction, 0, l.count)
	for node := l.tail; node != nil; node = node.prev {
		if t, ok := l.arena.Get(node.handle); ok {
			result = append(result, *t)
		}
	}
	return result
}

// FirstN returns up to n transactions from the front.
func (l *ChronoList) FirstN(n int) []domain.Transaction {
	result := make([]domain.Transaction, 0, n)
	for node := l.head; node != nil && len(result) < n; node = node.next {
		if t, ok := l.arena.Get(node.handle); ok {
			result = append(result, *t)
		}
	}
	return result
}

// FilterByCategory returns transactions in the category, newest-first. O(n).
func (l *ChronoList) FilterByCategory(category string) []domain.Transaction {
	return l.filter(func(t *domain.Transaction) bool { return t.Category == category })
}

// FilterByKind returns transactions of the kind, newest-first. O(n).
func (l *ChronoList) FilterByKind(kind domain.Kind) []domain.Transaction {
	return l.filter(func(t *domain.Transaction) bool { return t.Kind == kind })
}

func (l *ChronoList) filter(keep func(*domain.Transaction) bool) []domain.Transaction {
	var result []domain.Transaction
	for node := l.head; node != nil; node = node.next {
		if t, ok := l.arena.Get(node.handle); ok && keep(t) {
			result = append(result, *t)
		}
	}
	return result
}

// Len returns the number of indexed transactions.
func (l *ChronoList) Len() int {
	return l.count
}
