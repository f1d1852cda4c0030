package index

import "github.com/iho/fintrack/internal/domain"

type dateNode struct {
	date   string
	bucket []Handle // insertion order within a date is preserved
	left   *dateNode
	right  *dateNode
}

// DateTree is a binary search tree keyed by date string. Each node buckets
// every transaction sharing its date. The tree is deliberately unbalanced:
// monotonic date insertion degrades lookups to O(n), which is accepted at
// this data scale.
type DateTree struct {
	arena *Arena
	root  *dateNode
	count int
}

// NewDateTree creates an empty tree resolving handles through arena.
func NewDateTree(arena *Arena) *DateTree {
	return &DateTree{arena: arena}
}

// Insert files a handle under its date. O(log n) average, O(n) worst case.
func (t *DateTree) Insert(date string, h Handle) {
	t.root = insertDate(t.root, date, h)
	t.count++
}

func insertDate(node *dateNode, date string, h Handle) *dateNode {
	if node == nil {
		return &dateNode{date: date, bucket: []Handle{h}}
	}
	switch {
	case date < node.date:
		node.left = insertDate(node.left, date, h)
	case date > node.date:
		node.right = insertDate(node.right, date, h)
	default:
		node.bucket = append(node.bucket, h)
	}
	return node
}

// Remove takes h out of the bucket for date. Empty buckets keep their node;
// date keys are few and stable, so structural deletion buys nothing.
func (t *DateTree) Remove(date string, h Handle) bool {
	node := t.root
	for node != nil {
		switch {
		case date < node.date:
			node = node.left
		case date > node.date:
			node = node.right
		default:
			for i, held := range node.bucket {
				if held == h {
					node.bucket = append(node.bucket[:i], node.bucket[i+1:]...)
					t.count--
					return true
				}
			}
			return false
		}
	}
	return false
}

// FindByID scans the whole tree for a transaction ID. O(n).
func (t *DateTree) FindByID(id string) (Handle, bool) {
	return findByID(t.root, t.arena, id)
}

func findByID(node *dateNode, arena *Arena, id string) (Handle, bool) {
	if node == nil {
		return Handle{}, false
	}
	for _, h := range node.bucket {
		if record, ok := arena.Get(h); ok && record.ID == id {
			return h, true
		}
	}
	if h, ok := findByID(node.left, arena, id); ok {
		return h, true
	}
	return findByID(node.right, arena, id)
}

// InOrder returns all transactions in ascending date order. O(n).
func (t *DateTree) InOrder() []domain.Transaction {
	result := make([]domain.Transaction, 0, t.count)
	t.inOrder(t.root, &result)
	return result
}

func (t *DateTree) inOrder(node *dateNode, result *[]domain.Transaction) {
	if node == nil {
		return
	}
	t.inOrder(node.left, result)
	t.emit(node, result)
	t.inOrder(node.right, result)
}

// ReverseInOrder returns all transactions in descending date order. O(n).
func (t *DateTree) ReverseInOrder() []domain.Transaction {
	result := make([]domain.Transaction, 0, t.count)
	t.reverseInOrder(t.root, &result)
	return result
}

func (t *DateTree) reverseInOrder(node *dateNode, result *[]domain.Transaction) {
	if node == nil {
		return
	}
	t.reverseInOrder(node.right, result)
	t.emit(node, result)
	t.reverseInOrder(node.left, result)
}

// Range returns transactions with start <= date <= end in ascending date
// order, pruning subtrees wholly outside the bounds. O(log n + k) average.
func (t *DateTree) Range(start, end string) []domain.Transaction {
	var result []domain.Transaction
	t.rangeQuery(t.root, start, end, &result)
	return result
}

func (t *DateTree) rangeQuery(node *dateNode, start, end string, result *[]domain.Transaction) {
	if node == nil {
		return
	}
	if node.date > start {
		t.rangeQuery(node.left, start, end, result)
	}
	if node.date >= start && node.date <= end {
		t.emit(node, result)
	}
	if node.date < end {
		t.rangeQuery(node.right, start, end, result)
	}
}

func (t *DateTree) emit(node *dateNode, result *[]domain.Transaction) {
	for _, h := range node.bucket {
		if record, ok := t.arena.Get(h); ok {
			*result = append(*result, *record)
		}
	}
}

// Len returns the number of indexed transactions.
func (t *DateTree) Len() int {
	return t.count
}
