package index

import "github.com/iho/fintrack/internal/domain"

type billNode struct {
	bill *domain.Bill
	next *billNode
}

// BillQueue is a singly linked FIFO of pending bills. Bills are expected
// to be processed in arrival order; lookup by ID is a secondary need and
// stays a linear scan.
type BillQueue struct {
	head  *billNode
	tail  *billNode
	count int
}

// NewBillQueue creates an empty queue.
func NewBillQueue() *BillQueue {
	return &BillQueue{}
}

// Enqueue appends a bill at the tail. O(1).
func (q *BillQueue) Enqueue(b *domain.Bill) {
	node := &billNode{bill: b}
	if q.tail == nil {
		q.head, q.tail = node, node
	} else {
		q.tail.next = node
		q.tail = node
	}
	q.count++
}

// Dequeue pops the head bill. O(1).
func (q *BillQueue) Dequeue() (*domain.Bill, bool) {
	if q.head == nil {
		return nil, false
	}
	node := q.head
	q.head = node.next
	if q.head == nil {
		q.tail = nil
	}
	q.count--
	return node.bill, true
}

// Peek returns the head bill without removing it.
func (q *BillQueue) Peek() (*domain.Bill, bool) {
	if q.head == nil {
		return nil, false
	}
	return q.head.bill, true
}

// FindByID returns the live bill with the given ID. Mutating the returned
// bill (the paid flag) mutates it in place in the queue. O(n).
func (q *BillQueue) FindByID(id string) (*domain.Bill, bool) {
	for node := q.head; node != nil; node = node.next {
		if node.bill.ID == id {
			return node.bill, true
		}
	}
	return nil, false
}

// RemoveByID splices out the bill with the given ID and returns it.
// Removing the head degenerates to Dequeue; removing the tail repoints
// the tail. O(n).
func (q *BillQueue) RemoveByID(id string) (*domain.Bill, bool) {
	if q.head == nil {
		return nil, false
	}
	if q.head.bill.ID == id {
		return q.Dequeue()
	}
	for node := q.head; node.next != nil; node = node.next {
		if node.next.bill.ID != id {
			continue
		}
		removed := node.next
		node.next = removed.next
		if removed == q.tail {
			q.tail = node
		}
		q.count--
		return removed.bill, true
	}
	return nil, false
}

// MarkPaid sets the paid flag on the bill with the given ID. O(n).
func (q *BillQueue) MarkPaid(id string) bool {
	bill, ok := q.FindByID(id)
	if !ok {
		return false
	}
	bill.Paid = true
	return true
}

// All returns a copy of every bill in FIFO order. O(n).
func (q *BillQueue) All() []domain.Bill {
	result := make([]domain.Bill, 0, q.count)
	for node := q.head; node != nil; node = node.next {
		result = append(result, *node.bill)
	}
	return result
}

// Unpaid returns copies of bills not yet paid, in FIFO order.
func (q *BillQueue) Unpaid() []domain.Bill {
	var result []domain.Bill
	for node := q.head; node != nil; node = node.next {
		if !node.bill.Paid {
			result = append(result, *node.bill)
		}
	}
	return result
}

// OverdueAt returns copies of unpaid bills due strictly before ref.
func (q *BillQueue) OverdueAt(ref string) []domain.Bill {
	var result []domain.Bill
	for node := q.head; node != nil; node = node.next {
		if node.bill.OverdueAt(ref) {
			result = append(result, *node.bill)
		}
	}
	return result
}

// Len returns the number of queued bills.
func (q *BillQueue) Len() int {
	return q.count
}
