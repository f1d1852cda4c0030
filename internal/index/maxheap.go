package index

// MaxHeap is a binary max-heap over a snapshot array. It is a derived,
// disposable view: callers rebuild it from authoritative data per query
// instead of keeping it incrementally consistent. Ties between equal
// elements surface in whatever order the sift visits them; callers must
// not assume a tie order.
type MaxHeap[T any] struct {
	items   []T
	greater func(a, b T) bool
}

// NewMaxHeap creates an empty heap ordered by greater.
func NewMaxHeap[T any](greater func(a, b T) bool) *MaxHeap[T] {
	return &MaxHeap[T]{greater: greater}
}

// Build replaces the heap contents with a copy of items and heapifies
// bottom-up from the last internal node. O(n).
func (h *MaxHeap[T]) Build(items []T) {
	h.items = append(h.items[:0:0], items...)
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		siftDown(h.items, i, h.greater)
	}
}

// Insert adds one element and sifts it up. O(log n).
func (h *MaxHeap[T]) Insert(item T) {
	h.items = append(h.items, item)
	i := len(h.items) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !h.greater(h.items[i], h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// ExtractMax removes and returns the root, promoting the last element
// and sifting it down. O(log n).
func (h *MaxHeap[T]) ExtractMax() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}
	max := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items[last] = zero
	h.items = h.items[:last]
	if len(h.items) > 0 {
		siftDown(h.items, 0, h.greater)
	}
	return max, true
}

// Peek returns the root without removing it.
func (h *MaxHeap[T]) Peek() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}
	return h.items[0], true
}

// TopK extracts up to k elements in descending order. Extraction runs
// against a copy of the live array, so repeated TopK calls are idempotent.
// O(k log n) after the O(n) copy.
func (h *MaxHeap[T]) TopK(k int) []T {
	scratch := MaxHeap[T]{
		items:   append([]T(nil), h.items...),
		greater: h.greater,
	}
	result := make([]T, 0, k)
	for i := 0; i < k; i++ {
		item, ok := scratch.ExtractMax()
		if !ok {
			break
		}
		result = append(result, item)
	}
	return result
}

// Len returns the number of elements in the heap.
func (h *MaxHeap[T]) Len() int {
	return len(h.items)
}

func siftDown[T any](items []T, i int, greater func(a, b T) bool) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(items) && greater(items[left], items[largest]) {
			largest = left
		}
		if right < len(items) && greater(items[right], items[largest]) {
			largest = right
		}
		if largest == i {
			return
		}
		items[i], items[largest] = items[largest], items[i]
		i = largest
	}
}
