package index

// bucketCount is fixed for the lifetime of the process: the aggregator
// never resizes or rehashes, trading worst-case O(n) chains for a stable
// memory footprint at this key cardinality.
const bucketCount = 100

type mapEntry[V any] struct {
	key   string
	value V
	next  *mapEntry[V]
}

// Pair is one key/value of a CategoryMap.
type Pair[V any] struct {
	Key   string
	Value V
}

// CategoryMap is a chained hash map from category name to V, hashed with a
// polynomial rolling function over the key bytes modulo the bucket count.
type CategoryMap[V any] struct {
	buckets [bucketCount]*mapEntry[V]
	count   int
}

// NewCategoryMap creates an empty map.
func NewCategoryMap[V any]() *CategoryMap[V] {
	return &CategoryMap[V]{}
}

func hashKey(key string) int {
	var sum, pow uint64 = 0, 1
	for i := 0; i < len(key); i++ {
		sum = (sum + uint64(key[i])*pow) % bucketCount
		pow = (pow * 31) % bucketCount
	}
	return int(sum)
}

// Set inserts or overwrites the value for key. O(1) average.
func (m *CategoryMap[V]) Set(key string, value V) {
	idx := hashKey(key)
	for entry := m.buckets[idx]; entry != nil; entry = entry.next {
		if entry.key == key {
			entry.value = value
			return
		}
	}
	m.buckets[idx] = &mapEntry[V]{key: key, value: value, next: m.buckets[idx]}
	m.count++
}

// Update overwrites the value for an existing key; false when absent.
func (m *CategoryMap[V]) Update(key string, value V) bool {
	for entry := m.buckets[hashKey(key)]; entry != nil; entry = entry.next {
		if entry.key == key {
			entry.value = value
			return true
		}
	}
	return false
}

// Get returns the value for key. O(1) average.
func (m *CategoryMap[V]) Get(key string) (V, bool) {
	for entry := m.buckets[hashKey(key)]; entry != nil; entry = entry.next {
		if entry.key == key {
			return entry.value, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *CategoryMap[V]) Contains(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Remove deletes key; false when absent. O(1) average.
func (m *CategoryMap[V]) Remove(key string) bool {
	idx := hashKey(key)
	var prev *mapEntry[V]
	for entry := m.buckets[idx]; entry != nil; entry = entry.next {
		if entry.key == key {
			if prev != nil {
				prev.next = entry.next
			} else {
				m.buckets[idx] = entry.next
			}
			m.count--
			return true
		}
		prev = entry
	}
	return false
}

// Pairs returns every key/value in bucket order. O(n).
func (m *CategoryMap[V]) Pairs() []Pair[V] {
	pairs := make([]Pair[V], 0, m.count)
	for i := 0; i < bucketCount; i++ {
		for entry := m.buckets[i]; entry != nil; entry = entry.next {
			pairs = append(pairs, Pair[V]{Key: entry.key, Value: entry.value})
		}
	}
	return pairs
}

// Len returns the number of keys.
func (m *CategoryMap[V]) Len() int {
	return m.count
}
