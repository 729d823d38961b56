package core

import "iter"

// NodeRecord owns a user key and its opaque payload. Records live in the
// Interner and are addressed only by NodeID.
type NodeRecord[K comparable, D any] struct {
	Key  K
	Data D
}

// Interner is a bidirectional key↔id mapping with insertion-order stable
// ids. Duplicate keys collapse to the first id; payloads are written once.
type Interner[K comparable, D any] struct {
	records []NodeRecord[K, D]
	index   map[K]NodeID
}

// NewInterner returns an empty interner.
// Complexity: O(1).
func NewInterner[K comparable, D any]() *Interner[K, D] {
	return &Interner[K, D]{index: make(map[K]NodeID)}
}

// Intern maps key to a NodeID, allocating the next dense id on first
// sight. Re-interning an existing key returns the existing id and does
// NOT update its payload.
// Complexity: O(1) amortized.
func (in *Interner[K, D]) Intern(key K, data D) NodeID {
	if id, ok := in.index[key]; ok {
		return id
	}
	id := NodeID(len(in.records))
	in.records = append(in.records, NodeRecord[K, D]{Key: key, Data: data})
	in.index[key] = id

	return id
}

// Len reports the number of interned records.
func (in *Interner[K, D]) Len() int { return len(in.records) }

// ID looks up the id for key, reporting whether it is interned.
func (in *Interner[K, D]) ID(key K) (NodeID, bool) {
	id, ok := in.index[key]

	return id, ok
}

// Record returns the record addressed by id. The id must have been
// produced by this interner.
func (in *Interner[K, D]) Record(id NodeID) NodeRecord[K, D] {
	return in.records[id]
}

// All yields (id, record) pairs in insertion order.
func (in *Interner[K, D]) All() iter.Seq2[NodeID, NodeRecord[K, D]] {
	return func(yield func(NodeID, NodeRecord[K, D]) bool) {
		for i, r := range in.records {
			if !yield(NodeID(i), r) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the interner.
// Complexity: O(V).
func (in *Interner[K, D]) Clone() *Interner[K, D] {
	cp := &Interner[K, D]{
		records: make([]NodeRecord[K, D], len(in.records)),
		index:   make(map[K]NodeID, len(in.index)),
	}
	copy(cp.records, in.records)
	for k, id := range in.index {
		cp.index[k] = id
	}

	return cp
}
