package hashmap

import (
	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/mutable/pair"
)

// node is one link of a bucket chain. Every bucket holds a chain of
// zero or more entry nodes that ends at exactly one sentinel node; a
// node is the sentinel iff its next pointer is nil. The sentinel's
// entry is never read as data.
type node struct {
	entry pair.Pair
	next  *node
}

func (n *node) sentinel() bool {
	return n.next == nil
}

// newBins returns a bucket array of length n with a fresh sentinel at
// the head of every chain.
func newBins(n int) []*node {
	bins := make([]*node, n)
	for i := range bins {
		bins[i] = &node{}
	}
	return bins
}

// chainFind returns the node holding key and its predecessor in the
// chain headed by head. The predecessor is nil when the node is the
// chain head; both are nil when the key is absent. Key equality is
// dyn.Equal, so keys may implement Equaler.
func chainFind(head *node, key interface{}) (n, prev *node) {
	var p *node
	for n := head; !n.sentinel(); n = n.next {
		if dyn.Equal(n.entry.First, key) {
			return n, p
		}
		p = n
	}
	return nil, nil
}

// copyChain duplicates a bucket chain, preserving the order of the
// entries and ending at a fresh sentinel.
func copyChain(head *node) *node {
	out := &node{}
	tail := out
	for n := head; !n.sentinel(); n = n.next {
		tail.entry = n.entry
		tail.next = &node{}
		tail = tail.next
	}
	return out
}

// compress reduces the bound hash function's result for key to a bucket
// index. Hash results may be negative; their absolute value is used.
func (m *Map) compress(key interface{}) int {
	h := m.hash(key)
	if h < 0 {
		h = -h
	}
	if h < 0 {
		// negating the minimum int overflows back to itself
		h = 0
	}
	return h % len(m.bins)
}

// ensureLoadThreshold doubles the bucket array when holding used
// entries would leave the map over its load threshold, relinking every
// entry node under the widened index space. The comparison is between
// exact ratios, so a threshold of 0.75 resizes a four bin map on its
// fourth entry, not its third.
func (m *Map) ensureLoadThreshold(used int) {
	if float64(used)/float64(len(m.bins)) <= m.loadThreshold {
		return
	}
	old := m.bins
	m.bins = newBins(len(old) * 2)
	for _, head := range old {
		n := head
		for !n.sentinel() {
			next := n.next
			i := m.compress(n.entry.First)
			n.next = m.bins[i]
			m.bins[i] = n
			n = next
		}
	}
}

// firstEntryFrom returns the index and head node of the first bucket at
// or after bin whose chain holds an entry, or -1 and nil when no bucket
// does.
func (m *Map) firstEntryFrom(bin int) (int, *node) {
	for i := bin; i < len(m.bins); i++ {
		if head := m.bins[i]; !head.sentinel() {
			return i, head
		}
	}
	return -1, nil
}
