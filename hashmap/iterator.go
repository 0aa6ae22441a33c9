package hashmap

import (
	"fmt"

	"jsouthworth.net/go/mutable/pair"
)

// Iterator is an external cursor over the entries of a map, visiting
// buckets in index order and each chain front to back. An iterator is
// fail-fast: it remembers the map's structural generation when created
// and every operation first compares that against the map's current
// generation, panicking with ErrConcurrentModification on a mismatch.
// Putting a new key, Erase, Clear and the insertion made by Ref all
// advance the generation; overwriting the value of an existing key does
// not and stays invisible. Only the iterator's own Erase resynchronizes
// it, so several live iterators cannot all survive a structural change.
//
// This is a misuse detector for single goroutine code, not a
// synchronization mechanism. Like the map itself, iterators are not
// safe for concurrent use.
type Iterator struct {
	m        *Map
	bin      int
	node     *node
	expected int
	canErase bool
}

// Begin returns an iterator positioned at the map's first entry, or an
// exhausted iterator when the map is empty.
func (m *Map) Begin() *Iterator {
	it := &Iterator{
		m:        m,
		expected: m.modCount,
		canErase: true,
	}
	it.bin, it.node = m.firstEntryFrom(0)
	return it
}

// End returns an exhausted iterator for the map. An iterator that has
// advanced past the last entry compares Equal to End.
func (m *Map) End() *Iterator {
	return &Iterator{
		m:        m,
		bin:      -1,
		expected: m.modCount,
		canErase: true,
	}
}

func (i *Iterator) check() {
	if i.expected != i.m.modCount {
		panic(ErrConcurrentModification)
	}
}

// advance moves the cursor to the next entry in bucket then chain
// order, or to the exhausted state. The cursor must be on an entry.
func (i *Iterator) advance() {
	if !i.node.next.sentinel() {
		i.node = i.node.next
		return
	}
	i.bin, i.node = i.m.firstEntryFrom(i.bin + 1)
}

// Next advances the iterator to the next entry, or to the exhausted
// state after the last one. On an exhausted iterator Next does
// nothing. After Erase the cursor is already on the following entry,
// so the first Next only makes the iterator dereferenceable again
// without moving it.
func (i *Iterator) Next() {
	i.check()
	if i.node == nil {
		return
	}
	if !i.canErase {
		i.canErase = true
		return
	}
	i.advance()
}

// Entry returns the entry under the cursor. The pointer stays valid
// until the entry is removed; assigning the pair's Second field through
// it is the same value overwrite Put performs on an existing key.
// Entry panics with ErrIllegalPosition when the iterator is exhausted
// or erased its entry and has not advanced since.
func (i *Iterator) Entry() *pair.Pair {
	i.check()
	if !i.canErase || i.node == nil {
		panic(ErrIllegalPosition)
	}
	return &i.node.entry
}

// Erase removes the entry under the cursor from the map and returns
// it. The cursor moves on to the following entry, or to the exhausted
// state, and the iterator resynchronizes with the map, so iteration may
// continue. Until the next call to Next the iterator cannot be
// dereferenced or erased again. Erase panics with an error wrapping
// ErrCannotErase when the entry was already erased or the iterator is
// exhausted.
func (i *Iterator) Erase() pair.Pair {
	i.check()
	if !i.canErase {
		panic(fmt.Errorf("%w: entry already erased", ErrCannotErase))
	}
	if i.node == nil {
		panic(fmt.Errorf("%w: iterator is exhausted", ErrCannotErase))
	}
	removed := i.node
	i.canErase = false
	// Move off the node while it is still linked, then unlink it.
	i.advance()
	i.m.Erase(removed.entry.First)
	i.expected = i.m.modCount
	return removed.entry
}

// Equal tests if two iterators are at the same position of the same
// map. Equal panics with ErrIteratorType when o is not an iterator and
// with ErrDifferentIterators when o iterates another map; only the
// receiver's generation is checked, so a position may be compared
// against an End obtained before the receiver's Erase calls.
func (i *Iterator) Equal(o interface{}) bool {
	other, ok := o.(*Iterator)
	if !ok {
		panic(ErrIteratorType)
	}
	i.check()
	if i.m != other.m {
		panic(ErrDifferentIterators)
	}
	return i.node == other.node
}

// String returns a string representation of the iterator and the map
// it iterates over.
func (i *Iterator) String() string {
	return fmt.Sprintf("%v(expected=%d canErase=%t)",
		i.m, i.expected, i.canErase)
}
