package hashmap

import (
	"jsouthworth.net/go/mutable/pair"
	"jsouthworth.net/go/seq"
)

// Seq returns a sequence of the entries of the map as pair.Pair
// values. The sequence is built from a snapshot of the entries taken
// when Seq is called, so changing the map afterwards does not show
// through it. An empty map returns a nil sequence.
func (m *Map) Seq() seq.Sequence {
	if m.used == 0 {
		return nil
	}
	entries := make([]pair.Pair, 0, m.used)
	m.Range(func(entry pair.Pair) {
		entries = append(entries, entry)
	})
	return &mapSequence{entries: entries}
}

type mapSequence struct {
	entries []pair.Pair
	index   int
}

func (s *mapSequence) First() interface{} {
	return s.entries[s.index]
}

func (s *mapSequence) Next() seq.Sequence {
	if s.index+1 >= len(s.entries) {
		return nil
	}
	return &mapSequence{entries: s.entries, index: s.index + 1}
}

func (s *mapSequence) String() string {
	return seq.ConvertToString(s)
}
