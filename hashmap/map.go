package hashmap // import "jsouthworth.net/go/mutable/hashmap"

import (
	"fmt"
	"reflect"
	"strings"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/mutable/pair"
	"jsouthworth.net/go/seq"
)

// Fn is a hash function bindable to a map. A hash function must be
// deterministic and must map equal keys to equal integers; it does not
// have to keep its results in any range, negative results are fine.
// The hashfn package provides ready made implementations.
type Fn func(key interface{}) int

const (
	defaultBins          = 1
	defaultLoadThreshold = 1.0
)

type mapOptions struct {
	hashes        []Fn
	bins          int
	loadThreshold float64
}

// Option is a type that allows changes to pluggable parts of the Map
// implementation.
type Option func(*mapOptions)

// Hash is an option for the constructors that binds the hash function
// the map will use for its whole lifetime. Supplying Hash more than
// once is allowed only when every occurrence names the same function; a
// nil function counts as not supplied. Construction panics with an
// error wrapping ErrHashFunc when the supplied occurrences disagree, or
// when none were supplied and the constructor has no map to inherit a
// binding from.
func Hash(fn Fn) Option {
	return func(opts *mapOptions) {
		opts.hashes = append(opts.hashes, fn)
	}
}

// Bins is an option for the constructors that sets the initial number
// of buckets instead of the default 1. Bins panics when n is less than
// one.
func Bins(n int) Option {
	return func(opts *mapOptions) {
		if n < 1 {
			panic(errBins)
		}
		opts.bins = n
	}
}

// LoadThreshold is an option for the constructors that sets the largest
// ratio of entries to buckets the map will hold before doubling its
// bucket array, instead of the default 1.0. LoadThreshold panics when t
// is not positive.
func LoadThreshold(t float64) Option {
	return func(opts *mapOptions) {
		if t <= 0 {
			panic(errLoadThreshold)
		}
		opts.loadThreshold = t
	}
}

func makeOptions(options []Option) mapOptions {
	var opts mapOptions
	for _, opt := range options {
		opt(&opts)
	}
	return opts
}

// resolveHash reduces the hash functions supplied at construction to
// the one the map is bound to. fallback is the binding adopted when
// none were supplied; it is non-nil only when copying another map.
func resolveHash(supplied []Fn, fallback Fn) Fn {
	var resolved Fn
	for _, fn := range supplied {
		switch {
		case fn == nil:
		case resolved == nil:
			resolved = fn
		case !sameFn(resolved, fn):
			panic(fmt.Errorf("%w: two different functions supplied",
				ErrHashFunc))
		}
	}
	if resolved == nil {
		resolved = fallback
	}
	if resolved == nil {
		panic(fmt.Errorf("%w: no function supplied", ErrHashFunc))
	}
	return resolved
}

// sameFn reports whether two hash functions are the same function.
// Function values are not comparable in go so the comparison uses the
// code pointers reported by reflect.
func sameFn(a, b Fn) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// Map is a mutable hash table. Entries live in an array of buckets,
// each bucket holding a separately chained list of the entries it
// houses; lookups hash the key with the function bound at construction
// and walk one chain. All operations mutate the map in place.
//
// A Map must be created by Empty, New or From; the zero Map has no
// hash function bound and no buckets and is not usable. Maps are not
// safe for concurrent use.
type Map struct {
	hash          Fn
	bins          []*node
	used          int
	modCount      int
	loadThreshold float64
}

// Empty returns a new empty map. The hash function must be supplied
// with the Hash option; the initial bucket count and the load threshold
// may be changed from their defaults with Bins and LoadThreshold.
func Empty(options ...Option) *Map {
	opts := makeOptions(options)
	bins := opts.bins
	if bins == 0 {
		bins = defaultBins
	}
	loadThreshold := opts.loadThreshold
	if loadThreshold == 0 {
		loadThreshold = defaultLoadThreshold
	}
	return &Map{
		hash:          resolveHash(opts.hashes, nil),
		bins:          newBins(bins),
		loadThreshold: loadThreshold,
	}
}

// New converts a list of elements to a map that hashes its keys with
// fn, treating the elements as alternating keys and values. New will
// panic if the number of elements is not even.
func New(fn Fn, elems ...interface{}) *Map {
	return newWithOptions(elems, Hash(fn))
}

func newWithOptions(elems []interface{}, options ...Option) *Map {
	if len(elems)%2 != 0 {
		panic(errOddElements)
	}
	out := Empty(options...)
	for i := 0; i < len(elems); i += 2 {
		out.Put(elems[i], elems[i+1])
	}
	return out
}

// From will convert many different go types to a mutable map.
// Converting some types is more efficient than others and the
// mechanisms are described below. Options are honored by every
// conversion; a hash function must be supplied with Hash unless the
// value is a *Map, in which case the source's binding is inherited when
// none is supplied.
//
// *Map:
//    A copy of the source map is made; options left unsupplied inherit
//    the source's bucket count and load threshold. When the hash
//    binding and the bucket count are unchanged the bucket layout is
//    duplicated directly; otherwise the entries are rehashed into the
//    new map.
// map[interface{}]interface{}:
//    Converted by looping over the map and calling Put with each
//    key value pair.
// []pair.Pair:
//    Converted by looping over the slice and calling Put with each
//    pair's fields.
// []interface{}:
//    Converted by treating the elements as alternating keys and
//    values; see New.
// seq.Seqable:
//    Converted by reducing over the sequence of the value, treating
//    the elements as pair.Pair entries.
// seq.Sequence:
//    Converted by reducing over the sequence, treating the elements
//    as pair.Pair entries.
// map[kT]vT:
//    Converted with reflection by looping over the map and calling
//    Put with each key value pair. This is the slowest conversion.
//
// Any other type yields an empty map.
func From(value interface{}, options ...Option) *Map {
	switch v := value.(type) {
	case *Map:
		return v.copy(options)
	case map[interface{}]interface{}:
		out := Empty(options...)
		for key, val := range v {
			out.Put(key, val)
		}
		return out
	case []pair.Pair:
		out := Empty(options...)
		for _, p := range v {
			out.Put(p.First, p.Second)
		}
		return out
	case []interface{}:
		return newWithOptions(v, options...)
	case seq.Seqable:
		return mapFromSequence(seq.Seq(v), options...)
	case seq.Sequence:
		return mapFromSequence(v, options...)
	default:
		return mapFromReflection(value, options...)
	}
}

// copy implements From for map sources. Options left unsupplied
// inherit from m: the hash binding, the bucket count and the load
// threshold. When the binding and the bucket count both stay the
// source's, the bucket layout is duplicated directly; otherwise the
// entries are rehashed through PutAll.
func (m *Map) copy(options []Option) *Map {
	opts := makeOptions(options)
	bins := opts.bins
	if bins == 0 {
		bins = len(m.bins)
	}
	loadThreshold := opts.loadThreshold
	if loadThreshold == 0 {
		loadThreshold = m.loadThreshold
	}
	out := &Map{
		hash:          resolveHash(opts.hashes, m.hash),
		bins:          newBins(bins),
		loadThreshold: loadThreshold,
	}
	if bins == len(m.bins) && sameFn(out.hash, m.hash) {
		for i, head := range m.bins {
			out.bins[i] = copyChain(head)
		}
		out.used = m.used
		return out
	}
	out.PutAll(m)
	return out
}

func mapFromSequence(coll seq.Sequence, options ...Option) *Map {
	if coll == nil {
		return Empty(options...)
	}
	return seq.Reduce(func(result *Map, input interface{}) *Map {
		entry := input.(pair.Pair)
		result.Put(entry.First, entry.Second)
		return result
	}, Empty(options...), coll).(*Map)
}

func mapFromReflection(value interface{}, options ...Option) *Map {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Map:
		out := Empty(options...)
		iter := v.MapRange()
		for iter.Next() {
			out.Put(iter.Key().Interface(), iter.Value().Interface())
		}
		return out
	case reflect.Slice:
		elems := make([]interface{}, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			elems = append(elems, v.Index(i).Interface())
		}
		return newWithOptions(elems, options...)
	default:
		return Empty(options...)
	}
}

// IsEmpty returns whether the map holds any entries.
func (m *Map) IsEmpty() bool {
	return m.used == 0
}

// Length returns the number of entries in the map.
func (m *Map) Length() int {
	return m.used
}

// Contains will test if key exists in the map.
func (m *Map) Contains(key interface{}) bool {
	n, _ := chainFind(m.bins[m.compress(key)], key)
	return n != nil
}

// ContainsValue will test if any entry of the map holds value. Unlike
// Contains it cannot use the hash function and scans every entry.
func (m *Map) ContainsValue(value interface{}) bool {
	for _, head := range m.bins {
		for n := head; !n.sentinel(); n = n.next {
			if dyn.Equal(n.entry.Second, value) {
				return true
			}
		}
	}
	return false
}

// At returns the value associated with key. At panics with an error
// wrapping ErrKeyNotFound when the key has no entry; Find reports
// absence as a value instead.
func (m *Map) At(key interface{}) interface{} {
	n, _ := chainFind(m.bins[m.compress(key)], key)
	if n == nil {
		panic(fmt.Errorf("%w: %v", ErrKeyNotFound, key))
	}
	return n.entry.Second
}

// Find will return the value for a key if it exists in the map and
// whether the key exists in the map. For non-nil values, exists will
// always be true.
func (m *Map) Find(key interface{}) (value interface{}, exists bool) {
	n, _ := chainFind(m.bins[m.compress(key)], key)
	if n == nil {
		return nil, false
	}
	return n.entry.Second, true
}

// Ref returns a pointer to the value slot for key, inserting an entry
// with a nil value first when the key is absent. That insertion is a
// structural change like Put of a new key; writing through the pointer
// afterwards is a value overwrite and is invisible to iterators. The
// pointer stays valid until the entry is removed.
func (m *Map) Ref(key interface{}) *interface{} {
	n, _ := chainFind(m.bins[m.compress(key)], key)
	if n == nil {
		m.Put(key, nil)
		// Put may have resized, find the slot under the new layout.
		n, _ = chainFind(m.bins[m.compress(key)], key)
	}
	return &n.entry.Second
}

// Put associates value with key and returns the value previously
// associated with key, or value itself when the key was absent. Putting
// a new key is a structural change: it may double the bucket array and
// it invalidates the map's iterators. Overwriting the value of a key
// already present changes no structure and stays invisible to
// iterators.
func (m *Map) Put(key, value interface{}) interface{} {
	n, _ := chainFind(m.bins[m.compress(key)], key)
	if n != nil {
		prev := n.entry.Second
		n.entry.Second = value
		return prev
	}
	m.used++
	m.ensureLoadThreshold(m.used)
	i := m.compress(key)
	m.bins[i] = &node{entry: pair.New(key, value), next: m.bins[i]}
	m.modCount++
	return value
}

// PutAll puts every entry of a From style value into the map,
// overwriting the values of keys already present. It returns the
// number of entries processed, which counts overwrites as well as
// insertions. PutAll panics when the value holds alternating keys and
// values and their number is odd, and when the value is of no
// convertible type.
func (m *Map) PutAll(value interface{}) int {
	switch v := value.(type) {
	case *Map:
		count := 0
		v.Range(func(p pair.Pair) {
			m.Put(p.First, p.Second)
			count++
		})
		return count
	case map[interface{}]interface{}:
		for key, val := range v {
			m.Put(key, val)
		}
		return len(v)
	case []pair.Pair:
		for _, p := range v {
			m.Put(p.First, p.Second)
		}
		return len(v)
	case []interface{}:
		if len(v)%2 != 0 {
			panic(errOddElements)
		}
		for i := 0; i < len(v); i += 2 {
			m.Put(v[i], v[i+1])
		}
		return len(v) / 2
	case seq.Seqable:
		return m.putSequence(seq.Seq(v))
	case seq.Sequence:
		return m.putSequence(v)
	default:
		return m.putReflection(value)
	}
}

func (m *Map) putSequence(coll seq.Sequence) int {
	count := 0
	for s := coll; s != nil; s = s.Next() {
		p := s.First().(pair.Pair)
		m.Put(p.First, p.Second)
		count++
	}
	return count
}

func (m *Map) putReflection(value interface{}) int {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			m.Put(iter.Key().Interface(), iter.Value().Interface())
		}
		return v.Len()
	case reflect.Slice:
		elems := make([]interface{}, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			elems = append(elems, v.Index(i).Interface())
		}
		return m.PutAll(elems)
	default:
		panic(errConvert)
	}
}

// Erase removes the entry for key and returns the value it held. Erase
// panics with an error wrapping ErrKeyNotFound when the key has no
// entry. Erasing is a structural change and invalidates the map's
// iterators.
func (m *Map) Erase(key interface{}) interface{} {
	bin := m.compress(key)
	n, prev := chainFind(m.bins[bin], key)
	if n == nil {
		panic(fmt.Errorf("%w: %v", ErrKeyNotFound, key))
	}
	if prev == nil {
		m.bins[bin] = n.next
	} else {
		prev.next = n.next
	}
	m.used--
	m.modCount++
	return n.entry.Second
}

// Clear removes every entry from the map. The bucket array keeps its
// size and every bucket keeps its sentinel. Clear is one structural
// change no matter how many entries it removes.
func (m *Map) Clear() {
	for i, head := range m.bins {
		n := head
		for !n.sentinel() {
			n = n.next
		}
		m.bins[i] = n
	}
	m.used = 0
	m.modCount++
}

// Equal tests if two maps are Equal by comparing the entries of each.
// Two maps are equal when they hold equal values for the same keys, no
// matter their bucket counts, hash functions or insertion orders. Equal
// implements the Equaler which allows for deep comparisons when there
// are maps of maps.
func (m *Map) Equal(o interface{}) bool {
	other, ok := o.(*Map)
	if !ok {
		return ok
	}
	if m.used != other.used {
		return false
	}
	foundAll := true
	m.Range(func(p pair.Pair) bool {
		v, found := other.Find(p.First)
		if !found || !dyn.Equal(v, p.Second) {
			foundAll = false
			return false
		}
		return true
	})
	return foundAll
}

// Range calls the passed in function on each entry of the map, in
// bucket then chain order. The function passed in may be of many
// types:
//
// func(key, value interface{}) bool:
//    Takes empty interfaces and returns if the loop should continue.
//    Useful to avoid reflection where the keys and values are of
//    mixed types.
// func(key, value interface{}):
//    Takes empty interfaces.
//    Useful to avoid reflection where the keys and values are of
//    mixed types.
// func(entry pair.Pair) bool:
//    Takes the entry as a pair and returns if the loop should
//    continue.
// func(entry pair.Pair):
//    Takes the entry as a pair.
// func(k kT, v vT) bool:
//    Takes a key of key type and a value of value type and returns if
//    the loop should continue. Is called with reflection and will
//    panic if the kT and vT types are incorrect.
// func(k kT, v vT):
//    Takes a key of key type and a value of value type. Is called
//    with reflection and will panic if the kT and vT types are
//    incorrect.
//
// Range will panic if passed anything that doesn't match one of these
// signatures. Range walks the map with an iterator, so structurally
// changing the map from inside the function panics with an error
// wrapping ErrConcurrentModification; overwriting values of existing
// keys is fine.
func (m *Map) Range(do interface{}) {
	// NOTE: Update other functions using the same pattern
	//       when modifying the below.
	//       This code is inlined to avoid heap allocation of
	//       the closure.
	var f func(p pair.Pair) bool
	switch fn := do.(type) {
	case func(key, value interface{}) bool:
		f = func(p pair.Pair) bool {
			return fn(p.First, p.Second)
		}
	case func(key, value interface{}):
		f = func(p pair.Pair) bool {
			fn(p.First, p.Second)
			return true
		}
	case func(entry pair.Pair) bool:
		f = fn
	case func(entry pair.Pair):
		f = func(p pair.Pair) bool {
			fn(p)
			return true
		}
	default:
		f = genRangeFunc(do)
	}
	end := m.End()
	for it := m.Begin(); !it.Equal(end); it.Next() {
		if !f(*it.Entry()) {
			break
		}
	}
}

func genRangeFunc(do interface{}) func(p pair.Pair) bool {
	rv := reflect.ValueOf(do)
	if rv.Kind() != reflect.Func {
		panic(errRangeSig)
	}
	rt := rv.Type()
	if rt.NumIn() != 2 || rt.NumOut() > 1 {
		panic(errRangeSig)
	}
	if rt.NumOut() == 1 &&
		rt.Out(0).Kind() != reflect.Bool {
		panic(errRangeSig)
	}
	return func(p pair.Pair) bool {
		out := dyn.Apply(do, p.First, p.Second)
		if out != nil {
			return out.(bool)
		}
		return true
	}
}

// String returns a string representation of the map.
func (m *Map) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	m.Range(func(entry pair.Pair) {
		fmt.Fprintf(&b, "%v ", entry)
	})
	fmt.Fprint(&b, "}")
	return b.String()
}

// DebugString renders the internal layout of the map: every bucket
// chain in index order with its terminating sentinel, then the
// occupancy counters. The output is for debugging sessions and is not
// stable.
func (m *Map) DebugString() string {
	var b strings.Builder
	for i, head := range m.bins {
		fmt.Fprintf(&b, "bin[%d]:", i)
		for n := head; !n.sentinel(); n = n.next {
			fmt.Fprintf(&b, " %v", n.entry)
		}
		fmt.Fprintln(&b, " <sentinel>")
	}
	fmt.Fprintf(&b, "used=%d bins=%d threshold=%v generation=%d",
		m.used, len(m.bins), m.loadThreshold, m.modCount)
	return b.String()
}

// AsNative returns the map converted to a go native map type.
func (m *Map) AsNative() map[interface{}]interface{} {
	out := make(map[interface{}]interface{}, m.used)
	m.Range(func(key, value interface{}) {
		out[key] = value
	})
	return out
}

// Apply takes an arbitrary number of arguments and returns the value
// At the first argument. Apply allows map to be called as a function
// by the 'dyn' library. Unlike At it returns nil for an absent key.
func (m *Map) Apply(args ...interface{}) interface{} {
	key := args[0]
	value, _ := m.Find(key)
	return value
}
