// Package hashmap implements a mutable hash table with separately
// chained buckets and a fail-fast external iterator. Entries hash into
// an array of buckets, each bucket holding a singly linked chain that
// ends at a sentinel node; when the ratio of entries to buckets passes
// the map's load threshold the bucket array doubles and the entries
// are rehoused. Every map is bound at construction to a caller
// supplied hash function and keeps that binding for its whole
// lifetime; the hashfn package provides ready made functions.
//
// The iterators returned by Begin and End detect structural changes
// made behind their back and panic, which catches iteration misuse in
// single goroutine code. Neither maps nor iterators are safe for
// concurrent use.
//
// A note about Key and Value equality. If you would like to override
// the default go equality operator for keys and values in this map
// library implement the Equal(other interface{}) bool function for the
// type. Otherwise '==' will be used with all its restrictions.
package hashmap
