// Package hashfn provides ready made hash functions for the hashmap
// package. Every function here is deterministic and maps equal keys to
// equal integers, which is all a map requires of its hash function.
// Results may be negative; the map reduces them to a bucket index
// itself.
//
// The typed functions trade generality for speed and panic when handed
// a key of the wrong type. Universal accepts any value.
package hashfn // import "jsouthworth.net/go/mutable/hashfn"

import (
	"github.com/cespare/xxhash/v2"
	"jsouthworth.net/go/hash"
)

// Universal hashes a key of any go type. It is the right default when
// a map holds hetrogenous keys or when no typed function below fits. A
// type carrying its own Hash() uintptr method is hashed through that
// method.
func Universal(key interface{}) int {
	return int(hash.Any(key, 0))
}

// String hashes string keys with xxhash. It panics when key is not a
// string.
func String(key interface{}) int {
	return int(xxhash.Sum64String(key.(string)))
}

// Bytes hashes []byte keys with xxhash. It panics when key is not a
// []byte.
func Bytes(key interface{}) int {
	return int(xxhash.Sum64(key.([]byte)))
}

// Int hashes int keys to themselves. It panics when key is not an int.
func Int(key interface{}) int {
	return key.(int)
}
