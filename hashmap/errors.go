package hashmap

import "errors"

// Misuse of a map or of one of its iterators panics with an error that
// is or wraps one of these values. A caller that needs to distinguish
// the failures may recover and test with errors.Is.
var (
	// ErrHashFunc is raised at construction when no usable hash
	// function was supplied, or when Hash options supplied two
	// different ones.
	ErrHashFunc = errors.New("hashmap: invalid hash function binding")

	// ErrKeyNotFound is raised by At and Erase when the key has no
	// entry in the map.
	ErrKeyNotFound = errors.New("hashmap: key not found")

	// ErrConcurrentModification is raised by an iterator whose map
	// changed structurally behind its back.
	ErrConcurrentModification = errors.New("hashmap: map modified during iteration")

	// ErrCannotErase is raised by Erase on an iterator that already
	// erased its entry or that is exhausted.
	ErrCannotErase = errors.New("hashmap: cannot erase at cursor")

	// ErrIllegalPosition is raised when dereferencing an iterator
	// that is exhausted or that erased its entry and has not been
	// advanced since.
	ErrIllegalPosition = errors.New("hashmap: iterator position is illegal")

	// ErrIteratorType is raised when comparing an iterator to a
	// value of any other type.
	ErrIteratorType = errors.New("hashmap: cannot compare iterators of different types")

	// ErrDifferentIterators is raised when comparing iterators that
	// come from different maps.
	ErrDifferentIterators = errors.New("hashmap: cannot compare iterators of different maps")
)

var (
	errOddElements   = errors.New("must supply an even number elements")
	errRangeSig      = errors.New("Range requires a function: func(k kT, v vT) bool or func(k kT, v vT)")
	errBins          = errors.New("initial bin count must be at least 1")
	errLoadThreshold = errors.New("load threshold must be greater than 0")
	errConvert       = errors.New("cannot convert supplied value to a map")
)
