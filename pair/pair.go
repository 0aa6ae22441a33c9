// Package pair implements the generic two field tuple the container
// packages use to represent a key/value entry.
package pair // import "jsouthworth.net/go/mutable/pair"

import (
	"fmt"

	"jsouthworth.net/go/dyn"
)

// Pair is an ordered pair of arbitrary values. The container packages
// store entries as pairs with the key in First and the value in
// Second.
type Pair struct {
	First  interface{}
	Second interface{}
}

// New returns the pair of first and second.
func New(first, second interface{}) Pair {
	return Pair{First: first, Second: second}
}

// Equal tests if two pairs are equal by comparing both fields with the
// dyn library. Equal implements the Equaler which allows for deep
// comparisons when pairs hold containers or other pairs.
func (p Pair) Equal(o interface{}) bool {
	other, ok := o.(Pair)
	if !ok {
		return ok
	}
	return dyn.Equal(p.First, other.First) &&
		dyn.Equal(p.Second, other.Second)
}

// String returns a string representation of the pair.
func (p Pair) String() string {
	return fmt.Sprintf("[%v %v]", p.First, p.Second)
}
