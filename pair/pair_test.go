package pair

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestEqual(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("p.Equal(p)", prop.ForAll(
		func(first, second string) bool {
			p := New(first, second)
			return p.Equal(p)
		},
		gen.Identifier(),
		gen.Identifier(),
	))
	properties.Property("New(a,b).Equal(New(a,b))", prop.ForAll(
		func(first, second string) bool {
			return New(first, second).Equal(New(first, second))
		},
		gen.Identifier(),
		gen.Identifier(),
	))
	properties.Property("!New(a,b).Equal(New(b,a)) when a != b", prop.ForAll(
		func(first, second string) bool {
			if first == second {
				return true
			}
			return !New(first, second).Equal(New(second, first))
		},
		gen.Identifier(),
		gen.Identifier(),
	))
	properties.Property("!p.Equal(other type)", prop.ForAll(
		func(first, second string) bool {
			return !New(first, second).Equal(first)
		},
		gen.Identifier(),
		gen.Identifier(),
	))
	properties.TestingRun(t)
}

func TestEqualNested(t *testing.T) {
	outer := New("k", New("a", "b"))
	if !outer.Equal(New("k", New("a", "b"))) {
		t.Fatal("expected nested pairs to compare by value")
	}
	if outer.Equal(New("k", New("a", "c"))) {
		t.Fatal("expected nested pairs with different values to differ")
	}
}

func TestString(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("String renders both fields", prop.ForAll(
		func(first, second string) bool {
			return New(first, second).String() ==
				fmt.Sprintf("[%v %v]", first, second)
		},
		gen.Identifier(),
		gen.Identifier(),
	))
	properties.TestingRun(t)
}
