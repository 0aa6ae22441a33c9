package hashmap

import (
	"fmt"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/mutable/hashfn"
	"jsouthworth.net/go/mutable/pair"
)

func ExampleEmpty() {
	// Empty needs a hash function to bind; the hashfn package
	// provides ready made ones.
	m := Empty(Hash(hashfn.Universal))
	fmt.Println(m)
	// Output: { }
}

func ExampleNew() {
	// New associates a list of elements pairwise.
	m := New(hashfn.Int, 1, "one", 2, "two")
	fmt.Println(m.At(1), m.At(2))
	// Output: one two
}

func ExampleFrom_map() {
	// From generates a map from several different types.
	// One of these types are go native maps.
	m := From(map[string]bool{"a": true, "b": false}, Hash(hashfn.String))
	fmt.Println(m.Length())
	// Output: 2
}

func ExampleFrom_pairs() {
	m := From([]pair.Pair{
		pair.New(1, "one"),
		pair.New(2, "two"),
	}, Hash(hashfn.Int), Bins(4))
	fmt.Println(m)
	// Output: { [1 one] [2 two] }
}

func ExampleMap_Put() {
	m := New(hashfn.String, "a", 1)

	// Putting a present key returns the replaced value,
	// putting an absent one returns the value put.
	fmt.Println(m.Put("a", 3))
	fmt.Println(m.Put("b", 2))
	fmt.Println(m.Length())
	// Output:
	// 1
	// 2
	// 2
}

func ExampleMap_Erase() {
	m := New(hashfn.String, "a", 1, "b", 2)
	fmt.Println(m.Erase("b"))
	fmt.Println(m.Length())
	// Output:
	// 2
	// 1
}

func ExampleMap_Ref() {
	// Ref gives a pointer to the value slot, inserting the entry
	// first when the key is new.
	m := Empty(Hash(hashfn.String))
	v := m.Ref("visits")
	*v = 1
	fmt.Println(m.At("visits"))
	// Output: 1
}

func ExampleMap_Find() {
	m := New(hashfn.String, "a", 1)
	v, ok := m.Find("missing")
	fmt.Println(v, ok)
	// Output: <nil> false
}

func ExampleMap_Begin() {
	// Buckets are visited in index order, so with an identity
	// hash and spare buckets small ints come out sorted.
	m := Empty(Hash(hashfn.Int), Bins(8))
	m.Put(3, "c")
	m.Put(1, "a")
	m.Put(2, "b")

	end := m.End()
	for it := m.Begin(); !it.Equal(end); it.Next() {
		fmt.Println(it.Entry())
	}
	// Output:
	// [1 a]
	// [2 b]
	// [3 c]
}

func ExampleIterator_Erase() {
	m := Empty(Hash(hashfn.Int), Bins(8))
	for i := 1; i <= 4; i++ {
		m.Put(i, i*i)
	}

	// Drop the odd keys while walking; Erase moves the cursor on
	// and the following Next only re-arms it.
	end := m.End()
	for it := m.Begin(); !it.Equal(end); {
		if it.Entry().First.(int)%2 != 0 {
			it.Erase()
		}
		it.Next()
	}
	fmt.Println(m)
	// Output: { [2 4] [4 16] }
}

func ExampleMap_Range() {
	m := Empty(Hash(hashfn.Int), Bins(4))
	m.Put(1, 10)
	m.Put(2, 20)
	m.Range(func(key, value interface{}) {
		fmt.Println(key, value)
	})
	// Output:
	// 1 10
	// 2 20
}

func ExampleMap_Equal() {
	// Equality compares entries only; the hash functions and
	// bucket layouts of the two maps may differ.
	a := New(hashfn.String, "x", 1)
	b := New(hashfn.Universal, "x", 1)
	fmt.Println(a.Equal(b))
	// Output: true
}

func ExampleMap_Seq() {
	m := Empty(Hash(hashfn.Int), Bins(4))
	m.Put(1, 2)
	m.Put(3, 4)
	fmt.Println(m.Seq())
	// Output: ([1 2] [3 4])
}

func ExampleMap_AsNative() {
	m := New(hashfn.String, "a", true)
	gm := m.AsNative()
	fmt.Printf("%T %v\n", gm, gm["a"])
	// Output: map[interface {}]interface {} true
}

func ExampleMap_Apply() {
	// Apply lets a map act as a function of its keys.
	m := New(hashfn.String, "a", 1)
	fmt.Println(dyn.Apply(m, "a"))
	// Output: 1
}
