package wordbank_test

import (
	"fmt"

	"github.com/katalvlaran/wordgroups/wordbank"
)

// ExampleNew shows how shared words are detected across categories.
func ExampleNew() {
	b, err := wordbank.New(map[string][]string{
		"fruit":  {"apple", "banana", "orange", "pear"},
		"colors": {"red", "Orange", "blue", "green"},
		"tiny":   {"a", "b"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(b.Categories())
	fmt.Println(b.Memberships("orange"))
	fmt.Println(b.Exclusive("pear", "fruit"), b.Exclusive("orange", "fruit"))
	// Output:
	// [colors fruit]
	// [colors fruit]
	// true false
}
