package main

import (
	"fmt"
	"log"

	"github.com/l00pss/treego"
)

func main() {
	tree, err := treego.New[int, string](3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== B+Tree Example ===")
	fmt.Println("\nInserting values...")

	tree.Put(10, "Value-10")
	tree.Put(20, "Value-20")
	tree.Put(5, "Value-5")
	tree.Put(15, "Value-15")
	tree.Put(25, "Value-25")
	tree.Put(1, "Value-1")
	tree.Put(30, "Value-30")
	tree.Put(12, "Value-12")
	tree.Put(18, "Value-18")

	fmt.Printf("Total entries: %d, height: %d\n", tree.Size(), tree.Height())

	fmt.Println("\n--- Get ---")
	if value, found := tree.Get(15); found {
		fmt.Printf("Key 15: %s\n", value)
	}
	if _, found := tree.Get(99); !found {
		fmt.Println("Key 99: not found")
	}

	fmt.Println("\n--- Range Query (10 to 25) ---")
	values, err := tree.GetRange(10, 25)
	if err != nil {
		log.Fatal(err)
	}
	for _, v := range values {
		fmt.Printf("  %s\n", v)
	}

	fmt.Println("\n--- Batched Lookup ([5, 12, 99]) ---")
	for i, r := range tree.GetMany([]int{5, 12, 99}) {
		fmt.Printf("  key[%d]: found=%v value=%q\n", i, r.Found, r.Value)
	}

	fmt.Println("\n--- Update ---")
	tree.Put(10, "Updated-10")
	if value, found := tree.Get(10); found {
		fmt.Printf("Key 10 updated: %s\n", value)
	}

	fmt.Println("\n--- Delete ---")
	tree.Remove(5)
	fmt.Printf("After deleting key 5, total entries: %d\n", tree.Size())

	fmt.Println("\n--- All Entries (Sorted) ---")
	for _, e := range tree.Entries() {
		fmt.Printf("  Key: %d, Value: %s\n", e.Key, e.Value)
	}

	fmt.Println("\n--- String() ---")
	fmt.Print(tree.String())
}
