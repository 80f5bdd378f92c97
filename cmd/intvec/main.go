// Command intvec fills an array with the integers 1..100 and prints it
// through the visitor interface.
package main

import (
	"fmt"
	"log"

	"github.com/pavanmanishd/dynarray"
)

func printItem(item int, index *int) {
	fmt.Printf("iv[%d]=%d\n", *index, item)
	*index++
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("intvec: ")

	iv := dynarray.New[int](-1, nil)
	defer iv.Release()

	// Optional, but avoids regrowing when the count is known up front.
	if err := iv.Reserve(100); err != nil {
		log.Fatalf("reserve: %v", err)
	}
	for i := 1; i <= 100; i++ {
		if err := iv.PushBack(i); err != nil {
			log.Fatalf("push %d: %s", i, iv.ErrorDescription())
		}
	}

	index := 0
	dynarray.ForEach(iv, printItem, &index)
}
