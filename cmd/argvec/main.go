// Command argvec copies its command-line arguments into owned records held
// by an array, prints them, and lets the array's destructor release them.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pavanmanishd/dynarray"
)

// argument holds its own copy of a command-line argument.
type argument struct {
	str string
	len int
}

func newArgument(s string) *argument {
	return &argument{str: strings.Clone(s), len: len(s)}
}

// free drops the record's copy. Records are not reused afterwards.
func (a *argument) free() {
	a.str = ""
	a.len = 0
}

func printArgument(arg *argument, _ struct{}) {
	fmt.Printf("str=%q len=%d\n", arg.str, arg.len)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("argvec: ")

	if len(os.Args) == 1 {
		log.Fatal("nothing to do, no arguments provided")
	}

	v := dynarray.New[*argument](nil, (*argument).free)
	if err := v.Reserve(len(os.Args) - 1); err != nil {
		log.Fatalf("reserve: %v", err)
	}
	for _, s := range os.Args[1:] {
		if err := v.PushBack(newArgument(s)); err != nil {
			log.Fatalf("push %q: %s", s, v.ErrorDescription())
		}
	}

	dynarray.ForEach(v, printArgument, struct{}{})

	// Runs free on every argument.
	v.Release()
}
