package codec_test

import (
	"fmt"
	"log"

	"github.com/okreppe/hoard/pkg/codec"
)

// ExampleEscape demonstrates mapping a namespace to a file name fragment
func ExampleEscape() {
	fmt.Println(codec.Escape("user:sessions/eu"))
	// Output: user%3Asessions%2Feu
}

// ExampleUnescape demonstrates recovering a namespace from a file name
func ExampleUnescape() {
	ns, err := codec.Unescape("user%3Asessions%2Feu")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(ns)
	// Output: user:sessions/eu
}
