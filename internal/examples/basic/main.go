package main

import (
	"fmt"

	"github.com/pisoj/go-netid64"
)

func main() {
	id, err := netid64.Make(1, 7, 42)
	if err != nil {
		panic(err)
	}

	fmt.Println(id) // canonical decimal triple
	// 1:7:42
	fmt.Println(id.ToHex()) // raw packed value, 16 uppercase hex digits
	// 0x010007000000002A
	b := id.ToBytes()
	fmt.Println(b[:]) // 8-byte big-endian wire form
	// [1 0 7 0 0 0 0 42]
	fmt.Println(id.GetKind(), id.GetNode(), id.GetCounter())
	// 1 7 42

	// Both textual grammars parse back to the same identifier.
	fromTriple, _ := netid64.Parse("1:7:42")
	fromHex, _ := netid64.Parse("0x010007000000002A")
	fmt.Println(fromTriple == id, fromHex == id)
	// true true

	// Out-of-range counters are rejected, never truncated.
	_, err = netid64.Make(1, 7, netid64.MaxCounter+1)
	fmt.Println(err)
	// netid64: field out of range: counter 1099511627776 exceeds 40 bits
}
