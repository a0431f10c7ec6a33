package main

import (
	"fmt"
	"sort"

	"github.com/pisoj/go-netid64"
)

func main() {
	fmt.Println("=== NetID64 Ordering Example ===")
	fmt.Println()

	// KIND occupies the most significant bits, so identifiers order first
	// by kind, then by node, then by counter.
	ids := []netid64.NetID64{
		netid64.MustMake(2, 0, 0),
		netid64.MustMake(1, 6, 0),
		netid64.MustMake(1, 5, netid64.MaxCounter),
		netid64.MustMake(1, 5, 3),
		netid64.MustMake(1, 5, 4),
	}

	sort.Slice(ids, func(i, j int) bool {
		return netid64.Compare(ids[i], ids[j]) < 0
	})

	fmt.Println("Sorted by packed value:")
	for _, id := range ids {
		fmt.Printf("  %-22s %s\n", id, id.ToHex())
	}
	fmt.Println()

	// The signed database mapping preserves exactly this order, so a
	// BIGINT/INTEGER column indexes and ranges the same way.
	fmt.Println("Signed database form (same order):")
	for _, id := range ids {
		fmt.Printf("  %-22s %d\n", id, netid64.SignedNetID64.FromID(id))
	}
}
