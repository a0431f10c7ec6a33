package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pisoj/go-netid64"
	_ "modernc.org/sqlite"
)

type Entity struct {
	ID       netid64.NetID64
	Name     string
	ParentID netid64.NullNetID64 // Optional parent reference
}

const (
	kindEntity = 1
	localNode  = 7
)

func main() {
	fmt.Println("=== NetID64 Nil Usage Examples ===")

	seq := netid64.NewSequence(kindEntity, localNode)

	// Example 1: Using the Nil constant
	fmt.Println("1. Nil Constant:")
	fmt.Printf("   Nil value: %d\n", netid64.Nil.Uint64Value())
	fmt.Printf("   Nil hex: %s\n", netid64.Nil.ToHex())
	fmt.Printf("   Is nil: %v\n\n", netid64.Nil.IsNil())

	// Example 2: Checking if an ID is nil
	fmt.Println("2. Checking for Nil IDs:")
	var uninitializedID netid64.NetID64
	rootID, _ := seq.Next()

	fmt.Printf("   Uninitialized ID is nil: %v\n", uninitializedID.IsNil())
	fmt.Printf("   Sequence ID is nil: %v\n\n", rootID.IsNil())

	// Example 3: NullNetID64 for optional fields
	fmt.Println("3. NullNetID64 for Optional Fields:")

	root := Entity{
		ID:       rootID,
		Name:     "Root",
		ParentID: netid64.NullNetID64{Valid: false}, // No parent
	}
	fmt.Printf("   Root entity: %s (Parent: %v)\n", root.Name, root.ParentID.Valid)

	childID, _ := seq.Next()
	child := Entity{
		ID:       childID,
		Name:     "Child",
		ParentID: netid64.NullNetID64{ID: rootID, Valid: true},
	}
	fmt.Printf("   Child entity: %s (Parent: %v)\n\n", child.Name, child.ParentID.Valid)

	// Example 4: JSON marshaling with null values
	fmt.Println("4. JSON Marshaling:")

	rootJSON, _ := json.MarshalIndent(root, "   ", "  ")
	fmt.Printf("   Root entity JSON:\n   %s\n\n", string(rootJSON))

	childJSON, _ := json.MarshalIndent(child, "   ", "  ")
	fmt.Printf("   Child entity JSON:\n   %s\n\n", string(childJSON))

	// Example 5: Database usage with null values
	fmt.Println("5. Database Usage with Null Values:")
	if err := databaseExample(seq); err != nil {
		log.Printf("   Database example error: %v\n", err)
	}
}

func databaseExample(seq *netid64.Sequence) error {
	// Create temporary database
	tempDir, err := os.MkdirTemp("", "netid64-example-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "test.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	// Create table with nullable parent_id
	_, err = db.Exec(`
		CREATE TABLE entities (
			id BLOB PRIMARY KEY,
			name TEXT NOT NULL,
			parent_id BLOB
		)
	`)
	if err != nil {
		return err
	}

	// Insert root entity (no parent)
	rootID, err := seq.Next()
	if err != nil {
		return err
	}
	_, err = db.Exec(
		"INSERT INTO entities (id, name, parent_id) VALUES (?, ?, ?)",
		rootID,
		"Root",
		netid64.NullNetID64{Valid: false},
	)
	if err != nil {
		return err
	}
	fmt.Println("   ✓ Inserted root entity with NULL parent")

	// Insert child entity (with parent)
	childID, err := seq.Next()
	if err != nil {
		return err
	}
	_, err = db.Exec(
		"INSERT INTO entities (id, name, parent_id) VALUES (?, ?, ?)",
		childID,
		"Child",
		netid64.NullNetID64{ID: rootID, Valid: true},
	)
	if err != nil {
		return err
	}
	fmt.Println("   ✓ Inserted child entity with parent reference")

	// Query and display results
	rows, err := db.Query("SELECT id, name, parent_id FROM entities")
	if err != nil {
		return err
	}
	defer rows.Close()

	fmt.Println("\n   Retrieved entities:")
	for rows.Next() {
		var e Entity
		if err := rows.Scan(&e.ID, &e.Name, &e.ParentID); err != nil {
			return err
		}

		if e.ParentID.Valid {
			fmt.Printf("     - %s (ID: %s, Parent: %s)\n", e.Name, e.ID, e.ParentID.ID)
		} else {
			fmt.Printf("     - %s (ID: %s, Parent: NULL)\n", e.Name, e.ID)
		}
	}

	return rows.Err()
}
