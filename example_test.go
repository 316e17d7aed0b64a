package passgenx_test

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/passgenx"
)

// Example_generate derives the same password twice from the same inputs.
func Example_generate() {
	req := passgenx.NewRequest("github.com", "password123", passgenx.DefaultIdentifier)

	first, err := passgenx.Generate(req)
	if err != nil {
		log.Fatal(err)
	}
	second, _ := passgenx.Generate(req)

	fmt.Println(first)
	fmt.Println(first == second)
	// Output:
	// KpBJ-$xQ|#(K$6M|
	// true
}

// Example_vault stores a fresh identifier and derives a password with it.
func Example_vault() {
	tmpDir, err := os.MkdirTemp("", "passgenx-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := passgenx.OpenVault(
		passgenx.WithPath(filepath.Join(tmpDir, "vault.yml")),
		passgenx.WithRand(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})),
	)
	if err != nil {
		log.Fatal(err)
	}

	id, err := store.GenerateAndStore("github.com")
	if err != nil {
		log.Fatal(err)
	}

	stored, _ := store.GetIdentifier("github.com")
	fmt.Println(id, stored == id)
	fmt.Println(store.ListDomains())
	// Output:
	// 0102030405060708 true
	// [github.com]
}

// Example_emptyCharset shows the error returned when every pool is disabled.
func Example_emptyCharset() {
	req := passgenx.NewRequest("github.com", "password123", passgenx.DefaultIdentifier)
	req.Case = passgenx.CaseNone
	req.IncludeDigits = false
	req.IncludeSymbols = false

	_, err := passgenx.Generate(req)
	fmt.Println(errors.Is(err, passgenx.ErrConfiguration))
	// Output:
	// true
}
