package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
)

// Prints a fresh 64-byte secret for the jwt.secret config key.
func main() {
	buf := make([]byte, 64)
	if _, err := rand.Read(buf); err != nil {
		fmt.Fprintln(os.Stderr, "generate secret:", err)
		os.Exit(1)
	}
	fmt.Println(hex.EncodeToString(buf))
}
