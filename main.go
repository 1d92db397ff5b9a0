// Package main provides the entry point for z8ksim.
// z8ksim is a standalone host environment for a Z8000 CPU core,
// centered on the byte-order-aware register-bank layout.
//
// For the full CLI, use: go run ./cmd/z8ksim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("z8ksim - Z8000 register bank layout adapter")
	fmt.Println("")
	fmt.Println("Usage: z8ksim [options]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -order      Register bank layout: host, little, big")
	fmt.Println("  -segmented  Format addresses in segmented mode")
	fmt.Println("  -debug      Enable debug logging")
	fmt.Println("  -q          Only log errors")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/z8ksim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/z8ksim' instead.")
	}
}
