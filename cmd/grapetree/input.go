package main

import (
	"fmt"
	"io"
	"os"
)

// readInput reads the raw request JSON from path, or from stdin when path
// is "-" or empty.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("grapetree: reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grapetree: reading %s: %w", path, err)
	}
	return data, nil
}
