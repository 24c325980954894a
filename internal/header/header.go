package header

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load returns the lines of the header file with their line endings kept, so
// writing them back out reproduces the file byte for byte.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read header %s: %w", path, err)
	}
	return Split(string(data)), nil
}

// Split breaks s after every newline. A final line without a newline is kept
// as is.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
