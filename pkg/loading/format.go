// Package loading provides unified readers for capture file formats.
package loading

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Capture files are positional: every row is an ordered list of cells and
// the first row is the header. Readers return raw strings; interpretation
// of the columns happens in the latency package.

// Format defines the interface for a capture file format.
type Format interface {
	Name() string
	Extensions() []string
	Reader() Reader
}

// Reader reads all rows from a capture file.
type Reader interface {
	Open(path string) error
	Read() ([][]string, error)
	Close() error
}

var (
	registry    = make(map[string]Format)
	extRegistry = make(map[string]Format)
)

// Register adds a format to the registry.
func Register(f Format) {
	name := strings.ToLower(f.Name())
	registry[name] = f
	for _, ext := range f.Extensions() {
		extRegistry[strings.ToLower(ext)] = f
	}
}

// GetByPath returns a format based on the file's extension.
func GetByPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extRegistry[ext]
	return f, ok
}

// List returns all registered format names, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadRows loads all rows from a capture file, header included.
func LoadRows(path string) ([][]string, error) {
	f, ok := GetByPath(path)
	if !ok {
		return nil, fmt.Errorf("unsupported format for file %s (supported: %s)", path, strings.Join(List(), ", "))
	}

	reader := f.Reader()
	if err := reader.Open(path); err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer reader.Close()

	rows, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return rows, nil
}
