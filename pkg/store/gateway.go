// Package store implements the JSON-array record store shared by the todo and notes managers:
// a gateway that owns one backing file and generic operations over the in-memory collection.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"supercli/pkg/utils"
)

// Gateway mediates every read and write of one backing file as a whole collection
type Gateway[R Record] struct {
	path string
}

// NewGateway creates a gateway for the JSON file at path
func NewGateway[R Record](path string) *Gateway[R] {
	return &Gateway[R]{path: path}
}

// Path returns the backing file location
func (g *Gateway[R]) Path() string {
	return g.path
}

// EnsureInitialized creates the backing file containing an empty array if it does not exist.
// An existing file is never touched.
func (g *Gateway[R]) EnsureInitialized() error {
	if err := os.MkdirAll(filepath.Dir(g.path), 0755); err != nil {
		return &IOError{Op: "create directory for", Path: g.path, Err: err}
	}

	_, err := os.Stat(g.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return &IOError{Op: "stat", Path: g.path, Err: err}
	}

	utils.Log("Initializing empty store at %s", g.path)
	return g.SaveAll(Collection[R]{})
}

// LoadAll reads and decodes the full collection
func (g *Gateway[R]) LoadAll() (Collection[R], error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: g.path, Err: err}
	}

	var records Collection[R]
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ParseError{Path: g.path, Err: err}
	}
	if records == nil {
		return nil, &ParseError{Path: g.path, Err: errors.New("expected a JSON array, got null")}
	}
	for i, r := range records {
		// a null element decodes to the zero record
		if r.RecordID() == 0 {
			return nil, &ParseError{Path: g.path, Err: fmt.Errorf("record %d has no id", i)}
		}
	}

	utils.Log("Loaded %d records from %s", len(records), g.path)
	return records, nil
}

// SaveAll overwrites the backing file with the full collection, indented by two spaces
func (g *Gateway[R]) SaveAll(records Collection[R]) error {
	if records == nil {
		records = Collection[R]{}
	}

	data, err := Encode(records)
	if err != nil {
		return &IOError{Op: "encode", Path: g.path, Err: err}
	}

	if err := os.WriteFile(g.path, data, 0644); err != nil {
		return &IOError{Op: "write", Path: g.path, Err: err}
	}

	utils.Log("Saved %d records to %s", len(records), g.path)
	return nil
}

// Encode renders v the way store files are written: two-space indentation, text kept as typed
// (no HTML escaping) and no trailing newline.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
