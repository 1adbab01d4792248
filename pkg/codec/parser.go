package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	json "github.com/goccy/go-json"
)

// Structural errors returned by the parser.
var (
	// ErrNotFound is returned when the codec file does not exist.
	ErrNotFound = errors.New("codec file not found")
	// ErrMissingObjectArray is returned when the document has no array-valued "object" property.
	ErrMissingObjectArray = errors.New("missing object array")
	// ErrEmptyDocument is returned when the "object" array has no entries.
	ErrEmptyDocument = errors.New("object array is empty")
)

// ParseFile reads and parses a codec file from src.
func ParseFile(src Source, path string) (*Document, error) {
	if src == nil {
		src = OSSource{}
	}
	data, err := src.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// ParseString parses a codec document from a string.
func ParseString(s string) (*Document, error) {
	return Parse([]byte(s))
}

// Parse parses a codec document. Numbers are kept as json.Number.
func Parse(data []byte) (*Document, error) {
	root, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, ErrMissingObjectArray
	}

	items, ok := obj["object"].([]any)
	if !ok {
		return nil, ErrMissingObjectArray
	}
	if len(items) == 0 {
		return nil, ErrEmptyDocument
	}

	entries := make([]*Entry, len(items))
	for i, item := range items {
		// Non-object items become empty entries and fail the required-field rules.
		fields, _ := item.(map[string]any)
		entries[i] = NewEntry(fields)
	}

	version, _ := obj["version"].(string)
	return NewDocument(version, entries...), nil
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected end of JSON input")
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid JSON: unexpected data after top-level value")
	}
	return root, nil
}

// IsStructural reports whether err is one of the parser's structural errors.
func IsStructural(err error) bool {
	return errors.Is(err, ErrMissingObjectArray) || errors.Is(err, ErrEmptyDocument)
}
