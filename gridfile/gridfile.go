package gridfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/boolgrid/grid"
)

// Kind selects the Go cell type a document decodes into.
type Kind string

const (
	// KindBool decodes rows into [][]bool.
	KindBool Kind = "bool"
	// KindU8 decodes rows into [][]uint8.
	KindU8 Kind = "u8"
)

// ParseKind normalizes s into a Kind. The empty string maps to KindBool.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", KindBool:
		return KindBool, nil
	case KindU8, "uint8", "byte":
		return KindU8, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Document is a decoded grid. Exactly one of Bools or Bytes is populated,
// matching Kind.
type Document struct {
	Kind  Kind
	Bools [][]bool
	Bytes [][]uint8
}

// raw mirrors the on-disk layout; rows stay a yaml.Node until Kind is known.
type raw struct {
	Cells string    `yaml:"cells"`
	Rows  yaml.Node `yaml:"rows"`
}

// Decode reads one document from r. A non-empty force overrides the
// document's "cells" field.
//
// Complexity: O(R·C).
func Decode(r io.Reader, force Kind) (*Document, error) {
	var in raw
	if err := yaml.NewDecoder(r).Decode(&in); err != nil {
		if err == io.EOF {
			return nil, ErrMissingRows
		}

		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if in.Rows.Kind == 0 {
		return nil, ErrMissingRows
	}

	name := in.Cells
	if force != "" {
		name = string(force)
	}
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}

	doc := &Document{Kind: kind}
	switch kind {
	case KindU8:
		err = in.Rows.Decode(&doc.Bytes)
	default:
		err = in.Rows.Decode(&doc.Bools)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: rows as %s: %v", ErrDecode, kind, err)
	}

	return doc, nil
}

// Load opens path and decodes it with Decode.
func Load(path string, force Kind) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, force)
}

// Dims reports the row count and first-row length of the document.
func (d *Document) Dims() (rows, cols int) {
	if d.Kind == KindU8 {
		v := grid.From(d.Bytes)
		return v.RowLen(), v.ColLen()
	}
	v := grid.From(d.Bools)

	return v.RowLen(), v.ColLen()
}

// Display returns the glyph rendering of the document.
func (d *Document) Display() string {
	if d.Kind == KindU8 {
		return grid.From(d.Bytes).String()
	}

	return grid.From(d.Bools).String()
}

// Debug returns the bracketed list rendering of the document.
func (d *Document) Debug() string {
	if d.Kind == KindU8 {
		return grid.From(d.Bytes).GoString()
	}

	return grid.From(d.Bools).GoString()
}
