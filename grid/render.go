package grid

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Display glyphs.
const (
	// FilledGlyph marks a cell equal to BoolCell(true).
	FilledGlyph = '\u2B1B' // ⬛
	// EmptyGlyph marks every other cell.
	EmptyGlyph = '\u2B1C' // ⬜
)

// glyphBytes is the UTF-8 width of both glyphs; used only as a sizing hint.
var glyphBytes = utf8.RuneLen(FilledGlyph)

// String renders the matrix as glyph lines and implements fmt.Stringer,
// so %v and %s print the display form.
//
// Each cell becomes FilledGlyph if CellEqual(cell, BoolCell(true)) holds and
// EmptyGlyph otherwise. Cells of a row are concatenated without separator and
// every row, including the last, ends with '\n'. An empty matrix yields "".
//
// Complexity: O(R·C) time, one output buffer.
func (v View[T, R, M]) String() string {
	return v.Render(nil)
}

// Render is String with a caller-supplied truthiness predicate, for cell
// types that carry no relation to BoolCell (int, float64, ...). A nil
// predicate falls back to CellEqual against BoolCell(true).
func (v View[T, R, M]) Render(on func(T) bool) string {
	if on == nil {
		on = isSet[T]
	}
	rows := v.RowLen()
	var sb strings.Builder
	// Hint only: ragged rows may need more.
	sb.Grow(rows*v.ColLen()*glyphBytes + rows)
	for _, row := range v.m {
		for _, cell := range row {
			if on(cell) {
				sb.WriteRune(FilledGlyph)
			} else {
				sb.WriteRune(EmptyGlyph)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// WriteTo writes the display form to w and implements io.WriterTo.
// The text is built once and handed to w in a single Write; any error from w
// is returned unchanged.
func (v View[T, R, M]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String())

	return int64(n), err
}

// GoString renders the matrix as a bracketed list of rows and implements
// fmt.GoStringer, so %#v prints the debug form:
//
//	[[true, false], [false, true]]
//
// Cells are formatted with %v. An empty matrix yields "[]".
func (v View[T, R, M]) GoString() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, row := range v.m {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", cell)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}

// WriteDebug writes the debug form to w. Any error from w is returned unchanged.
func (v View[T, R, M]) WriteDebug(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.GoString())

	return int64(n), err
}

// isSet is the default display predicate.
func isSet[T any](cell T) bool {
	return CellEqual(cell, BoolCell(true))
}
