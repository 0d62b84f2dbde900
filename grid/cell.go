package grid

// BoolCell is the canonical truthiness target that grid cells are compared
// against. BoolCell(true) means "this cell is set".
type BoolCell bool

// BoolComparer is implemented by cell types that define their own relation
// to BoolCell. Display rendering treats a cell as set exactly when
// EqualBoolCell(BoolCell(true)) reports true.
type BoolComparer interface {
	EqualBoolCell(b BoolCell) bool
}

// Uint8 returns b widened to a byte: 1 for true, 0 for false.
func (b BoolCell) Uint8() uint8 {
	if b {
		return 1
	}

	return 0
}

// Equal reports whether cell equals b under the cell type's truthiness rule.
//
// Rules:
//   - bool:         cell == bool(b).
//   - uint8:        cell == b.Uint8(); values ≥ 2 equal neither BoolCell(true)
//     nor BoolCell(false).
//   - BoolComparer: the cell decides.
//   - anything else: false.
//
// Only the exact types bool and uint8 are built in; a named type such as
// `type Flag bool` must implement BoolComparer to take part.
//
// Complexity: O(1).
func (b BoolCell) Equal(cell any) bool {
	switch c := cell.(type) {
	case bool:
		return c == bool(b)
	case uint8:
		return c == b.Uint8()
	case BoolComparer:
		return c.EqualBoolCell(b)
	default:
		return false
	}
}

// CellEqual is the generic form of BoolCell.Equal, used by View rendering.
func CellEqual[T any](cell T, b BoolCell) bool {
	return b.Equal(cell)
}
