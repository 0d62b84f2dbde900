package grid

import "iter"

// View is a read-only window onto a caller-owned matrix M made of rows R,
// each row a slice of cells T.
//
// A View stores only the slice header of M, so its cells alias the caller's
// backing arrays. It must not be used after the caller mutates the matrix
// through another path. Rows may have differing lengths.
type View[T any, R ~[]T, M ~[]R] struct {
	m M
}

// From wraps m in a View. The type parameters are inferred from m:
//
//	v := grid.From([][]uint8{{1, 0}, {0, 1}}) // View[uint8, []uint8, [][]uint8]
//
// From never fails, never validates and never copies.
// Complexity: O(1).
func From[M ~[]R, R ~[]T, T any](m M) View[T, R, M] {
	return View[T, R, M]{m: m}
}

// Rows returns a lazy sequence over the rows of the matrix, in storage order.
// Each yielded row aliases the backing matrix. The sequence may be ranged over
// any number of times; breaking out early stops the walk.
//
// Complexity: O(1) to obtain, O(R) to drain.
func (v View[T, R, M]) Rows() iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, row := range v.m {
			if !yield(row) {
				return
			}
		}
	}
}

// RowLen returns the number of rows.
func (v View[T, R, M]) RowLen() int {
	return len(v.m)
}

// ColLen returns the length of the first row, or 0 when there are no rows.
// Other rows are not checked.
func (v View[T, R, M]) ColLen() int {
	if len(v.m) == 0 {
		return 0
	}

	return len(v.m[0])
}
