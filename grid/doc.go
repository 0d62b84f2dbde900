// Package grid provides a borrowing, read-only View over any 2D slice-like
// value and renders boolean-like cells as block glyphs.
//
// 🚀 What is grid?
//
//	A View wraps a caller-owned [][]T (or any named M ~[]R, R ~[]T) without
//	copying it. It answers shape queries and produces two renderings:
//	  • Debug   — a bracketed list-of-lists dump: [[true, false], [false, true]]
//	  • Display — one line of ⬛/⬜ glyphs per row, each line ending in '\n'
//
// ✨ Key features:
//   - zero-cost construction: From(m) stores the slice header, nothing else
//   - lazy row iteration through iter.Seq, in storage order
//   - truthiness via BoolCell: bool and uint8 built in, other types opt in
//     through BoolComparer or a predicate passed to Render
//   - ragged rows accepted; ColLen reports the first row only
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/boolgrid/grid"
//
//	cells := [][]bool{{true, false}, {false, true}}
//	v := grid.From(cells)
//
//	fmt.Print(v)           // ⬛⬜\n⬜⬛\n
//	fmt.Printf("%#v\n", v) // [[true, false], [false, true]]
//
// Performance:
//
//   - From, RowLen, ColLen: O(1), no allocation
//   - Rows: O(1) to obtain, O(R) to drain
//   - Debug / Display: O(R·C) time, one output buffer
//
// A View never writes to the matrix it wraps. It holds no locks; callers must
// not mutate the matrix while a rendering is in progress.
package grid
