// Package boolgrid renders two-dimensional boolean-like data without owning it.
//
// 🚀 What is boolgrid?
//
//	A small toolkit built around one idea: wrap any [][]T you already have in
//	a read-only view and print it.
//		• grid/     — View, BoolCell, debug and ⬛/⬜ glyph renderings
//		• gridfile/ — decode YAML/JSON grid documents into bool or uint8 cells
//		• cmd/      — the boolgrid command line tool
//		• examples/ — a Game of Life glider printed generation by generation
//
// Quick example:
//
//	v := grid.From([][]bool{{true, false}, {false, true}})
//	fmt.Print(v)
//
//	⬛⬜
//	⬜⬛
//
//	go get github.com/katalvlaran/boolgrid
package boolgrid
