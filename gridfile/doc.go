// Package gridfile decodes boolean grids from YAML (or JSON) documents and
// renders them through package grid.
//
// Document format:
//
//	cells: u8          # "bool" (default) or "u8"
//	rows:
//	  - [0, 1, 0]
//	  - [0, 0, 1]
//	  - [1, 1, 1]
//
// JSON is accepted as well, since it is a subset of YAML:
//
//	{"cells": "bool", "rows": [[true, false], [false, true]]}
//
// Rows may differ in length; values outside 0..255 fail u8 decoding.
//
// Errors:
//
//   - ErrDecode: the input is not a valid document (wraps the YAML error).
//   - ErrUnknownKind: "cells" names an unsupported cell kind.
//   - ErrMissingRows: the document has no "rows" key.
package gridfile
