package gridfile

import "errors"

var (
	// ErrDecode indicates the document could not be parsed or typed.
	ErrDecode = errors.New("gridfile: cannot decode document")
	// ErrUnknownKind indicates an unsupported "cells" value.
	ErrUnknownKind = errors.New("gridfile: unknown cell kind")
	// ErrMissingRows indicates the document lacks a "rows" key.
	ErrMissingRows = errors.New("gridfile: document has no rows")
)
