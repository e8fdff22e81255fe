package kmap

import "errors"

var (
	// ErrVariableCount indicates a variable count outside the supported 2..5 range.
	ErrVariableCount = errors.New("kmap: variable count must be between 2 and 5")
	// ErrDontCareDisabled indicates a DontCare write while don't-cares are disabled.
	ErrDontCareDisabled = errors.New("kmap: don't-care cells are disabled for this map")
	// ErrMinterm indicates a minterm number outside the map.
	ErrMinterm = errors.New("kmap: minterm out of range")
	// ErrValue indicates an unknown cell value.
	ErrValue = errors.New("kmap: unknown cell value")
)
