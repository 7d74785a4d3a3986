package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every error describing malformed grids or
// coordinates that fall outside a grid.
var ErrInvalidInput = errors.New("invalid input")

// Validation error codes.
const (
	CodeEmptyGrid      = "EMPTY_GRID"
	CodeNonRectangular = "NON_RECTANGULAR"
	CodeUnknownCell    = "UNKNOWN_CELL"
	CodeOutOfBounds    = "OUT_OF_BOUNDS"
)

// ValidationError contains details about a rejected grid or coordinate.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap makes errors.Is(err, ErrInvalidInput) hold for every ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(code, format string, args ...any) error {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CheckBounds returns a ValidationError if c lies outside g.
// what names the coordinate in the message (e.g. "start").
func (g *Grid) CheckBounds(what string, c Coord) error {
	if g.InBounds(c) {
		return nil
	}
	return invalid(CodeOutOfBounds, "%s %v outside %dx%d grid", what, c, g.rows, g.cols)
}
