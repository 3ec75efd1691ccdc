package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the board.
	ErrOutOfBounds = errors.New("engine: coordinate out of bounds")

	// ErrInvalidTarget is returned when placing into a blocked or occupied cell.
	ErrInvalidTarget = errors.New("engine: invalid placement target")
)

// ConfigError reports an invalid board or session parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func outOfBounds(c Coord) error {
	return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
}

func invalidTarget(c Coord) error {
	return fmt.Errorf("%w: %v", ErrInvalidTarget, c)
}
