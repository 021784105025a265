// Package combine: direction mode of a path-extraction run.
package combine

import (
	"errors"
	"fmt"
)

// ErrUnknownDirection indicates a direction string outside
// {upward, downward, both}.
var ErrUnknownDirection = errors.New("combine: unknown direction")

// Direction selects which half-paths a run generates and how they are
// recombined.
type Direction string

const (
	// Upward emits reversed root-to-seed paths only.
	Upward Direction = "upward"

	// Downward emits seed-to-leaf paths only.
	Downward Direction = "downward"

	// Both emits the full upward×downward cross product through the seed.
	Both Direction = "both"
)

// ParseDirection validates s and returns it as a Direction.
// There is no default: the caller must choose explicitly.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Upward, Downward, Both:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("%w: %q (want upward, downward or both)", ErrUnknownDirection, s)
	}
}

// Wants reports whether the mode includes the given single direction.
func (d Direction) Wants(single Direction) bool {
	return d == single || d == Both
}
