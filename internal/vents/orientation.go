package vents

import (
	"fmt"
	"strings"

	"github.com/s-pike/advent2021/internal/puzzle"
)

// Orientation classifies a segment.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
	Diagonal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case Diagonal:
		return "diagonal"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// ParseOrientation accepts the full name or its first letter.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v", "vertical":
		return Vertical, nil
	case "h", "horizontal":
		return Horizontal, nil
	case "d", "diagonal":
		return Diagonal, nil
	}
	return 0, puzzle.Parse(s, "unknown orientation")
}

// OrientationSet is a set of orientations packed into a bitmask.
type OrientationSet uint8

// Straight holds horizontal and vertical lines; All adds diagonals.
var (
	Straight = NewOrientationSet(Horizontal, Vertical)
	All      = NewOrientationSet(Horizontal, Vertical, Diagonal)
)

func NewOrientationSet(orientations ...Orientation) OrientationSet {
	var s OrientationSet
	for _, o := range orientations {
		s |= 1 << o
	}
	return s
}

// ParseOrientationSet builds a set from names such as "h", "vertical".
func ParseOrientationSet(names []string) (OrientationSet, error) {
	var s OrientationSet
	for _, n := range names {
		o, err := ParseOrientation(n)
		if err != nil {
			return 0, err
		}
		s |= 1 << o
	}
	return s, nil
}

// Contains reports whether o is in the set.
func (s OrientationSet) Contains(o Orientation) bool {
	return s&(1<<o) != 0
}

func (s OrientationSet) String() string {
	var names []string
	for _, o := range []Orientation{Horizontal, Vertical, Diagonal} {
		if s.Contains(o) {
			names = append(names, o.String())
		}
	}
	return "{" + strings.Join(names, ", ") + "}"
}
