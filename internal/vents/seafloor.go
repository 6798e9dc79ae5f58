package vents

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultThreshold is the overlap count at which a point becomes dangerous.
	DefaultThreshold = 2

	// MaxRenderSide bounds the width and height of a rendered diagram.
	MaxRenderSide = 4096
)

var ErrRenderTooLarge = errors.New("seafloor too large to render")

// Seafloor counts how many vent lines cover each point. Missing points count 0.
type Seafloor map[Point]int

// Accumulate rasterizes every segment whose orientation is allowed.
func Accumulate(segments []Segment, allowed OrientationSet) Seafloor {
	seafloor := make(Seafloor)
	for _, s := range segments {
		if !allowed.Contains(s.Orientation()) {
			continue
		}
		for _, p := range s.Coordinates() {
			seafloor[p]++
		}
	}
	return seafloor
}

// CountOverlaps counts points covered by at least threshold lines.
func (sf Seafloor) CountOverlaps(threshold int) int {
	count := 0
	for _, v := range sf {
		if v >= threshold {
			count++
		}
	}
	return count
}

// Render draws the map with the origin at the top left, one row per y value
// from 0 to the largest y. Uncovered points are '.', counts above 9 are '#'.
// Negative coordinates are not drawn. Maps wider or taller than MaxRenderSide
// return ErrRenderTooLarge.
func (sf Seafloor) Render() (string, error) {
	if len(sf) == 0 {
		return "", nil
	}

	maxX, maxY := 0, 0
	for p := range sf {
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	if maxX >= MaxRenderSide || maxY >= MaxRenderSide {
		return "", fmt.Errorf("%w: %dx%d exceeds %d", ErrRenderTooLarge, maxX+1, maxY+1, MaxRenderSide)
	}

	var sb strings.Builder
	for y := 0; y <= maxY; y++ {
		for x := 0; x <= maxX; x++ {
			switch n := sf[Point{X: x, Y: y}]; {
			case n == 0:
				sb.WriteByte('.')
			case n > 9:
				sb.WriteByte('#')
			default:
				sb.WriteString(strconv.Itoa(n))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
