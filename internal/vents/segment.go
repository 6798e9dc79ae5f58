// Package vents maps hydrothermal vent lines onto the seafloor.
package vents

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/s-pike/advent2021/internal/puzzle"
)

const arrow = " -> "

// MaxCoordinate bounds |x| and |y| so every per-axis delta fits in an int.
const MaxCoordinate = math.MaxInt / 2

// Point is an integer seafloor coordinate.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func (p Point) inRange() bool {
	return p.X >= -MaxCoordinate && p.X <= MaxCoordinate &&
		p.Y >= -MaxCoordinate && p.Y <= MaxCoordinate
}

// axis describes the travel of a segment along one axis.
type axis struct {
	delta  int
	length int
	step   int
}

func newAxis(start, end int) axis {
	d := end - start
	return axis{delta: d, length: abs(d), step: sign(d)}
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Segment is a vent line between two points. Only horizontal, vertical and
// 45 degree diagonal segments can be constructed.
type Segment struct {
	Start, End  Point
	x, y        axis
	orientation Orientation
}

// NewSegment validates and classifies the segment from start to end.
func NewSegment(start, end Point) (Segment, error) {
	if !start.inRange() || !end.inRange() {
		return Segment{}, puzzle.Invalid(start.String()+arrow+end.String(), "coordinate out of range ±%d", MaxCoordinate)
	}

	s := Segment{
		Start: start,
		End:   end,
		x:     newAxis(start.X, end.X),
		y:     newAxis(start.Y, end.Y),
	}

	switch {
	case start == end:
		return Segment{}, puzzle.Invalid(s.String(), "start equals end")
	case s.x.length == 0:
		s.orientation = Vertical
	case s.y.length == 0:
		s.orientation = Horizontal
	case s.x.length == s.y.length:
		s.orientation = Diagonal
	default:
		return Segment{}, puzzle.Invalid(s.String(), "diagonal is not 45 degrees (dx=%d, dy=%d)", s.x.delta, s.y.delta)
	}

	return s, nil
}

// ParseSegment parses "x1,y1 -> x2,y2".
func ParseSegment(text string) (Segment, error) {
	text = strings.TrimSpace(text)

	ends := strings.Split(text, arrow)
	if len(ends) != 2 {
		return Segment{}, puzzle.Parse(text, "expected two coordinate pairs separated by %q", strings.TrimSpace(arrow))
	}

	start, err := parsePoint(text, ends[0])
	if err != nil {
		return Segment{}, err
	}
	end, err := parsePoint(text, ends[1])
	if err != nil {
		return Segment{}, err
	}

	return NewSegment(start, end)
}

func parsePoint(line, pair string) (Point, error) {
	coords := strings.Split(pair, ",")
	if len(coords) != 2 {
		return Point{}, puzzle.Parse(line, "coordinate %q must be x,y", pair)
	}

	x, err := strconv.Atoi(strings.TrimSpace(coords[0]))
	if err != nil {
		return Point{}, puzzle.Parse(line, "x coordinate %q is not an integer", coords[0])
	}
	y, err := strconv.Atoi(strings.TrimSpace(coords[1]))
	if err != nil {
		return Point{}, puzzle.Parse(line, "y coordinate %q is not an integer", coords[1])
	}

	return Point{X: x, Y: y}, nil
}

// ParseSegments parses one segment per line. Blank lines are skipped and errors
// carry the 1-based line number.
func ParseSegments(lines []string) ([]Segment, error) {
	segments := make([]Segment, 0, len(lines))
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		s, err := ParseSegment(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		segments = append(segments, s)
	}
	return segments, nil
}

func (s Segment) Orientation() Orientation {
	return s.orientation
}

// Len is the number of points the segment covers.
func (s Segment) Len() int {
	return max(s.x.length, s.y.length) + 1
}

// Coordinates returns every point from Start to End inclusive.
func (s Segment) Coordinates() []Point {
	points := make([]Point, 0, s.Len())
	p := s.Start
	for range s.Len() {
		points = append(points, p)
		p.X += s.x.step
		p.Y += s.y.step
	}
	return points
}

func (s Segment) String() string {
	return s.Start.String() + arrow + s.End.String()
}
