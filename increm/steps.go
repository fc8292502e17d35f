package increm

import (
	"fmt"

	"github.com/npillmayer/hull/trace"
)

// Seed records a point added while the initial hull is being formed.
type Seed struct {
	Point  trace.XY   `json:"added_point"`
	Before []trace.XY `json:"hull_before"`
	After  []trace.XY `json:"hull_after"`
}

// Inside records a discarded interior point.
type Inside struct {
	Point trace.XY   `json:"point"`
	Hull  []trace.XY `json:"hull_before"`
}

// Tangents records the tangent pair located for an exterior point.
type Tangents struct {
	Point      trace.XY   `json:"point"`
	Hull       []trace.XY `json:"hull_before"`
	Right      trace.XY   `json:"right_tangent_vertex"`
	Left       trace.XY   `json:"left_tangent_vertex"`
	RightIndex int        `json:"right_tangent_idx"`
	LeftIndex  int        `json:"left_tangent_idx"`
}

// Spliced records the hull before and after splicing in a point.
type Spliced struct {
	Point  trace.XY   `json:"point"`
	Before []trace.XY `json:"hull_before"`
	After  []trace.XY `json:"hull_after"`
}

// Done records the final hull.
type Done struct {
	Hull []trace.XY `json:"final_hull"`
}

func (s *Seed) Kind() string { return "seed" }
func (s *Seed) Describe() string {
	return fmt.Sprintf("added (%g,%g) to initial hull, now %d points", s.Point.X, s.Point.Y, len(s.After))
}

func (s *Inside) Kind() string { return "inside" }
func (s *Inside) Describe() string {
	return fmt.Sprintf("point (%g,%g) is inside the current hull, no change", s.Point.X, s.Point.Y)
}

func (s *Tangents) Kind() string { return "tangents" }
func (s *Tangents) Describe() string {
	return fmt.Sprintf("tangents from (%g,%g): right vertex %d, left vertex %d",
		s.Point.X, s.Point.Y, s.RightIndex, s.LeftIndex)
}

func (s *Spliced) Kind() string { return "spliced" }
func (s *Spliced) Describe() string {
	return fmt.Sprintf("spliced (%g,%g) into hull, now %d vertices", s.Point.X, s.Point.Y, len(s.After))
}

func (s *Done) Kind() string { return "complete" }
func (s *Done) Describe() string {
	return fmt.Sprintf("incremental hull complete with %d vertices", len(s.Hull))
}
