package tchan

import (
	"fmt"

	"github.com/npillmayer/hull/trace"
)

// Guess records the start of an attempt with group size m.
type Guess struct {
	M int `json:"m"`
}

// MiniHull records one computed group hull together with the mini-hulls
// accumulated so far.
type MiniHull struct {
	Group  int          `json:"group_idx"`
	Groups int          `json:"num_groups"`
	Points []trace.XY   `json:"group_points"`
	Hull   []trace.XY   `json:"mini_hull"`
	Hulls  [][]trace.XY `json:"all_mini_hulls"`
}

// Walk records one step of the outer gift-wrapping walk.
type Walk struct {
	Point trace.XY   `json:"current_point"`
	Step  int        `json:"step"`
	Limit int        `json:"max_steps"`
	Hull  []trace.XY `json:"hull_so_far"`
}

// Edge records the winning tangent edge of a walk step.
type Edge struct {
	From  trace.XY   `json:"current_point"`
	To    trace.XY   `json:"next_point"`
	Group int        `json:"connecting_hull_idx"`
	Hull  []trace.XY `json:"hull_so_far"`
}

// NoClose records an attempt whose walk did not close within m steps.
type NoClose struct {
	M int `json:"m"`
}

// Done records completion; Fallback marks the monotone chain safety net.
type Done struct {
	M        int        `json:"m"`
	Hull     []trace.XY `json:"final_hull"`
	Fallback bool       `json:"fallback,omitempty"`
}

func (s *Guess) Kind() string { return "guess" }
func (s *Guess) Describe() string {
	return fmt.Sprintf("trying group size m = %d", s.M)
}

func (s *MiniHull) Kind() string { return "minihull" }
func (s *MiniHull) Describe() string {
	return fmt.Sprintf("computed mini-hull %d/%d with %d vertices from %d points",
		s.Group+1, s.Groups, len(s.Hull), len(s.Points))
}

func (s *Walk) Kind() string { return "walk" }
func (s *Walk) Describe() string {
	return fmt.Sprintf("wrap step %d/%d across mini-hulls", s.Step+1, s.Limit)
}

func (s *Edge) Kind() string { return "edge" }
func (s *Edge) Describe() string {
	return fmt.Sprintf("tangent edge to (%g,%g) from mini-hull %d", s.To.X, s.To.Y, s.Group+1)
}

func (s *NoClose) Kind() string { return "noclose" }
func (s *NoClose) Describe() string {
	return fmt.Sprintf("walk did not close with m = %d, retrying with a larger group size", s.M)
}

func (s *Done) Kind() string { return "complete" }
func (s *Done) Describe() string {
	if s.Fallback {
		return fmt.Sprintf("fallback monotone chain hull has %d vertices", len(s.Hull))
	}
	return fmt.Sprintf("walk closed with m = %d, hull has %d vertices", s.M, len(s.Hull))
}
