package jarvis

import (
	"fmt"

	"github.com/npillmayer/hull/trace"
)

// Walk records the start of a walk step: the current point has just been
// appended to the hull.
type Walk struct {
	Point     trace.XY   `json:"current_point"`
	Index     int        `json:"current_index"`
	Iteration int        `json:"iteration"`
	Hull      []trace.XY `json:"hull_so_far"`
}

// Probe records one candidate comparison against the current best.
type Probe struct {
	Point       trace.XY `json:"current_point"`
	Candidate   trace.XY `json:"candidate"`
	Probe       trace.XY `json:"testing_point"`
	Orientation float64  `json:"cross_product"`
	Class       string   `json:"orientation"`
	Better      bool     `json:"is_better"`
}

// Pick records an improved candidate selection.
type Pick struct {
	Point     trace.XY   `json:"current_point"`
	Selected  trace.XY   `json:"selected_candidate"`
	Reason    string     `json:"reason"`
	Iteration int        `json:"iteration"`
	Hull      []trace.XY `json:"hull_so_far"`
}

// Done records the closed hull.
type Done struct {
	Hull []trace.XY `json:"final_hull"`
}

func (s *Walk) Kind() string { return "walk" }
func (s *Walk) Describe() string {
	return fmt.Sprintf("step %d: added point (%g,%g) to hull", s.Iteration, s.Point.X, s.Point.Y)
}

func (s *Probe) Kind() string { return "testing" }
func (s *Probe) Describe() string {
	verdict := "worse, not counter-clockwise enough"
	if s.Better {
		verdict = "better"
	}
	return fmt.Sprintf("testing point (%g,%g) against candidate (%g,%g): %s",
		s.Probe.X, s.Probe.Y, s.Candidate.X, s.Candidate.Y, verdict)
}

func (s *Pick) Kind() string { return "candidate" }
func (s *Pick) Describe() string {
	return fmt.Sprintf("selected (%g,%g) as new best candidate (%s)", s.Selected.X, s.Selected.Y, s.Reason)
}

func (s *Done) Kind() string { return "complete" }
func (s *Done) Describe() string {
	return fmt.Sprintf("returned to starting point, hull complete with %d vertices", len(s.Hull))
}
