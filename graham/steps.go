package graham

import (
	"fmt"

	"github.com/npillmayer/hull/trace"
)

// Step kinds of the monotone chain scan. Chain is "lower" or "upper",
// Stack the partial chain at the time of the step.

// Sorted records completion of the initial sort.
type Sorted struct {
	Points []trace.XY `json:"sorted_points"`
}

// Processing records a point about to be tested against a chain.
type Processing struct {
	Chain string     `json:"chain"`
	Point trace.XY   `json:"current_point"`
	Index int        `json:"point_index"`
	Stack []trace.XY `json:"stack"`
}

// Tested records a single turn test against the chain top.
type Tested struct {
	Chain       string     `json:"chain"`
	Test        []trace.XY `json:"test_points"`
	Orientation float64    `json:"orientation"`
	LeftTurn    bool       `json:"is_left_turn"`
}

// Popped records removal of a chain point that failed the turn test.
type Popped struct {
	Chain       string   `json:"chain"`
	Point       trace.XY `json:"popped_point"`
	Orientation float64  `json:"orientation"`
}

// Accepted records a confirmed left turn, keeping the chain intact.
type Accepted struct {
	Chain       string  `json:"chain"`
	Orientation float64 `json:"orientation"`
}

// Added records a point appended to a chain.
type Added struct {
	Chain string     `json:"chain"`
	Point trace.XY   `json:"current_point"`
	Stack []trace.XY `json:"stack"`
}

// Done records the completed scan with both chains and the final hull.
type Done struct {
	Lower []trace.XY `json:"lower_hull"`
	Upper []trace.XY `json:"upper_hull"`
	Hull  []trace.XY `json:"final_hull"`
}

func (s *Sorted) Kind() string { return "sorted" }
func (s *Sorted) Describe() string {
	return fmt.Sprintf("sorted %d points by x-coordinate", len(s.Points))
}

func (s *Processing) Kind() string { return "processing" }
func (s *Processing) Describe() string {
	return fmt.Sprintf("processing point (%g,%g) for %s chain", s.Point.X, s.Point.Y, s.Chain)
}

func (s *Tested) Kind() string { return "testing" }
func (s *Tested) Describe() string {
	turn := "not a left turn"
	if s.LeftTurn {
		turn = "left turn"
	}
	return fmt.Sprintf("turn test on %s chain: %s (orientation %.3f)", s.Chain, turn, s.Orientation)
}

func (s *Popped) Kind() string { return "popping" }
func (s *Popped) Describe() string {
	return fmt.Sprintf("popping (%g,%g) from %s chain, not a left turn (orientation %.3f)",
		s.Point.X, s.Point.Y, s.Chain, s.Orientation)
}

func (s *Accepted) Kind() string { return "accepted" }
func (s *Accepted) Describe() string {
	return fmt.Sprintf("left turn confirmed, %s chain unchanged", s.Chain)
}

func (s *Added) Kind() string { return "added" }
func (s *Added) Describe() string {
	return fmt.Sprintf("added (%g,%g) to %s chain, now %d points", s.Point.X, s.Point.Y, s.Chain, len(s.Stack))
}

func (s *Done) Kind() string { return "complete" }
func (s *Done) Describe() string {
	return fmt.Sprintf("scan complete, hull has %d vertices", len(s.Hull))
}
