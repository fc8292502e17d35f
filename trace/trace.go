/*
Package trace records the internal decisions of a hull algorithm as an
ordered, append-only log of structured step records.

Each algorithm package defines one step type per decision kind; all of
them implement the Step interface. A Recorder is created per invocation
and passed into the algorithm; a nil Recorder disables recording
entirely, so an untraced run does no extra work. Recorders are never
shared between invocations, which keeps concurrent hull computations
independent.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package trace

import "github.com/npillmayer/arithm"

// Step is one recorded algorithm decision. Concrete step types carry
// only the fields relevant to their kind and are JSON-serializable.
type Step interface {
	// Kind is a short tag identifying the step variant.
	Kind() string
	// Describe returns a human-readable account of the step.
	Describe() string
}

// XY is a plain point snapshot, decoupled from the computation's point
// representation so that step records marshal cleanly.
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt snapshots a single point.
func Pt(p arithm.Pair) XY {
	return XY{X: p.X(), Y: p.Y()}
}

// Pts snapshots a sequence of points.
func Pts(points []arithm.Pair) []XY {
	if points == nil {
		return nil
	}
	ps := make([]XY, len(points))
	for i, p := range points {
		ps[i] = Pt(p)
	}
	return ps
}

// Rings snapshots a list of point sequences (e.g. accumulated mini-hulls).
func Rings(rings [][]arithm.Pair) [][]XY {
	if rings == nil {
		return nil
	}
	rs := make([][]XY, len(rings))
	for i, r := range rings {
		rs[i] = Pts(r)
	}
	return rs
}

// Recorder is an append-only step log, local to a single algorithm
// invocation. The zero value is ready for use; a nil *Recorder is a
// valid recorder that records nothing.
type Recorder struct {
	steps []Step
}

// New creates an empty recorder.
func New() *Recorder {
	return &Recorder{}
}

// On is a predicate: is recording enabled? Callers guard snapshot
// construction with it so that untraced runs skip the copying cost.
func (r *Recorder) On() bool {
	return r != nil
}

// Record appends a step. It is a no-op on a nil recorder.
func (r *Recorder) Record(s Step) {
	if r == nil {
		return
	}
	r.steps = append(r.steps, s)
}

// Steps returns the recorded steps in order of appending.
func (r *Recorder) Steps() []Step {
	if r == nil {
		return nil
	}
	return r.steps
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	return len(r.steps)
}
