// Copyright (c) 2026 The ratlp Authors

package simplexops

import "fmt"

// Status is the terminal outcome of a solve. Infeasible and Unbounded are
// expected, reportable results of the mathematical problem, not errors;
// precondition violations are reported as ordinary Go errors instead.
type Status int

const (
	Optimal Status = iota + 1
	Infeasible
	Unbounded
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "Optimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Phase identifies which stage of the two-phase method a State is in:
// feasibility seeking (PhaseOne, minimizing the artificial-variable sum)
// or optimizing the true objective (PhaseTwo).
type Phase int

const (
	PhaseOne Phase = iota + 1
	PhaseTwo
)
