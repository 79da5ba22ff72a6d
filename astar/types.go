package astar

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrNoPathFound indicates the frontier was exhausted without reaching
	// the goal, or that an endpoint is blocked or walled off.
	ErrNoPathFound = errors.New("astar: no path found")

	// ErrReconstructionGap indicates the predecessor chain from goal back to
	// start is broken: a link is missing, not adjacent, not strictly
	// decreasing in cost, or longer than the grid.
	ErrReconstructionGap = errors.New("astar: predecessor chain does not reach start")

	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")
)

// Status is the terminal state of a search.
type Status int

const (
	// Running is the state while the frontier is being processed.
	Running Status = iota
	// Succeeded means the goal was reached and a path reconstructed.
	Succeeded
	// Failed means the frontier was exhausted.
	Failed
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one search.
//
// Path runs from start to goal inclusive, so Cost == len(Path)-1.
// Expanded counts cells popped from the frontier and expanded.
type Result struct {
	Path     []gridgraph.Coordinate
	Cost     int
	Expanded int
	Status   Status
}

// ClosingPolicy decides when a cell leaves consideration for relaxation.
type ClosingPolicy int

const (
	// ClosingOnDiscovery closes a neighbor the first time it is examined,
	// whether or not it was relaxed. Every cell is relaxed at most once, so
	// paths around obstacles may be longer than the shortest one.
	ClosingOnDiscovery ClosingPolicy = iota

	// ClosingOnExpansion closes a cell only when it is popped, as textbook
	// A* does. Paths are shortest for the Manhattan heuristic.
	ClosingOnExpansion
)

// GoalTest decides when the goal is accepted.
type GoalTest int

const (
	// GoalOnDiscovery accepts the goal as soon as it appears as a neighbor
	// of the expanded cell.
	GoalOnDiscovery GoalTest = iota

	// GoalOnExpansion accepts the goal when it is popped from the frontier.
	GoalOnExpansion
)

// Options configures the search.
//
// Closing           – when neighbors are closed (default ClosingOnDiscovery).
// Goal              – when the goal is accepted (default GoalOnDiscovery).
// ReachabilityCheck – reject walled-off endpoints before searching.
type Options struct {
	Closing           ClosingPolicy
	Goal              GoalTest
	ReachabilityCheck bool
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithClosing selects the closing policy.
func WithClosing(p ClosingPolicy) Option {
	return func(o *Options) {
		o.Closing = p
	}
}

// WithGoalTest selects when the goal is accepted.
func WithGoalTest(t GoalTest) Option {
	return func(o *Options) {
		o.Goal = t
	}
}

// Canonical switches to textbook A*: cells close when expanded and the goal
// is accepted when popped.
func Canonical() Option {
	return func(o *Options) {
		o.Closing = ClosingOnExpansion
		o.Goal = GoalOnExpansion
	}
}

// WithReachabilityCheck makes the search label connected regions first and
// return ErrNoPathFound without expanding anything when start and goal lie
// in different regions.
func WithReachabilityCheck() Option {
	return func(o *Options) {
		o.ReachabilityCheck = true
	}
}

// DefaultOptions returns the reference behavior: neighbors are closed on
// first sight and the goal is accepted on discovery.
func DefaultOptions() Options {
	return Options{
		Closing: ClosingOnDiscovery,
		Goal:    GoalOnDiscovery,
	}
}
