// Package sim: result records, trace model, engine tags, sentinel errors.
package sim

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gatesim/logic"
)

// Sentinel errors for the simulation layer.
var (
	// ErrNilNetlist indicates a nil *netlist.Netlist handle.
	ErrNilNetlist = errors.New("sim: netlist is nil")

	// ErrNonConvergence indicates an engine exceeded its unit or iteration
	// cap. Returned wrapped inside *ConvergenceError.
	ErrNonConvergence = errors.New("sim: simulation did not converge")

	// ErrFeedbackInLevelized indicates the zero-delay levelized engine was
	// asked to run a cyclic netlist in strict mode.
	ErrFeedbackInLevelized = errors.New("sim: feedback in levelized engine")

	// ErrUnknownEngine indicates an engine tag outside the declared set.
	ErrUnknownEngine = errors.New("sim: unknown engine")
)

// Engine selects one of the five simulation paradigms.
type Engine uint8

const (
	// EngineTwoList is the unit-delay two-list event simulator.
	EngineTwoList Engine = iota

	// EngineEventList is the single-list event simulator with cancellation.
	EngineEventList

	// EngineGateList is the single-list gate-driven simulator.
	EngineGateList

	// EngineLevelized is the zero-delay levelized simulator.
	EngineLevelized

	// EngineThreaded is the threaded-code (work stack) simulator.
	EngineThreaded

	// numEngines bounds the Engine code space.
	numEngines
)

// engineNames maps engine tags to display names.
var engineNames = [...]string{
	EngineTwoList:   "two-list",
	EngineEventList: "event-list",
	EngineGateList:  "gate-list",
	EngineLevelized: "levelized",
	EngineThreaded:  "threaded",
}

// String returns the engine's display name, or "?" for an unknown tag.
func (e Engine) String() string {
	if int(e) < len(engineNames) {
		return engineNames[e]
	}

	return "?"
}

// Valid reports whether e is a declared engine tag.
func (e Engine) Valid() bool { return e < numEngines }

// Vector assigns stimulus values to primary inputs by net name.
// Inputs absent from the vector keep their current value.
type Vector map[string]logic.Value

// Transition is one committed net-value change.
type Transition struct {
	// Time is the unit (or logical tick) at which the change committed.
	Time int

	// Net is the arena index of the changed net.
	Net int

	// Old is the value before the change.
	Old logic.Value

	// New is the value after the change.
	New logic.Value
}

// Trace is the ordered sequence of transitions committed during one
// episode: non-decreasing times, insertion order within equal times.
// The trace is the source of truth for hazard analysis.
type Trace []Transition

// Hazard classifies one net's transition history within an episode.
type Hazard uint8

const (
	// HazardNone marks a clean history (at most one transition, or an
	// unknown-valued history).
	HazardNone Hazard = iota

	// HazardStatic0 marks a 0→…1…→0 excursion.
	HazardStatic0

	// HazardStatic1 marks a 1→…0…→1 excursion.
	HazardStatic1

	// HazardDynamic marks a change of value with three or more transitions.
	HazardDynamic
)

// hazardNames maps hazard classes to display names.
var hazardNames = [...]string{
	HazardNone:    "none",
	HazardStatic0: "static-0",
	HazardStatic1: "static-1",
	HazardDynamic: "dynamic",
}

// String returns the hazard's display name.
func (h Hazard) String() string {
	if int(h) < len(hazardNames) {
		return hazardNames[h]
	}

	return "?"
}

// Result is the immutable outcome of one simulated episode.
type Result struct {
	// Engine tags the paradigm that produced this result.
	Engine Engine

	// Final maps primary-output net names to their settled values.
	Final map[string]logic.Value

	// Trace lists every committed transition in commit order.
	Trace Trace

	// GateEvals counts evaluations per gate, indexed by gate index.
	GateEvals []int64

	// TotalEvals is the sum over GateEvals.
	TotalEvals int64

	// Hazards maps every non-input net name to its classification.
	Hazards map[string]Hazard
}

// ConvergenceError reports an engine that exceeded its cap. It wraps
// ErrNonConvergence for errors.Is and carries the partial result — trace
// and counters up to the point the cap fired.
type ConvergenceError struct {
	// Engine is the paradigm that failed to converge.
	Engine Engine

	// Limit is the cap that fired (units or iterations).
	Limit int

	// Partial holds the trace and counters accumulated before the cap.
	Partial *Result
}

// Error implements the error interface.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("sim: %s engine exceeded %d units without converging", e.Engine, e.Limit)
}

// Unwrap exposes ErrNonConvergence to errors.Is.
func (e *ConvergenceError) Unwrap() error { return ErrNonConvergence }
