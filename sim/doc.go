// Package sim runs frozen netlists under five interchangeable simulation
// engines and reports traces, final output values, per-gate evaluation
// counts, and per-net hazard classifications.
//
// The engines, selected with WithEngine:
//
//   - EngineTwoList — unit-delay scheduling with a pending-event list and a
//     pending-gate list (the classical two-list simulator).
//
//   - EngineEventList — one time-stamped priority queue holding both net
//     updates and gate evaluations; supersedes pending events through an
//     invalidation side table (reversal-style cancellation).
//
//   - EngineGateList — schedules gates only; net updates are staged into
//     next-value slots and committed at unit boundaries.
//
//   - EngineLevelized — zero-delay sweep in topological level order with
//     iterative re-convergence over the feedback cone. Its trace holds
//     only initial and final values, so it reports no hazards.
//
//   - EngineThreaded — compiled-code style execution: each gate is a
//     callable record on a work stack, run depth-first with a logical
//     clock.
//
// All engines agree on final primary-output values for race-free acyclic
// circuits; they intentionally differ in intermediate traces and
// evaluation counts. Determinism is part of the contract: events with
// equal times apply in insertion order, gate evaluations at equal times
// run in gate-index order (where the engine orders by gate), and reruns
// of the same (netlist, vector, options) produce bitwise-equal results.
//
// Execution is single-threaded and synchronous; the only governance knobs
// are the unit/iteration caps, checked each scheduler round.
//
// # Stimuli
//
// A Vector assigns values to primary inputs for one simulation episode.
// Simulate starts episodes from the quiescent state — all nets Zero under
// Model2, the configured init value under Model3, brought to consistency
// by one untraced level-order sweep so inverting gates do not hold stale
// values. WithBaseVector settles a priming assignment instead, so a
// single episode can express an input transition such as A: 1→0. SimulateSequence chains episodes, each
// starting from the previous episode's settled values, unless
// WithIndependentVectors restores fully isolated episodes.
//
// Errors (sentinel):
//
//	– ErrNilNetlist           nil netlist handle.
//	– ErrNonConvergence       an engine exceeded its cap; the returned
//	                          *ConvergenceError carries the partial result.
//	– ErrFeedbackInLevelized  strict levelized run on a cyclic netlist.
//	– netlist.ErrUnknownNet   vector key that is not a primary input.
//	– logic.ErrBadValue       vector value outside the active model.
package sim
