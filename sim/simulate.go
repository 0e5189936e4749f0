// Package sim: public simulation entry points and engine dispatch.
package sim

import (
	"fmt"

	"github.com/katalvlaran/gatesim/logic"
	"github.com/katalvlaran/gatesim/netlist"
)

// Simulate runs one episode of the given stimulus vector over a frozen
// netlist and returns the vector result.
//
// The episode starts from the quiescent state — every net at Zero under
// Model2, at the configured init value under Model3, then one untraced
// level-order evaluation of every gate so gate outputs agree with their
// inputs — unless WithBaseVector supplies a priming assignment, which is
// settled zero-delay and untraced first. The chosen engine then applies vec,
// propagates to convergence, and the result snapshots final outputs, the
// full trace, per-gate evaluation counts, and the hazard report.
//
// Simulate never mutates nl and is idempotent: the same (netlist, vector,
// options) yields bitwise-equal results on every call.
//
// Errors: ErrNilNetlist; netlist.ErrUnknownNet and logic.ErrBadValue for
// malformed vectors; ErrFeedbackInLevelized in strict levelized mode;
// *ConvergenceError (wrapping ErrNonConvergence, partial result attached)
// when a cap fires.
func Simulate(nl *netlist.Netlist, vec Vector, opts ...Option) (*Result, error) {
	res, _, err := run(nl, vec, resolve(opts), nil)

	return res, err
}

// SimulateSequence runs one episode per vector, in order.
//
// By default the sequence is stateful: each episode starts from the
// previous episode's settled net values, so consecutive vectors express
// input transitions and hazards become observable. WithIndependentVectors
// isolates every episode instead (each starts quiescent, exactly as
// Simulate). In both modes the returned results share no storage.
//
// On an engine error the results of the completed episodes are returned
// together with the error, wrapped with the failing vector's position.
func SimulateSequence(nl *netlist.Netlist, vecs []Vector, opts ...Option) ([]*Result, error) {
	o := resolve(opts)
	results := make([]*Result, 0, len(vecs))

	var carry []logic.Value
	for i, vec := range vecs {
		base := carry
		if o.IndependentVectors {
			base = nil
		}
		res, final, err := run(nl, vec, o, base)
		if err != nil {
			return results, fmt.Errorf("sequence vector %d: %w", i, err)
		}
		results = append(results, res)
		carry = final
	}

	return results, nil
}

// run executes one episode: allocate state, establish the starting values
// (carry-over, base vector, or quiescent), dispatch to the engine, and
// snapshot the result. Returns the settled net values for sequence
// chaining; they belong to the episode's private state.
func run(nl *netlist.Netlist, vec Vector, o Options, base []logic.Value) (*Result, []logic.Value, error) {
	if nl == nil {
		return nil, nil, ErrNilNetlist
	}

	st := newState(nl, o)
	switch {
	case base != nil:
		copy(st.cur, base)
	case o.BaseVector != nil:
		if err := settle(st, o.BaseVector); err != nil {
			return nil, nil, fmt.Errorf("base vector: %w", err)
		}
	default:
		initSweep(st)
	}
	st.rebase()

	o.Logger.Debug().
		Stringer("engine", o.Engine).
		Int("nets", nl.NumNets()).
		Int("gates", nl.NumGates()).
		Msg("episode start")

	if err := dispatch(st, vec); err != nil {
		return nil, nil, err
	}

	return st.result(), st.cur, nil
}

// initSweep brings the raw quiescent state to a consistent one: every
// gate evaluated once in level order, untraced, no feedback iteration.
// Without it, gates whose inputs never change would hold values
// inconsistent with their inputs (a NOT gate over a Zero input, say) and
// the event-driven engines would disagree with the levelized sweep on
// final values. Feedback gates get one deterministic evaluation; cyclic
// circuits may start inconsistent, which only the levelized engine
// resolves (or rejects) later.
func initSweep(st *state) {
	st.traced = false
	for _, gi := range st.nl.LevelOrder() {
		st.cur[st.nl.Gate(gi).Output] = st.evalGate(gi)
	}
	st.traced = true
}

// settle establishes a base assignment: a zero-delay levelized pass with
// tracing suppressed. Counters accumulated here are discarded by the
// caller's rebase.
func settle(st *state, base Vector) error {
	st.traced = false
	strict := st.opts.StrictLevelized
	st.opts.StrictLevelized = false
	err := runLevelized(st, base)
	st.opts.StrictLevelized = strict
	st.traced = true

	return err
}

// dispatch routes the episode to the engine selected by the options.
func dispatch(st *state, vec Vector) error {
	switch st.opts.Engine {
	case EngineTwoList:
		return runTwoList(st, vec)
	case EngineEventList:
		return runEventList(st, vec)
	case EngineGateList:
		return runGateList(st, vec)
	case EngineLevelized:
		return runLevelized(st, vec)
	case EngineThreaded:
		return runThreaded(st, vec)
	default:
		return ErrUnknownEngine
	}
}
