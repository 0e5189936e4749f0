// Package sim: per-episode state arena.
//
// Engines share one mutable state: current values, the trace, evaluation
// counters, and scratch buffers. State is allocated per episode and never
// aliased into the next one; the frozen netlist is read-only throughout.
package sim

import (
	"fmt"

	"github.com/katalvlaran/gatesim/logic"
	"github.com/katalvlaran/gatesim/netlist"
)

// state is the working memory of one simulation episode.
type state struct {
	nl   *netlist.Netlist
	opts Options

	cur     []logic.Value // current net values
	initial []logic.Value // values at episode start, for hazards and levelized traces
	evals   []int64       // per-gate evaluation counters
	trace   Trace
	scratch []logic.Value // input-gather buffer, reused across evaluations
	traced  bool          // false while settling a base vector
}

// newState allocates an episode over nl with every net at the quiescent
// value: Zero under Model2, opts.InitValue under Model3.
func newState(nl *netlist.Netlist, opts Options) *state {
	quiescent := logic.Zero
	if opts.Model == logic.Model3 {
		quiescent = opts.InitValue
	}

	st := &state{
		nl:      nl,
		opts:    opts,
		cur:     make([]logic.Value, nl.NumNets()),
		initial: make([]logic.Value, nl.NumNets()),
		evals:   make([]int64, nl.NumGates()),
		scratch: make([]logic.Value, 0, 8),
		traced:  true,
	}
	for i := range st.cur {
		st.cur[i] = quiescent
		st.initial[i] = quiescent
	}

	return st
}

// rebase marks the current values as the episode's starting point and
// clears the trace and counters. Used after settling a base vector and
// between vectors of a stateful sequence.
func (st *state) rebase() {
	copy(st.initial, st.cur)
	st.trace = nil
	for i := range st.evals {
		st.evals[i] = 0
	}
	st.traced = true
}

// record commits a net change into the trace.
func (st *state) record(time, net int, old, next logic.Value) {
	if !st.traced {
		return
	}
	st.trace = append(st.trace, Transition{Time: time, Net: net, Old: old, New: next})
	st.opts.Logger.Trace().
		Int("time", time).
		Str("net", st.nl.Net(net).Name).
		Stringer("from", old).
		Stringer("to", next).
		Msg("transition")
}

// evalGate evaluates gate gi against the current values and bumps its
// counter. Inputs were validated at freeze time, so evaluation cannot
// fail here.
func (st *state) evalGate(gi int) logic.Value {
	g := st.nl.Gate(gi)
	st.scratch = st.scratch[:0]
	for _, ni := range g.Inputs {
		st.scratch = append(st.scratch, st.cur[ni])
	}
	st.evals[gi]++

	return logic.MustEval(g.Type, st.opts.Model, st.scratch)
}

// changedInputs validates vec and returns the primary inputs whose value
// differs from the current state, in declaration order (deterministic
// insertion order for time-0 events).
//
// Errors: netlist.ErrUnknownNet for a key that is not a declared primary
// input; logic.ErrBadValue for a value outside the active model.
func (st *state) changedInputs(vec Vector) ([]int, []logic.Value, error) {
	for name, v := range vec {
		ni, err := st.nl.NetIndex(name)
		if err != nil {
			return nil, nil, fmt.Errorf("vector: %w", err)
		}
		if !st.nl.Net(ni).IsInput {
			return nil, nil, fmt.Errorf("vector: net %q is not a primary input: %w", name, netlist.ErrUnknownNet)
		}
		if !v.Valid(st.opts.Model) {
			return nil, nil, fmt.Errorf("vector: net %q: %w", name, logic.ErrBadValue)
		}
	}

	var nets []int
	var vals []logic.Value
	for _, ni := range st.nl.Inputs() {
		v, ok := vec[st.nl.Net(ni).Name]
		if !ok || v == st.cur[ni] {
			continue
		}
		nets = append(nets, ni)
		vals = append(vals, v)
	}

	return nets, vals, nil
}

// result snapshots the episode into an immutable Result. The hazard
// report covers every non-input net; the levelized engine's trace
// guarantees HazardNone by construction (one transition per net at most).
func (st *state) result() *Result {
	final := make(map[string]logic.Value, len(st.nl.Outputs()))
	for _, ni := range st.nl.Outputs() {
		final[st.nl.Net(ni).Name] = st.cur[ni]
	}

	trace := make(Trace, len(st.trace))
	copy(trace, st.trace)

	evals := make([]int64, len(st.evals))
	copy(evals, st.evals)
	total := int64(0)
	for _, n := range evals {
		total += n
	}

	return &Result{
		Engine:     st.opts.Engine,
		Final:      final,
		Trace:      trace,
		GateEvals:  evals,
		TotalEvals: total,
		Hazards:    classify(st.nl, trace),
	}
}

// convergenceError wraps the partial episode into a *ConvergenceError.
func (st *state) convergenceError(limit int) error {
	st.opts.Logger.Warn().
		Stringer("engine", st.opts.Engine).
		Int("limit", limit).
		Msg("non-convergence")

	return &ConvergenceError{Engine: st.opts.Engine, Limit: limit, Partial: st.result()}
}
