// Package sim: the single-list gate-driven engine.
package sim

import (
	"sort"

	"github.com/katalvlaran/gatesim/logic"
)

// runGateList drives the gate-driven simulator: only gates are scheduled,
// and net updates are committed at unit boundaries.
//
// Unit 0 commits the stimulus. Each later unit collects every gate that
// reads a net committed in the previous unit (a per-unit scheduled flag
// enforces exactly one evaluation per gate per unit), evaluates them in
// gate-index order, and stages each output into the net's next-value
// slot. At the unit boundary the staged values are committed in net-index
// order and recorded in the trace. The run converges when a unit stages
// no change, and fails with *ConvergenceError after opts.MaxUnits units.
func runGateList(st *state, vec Vector) error {
	nets, vals, err := st.changedInputs(vec)
	if err != nil {
		return err
	}

	next := make([]logic.Value, len(st.cur))
	copy(next, st.cur)

	scheduled := make([]bool, st.nl.NumGates())
	staged := make([]int, 0, len(nets)) // nets with a staged value this unit
	for i, ni := range nets {
		next[ni] = vals[i]
		staged = append(staged, ni)
	}

	changed := make([]int, 0, len(nets)) // nets committed last unit

	for unit := 0; len(staged) > 0; unit++ {
		if unit >= st.opts.MaxUnits {
			return st.convergenceError(st.opts.MaxUnits)
		}

		// Commit staged values in net-index order.
		sort.Ints(staged)
		changed = changed[:0]
		for _, ni := range staged {
			if st.cur[ni] == next[ni] {
				continue
			}
			st.record(unit, ni, st.cur[ni], next[ni])
			st.cur[ni] = next[ni]
			changed = append(changed, ni)
		}
		staged = staged[:0]

		// Collect the readers of every committed net, once each.
		gateList := make([]int, 0, len(changed))
		for _, ni := range changed {
			for _, gi := range st.nl.Net(ni).Fanout {
				if !scheduled[gi] {
					scheduled[gi] = true
					gateList = append(gateList, gi)
				}
			}
		}
		sort.Ints(gateList)

		st.opts.Logger.Debug().
			Int("unit", unit).
			Int("committed", len(changed)).
			Int("gates", len(gateList)).
			Msg("gate-list unit")

		// Evaluate once per gate; stage differing outputs for the next unit.
		for _, gi := range gateList {
			scheduled[gi] = false
			out := st.evalGate(gi)
			outNet := st.nl.Gate(gi).Output
			next[outNet] = out
			if out != st.cur[outNet] {
				staged = append(staged, outNet)
			}
		}
	}

	return nil
}
