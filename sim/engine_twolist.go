// Package sim: the two-list unit-delay engine.
package sim

import (
	"sort"

	"github.com/katalvlaran/gatesim/logic"
)

// pendingEvent is one scheduled net change. Unit delay means every event
// scheduled during unit t fires at t+1, so the event list degenerates to
// two buckets: the bucket being drained and the bucket being filled.
type pendingEvent struct {
	net int
	val logic.Value
}

// runTwoList drives the classical two-list simulator: an event list of
// pending net updates and a gate list of gates queued for evaluation at
// the current unit.
//
// Per unit:
//
//	a. Drain this unit's events; apply each in insertion order, recording
//	   actual changes in the trace.
//	b. Collect the fanout gates of every changed net into the gate list,
//	   deduplicated by a scheduled flag, then order by gate index.
//	c. Evaluate the gate list against the now-current values; an output
//	   that differs from its net's current value schedules an event for
//	   the next unit.
//
// The run terminates when both lists are empty at the end of a unit, or
// fails with *ConvergenceError after opts.MaxUnits units.
func runTwoList(st *state, vec Vector) error {
	nets, vals, err := st.changedInputs(vec)
	if err != nil {
		return err
	}

	next := make([]pendingEvent, 0, len(nets))
	for i, ni := range nets {
		next = append(next, pendingEvent{net: ni, val: vals[i]})
	}

	scheduled := make([]bool, st.nl.NumGates())
	gateList := make([]int, 0, st.nl.NumGates())

	for unit := 0; len(next) > 0; unit++ {
		if unit >= st.opts.MaxUnits {
			return st.convergenceError(st.opts.MaxUnits)
		}

		events := next
		next = nil

		// a) Apply events in insertion order; remember which nets changed.
		gateList = gateList[:0]
		for _, ev := range events {
			old := st.cur[ev.net]
			if old == ev.val {
				continue
			}
			st.cur[ev.net] = ev.val
			st.record(unit, ev.net, old, ev.val)

			// b) Queue fanout gates, deduplicated.
			for _, gi := range st.nl.Net(ev.net).Fanout {
				if !scheduled[gi] {
					scheduled[gi] = true
					gateList = append(gateList, gi)
				}
			}
		}
		sort.Ints(gateList)

		st.opts.Logger.Debug().
			Int("unit", unit).
			Int("events", len(events)).
			Int("gates", len(gateList)).
			Msg("two-list unit")

		// c) Evaluate in gate-index order; schedule differing outputs.
		for _, gi := range gateList {
			scheduled[gi] = false
			out := st.evalGate(gi)
			outNet := st.nl.Gate(gi).Output
			if out != st.cur[outNet] {
				next = append(next, pendingEvent{net: outNet, val: out})
			}
		}
	}

	return nil
}
