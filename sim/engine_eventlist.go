// Package sim: the single-list event-driven engine.
package sim

import "github.com/katalvlaran/gatesim/logic"

// noPending marks a net without an outstanding scheduled update.
const noPending int64 = -1

// runEventList drives the single-list simulator: one priority queue holds
// both net updates and gate evaluations, keyed (time, phase, sequence).
// The phase ordering guarantees that every update at time t applies
// before any evaluation at time t.
//
// Popping an update applies it; an actual change schedules an evaluation
// of each fanout gate at the same time. Popping an evaluation computes
// the gate's output and then:
//
//   - output == current value and a pending update targets a different
//     value → the earlier transition would be reversed, so the pending
//     update is cancelled. Cancellation marks the superseded sequence
//     number in a side table; the queue skips invalidated entries on
//     dequeue instead of searching the heap.
//   - output != current value and a pending update already targets the
//     same value → duplicate, nothing scheduled.
//   - otherwise → schedule the update one unit later.
//
// Gate evaluations are not deduplicated within a time step: a gate with
// several inputs changing at time t is evaluated once per change, and the
// pending-update bookkeeping absorbs the repeats. This engine's counters
// therefore run at or above the two-list engine's.
func runEventList(st *state, vec Vector) error {
	nets, vals, err := st.changedInputs(vec)
	if err != nil {
		return err
	}

	q := &eventQueue{}
	for i, ni := range nets {
		q.push(queueItem{time: 0, phase: phaseUpdate, net: ni, val: vals[i]})
	}

	pendingSeq := make([]int64, st.nl.NumNets())
	pendingVal := make([]logic.Value, st.nl.NumNets())
	for i := range pendingSeq {
		pendingSeq[i] = noPending
	}
	invalid := make(map[int64]struct{})

	for q.len() > 0 {
		it := q.pop()
		if it.time >= st.opts.MaxUnits {
			return st.convergenceError(st.opts.MaxUnits)
		}

		if it.phase == phaseUpdate {
			if pendingSeq[it.net] == it.seq {
				pendingSeq[it.net] = noPending
			}
			if _, dead := invalid[it.seq]; dead {
				delete(invalid, it.seq)
				continue
			}
			old := st.cur[it.net]
			if old == it.val {
				continue
			}
			st.cur[it.net] = it.val
			st.record(it.time, it.net, old, it.val)
			for _, gi := range st.nl.Net(it.net).Fanout {
				q.push(queueItem{time: it.time, phase: phaseEval, gate: gi})
			}
			continue
		}

		out := st.evalGate(it.gate)
		outNet := st.nl.Gate(it.gate).Output
		switch {
		case out == st.cur[outNet]:
			if pendingSeq[outNet] != noPending && pendingVal[outNet] != out {
				invalid[pendingSeq[outNet]] = struct{}{}
				pendingSeq[outNet] = noPending
			}
		case pendingSeq[outNet] != noPending && pendingVal[outNet] == out:
			// Duplicate: the same change is already on its way.
		default:
			seq := q.push(queueItem{time: it.time + 1, phase: phaseUpdate, net: outNet, val: out})
			pendingSeq[outNet] = seq
			pendingVal[outNet] = out
		}
	}

	return nil
}
