// Package sim: the threaded-code engine.
package sim

// runThreaded drives the compiled-code style simulator. Each gate is a
// callable execution unit — a pre-resolved record of input indices, the
// gate's evaluator, and its output index, which the frozen netlist
// already is — so the work stack holds bare gate indices and the hot loop
// allocates nothing.
//
// The episode applies the stimulus, recording each input change at its
// own tick of a logical clock, then pushes the callables for every fanout
// of every primary input. Executing a callable reads its inputs, writes
// its output, records any transition at the next logical tick, and pushes
// its output net's fanout callables. An on-stack flag keeps a callable
// from being stacked twice simultaneously. The run terminates when the
// stack empties, and fails with *ConvergenceError after opts.MaxUnits
// callable executions.
//
// The stack makes execution depth-first: evaluation counts and traces
// differ from the breadth-first engines, final values do not.
func runThreaded(st *state, vec Vector) error {
	nets, vals, err := st.changedInputs(vec)
	if err != nil {
		return err
	}

	clock := 0
	for i, ni := range nets {
		st.record(clock, ni, st.cur[ni], vals[i])
		st.cur[ni] = vals[i]
		clock++
	}

	onStack := make([]bool, st.nl.NumGates())
	stack := make([]int, 0, st.nl.NumGates())
	for _, ni := range st.nl.Inputs() {
		for _, gi := range st.nl.Net(ni).Fanout {
			if !onStack[gi] {
				onStack[gi] = true
				stack = append(stack, gi)
			}
		}
	}

	for steps := 0; len(stack) > 0; steps++ {
		if steps >= st.opts.MaxUnits {
			return st.convergenceError(st.opts.MaxUnits)
		}

		gi := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		onStack[gi] = false

		out := st.evalGate(gi)
		outNet := st.nl.Gate(gi).Output
		if out == st.cur[outNet] {
			continue
		}
		st.record(clock, outNet, st.cur[outNet], out)
		st.cur[outNet] = out
		clock++

		for _, fo := range st.nl.Net(outNet).Fanout {
			if !onStack[fo] {
				onStack[fo] = true
				stack = append(stack, fo)
			}
		}
	}

	return nil
}
