// Package sim: the zero-delay levelized engine.
package sim

// runLevelized drives the compiled zero-delay simulator: the stimulus is
// applied directly, then every gate is evaluated exactly once in
// ascending level order with immediate commit, so each gate sees its
// final input values on acyclic circuits.
//
// Feedback handling: the levelizer's residue is the feedback set. In
// strict mode a non-empty residue fails with ErrFeedbackInLevelized.
// Otherwise, after the main sweep the engine re-evaluates the feedback
// gates and their forward cones — in level order, repeatedly — until a
// pass changes no net (converged) or opts.FeedbackCap passes elapse
// (*ConvergenceError).
//
// The trace holds only initial and final values: one transition per
// changed net, at time 0, in net-index order. Intermediate glitches are
// invisible to this engine, so its hazard report is HazardNone
// everywhere by construction.
func runLevelized(st *state, vec Vector) error {
	if st.opts.StrictLevelized && len(st.nl.Feedback()) > 0 {
		return ErrFeedbackInLevelized
	}

	nets, vals, err := st.changedInputs(vec)
	if err != nil {
		return err
	}
	for i, ni := range nets {
		st.cur[ni] = vals[i]
	}

	// Main sweep: every gate once, shallowest level first.
	for _, gi := range st.nl.LevelOrder() {
		st.cur[st.nl.Gate(gi).Output] = st.evalGate(gi)
	}

	// Feedback re-convergence over the forward cone of the residue.
	if len(st.nl.Feedback()) > 0 {
		cone := feedbackCone(st)
		settled := false
		for pass := 0; pass < st.opts.FeedbackCap && !settled; pass++ {
			settled = true
			for _, gi := range cone {
				out := st.evalGate(gi)
				outNet := st.nl.Gate(gi).Output
				if out != st.cur[outNet] {
					st.cur[outNet] = out
					settled = false
				}
			}
			st.opts.Logger.Debug().
				Int("pass", pass).
				Bool("settled", settled).
				Msg("levelized feedback pass")
		}
		if !settled {
			return st.convergenceError(st.opts.FeedbackCap)
		}
	}

	// Initial/final trace, net-index order, all at time 0.
	for ni := 0; ni < st.nl.NumNets(); ni++ {
		if st.cur[ni] != st.initial[ni] {
			st.record(0, ni, st.initial[ni], st.cur[ni])
		}
	}

	return nil
}

// feedbackCone returns the feedback gates plus every gate reachable from
// them through fanout, in level order — the set the re-convergence passes
// sweep. Breadth-first over the gate graph.
func feedbackCone(st *state) []int {
	inCone := make([]bool, st.nl.NumGates())
	queue := append([]int(nil), st.nl.Feedback()...)
	for _, gi := range queue {
		inCone[gi] = true
	}
	for head := 0; head < len(queue); head++ {
		out := st.nl.Gate(queue[head]).Output
		for _, fo := range st.nl.Net(out).Fanout {
			if !inCone[fo] {
				inCone[fo] = true
				queue = append(queue, fo)
			}
		}
	}

	cone := make([]int, 0, len(queue))
	for _, gi := range st.nl.LevelOrder() {
		if inCone[gi] {
			cone = append(cone, gi)
		}
	}

	return cone
}
