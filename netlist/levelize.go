// Package netlist: Kahn levelization over the driver→fanout DAG.
package netlist

// unleveled marks a gate not yet ranked by the levelizer.
const unleveled = -1

// levelize assigns a topological level to every gate.
//
// Net levels: primary inputs sit at level 0; a driven net inherits its
// driver's level. Gate levels: one above the deepest input net.
//
// Method (Kahn):
//  1. unresolved[g] = number of distinct input nets of g that are not yet
//     ready (a net is ready when it is a primary input or its driver has
//     been leveled).
//  2. Seed a FIFO queue with all gates whose inputs are ready, in
//     gate-index order — this makes level assignment deterministic.
//  3. Pop a gate, rank it, mark its output net ready, and release each
//     fanout gate whose unresolved count drops to zero.
//
// The residue — gates never popped — is exactly the set of gates involved
// in combinational feedback or downstream of it (any input fed, directly or
// transitively, from a feedback loop). Residue gates are all
// ranked one past the deepest leveled gate, keeping Level non-negative and
// total; the zero-delay engine treats them through its iteration mode
// instead of the main sweep.
//
// Returns per-gate levels, the evaluation order (leveled gates sorted by
// (level, index), then the feedback set by index), and the feedback set.
// Complexity: O(N + G·k) time, O(N + G) space.
func levelize(nets []Net, gates []Gate) (levels []int, order []int, feedback []int) {
	levels = make([]int, len(gates))
	netReady := make([]bool, len(nets))
	netLevel := make([]int, len(nets))
	unresolved := make([]int, len(gates))

	for ni := range nets {
		if nets[ni].IsInput {
			netReady[ni] = true
		}
	}
	for gi := range gates {
		levels[gi] = unleveled
		for pin, ni := range gates[gi].Inputs {
			if seenEarlierPin(gates[gi].Inputs[:pin], ni) {
				continue
			}
			if !netReady[ni] {
				unresolved[gi]++
			}
		}
	}

	queue := make([]int, 0, len(gates))
	for gi := range gates {
		if unresolved[gi] == 0 {
			queue = append(queue, gi)
		}
	}

	maxLevel := 0
	for head := 0; head < len(queue); head++ {
		gi := queue[head]
		lvl := 0
		for _, ni := range gates[gi].Inputs {
			if netLevel[ni] > lvl {
				lvl = netLevel[ni]
			}
		}
		lvl++
		levels[gi] = lvl
		if lvl > maxLevel {
			maxLevel = lvl
		}

		out := gates[gi].Output
		netLevel[out] = lvl
		netReady[out] = true
		for _, fo := range nets[out].Fanout {
			unresolved[fo]--
			if unresolved[fo] == 0 {
				queue = append(queue, fo)
			}
		}
	}

	for gi := range gates {
		if levels[gi] == unleveled {
			levels[gi] = maxLevel + 1
			feedback = append(feedback, gi)
		}
	}

	order = rankOrder(gates, levels)

	return levels, order, feedback
}

// rankOrder returns gate indices sorted by (level, index). Levels are
// small dense integers, so a counting bucket pass beats a comparison sort
// and keeps the order trivially stable.
func rankOrder(gates []Gate, levels []int) []int {
	maxLevel := 0
	for _, lvl := range levels {
		if lvl > maxLevel {
			maxLevel = lvl
		}
	}

	buckets := make([][]int, maxLevel+1)
	for gi := range gates {
		buckets[levels[gi]] = append(buckets[levels[gi]], gi)
	}

	order := make([]int, 0, len(gates))
	for _, bucket := range buckets {
		order = append(order, bucket...)
	}

	return order
}
