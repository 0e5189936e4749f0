// Package netlist_test: structural invariants of frozen netlists —
// driver uniqueness, reciprocal fanout edges, and level consistency.
package netlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatesim/logic"
	"github.com/katalvlaran/gatesim/netlist"
)

func TestFreeze_FanoutReciprocity(t *testing.T) {
	nl := andOr(t)

	// Every fanout edge points to a gate that lists the net among its inputs.
	for ni := 0; ni < nl.NumNets(); ni++ {
		net := nl.Net(ni)
		for _, gi := range net.Fanout {
			require.Contains(t, nl.Gate(gi).Inputs, ni,
				"fanout edge %s→gate %d is not reciprocal", net.Name, gi)
		}
	}

	// And the converse: every gate input is listed in that net's fanout.
	for gi := 0; gi < nl.NumGates(); gi++ {
		for _, ni := range nl.Gate(gi).Inputs {
			require.Contains(t, nl.Net(ni).Fanout, gi,
				"gate %d input %s missing from fanout", gi, nl.Net(ni).Name)
		}
	}
}

func TestFreeze_DriverInvariant(t *testing.T) {
	nl := andOr(t)
	for ni := 0; ni < nl.NumNets(); ni++ {
		net := nl.Net(ni)
		if net.IsInput {
			require.Equal(t, -1, net.Driver, "input %s must have no driver", net.Name)
			continue
		}
		require.GreaterOrEqual(t, net.Driver, 0, "net %s must be driven", net.Name)
		require.Equal(t, ni, nl.Gate(net.Driver).Output,
			"driver of %s must point back", net.Name)
	}
}

func TestFreeze_LevelConsistency(t *testing.T) {
	nl := andOr(t)
	require.Empty(t, nl.Feedback())

	// Acyclic invariant: gate level = 1 + max(level of input nets), where a
	// net's level is 0 for inputs and the driver's level otherwise.
	netLevel := func(ni int) int {
		n := nl.Net(ni)
		if n.IsInput {
			return 0
		}

		return nl.Gate(n.Driver).Level
	}
	for gi := 0; gi < nl.NumGates(); gi++ {
		g := nl.Gate(gi)
		deepest := 0
		for _, ni := range g.Inputs {
			if lvl := netLevel(ni); lvl > deepest {
				deepest = lvl
			}
		}
		require.Equal(t, deepest+1, g.Level, "gate %d", gi)
	}

	ax, err := nl.NetIndex("X")
	require.NoError(t, err)
	require.Equal(t, 1, nl.Gate(nl.Net(ax).Driver).Level)
	ay, err := nl.NetIndex("Y")
	require.NoError(t, err)
	require.Equal(t, 2, nl.Gate(nl.Net(ay).Driver).Level)
}

func TestFreeze_LevelOrderDeterminism(t *testing.T) {
	// Two identical construction sequences must freeze to identical orders.
	build := func() *netlist.Netlist { return andOr(t) }
	a, b := build(), build()
	require.Equal(t, a.LevelOrder(), b.LevelOrder())
	require.Equal(t, a.MaxLevel(), b.MaxLevel())
}

func TestFreeze_FeedbackResidue(t *testing.T) {
	// Ring of three inverters: no gate is ever ready, all three are residue.
	b := netlist.NewBuilder()
	require.NoError(t, b.AddGate(logic.NOT, []string{"n3"}, "n1"))
	require.NoError(t, b.AddGate(logic.NOT, []string{"n1"}, "n2"))
	require.NoError(t, b.AddGate(logic.NOT, []string{"n2"}, "n3"))
	nl, err := b.Freeze()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, nl.Feedback())

	// A gate fed by the ring never levels: it would only become ready once
	// the ring were ranked, which never happens — so it is part of the
	// residue as well, even though its other input is a primary input.
	b = netlist.NewBuilder()
	require.NoError(t, b.DeclareInputs("A"))
	require.NoError(t, b.AddGate(logic.NOT, []string{"n3"}, "n1"))
	require.NoError(t, b.AddGate(logic.NOT, []string{"n1"}, "n2"))
	require.NoError(t, b.AddGate(logic.NOT, []string{"n2"}, "n3"))
	require.NoError(t, b.AddGate(logic.AND, []string{"A", "n1"}, "Y"))
	nl, err = b.Freeze()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, nl.Feedback())
}

func TestFreeze_SharedPinFanoutOnce(t *testing.T) {
	// A gate reading the same net twice appears once in that net's fanout.
	b := netlist.NewBuilder()
	require.NoError(t, b.DeclareInputs("A"))
	require.NoError(t, b.AddGate(logic.XOR, []string{"A", "A"}, "Y"))
	nl, err := b.Freeze()
	require.NoError(t, err)
	ai, err := nl.NetIndex("A")
	require.NoError(t, err)
	require.Equal(t, []int{0}, nl.Net(ai).Fanout)
}
