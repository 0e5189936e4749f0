// Package sim_test: the concrete end-to-end scenarios — testify suites for
// the two-list and event-list engines, plain tests for the others.
package sim_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gatesim/circuits"
	"github.com/katalvlaran/gatesim/logic"
	"github.com/katalvlaran/gatesim/sim"
)

// TwoListSuite exercises the unit-delay two-list engine.
type TwoListSuite struct {
	suite.Suite
}

// TestAndOrRisingPath: {A:1,B:1,C:0} ripples X then Y one unit apart.
func (s *TwoListSuite) TestAndOrRisingPath() {
	nl, err := circuits.AndOr()
	require.NoError(s.T(), err)

	res, err := sim.Simulate(nl, sim.Vector{"A": logic.One, "B": logic.One, "C": logic.Zero})
	require.NoError(s.T(), err)
	require.Equal(s.T(), logic.One, res.Final["Y"])

	ax, err := nl.NetIndex("A")
	require.NoError(s.T(), err)
	bx, err := nl.NetIndex("B")
	require.NoError(s.T(), err)
	xx, err := nl.NetIndex("X")
	require.NoError(s.T(), err)
	yx, err := nl.NetIndex("Y")
	require.NoError(s.T(), err)

	want := sim.Trace{
		{Time: 0, Net: ax, Old: logic.Zero, New: logic.One},
		{Time: 0, Net: bx, Old: logic.Zero, New: logic.One},
		{Time: 1, Net: xx, Old: logic.Zero, New: logic.One},
		{Time: 2, Net: yx, Old: logic.Zero, New: logic.One},
	}
	require.Equal(s.T(), want, res.Trace)
	require.Equal(s.T(), int64(2), res.TotalEvals)
	for _, h := range res.Hazards {
		require.Equal(s.T(), sim.HazardNone, h)
	}
}

// TestAndOrBypassPath: {A:0,B:1,C:1} leaves X flat and raises Y once.
func (s *TwoListSuite) TestAndOrBypassPath() {
	nl, err := circuits.AndOr()
	require.NoError(s.T(), err)

	res, err := sim.Simulate(nl, sim.Vector{"A": logic.Zero, "B": logic.One, "C": logic.One})
	require.NoError(s.T(), err)
	require.Equal(s.T(), logic.One, res.Final["Y"])

	xx, err := nl.NetIndex("X")
	require.NoError(s.T(), err)
	for _, tr := range res.Trace {
		require.NotEqual(s.T(), xx, tr.Net, "X must stay flat")
	}
	require.Equal(s.T(), sim.HazardNone, res.Hazards["X"])
	require.Equal(s.T(), sim.HazardNone, res.Hazards["Y"])
}

// TestHazardMuxStaticOne: A falling with B=C=1 glitches Y through 0.
func (s *TwoListSuite) TestHazardMuxStaticOne() {
	nl, err := circuits.HazardMux()
	require.NoError(s.T(), err)

	base := sim.Vector{"A": logic.One, "B": logic.One, "C": logic.One}
	vec := sim.Vector{"A": logic.Zero, "B": logic.One, "C": logic.One}
	res, err := sim.Simulate(nl, vec, sim.WithBaseVector(base))
	require.NoError(s.T(), err)

	require.Equal(s.T(), logic.One, res.Final["Y"])
	require.Equal(s.T(), sim.HazardStatic1, res.Hazards["Y"])
	require.Equal(s.T(), int64(5), res.TotalEvals)
}

// TestTernaryUnknownPropagation: an unknown A blocks both product terms.
func (s *TwoListSuite) TestTernaryUnknownPropagation() {
	nl, err := circuits.AndOr()
	require.NoError(s.T(), err)

	res, err := sim.Simulate(nl,
		sim.Vector{"A": logic.U, "B": logic.One, "C": logic.Zero},
		sim.WithModel(logic.Model3),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), logic.U, res.Final["Y"])
	for _, h := range res.Hazards {
		require.Equal(s.T(), sim.HazardNone, h)
	}
}

func TestTwoListSuite(t *testing.T) { suite.Run(t, new(TwoListSuite)) }

// EventListSuite exercises the single-list event engine; its observable
// behavior matches the two-list engine on these scenarios, including the
// hazard glitch.
type EventListSuite struct {
	suite.Suite
}

// TestHazardMuxStaticOne mirrors the two-list glitch scenario.
func (s *EventListSuite) TestHazardMuxStaticOne() {
	nl, err := circuits.HazardMux()
	require.NoError(s.T(), err)

	base := sim.Vector{"A": logic.One, "B": logic.One, "C": logic.One}
	vec := sim.Vector{"A": logic.Zero, "B": logic.One, "C": logic.One}
	res, err := sim.Simulate(nl, vec,
		sim.WithBaseVector(base),
		sim.WithEngine(sim.EngineEventList),
	)
	require.NoError(s.T(), err)

	require.Equal(s.T(), logic.One, res.Final["Y"])
	require.Equal(s.T(), sim.HazardStatic1, res.Hazards["Y"])
}

// TestTraceTimeMonotonic: queue ordering yields non-decreasing times.
func (s *EventListSuite) TestTraceTimeMonotonic() {
	nl, err := circuits.RippleCarryAdder(4)
	require.NoError(s.T(), err)

	vec := sim.Vector{}
	for _, ni := range nl.Inputs() {
		vec[nl.Net(ni).Name] = logic.One
	}
	res, err := sim.Simulate(nl, vec, sim.WithEngine(sim.EngineEventList))
	require.NoError(s.T(), err)

	last := 0
	for _, tr := range res.Trace {
		require.GreaterOrEqual(s.T(), tr.Time, last)
		last = tr.Time
	}
}

func TestEventListSuite(t *testing.T) { suite.Run(t, new(EventListSuite)) }

// --- gate-driven engine ---------------------------------------------------

func TestGateList_SensitizedPathCount(t *testing.T) {
	nl, err := circuits.XorTree(4)
	require.NoError(t, err)

	base := sim.Vector{
		"x0": logic.Zero, "x1": logic.Zero,
		"x2": logic.Zero, "x3": logic.Zero,
	}
	vec := sim.Vector{
		"x0": logic.One, "x1": logic.Zero,
		"x2": logic.Zero, "x3": logic.Zero,
	}

	gl, err := sim.Simulate(nl, vec, sim.WithBaseVector(base), sim.WithEngine(sim.EngineGateList))
	require.NoError(t, err)
	require.Equal(t, logic.One, gl.Final["Y"])

	// The sensitized path x0 → t0_0 → Y crosses exactly two gates.
	require.Equal(t, int64(2), gl.TotalEvals)

	tl, err := sim.Simulate(nl, vec, sim.WithBaseVector(base), sim.WithEngine(sim.EngineTwoList))
	require.NoError(t, err)
	require.InDelta(t, float64(tl.TotalEvals), float64(gl.TotalEvals), 1)
}

func TestGateList_CommitsAtUnitBoundaries(t *testing.T) {
	nl, err := circuits.HazardMux()
	require.NoError(t, err)

	base := sim.Vector{"A": logic.One, "B": logic.One, "C": logic.One}
	vec := sim.Vector{"A": logic.Zero, "B": logic.One, "C": logic.One}
	res, err := sim.Simulate(nl, vec, sim.WithBaseVector(base), sim.WithEngine(sim.EngineGateList))
	require.NoError(t, err)

	// Same glitch as the event engines: unit-synchronous commits still
	// expose the 1→0→1 excursion on Y.
	require.Equal(t, logic.One, res.Final["Y"])
	require.Equal(t, sim.HazardStatic1, res.Hazards["Y"])
}

// --- zero-delay levelized engine ------------------------------------------

func TestLevelized_NoHazardsByConstruction(t *testing.T) {
	nl, err := circuits.HazardMux()
	require.NoError(t, err)

	base := sim.Vector{"A": logic.One, "B": logic.One, "C": logic.One}
	vec := sim.Vector{"A": logic.Zero, "B": logic.One, "C": logic.One}
	res, err := sim.Simulate(nl, vec, sim.WithBaseVector(base), sim.WithEngine(sim.EngineLevelized))
	require.NoError(t, err)

	require.Equal(t, logic.One, res.Final["Y"])
	for name, h := range res.Hazards {
		require.Equal(t, sim.HazardNone, h, "net %s", name)
	}

	// Initial/final trace: at most one transition per net, all at time 0,
	// and Y does not appear at all (it starts and ends at 1).
	yx, err := nl.NetIndex("Y")
	require.NoError(t, err)
	seen := map[int]bool{}
	for _, tr := range res.Trace {
		require.Equal(t, 0, tr.Time)
		require.False(t, seen[tr.Net], "one transition per net")
		seen[tr.Net] = true
		require.NotEqual(t, yx, tr.Net)
	}
}

func TestLevelized_FeedbackRing(t *testing.T) {
	nl, err := circuits.InverterRing(3)
	require.NoError(t, err)

	// Boolean model: an odd ring has no stable solution.
	_, err = sim.Simulate(nl, sim.Vector{}, sim.WithEngine(sim.EngineLevelized))
	require.ErrorIs(t, err, sim.ErrNonConvergence)

	var conv *sim.ConvergenceError
	require.ErrorAs(t, err, &conv)
	require.Equal(t, sim.EngineLevelized, conv.Engine)
	require.Equal(t, 64, conv.Limit)
	require.NotNil(t, conv.Partial)

	// Ternary model: all-U is a fixed point and the sweep converges at once.
	res, err := sim.Simulate(nl, sim.Vector{},
		sim.WithEngine(sim.EngineLevelized),
		sim.WithModel(logic.Model3),
	)
	require.NoError(t, err)
	require.Equal(t, logic.U, res.Final["n1"])
	require.Empty(t, res.Trace)
}

func TestLevelized_StrictRejectsFeedback(t *testing.T) {
	nl, err := circuits.InverterRing(3)
	require.NoError(t, err)

	_, err = sim.Simulate(nl, sim.Vector{},
		sim.WithEngine(sim.EngineLevelized),
		sim.WithStrictLevelized(),
	)
	require.ErrorIs(t, err, sim.ErrFeedbackInLevelized)
}

// --- threaded-code engine -------------------------------------------------

func TestThreaded_DepthFirstConvergence(t *testing.T) {
	nl, err := circuits.HazardMux()
	require.NoError(t, err)

	base := sim.Vector{"A": logic.One, "B": logic.One, "C": logic.One}
	vec := sim.Vector{"A": logic.Zero, "B": logic.One, "C": logic.One}
	res, err := sim.Simulate(nl, vec, sim.WithBaseVector(base), sim.WithEngine(sim.EngineThreaded))
	require.NoError(t, err)
	require.Equal(t, logic.One, res.Final["Y"])

	// Logical clock: strictly increasing, one tick per transition.
	for i := 1; i < len(res.Trace); i++ {
		require.Greater(t, res.Trace[i].Time, res.Trace[i-1].Time)
	}
}

func TestThreaded_IterationCap(t *testing.T) {
	nl, err := circuits.AndOr()
	require.NoError(t, err)

	// Both gates are seeded onto the stack (fanouts of the primary
	// inputs), so a one-execution budget cannot drain it.
	_, err = sim.Simulate(nl,
		sim.Vector{"A": logic.One, "B": logic.One, "C": logic.Zero},
		sim.WithEngine(sim.EngineThreaded),
		sim.WithMaxUnits(1),
	)
	require.ErrorIs(t, err, sim.ErrNonConvergence)

	var conv *sim.ConvergenceError
	require.ErrorAs(t, err, &conv)
	require.Equal(t, 1, conv.Limit)
	require.NotEmpty(t, conv.Partial.Trace, "input transitions precede the cap")
}

func TestTwoList_UnitCapCarriesPartialTrace(t *testing.T) {
	nl, err := circuits.AndOr()
	require.NoError(t, err)

	// Units 0 and 1 run; the Y event pending at unit 2 trips the cap.
	_, err = sim.Simulate(nl,
		sim.Vector{"A": logic.One, "B": logic.One, "C": logic.Zero},
		sim.WithMaxUnits(2),
	)
	require.ErrorIs(t, err, sim.ErrNonConvergence)

	var conv *sim.ConvergenceError
	require.ErrorAs(t, err, &conv)
	require.Equal(t, sim.EngineTwoList, conv.Engine)
	require.Len(t, conv.Partial.Trace, 3) // A, B at unit 0; X at unit 1
}
