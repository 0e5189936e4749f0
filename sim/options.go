// Package sim: engine options.
//
// One Options struct governs all five engines, resolved from functional
// options over DefaultOptions. Option constructors panic on structurally
// invalid arguments; value-level validation happens inside Simulate.
package sim

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/gatesim/logic"
)

// Options configures a simulation run. One struct governs all engines,
// matching the shared-signature contract of the engine family.
type Options struct {
	// Engine selects the paradigm that executes the episode.
	Engine Engine

	// Model is logic.Model2 (Boolean) or logic.Model3 (ternary).
	Model logic.Model

	// MaxUnits is the unit/iteration budget of the event-driven,
	// gate-driven, and threaded engines. Default 10000.
	MaxUnits int

	// FeedbackCap is the levelized engine's re-convergence iteration
	// budget over the feedback cone. Default 64.
	FeedbackCap int

	// InitValue is the quiescent value of every net under Model3 before
	// stimuli apply. Default logic.U. Model2 always starts from Zero.
	InitValue logic.Value

	// StrictLevelized makes the levelized engine refuse cyclic netlists.
	StrictLevelized bool

	// IndependentVectors makes SimulateSequence isolate episodes instead
	// of chaining each vector from the previous settled state.
	IndependentVectors bool

	// BaseVector is a priming assignment settled (untraced) before the
	// episode starts, so one vector can express an input transition.
	BaseVector Vector

	// Logger receives engine diagnostics. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// Option is a functional option for configuring a simulation run.
type Option func(*Options)

// DefaultOptions returns the production-safe defaults: two-list engine,
// Boolean model, 10000-unit budget, 64 feedback iterations, quiescent U
// under Model3, no-op logger.
func DefaultOptions() Options {
	return Options{
		Engine:      EngineTwoList,
		Model:       logic.Model2,
		MaxUnits:    10000,
		FeedbackCap: 64,
		InitValue:   logic.U,
		Logger:      zerolog.Nop(),
	}
}

// WithEngine selects the simulation paradigm.
// Panics on an undeclared engine tag.
func WithEngine(e Engine) Option {
	return func(o *Options) {
		if !e.Valid() {
			panic(ErrUnknownEngine.Error())
		}
		o.Engine = e
	}
}

// WithModel selects the logic model.
// Panics on an undeclared model.
func WithModel(m logic.Model) Option {
	return func(o *Options) {
		if !m.Valid() {
			panic(logic.ErrBadValue.Error())
		}
		o.Model = m
	}
}

// WithMaxUnits caps the unit/iteration budget of the event-driven, gate-
// driven, and threaded engines. Panics on a non-positive cap.
func WithMaxUnits(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("sim: MaxUnits must be positive")
		}
		o.MaxUnits = n
	}
}

// WithFeedbackCap caps the levelized engine's feedback-cone iterations.
// Panics on a non-positive cap.
func WithFeedbackCap(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("sim: FeedbackCap must be positive")
		}
		o.FeedbackCap = n
	}
}

// WithInitValue sets the quiescent net value used under Model3.
// Panics on a value outside the ternary domain.
func WithInitValue(v logic.Value) Option {
	return func(o *Options) {
		if !v.Valid(logic.Model3) {
			panic(logic.ErrBadValue.Error())
		}
		o.InitValue = v
	}
}

// WithStrictLevelized makes the levelized engine fail with
// ErrFeedbackInLevelized instead of iterating over feedback gates.
func WithStrictLevelized() Option {
	return func(o *Options) { o.StrictLevelized = true }
}

// WithIndependentVectors makes SimulateSequence start every vector from
// the quiescent state instead of the previous vector's settled values.
func WithIndependentVectors() Option {
	return func(o *Options) { o.IndependentVectors = true }
}

// WithBaseVector settles the given assignment (untraced, zero-delay)
// before the episode starts. The episode's vector then expresses a
// transition relative to this settled state.
func WithBaseVector(base Vector) Option {
	return func(o *Options) { o.BaseVector = base }
}

// WithLogger attaches a structured logger. Every episode emits a Debug
// start event and every traced transition a Trace event; the two-list and
// gate-list engines add a Debug event per unit and the levelized engine
// one per feedback pass. The event-list and threaded engines emit no
// per-step events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// resolve folds opts over the defaults.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
