// Package netlist: mutable construction API.
package netlist

import (
	"fmt"

	"github.com/katalvlaran/gatesim/logic"
)

// Builder accumulates nets and gates before Freeze.
//
// Builder is not safe for concurrent use; construction is a single-threaded
// setup phase. All validation is eager: the offending call reports the
// error, and a Builder that never errored always freezes cleanly apart
// from the whole-circuit undriven-net check. Feedback is not an error:
// levelization records it as the feedback set.
type Builder struct {
	nets   []Net
	gates  []Gate
	index  map[string]int
	inputs []int // net indices in declaration order
	frozen bool
}

// NewBuilder returns an empty circuit builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// net returns the index of the named net, creating it on first reference.
func (b *Builder) net(name string) (int, error) {
	if name == "" {
		return noDriver, ErrEmptyNetName
	}
	if idx, ok := b.index[name]; ok {
		return idx, nil
	}

	idx := len(b.nets)
	b.nets = append(b.nets, Net{Name: name, Index: idx, Driver: noDriver})
	b.index[name] = idx

	return idx, nil
}

// DeclareInputs creates (or marks) the named nets as primary inputs.
//
// A primary input is driven by the stimulus, never by a gate: declaring a
// net that already has a driver fails with ErrMultipleDrivers, and
// re-declaring an input fails with ErrDuplicateInput.
func (b *Builder) DeclareInputs(names ...string) error {
	if b.frozen {
		return ErrNetlistFrozen
	}
	for _, name := range names {
		idx, err := b.net(name)
		if err != nil {
			return err
		}
		if b.nets[idx].IsInput {
			return fmt.Errorf("DeclareInputs(%q): %w", name, ErrDuplicateInput)
		}
		if b.nets[idx].Driver != noDriver {
			return fmt.Errorf("DeclareInputs(%q): %w", name, ErrMultipleDrivers)
		}
		b.nets[idx].IsInput = true
		b.inputs = append(b.inputs, idx)
	}

	return nil
}

// DeclareOutputs marks the named nets as primary outputs. The nets may be
// declared before or after the gate that drives them; a net created here
// and never driven is caught by Freeze as ErrUndriven.
func (b *Builder) DeclareOutputs(names ...string) error {
	if b.frozen {
		return ErrNetlistFrozen
	}
	for _, name := range names {
		idx, err := b.net(name)
		if err != nil {
			return err
		}
		b.nets[idx].IsOutput = true
	}

	return nil
}

// AddGate appends a gate of type t reading the ordered input nets and
// driving the output net. Unknown nets are created implicitly.
//
// Validation (in order):
//  1. Builder must not be frozen (ErrNetlistFrozen).
//  2. t must be a declared gate type (ErrBadGate).
//  3. len(inputs) must match t's arity (ErrArityMismatch).
//  4. The output net must have no prior driver and must not be a primary
//     input (ErrMultipleDrivers).
func (b *Builder) AddGate(t logic.GateType, inputs []string, output string) error {
	if b.frozen {
		return ErrNetlistFrozen
	}
	if !t.Valid() {
		return ErrBadGate
	}
	if err := t.CheckArity(len(inputs)); err != nil {
		return fmt.Errorf("AddGate(%s→%q): %w", t, output, ErrArityMismatch)
	}

	in := make([]int, len(inputs))
	for i, name := range inputs {
		idx, err := b.net(name)
		if err != nil {
			return err
		}
		in[i] = idx
	}
	out, err := b.net(output)
	if err != nil {
		return err
	}
	if b.nets[out].Driver != noDriver || b.nets[out].IsInput {
		return fmt.Errorf("AddGate(%s→%q): %w", t, output, ErrMultipleDrivers)
	}

	g := Gate{Type: t, Index: len(b.gates), Inputs: in, Output: out, Level: unleveled}
	b.nets[out].Driver = g.Index
	b.gates = append(b.gates, g)

	return nil
}

// Freeze validates the whole circuit, materializes fanout lists, runs the
// levelizer, and returns the immutable netlist.
//
// Steps:
//  1. Reject a second Freeze (ErrNetlistFrozen).
//  2. Reject internal nets without a driver (ErrUndriven, net name attached).
//  3. Scan every gate's inputs once to build per-net fanout lists; a gate
//     reading the same net through several pins appears once per net.
//  4. Levelize (see levelize.go); the residue becomes the feedback set.
//
// After a successful Freeze the Builder refuses further mutation.
// Complexity: O(N + G·k) time for N nets and G gates of arity ≤ k.
func (b *Builder) Freeze() (*Netlist, error) {
	if b.frozen {
		return nil, ErrNetlistFrozen
	}
	for i := range b.nets {
		if b.nets[i].Driver == noDriver && !b.nets[i].IsInput {
			return nil, fmt.Errorf("Freeze: net %q: %w", b.nets[i].Name, ErrUndriven)
		}
	}

	// Fanout materialization: one pass over all gate inputs.
	for gi := range b.gates {
		for pin, ni := range b.gates[gi].Inputs {
			if seenEarlierPin(b.gates[gi].Inputs[:pin], ni) {
				continue
			}
			b.nets[ni].Fanout = append(b.nets[ni].Fanout, gi)
		}
	}

	levels, order, feedback := levelize(b.nets, b.gates)
	maxLevel := 0
	for gi := range b.gates {
		b.gates[gi].Level = levels[gi]
		if levels[gi] > maxLevel {
			maxLevel = levels[gi]
		}
	}

	var outputs []int
	for i := range b.nets {
		if b.nets[i].IsOutput {
			outputs = append(outputs, i)
		}
	}

	b.frozen = true

	return &Netlist{
		nets:       b.nets,
		gates:      b.gates,
		index:      b.index,
		inputs:     b.inputs,
		outputs:    outputs,
		levelOrder: order,
		feedback:   feedback,
		maxLevel:   maxLevel,
	}, nil
}

// seenEarlierPin reports whether net ni already appeared among pins.
func seenEarlierPin(pins []int, ni int) bool {
	for _, p := range pins {
		if p == ni {
			return true
		}
	}

	return false
}
