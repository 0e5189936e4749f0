// Package netlist: net and gate records plus sentinel errors.
package netlist

import (
	"errors"

	"github.com/katalvlaran/gatesim/logic"
)

// Sentinel errors for netlist construction and lookup.
var (
	// ErrEmptyNetName indicates an empty string used as a net name.
	ErrEmptyNetName = errors.New("netlist: net name is empty")

	// ErrDuplicateInput indicates a primary input declared more than once.
	ErrDuplicateInput = errors.New("netlist: primary input declared twice")

	// ErrMultipleDrivers indicates two gates attempting to drive one net,
	// or a gate attempting to drive a declared primary input.
	ErrMultipleDrivers = errors.New("netlist: net already has a driver")

	// ErrArityMismatch indicates a gate constructed with the wrong number
	// of inputs for its type.
	ErrArityMismatch = errors.New("netlist: gate arity mismatch")

	// ErrUndriven indicates Freeze found an internal net with no driver.
	ErrUndriven = errors.New("netlist: undriven net")

	// ErrUnknownNet indicates a name lookup for a net that does not exist.
	ErrUnknownNet = errors.New("netlist: unknown net")

	// ErrNetlistFrozen indicates a mutation attempted after Freeze.
	ErrNetlistFrozen = errors.New("netlist: netlist is frozen")

	// ErrBadGate indicates an out-of-range gate type passed to AddGate.
	ErrBadGate = errors.New("netlist: invalid gate type")
)

// noDriver marks a net without a driving gate (primary inputs).
const noDriver = -1

// Net is one wire of the circuit.
//
// Index is the net's dense arena position; Driver is the index of the gate
// whose output this net is, or -1 for primary inputs; Fanout lists the
// indices of every gate reading this net, materialized at Freeze.
type Net struct {
	// Name uniquely identifies the net within its netlist.
	Name string

	// Index is the dense zero-based arena index.
	Index int

	// Driver is the driving gate's index, or -1 for primary inputs.
	Driver int

	// Fanout holds the indices of gates reading this net, in gate order.
	Fanout []int

	// IsInput marks a declared primary input.
	IsInput bool

	// IsOutput marks a declared primary output.
	IsOutput bool
}

// Gate is one combinational operator of the circuit.
//
// Inputs are ordered net indices (order matters only for trace
// reproducibility; all supported operators are symmetric except NOT).
// Level is the topological rank assigned at Freeze: a gate sits one level
// above the deepest of its input nets; feedback gates share the rank just
// past the deepest leveled gate.
type Gate struct {
	// Type is the Boolean operator.
	Type logic.GateType

	// Index is the dense zero-based arena index.
	Index int

	// Inputs are the ordered indices of the nets this gate reads.
	Inputs []int

	// Output is the index of the single net this gate drives.
	Output int

	// Level is the topological rank assigned by the levelizer.
	Level int
}
