// Package circuits: canonical netlist constructors.
package circuits

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gatesim/logic"
	"github.com/katalvlaran/gatesim/netlist"
)

// Sentinel errors for circuit constructors.
var (
	// ErrTooFewInputs indicates a width parameter below the constructor's minimum.
	ErrTooFewInputs = errors.New("circuits: width parameter too small")

	// ErrBadWidth indicates a width parameter violating a structural
	// constraint (XorTree requires a power of two).
	ErrBadWidth = errors.New("circuits: unsupported width")
)

// AndOr builds the two-gate reference circuit
//
//	X = AND(A, B), Y = OR(X, C)
//
// with primary inputs A, B, C and primary output Y.
func AndOr() (*netlist.Netlist, error) {
	b := netlist.NewBuilder()
	if err := b.DeclareInputs("A", "B", "C"); err != nil {
		return nil, err
	}
	if err := b.DeclareOutputs("Y"); err != nil {
		return nil, err
	}
	if err := b.AddGate(logic.AND, []string{"A", "B"}, "X"); err != nil {
		return nil, err
	}
	if err := b.AddGate(logic.OR, []string{"X", "C"}, "Y"); err != nil {
		return nil, err
	}

	return b.Freeze()
}

// HazardMux builds the classical static-1 hazard circuit
//
//	Y = (A AND B) OR (NOT A AND C)
//
// A falling edge on A with B=C=1 glitches Y through 0 under unit delay.
// Inputs A, B, C; output Y; internal nets n1 (A∧B), na (¬A), n2 (¬A∧C).
func HazardMux() (*netlist.Netlist, error) {
	b := netlist.NewBuilder()
	if err := b.DeclareInputs("A", "B", "C"); err != nil {
		return nil, err
	}
	if err := b.DeclareOutputs("Y"); err != nil {
		return nil, err
	}
	steps := []struct {
		t   logic.GateType
		in  []string
		out string
	}{
		{logic.AND, []string{"A", "B"}, "n1"},
		{logic.NOT, []string{"A"}, "na"},
		{logic.AND, []string{"na", "C"}, "n2"},
		{logic.OR, []string{"n1", "n2"}, "Y"},
	}
	for _, s := range steps {
		if err := b.AddGate(s.t, s.in, s.out); err != nil {
			return nil, err
		}
	}

	return b.Freeze()
}

// InverterRing builds a combinational feedback loop of n inverters
// (n1 → n2 → … → nn → n1) with no primary inputs. Odd n has no stable
// Boolean solution; the ternary model settles at all-U. n must be ≥ 1.
func InverterRing(n int) (*netlist.Netlist, error) {
	if n < 1 {
		return nil, ErrTooFewInputs
	}

	b := netlist.NewBuilder()
	for i := 1; i <= n; i++ {
		prev := i - 1
		if prev == 0 {
			prev = n
		}
		in := fmt.Sprintf("n%d", prev)
		out := fmt.Sprintf("n%d", i)
		if err := b.AddGate(logic.NOT, []string{in}, out); err != nil {
			return nil, err
		}
	}
	if err := b.DeclareOutputs("n1"); err != nil {
		return nil, err
	}

	return b.Freeze()
}

// XorTree builds a balanced XOR reduction over width inputs
// x0..x(width-1) into output Y. width must be a power of two, ≥ 2.
// Toggling a single input sensitizes exactly one root-to-leaf path of
// log2(width) gates.
func XorTree(width int) (*netlist.Netlist, error) {
	if width < 2 {
		return nil, ErrTooFewInputs
	}
	if width&(width-1) != 0 {
		return nil, ErrBadWidth
	}

	b := netlist.NewBuilder()
	level := make([]string, width)
	for i := 0; i < width; i++ {
		level[i] = fmt.Sprintf("x%d", i)
	}
	if err := b.DeclareInputs(level...); err != nil {
		return nil, err
	}
	if err := b.DeclareOutputs("Y"); err != nil {
		return nil, err
	}

	tier := 0
	for len(level) > 1 {
		next := make([]string, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			out := fmt.Sprintf("t%d_%d", tier, i/2)
			if len(level) == 2 {
				out = "Y"
			}
			if err := b.AddGate(logic.XOR, []string{level[i], level[i+1]}, out); err != nil {
				return nil, err
			}
			next = append(next, out)
		}
		level = next
		tier++
	}

	return b.Freeze()
}

// FullAdder builds a one-bit full adder over inputs A, B, Cin with
// outputs S (sum) and Cout (carry).
//
//	S    = A ⊕ B ⊕ Cin
//	Cout = (A∧B) ∨ (Cin∧(A⊕B))
func FullAdder() (*netlist.Netlist, error) {
	b := netlist.NewBuilder()
	if err := b.DeclareInputs("A", "B", "Cin"); err != nil {
		return nil, err
	}
	if err := b.DeclareOutputs("S", "Cout"); err != nil {
		return nil, err
	}
	steps := []struct {
		t   logic.GateType
		in  []string
		out string
	}{
		{logic.XOR, []string{"A", "B"}, "p"},
		{logic.XOR, []string{"p", "Cin"}, "S"},
		{logic.AND, []string{"A", "B"}, "g"},
		{logic.AND, []string{"p", "Cin"}, "pc"},
		{logic.OR, []string{"g", "pc"}, "Cout"},
	}
	for _, s := range steps {
		if err := b.AddGate(s.t, s.in, s.out); err != nil {
			return nil, err
		}
	}

	return b.Freeze()
}

// RippleCarryAdder chains width full adders: inputs a0..aN, b0..bN, cin;
// outputs s0..sN and cout. width must be ≥ 1.
func RippleCarryAdder(width int) (*netlist.Netlist, error) {
	if width < 1 {
		return nil, ErrTooFewInputs
	}

	b := netlist.NewBuilder()
	names := make([]string, 0, 2*width+1)
	for i := 0; i < width; i++ {
		names = append(names, fmt.Sprintf("a%d", i))
	}
	for i := 0; i < width; i++ {
		names = append(names, fmt.Sprintf("b%d", i))
	}
	names = append(names, "cin")
	if err := b.DeclareInputs(names...); err != nil {
		return nil, err
	}

	carry := "cin"
	for i := 0; i < width; i++ {
		a, bb := fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", i)
		p := fmt.Sprintf("p%d", i)
		g := fmt.Sprintf("g%d", i)
		pc := fmt.Sprintf("pc%d", i)
		s := fmt.Sprintf("s%d", i)
		cout := fmt.Sprintf("c%d", i)
		if i == width-1 {
			cout = "cout"
		}
		steps := []struct {
			t   logic.GateType
			in  []string
			out string
		}{
			{logic.XOR, []string{a, bb}, p},
			{logic.XOR, []string{p, carry}, s},
			{logic.AND, []string{a, bb}, g},
			{logic.AND, []string{p, carry}, pc},
			{logic.OR, []string{g, pc}, cout},
		}
		for _, st := range steps {
			if err := b.AddGate(st.t, st.in, st.out); err != nil {
				return nil, err
			}
		}
		if err := b.DeclareOutputs(s); err != nil {
			return nil, err
		}
		carry = cout
	}
	if err := b.DeclareOutputs("cout"); err != nil {
		return nil, err
	}

	return b.Freeze()
}

// Majority builds the three-input majority voter
//
//	Y = (A∧B) ∨ (A∧C) ∨ (B∧C)
//
// using a NAND-only realization, exercising the inverting duals.
func Majority() (*netlist.Netlist, error) {
	b := netlist.NewBuilder()
	if err := b.DeclareInputs("A", "B", "C"); err != nil {
		return nil, err
	}
	if err := b.DeclareOutputs("Y"); err != nil {
		return nil, err
	}
	steps := []struct {
		t   logic.GateType
		in  []string
		out string
	}{
		{logic.NAND, []string{"A", "B"}, "nab"},
		{logic.NAND, []string{"A", "C"}, "nac"},
		{logic.NAND, []string{"B", "C"}, "nbc"},
		{logic.NAND, []string{"nab", "nac", "nbc"}, "Y"},
	}
	for _, s := range steps {
		if err := b.AddGate(s.t, s.in, s.out); err != nil {
			return nil, err
		}
	}

	return b.Freeze()
}
