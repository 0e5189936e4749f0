// Package logic: table-driven gate evaluation.
//
// Each operator carries two evaluation tables: a [2][2] Boolean table used
// under Model2 and a [3][3] ternary table used under Model3. Tables are
// indexed directly by the two-bit value codes, so evaluation is lookup and
// fold with no per-gate branching on levels.
package logic

// Binary Boolean tables, indexed [a][b] by value code.
var (
	and2 = [2][2]Value{
		{Zero, Zero},
		{Zero, One},
	}
	or2 = [2][2]Value{
		{Zero, One},
		{One, One},
	}
	xor2 = [2][2]Value{
		{Zero, One},
		{One, Zero},
	}
	not2 = [2]Value{One, Zero}
)

// Ternary tables. Controlling values dominate U: AND with a Zero input is
// Zero, OR with a One input is One. XOR has no controlling value, so any U
// input makes the result U.
var (
	and3 = [3][3]Value{
		{Zero, Zero, Zero},
		{Zero, One, U},
		{Zero, U, U},
	}
	or3 = [3][3]Value{
		{Zero, One, U},
		{One, One, One},
		{U, One, U},
	}
	xor3 = [3][3]Value{
		{Zero, One, U},
		{One, Zero, U},
		{U, U, U},
	}
	not3 = [3]Value{One, Zero, U}
)

// Eval computes the output of a gate of type t over the ordered inputs in
// under logic model m.
//
// Evaluation steps:
//  1. Validate the model, the gate type, and the arity (ErrBadArity).
//  2. Validate every input level against the model (ErrBadValue).
//  3. Fold the matching binary table over the inputs; inverting types
//     (NAND, NOR, XNOR) complement the folded result.
//
// Complexity: O(len(in)) time, O(1) space. Eval never mutates in.
func Eval(t GateType, m Model, in []Value) (Value, error) {
	if !m.Valid() {
		return Zero, ErrBadValue
	}
	if err := t.CheckArity(len(in)); err != nil {
		return Zero, err
	}
	for _, v := range in {
		if !v.Valid(m) {
			return Zero, ErrBadValue
		}
	}

	switch t {
	case NOT:
		return invert(m, in[0]), nil
	case AND:
		return fold(tableFor(m, and2, and3), in), nil
	case NAND:
		return invert(m, fold(tableFor(m, and2, and3), in)), nil
	case OR:
		return fold(tableFor(m, or2, or3), in), nil
	case NOR:
		return invert(m, fold(tableFor(m, or2, or3), in)), nil
	case XOR:
		return fold(tableFor(m, xor2, xor3), in), nil
	case XNOR:
		return invert(m, fold(tableFor(m, xor2, xor3), in)), nil
	default:
		return Zero, ErrBadGateType
	}
}

// MustEval is Eval for pre-validated inputs: it panics on error.
// Engines call it on frozen netlists, whose gates and levels were already
// validated at construction time.
func MustEval(t GateType, m Model, in []Value) Value {
	v, err := Eval(t, m, in)
	if err != nil {
		panic(err)
	}

	return v
}

// tableFor selects the Boolean or ternary table for model m.
// The [2][2] table is widened so both models share one fold loop.
func tableFor(m Model, t2 [2][2]Value, t3 [3][3]Value) [3][3]Value {
	if m == Model2 {
		return [3][3]Value{
			{t2[0][0], t2[0][1], U},
			{t2[1][0], t2[1][1], U},
			{U, U, U},
		}
	}

	return t3
}

// fold reduces in pairwise through tab, left to right.
func fold(tab [3][3]Value, in []Value) Value {
	acc := in[0]
	for _, v := range in[1:] {
		acc = tab[acc][v]
	}

	return acc
}

// invert complements v under model m.
func invert(m Model, v Value) Value {
	if m == Model2 {
		return not2[v]
	}

	return not3[v]
}
