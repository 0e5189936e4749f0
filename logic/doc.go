// Package logic defines the value algebra and the gate-evaluation kernel
// shared by every simulation engine in gatesim.
//
// Two logic models are supported:
//
//   - Model2 — classic Boolean algebra over {0, 1}.
//   - Model3 — ternary algebra over {0, 1, U}, where U denotes an unknown
//     or uninitialized signal.
//
// U semantics follow the standard controlling-value rules: an AND with any
// 0 input yields 0 and an OR with any 1 input yields 1 regardless of U on
// the remaining inputs; NAND and NOR are their duals; XOR and XNOR yield U
// as soon as any input is U; NOT of U is U.
//
// Values use a two-bit encoding (00=Zero, 01=One, 10=U), so each binary
// operator is a small lookup table indexed directly by value codes and the
// kernel evaluates without per-gate branching. N-ary gates fold left over
// the binary table; inverting types (NAND, NOR, XNOR) negate the fold.
//
// Evaluation is a pure function of the input values: the kernel holds no
// state and never mutates its arguments.
//
// Errors (sentinel):
//
//	– ErrBadValue    if a value code lies outside the active model.
//	– ErrBadGateType if a gate type code or name is unknown.
//	– ErrBadArity    if the input count does not match the gate type.
package logic
