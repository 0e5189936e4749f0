// Package circuits provides deterministic constructors for canonical
// combinational netlists: the classical textbook fixtures used across the
// gatesim test suites, benchmarks, and examples.
//
// Design contract (strict):
//   - Deterministic: the same constructor with the same parameters builds
//     an identical netlist — identical names, indices, and levels.
//   - Validated: parameters are checked early against sentinel errors;
//     constructors never panic.
//   - Self-contained: constructors depend only on netlist and logic.
//
// Fixed naming scheme: primary inputs are letters or letter+index
// ("A", "B", "Cin", "x0", "a0", "cin", ...); internal nets carry a
// lower-case role prefix ("n1", "t0_0", "c0"); the observable output is
// "Y" except for the adders (FullAdder exposes "S" and "Cout",
// RippleCarryAdder "s0..sN" and "cout") and InverterRing, which exposes
// "n1".
package circuits
