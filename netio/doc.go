// Package netio reads circuit and stimulus descriptions from YAML
// documents and writes simulation results back out — the file surface the
// core exposes to CLI front-ends and test harnesses.
//
// Circuit document:
//
//	name: mux
//	inputs: [A, B, C]
//	outputs: [Y]
//	gates:
//	  - {type: AND, inputs: [A, B], output: n1}
//	  - {type: NOT, inputs: [A], output: na}
//	  - {type: AND, inputs: [na, C], output: n2}
//	  - {type: OR, inputs: [n1, n2], output: Y}
//
// Stimulus document:
//
//	vectors:
//	  - {A: 1, B: 1, C: 1}
//	  - {A: 0, B: 1, C: 1}
//
// Values are the logic symbols 0, 1, U (quoted or not). Decoding errors
// wrap ErrBadDocument; structural circuit errors surface the netlist
// sentinels unchanged, so callers can branch with errors.Is on either
// layer.
package netio
