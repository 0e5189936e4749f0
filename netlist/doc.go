// Package netlist holds the structural substrate of gatesim: dense net and
// gate tables, the public construction API, and the levelizer.
//
// Lifecycle:
//
//	builder := netlist.NewBuilder()
//	_ = builder.DeclareInputs("A", "B", "C")
//	_ = builder.DeclareOutputs("Y")
//	_ = builder.AddGate(logic.AND, []string{"A", "B"}, "X")
//	_ = builder.AddGate(logic.OR, []string{"X", "C"}, "Y")
//	nl, err := builder.Freeze()
//
// A Builder is mutable and validates drivers and arity eagerly, at the
// offending call; Freeze rejects dangling (undriven) nets, materializes
// fanout lists, levelizes, and returns an
// immutable *Netlist. The frozen netlist is reused read-only across any
// number of simulation vectors; every mutation attempt after Freeze fails
// with ErrNetlistFrozen.
//
// Representation follows the arena-and-index discipline: nets and gates
// live in dense zero-based arrays, all cross-references are integer
// indices, and the name→index map is built once at construction time.
//
// Levelization is Kahn's topological ordering over the driver→fanout DAG.
// Gates left unassigned by the ordering form the feedback set; feedback is
// not fatal at freeze time — the zero-delay levelized engine decides how
// (or whether) to handle it.
//
// Errors (sentinel):
//
//	– ErrEmptyNetName    net or gate referenced by an empty name.
//	– ErrDuplicateInput  primary input declared twice.
//	– ErrMultipleDrivers two drivers for one net (or a driven primary input).
//	– ErrArityMismatch   gate input count incompatible with its type.
//	– ErrUndriven        internal net with no driver found at Freeze.
//	– ErrUnknownNet      name lookup on a frozen netlist failed.
//	– ErrNetlistFrozen   mutation attempted after Freeze.
package netlist
