// Package gatesim is an event-driven and compiled-code simulator for
// combinational Boolean circuits.
//
// 🚀 What is gatesim?
//
//	A deterministic, dependency-light library that brings together:
//
//	  • Netlist construction: declare inputs/outputs, add gates, freeze
//	  • Five simulation engines: two-list, single-list event, single-list
//	    gate, zero-delay levelized, and threaded-code
//	  • Analysis: per-net static/dynamic hazard classification and
//	    per-gate evaluation accounting
//
// ✨ Why choose gatesim?
//
//   - Deterministic          — identical traces for identical stimuli, always
//   - Engine-comparable      — all engines agree on race-free final values
//   - Three-valued ready     — full {0, 1, U} algebra beside plain Boolean
//   - Pure Go                — no cgo, no hidden dependencies
//
// Everything is organized under five subpackages:
//
//	logic/    — 2- and 3-valued values, gate types, evaluation kernel
//	netlist/  — net & gate tables, builder, levelizer, frozen netlists
//	sim/      — engines, traces, hazard reports, evaluation counters
//	circuits/ — deterministic canonical circuits for tests and demos
//	netio/    — YAML circuit and stimulus descriptions
//
// Quick ASCII example:
//
//	    A──┐
//	       ├─AND──X──┐
//	    B──┘         ├─OR──Y
//	    C────────────┘
//
//	X = AND(A,B), Y = OR(X,C): two gates, five nets, three primary inputs.
//
// Dive into README.md for full examples and the engine comparison matrix.
//
//	go get github.com/katalvlaran/gatesim
package gatesim
