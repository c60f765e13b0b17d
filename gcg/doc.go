// Package gcg reads and writes circuit group documents for the host gate
// simulator, and splices freshly synthesized circuits into saved projects.
//
// A document is a CircuitGroup root holding named circuits. Each circuit
// lists its gates, each with a numeric identity and a placement, followed by
// the wires between gate ports. Wires refer to gates by identity only.
package gcg
