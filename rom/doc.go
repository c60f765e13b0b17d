// Package rom synthesizes a combinational read-only memory as a gate network.
//
// A memory image is an ordered table of equal-width bit words. The Builder
// turns it into a sum-of-products network: every select line drives a NOT
// gate for its complement, every row with a 1 in an output bit gets its own
// minterm AND gate, and each output bit ORs its minterms together. Gates are
// never shared between output bits.
//
// Node identities are allocated in a fixed order, since documents emitted
// from a Network refer to gates by number rather than by name.
package rom
