// Package field provides a small, self-contained prime field and a
// Poseidon-style permutation used to exercise the safe package's sponge
// core in tests and the spongebench tool.
//
// This is reference scaffolding, not a production permutation: the spec
// this module implements treats the permutation, the tag hash, and the
// field's addition as external collaborators the core never chooses.
// The field here uses a 31-bit prime for arithmetic convenience, well
// short of the ≥256-bit representation real SAFE deployments require;
// production callers must supply their own capability bundle over a
// suitably sized element type (e.g. a scalar field of an elliptic
// curve).
package field
