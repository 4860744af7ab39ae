// Package selection picks a bounded, deterministic subset of the triples a
// catalog holds for each operation.
//
// Prefix keeps the first N triples. Saturating biases the subset toward
// clamped results for the saturating add/sub instructions. Auto combines
// the two by operation name.
package selection
