// Package manifest loads YAML batch files that describe several
// generation jobs.
//
//	jobs:
//	  - name: sat
//	    input: simd_i16x8_sat_arith.wast
//	    shape: i16x8
//	    ops: [add_sat_s, add_sat_u, sub_sat_s, sub_sat_u]
//	    policy: auto
//	    max: 12
//	    output: i16x8_sat_test.mbt
//	    title: i16x8 saturating arithmetic tests
//
// Relative input and output paths are resolved against the directory of the
// manifest file.
package manifest
