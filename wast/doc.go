// Package wast extracts binary SIMD test vectors from WebAssembly spec test
// scripts.
//
// A script is parsed into S-expressions, so assertions may span any number
// of lines. For each top-level form
//
//	(assert_return (invoke "i16x8.add_sat_s" (v128.const i16x8 ...) (v128.const i16x8 ...))
//	               (v128.const i16x8 ...))
//
// whose operation is configured, the scanner keeps the three vector
// constants as a Triple. Assertions that mention another lane shape, carry a
// different number of constants, or hold a constant that does not parse are
// counted in the Catalog and skipped. Nothing in a single assertion can fail
// the whole scan.
//
//	shape, _ := lane.DefaultTable().Lookup("i16x8")
//	cat := wast.Scan(src, shape, []string{"add_sat_s", "sub_sat_s"})
//	for _, op := range cat.Operations() {
//		fmt.Println(op, len(cat.Tests(op)))
//	}
package wast
