// Package emit renders selected test vectors as MoonBit test blocks.
//
// Each triple becomes
//
//	///|
//	test "i16x8_add_sat_s_1" {
//	  let v1 = I16x8::const_(32767, 0, 0, 0, 0, 0, 0, 0)
//	  let v2 = I16x8::const_(1, 0, 0, 0, 0, 0, 0, 0)
//	  let expected = I16x8::const_(32767, 0, 0, 0, 0, 0, 0, 0)
//	  assert_eq(I16x8::add_sat_s(v1, v2), expected)
//	}
//
// Negative lanes cannot be written as plain literals for unsigned lane
// types, so the Dialect renders them as a reinterpretation of the signed
// value of the same width.
package emit
