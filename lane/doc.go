// Package lane describes v128 lane shapes and parses wast integer literals
// into lane values.
//
// The shape table is built once and passed to the components that need it:
//
//	table := lane.DefaultTable()
//	shape, err := table.Lookup("i16x8") // 8 lanes of 16 bits, element type I16x8
//
// ParseValue accepts the literal forms the WebAssembly spec tests mix freely:
// decimal, signed decimal, hex, negative hex and underscore-grouped digits.
//
//	lane.ParseValue("0x8000", 16)   // -32768
//	lane.ParseValue("-0x7fff", 16)  // -32767
//	lane.ParseValue("65_535", 16)   // 65535
package lane
