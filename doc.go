// Package simdtestgen turns WebAssembly SIMD test scripts into MoonBit
// test blocks.
//
// A .wast file is scanned for assert_return assertions that invoke binary
// lane-wise operations of one vector shape. Each matching assertion yields a
// triple of vectors (first operand, second operand, expected result). A
// selection policy bounds how many triples are kept per operation, and the
// emitter renders what remains as named MoonBit tests.
//
// # Architecture Overview
//
//	simdtestgen/         Generate pipeline and report
//	├── lane/            Vector shapes and numeric literal parsing
//	├── wast/            Assertion scanner and vector-constant extractor
//	├── selection/       Prefix and saturation-biased selection policies
//	├── emit/            MoonBit literal dialect and test block emitter
//	├── manifest/        YAML batch job files
//	├── errors/          Structured error types
//	└── cmd/simdgen/     Command line interface
//
// # Quick Start
//
//	shape, err := lane.DefaultTable().Lookup("i16x8")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := simdtestgen.Generate(source, simdtestgen.Job{
//	    Shape:  shape,
//	    Ops:    []string{"add_sat_s", "sub_sat_s"},
//	    Policy: selection.Prefix{Limit: 15},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(out.Code)
//
// # Numeric Literals
//
// Hex lane literals are two's-complement bit patterns: 0xffff at 16 bits is
// -1. Decimal literals keep the value as written, so 65535 stays 65535.
// Negative values are emitted as a reinterpretation of the signed type of
// the lane width, e.g. (-1 : Int16).reinterpret_as_uint16().
//
// # Error Handling
//
// Errors are *errors.Error values carrying a phase and a kind:
//
//	if errors.Is(err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindUnsupported}) {
//	    // unknown vector shape
//	}
//
// Problems local to one assertion never fail a scan. They are counted per
// operation in wast.Catalog and logged at debug level.
package simdtestgen
