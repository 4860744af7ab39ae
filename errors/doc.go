// Package errors provides structured error types for simd-testgen.
//
// Errors are categorized by Phase (which stage produced the error) and Kind
// (error category). The Error type carries a location path, the source line
// when known, the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseExtract, errors.KindArityMismatch).
//		Path("add_sat_s", "expected").
//		Line(42).
//		Detail("expected 8 lanes, got 7").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidNumeral("0xzz", 16, cause)
//	err := errors.Unsupported(errors.PhaseConfig, "vector type f16x8")
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind only, so a bare &Error{Phase, Kind} works as a
// sentinel.
package errors
