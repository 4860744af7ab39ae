package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which pipeline stage produced the error
type Phase string

const (
	PhaseParse   Phase = "parse"   // tokenizing and S-expression parsing
	PhaseExtract Phase = "extract" // numeric literals and vector constants
	PhaseScan    Phase = "scan"    // assertion recognition
	PhaseSelect  Phase = "select"  // test selection
	PhaseEmit    Phase = "emit"    // target source rendering
	PhaseConfig  Phase = "config"  // shapes, widths, manifests, CLI arguments
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidNumeral  Kind = "invalid_numeral"
	KindArityMismatch   Kind = "arity_mismatch"
	KindUnsupported     Kind = "unsupported"
	KindTruncated       Kind = "truncated"
	KindUnexpectedToken Kind = "unexpected_token"
	KindInvalidInput    Kind = "invalid_input"
	KindNotFound        Kind = "not_found"
)

// Error is the structured error type used throughout the generator
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
	Line   int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the location path, e.g. operation and operand name
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Line sets the source line
func (b *Builder) Line(line int) *Builder {
	b.err.Line = line
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidNumeral creates an unrecognized numeral error
func InvalidNumeral(token string, bits int, cause error) *Error {
	return &Error{
		Phase:  PhaseExtract,
		Kind:   KindInvalidNumeral,
		Detail: fmt.Sprintf("%q is not a %d-bit integer literal", token, bits),
		Value:  token,
		Cause:  cause,
	}
}

// ArityMismatch creates an arity error for vectors and assertions
func ArityMismatch(phase Phase, what string, want, got int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindArityMismatch,
		Detail: fmt.Sprintf("%s: expected %d, got %d", what, want, got),
		Value:  got,
	}
}

// Unsupported creates an unsupported configuration error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Truncated creates an unterminated input error
func Truncated(line int, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindTruncated,
		Line:   line,
		Detail: detail,
	}
}

// UnexpectedToken creates a parse error for a misplaced token
func UnexpectedToken(line int, got string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnexpectedToken,
		Line:   line,
		Detail: fmt.Sprintf("unexpected %q", got),
		Value:  got,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
