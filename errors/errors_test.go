package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseExtract,
				Kind:   KindArityMismatch,
				Path:   []string{"add_sat_s", "expected"},
				Line:   12,
				Detail: "expected 8 lanes, got 7",
			},
			contains: []string{"[extract]", "arity_mismatch", "add_sat_s.expected", "line 12", "got 7"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseParse,
				Kind:  KindTruncated,
			},
			contains: []string{"[parse]", "truncated"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseExtract,
				Kind:   KindInvalidNumeral,
				Detail: "bad lane",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[extract]", "invalid_numeral", "bad lane", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseConfig,
		Kind:  KindInvalidInput,
		Cause: cause,
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should follow the cause chain")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseExtract,
		Kind:  KindInvalidNumeral,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseExtract, Kind: KindInvalidNumeral}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseParse, Kind: KindInvalidNumeral}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseExtract, Kind: KindArityMismatch}) {
		t.Error("Is should not match different kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseScan, KindArityMismatch).
		Path("sub_sat_u").
		Line(7).
		Value(2).
		Cause(cause).
		Detail("expected %d constants, got %d", 3, 2).
		Build()

	if err.Phase != PhaseScan {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseScan)
	}
	if err.Kind != KindArityMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindArityMismatch)
	}
	if len(err.Path) != 1 || err.Path[0] != "sub_sat_u" {
		t.Errorf("Path = %v, want [sub_sat_u]", err.Path)
	}
	if err.Line != 7 {
		t.Errorf("Line = %d, want 7", err.Line)
	}
	if err.Value != 2 {
		t.Errorf("Value = %v, want 2", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected 3 constants, got 2" {
		t.Errorf("Detail = %v", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("InvalidNumeral", func(t *testing.T) {
		err := InvalidNumeral("0xzz", 16, nil)
		if err.Kind != KindInvalidNumeral || err.Phase != PhaseExtract {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if err.Value != "0xzz" {
			t.Errorf("Value = %v", err.Value)
		}
	})

	t.Run("ArityMismatch", func(t *testing.T) {
		err := ArityMismatch(PhaseExtract, "lanes", 8, 7)
		if err.Kind != KindArityMismatch {
			t.Errorf("Kind = %v", err.Kind)
		}
		if !strings.Contains(err.Detail, "expected 8, got 7") {
			t.Errorf("Detail = %v", err.Detail)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseConfig, "bit width 12")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v", err.Kind)
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		err := Truncated(99, "unclosed list")
		if err.Kind != KindTruncated || err.Line != 99 {
			t.Errorf("got %v line %d", err.Kind, err.Line)
		}
	})

	t.Run("UnexpectedToken", func(t *testing.T) {
		err := UnexpectedToken(3, ")")
		if err.Kind != KindUnexpectedToken || err.Value != ")" {
			t.Errorf("got %v %v", err.Kind, err.Value)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseConfig, "vector type", "f16x8")
		if !strings.Contains(err.Error(), `vector type "f16x8" not found`) {
			t.Errorf("Error() = %v", err.Error())
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("io")
		err := Wrap(PhaseConfig, KindInvalidInput, cause, "read manifest")
		if !errors.Is(err, cause) {
			t.Error("Wrap lost the cause")
		}
	})
}
