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
				Scope:  ScopePool,
				Kind:   KindDeadID,
				Detail: "handle refers to a retired slot",
				Value:  int64(7),
			},
			contains: []string{"[pool]", "dead_id", "retired slot", "7"},
		},
		{
			name: "minimal error",
			err: &Error{
				Scope: ScopeConvert,
				Kind:  KindNonFinite,
			},
			contains: []string{"[convert]", "non_finite"},
		},
		{
			name: "error with cause",
			err: &Error{
				Scope:  ScopeExport,
				Kind:   KindAllocation,
				Detail: "primitive could not allocate value",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[export]", "allocation", "caused by", "underlying error"},
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
		Scope: ScopeArith,
		Kind:  KindDivByZero,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Scope: ScopePool,
		Kind:  KindInvalidID,
		Value: int64(99),
	}

	// Same scope and kind
	if !err.Is(&Error{Scope: ScopePool, Kind: KindInvalidID}) {
		t.Error("Is should match same scope and kind")
	}

	// Different scope
	if err.Is(&Error{Scope: ScopeExport, Kind: KindInvalidID}) {
		t.Error("Is should not match different scope")
	}

	// Different kind
	if err.Is(&Error{Scope: ScopePool, Kind: KindDeadID}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Scope: ScopePool, Kind: KindInvalidID}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(ScopePool, KindDeadID).
		Value(int64(3)).
		Cause(cause).
		Detail("slot %d retired", 3).
		Build()

	if err.Scope != ScopePool {
		t.Errorf("Scope = %v, want %v", err.Scope, ScopePool)
	}
	if err.Kind != KindDeadID {
		t.Errorf("Kind = %v, want %v", err.Kind, KindDeadID)
	}
	if err.Value != int64(3) {
		t.Errorf("Value = %v, want 3", err.Value)
	}
	if err.Detail != "slot 3 retired" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if !errors.Is(err, err) {
		t.Error("error should match itself")
	}
	if err.Unwrap() != cause {
		t.Error("Cause not preserved")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if e := InvalidValue(ScopePool, -1); e.Kind != KindInvalidValue || e.Value != int64(-1) {
		t.Errorf("InvalidValue = %v", e)
	}
	if e := InvalidID(ScopePool, 10, 4); e.Kind != KindInvalidID || !strings.Contains(e.Detail, "4") {
		t.Errorf("InvalidID = %v", e)
	}
	if e := DeadID(ScopePool, 2); e.Kind != KindDeadID {
		t.Errorf("DeadID = %v", e)
	}
	if e := DivByZero(ScopeArith); e.Scope != ScopeArith || e.Kind != KindDivByZero {
		t.Errorf("DivByZero = %v", e)
	}
	if e := NonFinite(ScopeConvert, 1); e.Kind != KindNonFinite {
		t.Errorf("NonFinite = %v", e)
	}
	if e := NotInitialized(ScopeExport, "library"); !strings.Contains(e.Error(), "library not initialized") {
		t.Errorf("NotInitialized = %v", e)
	}
}
