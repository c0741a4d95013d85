package rat

import (
	"math"
	"strings"
	"testing"

	stderrors "errors"

	"github.com/wippyai/rational-ffi/errors"
)

func TestFromFloat(t *testing.T) {
	var a Arith

	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "1/2"},
		{0.25, "1/4"},
		{0.0, "0/1"},
		{-0.5, "-1/2"},
		{3.0, "3/1"},
		{-4.0, "-4/1"},
	}

	for _, tt := range tests {
		v, err := a.FromFloat(tt.in)
		if err != nil {
			t.Fatalf("FromFloat(%v): %v", tt.in, err)
		}
		if got := v.String(); got != tt.want {
			t.Errorf("FromFloat(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFromFloat_NonFinite(t *testing.T) {
	var a Arith

	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := a.FromFloat(x)
		if err == nil {
			t.Fatalf("FromFloat(%v) should fail", x)
		}
		if !stderrors.Is(err, &errors.Error{Scope: errors.ScopeArith, Kind: errors.KindNonFinite}) {
			t.Errorf("FromFloat(%v) error = %v, want non_finite", x, err)
		}
	}
}

func TestBinaryOps(t *testing.T) {
	var a Arith

	half := FromInts(1, 2)
	quarter := FromInts(1, 4)

	sum, err := a.Add(half, quarter)
	if err != nil {
		t.Fatal(err)
	}
	if sum.String() != "3/4" {
		t.Errorf("1/2 + 1/4 = %s, want 3/4", sum)
	}

	diff, err := a.Sub(half, quarter)
	if err != nil {
		t.Fatal(err)
	}
	if diff.String() != "1/4" {
		t.Errorf("1/2 - 1/4 = %s, want 1/4", diff)
	}

	prod, err := a.Mul(half, quarter)
	if err != nil {
		t.Fatal(err)
	}
	if prod.String() != "1/8" {
		t.Errorf("1/2 * 1/4 = %s, want 1/8", prod)
	}

	quot, err := a.Div(half, quarter)
	if err != nil {
		t.Fatal(err)
	}
	if quot.String() != "2/1" {
		t.Errorf("1/2 / 1/4 = %s, want 2/1", quot)
	}
}

func TestDiv_ZeroDivisor(t *testing.T) {
	var a Arith

	_, err := a.Div(FromInts(1, 2), FromInts(0, 1))
	if err == nil {
		t.Fatal("division by zero should fail")
	}
	if !strings.Contains(err.Error(), "div_by_zero") {
		t.Errorf("error = %v, want div_by_zero", err)
	}
}

func TestIsZero(t *testing.T) {
	var a Arith

	if !a.IsZero(FromInts(0, 7)) {
		t.Error("0/7 should be zero")
	}
	if a.IsZero(FromInts(1, 7)) {
		t.Error("1/7 should not be zero")
	}
}

func TestZeroCanonicalForm(t *testing.T) {
	// The multiply/divide short-circuits reuse a zero handle directly, which
	// is only sound when every zero reduces to 0/1.
	if got := FromInts(0, 7).String(); got != "0/1" {
		t.Errorf("0/7 renders as %s, want 0/1", got)
	}

	var a Arith
	z, err := a.FromFloat(0.0)
	if err != nil {
		t.Fatal(err)
	}
	if got := z.String(); got != "0/1" {
		t.Errorf("FromFloat(0) renders as %s, want 0/1", got)
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	var a Arith

	for _, x := range []float64{0.5, 0.25, -1.75, 3.0, 0.1, 1e-9, 12345.6789} {
		v, err := a.FromFloat(x)
		if err != nil {
			t.Fatalf("FromFloat(%v): %v", x, err)
		}
		f, _ := a.Float64(v)
		if f != x {
			t.Errorf("round trip of %v gave %v", x, f)
		}
	}
}

func TestRenderRoundTrip(t *testing.T) {
	var a Arith

	for _, v := range []*Value{
		FromInts(3, 4),
		FromInts(-7, 2),
		FromInts(0, 1),
		FromInts(123456789, 987654321),
	} {
		var back Value
		if _, ok := back.r.SetString(a.Render(v)); !ok {
			t.Fatalf("rendered form %q does not parse", a.Render(v))
		}
		if !back.Eq(v) {
			t.Errorf("round trip of %s gave %s", v, &back)
		}
	}
}

func TestEq(t *testing.T) {
	if !FromInts(2, 4).Eq(FromInts(1, 2)) {
		t.Error("2/4 should equal 1/2")
	}
	if FromInts(1, 2).Eq(FromInts(1, 3)) {
		t.Error("1/2 should not equal 1/3")
	}
}
