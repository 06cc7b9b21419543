package splinerope

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if Clamp01(-0.5) != 0 || Clamp01(1.5) != 1 || Clamp01(0.25) != 0.25 {
		t.Errorf("Clamp01 does not restrict to [0…1]")
	}
}

func TestPairRotation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 0).Rotated(90 * Deg2Rad).Equal(P(0, 1)) {
		t.Errorf("Expected (1,0) rotated by 90° to be (0,1), is %v", P(1, 0).Rotated(90*Deg2Rad))
	}
	if !P(0, 1).Rotated(math.Pi / 2).Equal(P(-1, 0)) {
		t.Errorf("Expected (0,1) rotated by 90° to be (-1,0)")
	}
}

func TestPairUnit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(3, 4).Unit().Equal(P(0.6, 0.8)) {
		t.Errorf("Expected unit of (3,4) to be (0.6,0.8), is %v", P(3, 4).Unit())
	}
	if P(0, 0).Unit() != Origin {
		t.Errorf("Expected unit of origin to be origin")
	}
}

func TestVectorArithmetic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := V(1, 2, 2)
	if v.Length() != 3 {
		t.Errorf("Expected |v| = 3, is %g", v.Length())
	}
	if !v.Add(V(-1, -2, -2)).Equal(Zero) {
		t.Errorf("Expected v + (-v) to be zero")
	}
	if !v.Normalized().Equal(V(1.0/3, 2.0/3, 2.0/3)) {
		t.Errorf("Unexpected normalized vector %v", v.Normalized())
	}
	if Zero.Normalized() != Zero {
		t.Errorf("Expected zero vector to normalize to zero")
	}
	if !V(0, 0, 0).Lerp(V(10, 0, 0), 0.25).Equal(V(2.5, 0, 0)) {
		t.Errorf("Unexpected lerp result")
	}
	if V(0, 0, 0).Dist(V(0, 3, 4)) != 5 {
		t.Errorf("Expected distance 5")
	}
	if !V(math.NaN(), 0, 0).IsNaN() || V(1, 2, 3).IsNaN() {
		t.Errorf("IsNaN predicate broken")
	}
}

func TestTransformCombination(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	T := Rotation(180 * Deg2Rad).Combine(Translation(P(1, 0)))
	if !T.Transform(P(1, 0)).Zap().Equal(Origin) {
		t.Errorf("Expected result to be origin, is %v", T.Transform(P(1, 0)))
	}
	v := T.TransformXY(V(1, 0, 7))
	if !v.Equal(V(0, 0, 7)) {
		t.Errorf("Expected z to be untouched, got %v", v)
	}
	if !Identity().Transform(P(2, 3)).Equal(P(2, 3)) {
		t.Errorf("Identity must map a pair onto itself")
	}
	S := Scaling(P(2, 3)).Combine(Translation(P(1, 1)))
	if !S.Transform(P(1, 1)).Equal(P(3, 4)) {
		t.Errorf("Expected (1,1) scaled, then shifted to be (3,4), is %v", S.Transform(P(1, 1)))
	}
	if R := Translation(P(1, 1)).Combine(Scaling(P(2, 3))); !R.Transform(P(1, 1)).Equal(P(4, 6)) {
		t.Errorf("Expected (1,1) shifted, then scaled to be (4,6), is %v", R.Transform(P(1, 1)))
	}
	if !Identity().Combine(S).Transform(P(1, 1)).Equal(S.Transform(P(1, 1))) {
		t.Errorf("Identity must be neutral in combinations")
	}
}
