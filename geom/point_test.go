package geom

import "testing"

func TestMinMax(t *testing.T) {
	vs := []struct{ a, b, lo, hi float64 }{
		{a: 1, b: 2, lo: 1, hi: 2},
		{a: 2, b: 1, lo: 1, hi: 2},
		{a: -1, b: -2, lo: -2, hi: -1},
	}
	for i, v := range vs {
		lo, hi := MinMax(v.a, v.b)
		if lo != v.lo || hi != v.hi {
			t.Errorf("test=%d MinMax(%v,%v) got lo=%v,hi=%v want lo=%v,hi=%v", i, v.a, v.b, lo, hi, v.lo, v.hi)
		}
	}
}

func TestBB(t *testing.T) {
	lo, hi := BB(NewPoint(3, -1), NewPoint(-2, 4))
	if lo != (Point{-2, -1}) || hi != (Point{3, 4}) {
		t.Fatalf("BB got lo=%v hi=%v", lo, hi)
	}
}

func TestMatchPoint(t *testing.T) {
	a := NewPoint(1, 1)
	if !MatchPoint(a, NewPoint(1+Zeroish/2, 1)) {
		t.Errorf("point within Zeroish should match")
	}
	if MatchPoint(a, NewPoint(2, 2)) {
		t.Errorf("distant point should not match")
	}
}
