package containers

import (
	"cmp"
	"testing"
)

func TestPairCompareOrdersByKeyThenValue(t *testing.T) {
	cases := []struct {
		a, b Pair[string, int]
		want int
	}{
		{MakePair("a", 1), MakePair("b", 0), -1},
		{MakePair("b", 0), MakePair("a", 9), 1},
		{MakePair("a", 1), MakePair("a", 2), -1},
		{MakePair("a", 2), MakePair("a", 2), 0},
	}
	for _, tc := range cases {
		if got := PairCompare(tc.a, tc.b); got != tc.want {
			t.Fatalf("PairCompare(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		got := PairCompareFunc(tc.a, tc.b, cmp.Compare[string], cmp.Compare[int])
		if got != tc.want {
			t.Fatalf("PairCompareFunc(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestPairEqualAndString(t *testing.T) {
	p := MakePair('c', 30)
	if !PairEqual(p, Pair[rune, int]{Key: 'c', Value: 30}) {
		t.Fatalf("expected pairs to be equal")
	}
	if PairEqual(p, MakePair('c', 31)) {
		t.Fatalf("expected pairs with different values to differ")
	}
	if s := MakePair("k", 1).String(); s != "(k, 1)" {
		t.Fatalf("unexpected pair string %q", s)
	}
}
