package mpbase

import "testing"

func TestJacobiNKnownValues(t *testing.T) {
	cases := []struct {
		a, b uint64
		want int
	}{
		{1, 3, 1},
		{2, 3, -1},
		{3, 11, 1},
		{5, 21, 1},
		{0, 5, 0},
	}
	for _, c := range cases {
		got := JacobiN([]uint64{c.a}, 1, []uint64{c.b}, 1)
		if got != c.want {
			t.Fatalf("JacobiN(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
