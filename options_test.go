package smcoctree

import "testing"

func TestClampDepth(t *testing.T) {
	cases := []struct {
		requested, want int
	}{
		{0, 6},
		{-3, 6},
		{1, 1},
		{9, 9},
		{15, 9},
		{4, 4},
	}
	for _, c := range cases {
		if got := clampDepth(c.requested); got != c.want {
			t.Errorf("clampDepth(%d) = %d; want %d", c.requested, got, c.want)
		}
	}
}
