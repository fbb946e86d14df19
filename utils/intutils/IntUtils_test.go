package intutils

import "testing"

func TestClip(t *testing.T) {
	tests := []struct{ value, want int }{
		{-1, 0},
		{0, 0},
		{5, 5},
		{9, 9},
		{10, 9},
	}

	for _, test := range tests {
		if clipped := Clip(test.value, 0, 9); clipped != test.want {
			t.Errorf("clip(%d): want %d, have %d", test.value, test.want,
				clipped)
		}
	}
}

func TestMinMax(t *testing.T) {
	if min := Min(3, -1, 2); min != -1 {
		t.Errorf("min: want -1, have %d", min)
	}
	if max := Max(3, -1, 7); max != 7 {
		t.Errorf("max: want 7, have %d", max)
	}
}
