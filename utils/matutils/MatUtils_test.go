package matutils

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMaxVec(t *testing.T) {
	tests := []struct {
		values []float64
		want   int
	}{
		{[]float64{0, 0}, 0},
		{[]float64{-1, 2}, 1},
		{[]float64{3, 3, 1}, 0},
		{[]float64{-5, -2, -2}, 1},
	}

	for _, test := range tests {
		if idx := MaxVec(mat.NewVecDense(len(test.values), test.values)); idx != test.want {
			t.Errorf("maxVec(%v): want %d, have %d", test.values, test.want, idx)
		}
	}
}

func TestRowMax(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, -3, -2, -7})
	if max := RowMax(m, 1); max != -2 {
		t.Errorf("rowMax: want -2, have %v", max)
	}
}
