package qlearning

import (
	"math"
	"testing"

	"github.com/samuelfneumann/lineworld/environment/lineworld"
	"github.com/samuelfneumann/lineworld/timestep"
	"gonum.org/v1/gonum/mat"
)

func newLineWorld(t testing.TB) *lineworld.LineWorld {
	l, _, err := lineworld.New(lineworld.NewDefaultHoleApple(),
		lineworld.DefaultDiscount)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestNewTableShape(t *testing.T) {
	q, err := New(newLineWorld(t), DefaultConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}

	rows, cols := q.Table().Dims()
	if rows != lineworld.BoardSize || cols != lineworld.NumActions {
		t.Errorf("new: want table (%d, %d), have (%d, %d)",
			lineworld.BoardSize, lineworld.NumActions, rows, cols)
	}
	if !mat.Equal(q.Table(), mat.NewDense(rows, cols, nil)) {
		t.Error("new: table should be initialized to zero")
	}
}

func TestStepGoal(t *testing.T) {
	q, err := New(newLineWorld(t), DefaultConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}

	q.Observe(timestep.Transition{
		State:     8,
		Action:    int(lineworld.MoveRight),
		Reward:    lineworld.GoalReward,
		Discount:  lineworld.DefaultDiscount,
		NextState: lineworld.Goal,
	})
	q.Step()

	// 0 + 0.1 * (100 + 0.99 * 0 - 0)
	want := 10.0
	if have := q.Table().At(8, int(lineworld.MoveRight)); math.Abs(have-want) > 1e-12 {
		t.Errorf("step: want Q(8, Right) = %v, have %v", want, have)
	}
	if have := q.Table().At(8, int(lineworld.MoveLeft)); have != 0 {
		t.Errorf("step: Q(8, Left) should be unchanged, have %v", have)
	}
}

func TestStepBootstrap(t *testing.T) {
	q, err := New(newLineWorld(t), DefaultConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}
	q.Table().Set(5, int(lineworld.MoveLeft), -3)
	q.Table().Set(5, int(lineworld.MoveRight), 20)

	tr := timestep.Transition{
		State:     4,
		Action:    int(lineworld.MoveRight),
		Reward:    lineworld.StepReward,
		Discount:  lineworld.DefaultDiscount,
		NextState: 5,
	}
	if tdError, want := q.TdError(tr), -1+0.99*20; math.Abs(tdError-want) > 1e-12 {
		t.Errorf("tdError: want %v, have %v", want, tdError)
	}

	q.Observe(tr)
	q.Step()
	want := 0.1 * (-1 + 0.99*20)
	if have := q.Table().At(4, int(lineworld.MoveRight)); math.Abs(have-want) > 1e-12 {
		t.Errorf("step: want Q(4, Right) = %v, have %v", want, have)
	}
}

func TestObserveOutOfRange(t *testing.T) {
	q, err := New(newLineWorld(t), DefaultConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}

	q.Observe(timestep.Transition{State: 3, Action: 5, Reward: 1,
		Discount: 1, NextState: 4})
	q.Step()

	zero := mat.NewDense(lineworld.BoardSize, lineworld.NumActions, nil)
	if !mat.Equal(q.Table(), zero) {
		t.Error("step: out of range transition should be ignored")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		c     Config
		valid bool
	}{
		{DefaultConfig(), true},
		{Config{Epsilon: 0, LearningRate: 1}, true},
		{Config{Epsilon: -0.1, LearningRate: 0.1}, false},
		{Config{Epsilon: 1.1, LearningRate: 0.1}, false},
		{Config{Epsilon: 0.1, LearningRate: 0}, false},
	}

	for _, test := range tests {
		if err := test.c.Validate(); (err == nil) != test.valid {
			t.Errorf("validate: %+v want valid = %v, have error %v", test.c,
				test.valid, err)
		}
	}

	if _, err := New(newLineWorld(t), Config{Epsilon: 2}, 1); err == nil {
		t.Error("new: invalid config should be an error")
	}
}

func TestCreateAgent(t *testing.T) {
	c := DefaultConfig()
	a, err := c.CreateAgent(newLineWorld(t), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !c.ValidAgent(a) {
		t.Errorf("validAgent: %T should be valid", a)
	}
}

func BenchmarkStep(b *testing.B) {
	q, err := New(newLineWorld(b), DefaultConfig(), 1)
	if err != nil {
		b.Fatal(err)
	}
	q.Observe(timestep.Transition{State: 4, Action: 1, Reward: -1,
		Discount: 0.99, NextState: 5})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Step()
	}
}
