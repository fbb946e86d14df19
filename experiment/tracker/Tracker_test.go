package tracker

import (
	"bytes"
	"strings"
	"testing"

	ts "github.com/samuelfneumann/lineworld/timestep"
	"gonum.org/v1/gonum/floats"
)

// episode returns the timesteps of an episode with the given rewards
func episode(rewards ...float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, 0.99, 2, 0, 0)}

	ret := 0.0
	for i, r := range rewards {
		ret += r
		stepType := ts.Mid
		if i == len(rewards)-1 {
			stepType = ts.Last
		}
		steps = append(steps, ts.New(stepType, r, 0.99, 2, i+1, ret))
	}
	return steps
}

func TestReturn(t *testing.T) {
	r := NewReturn()
	for _, step := range episode(-1, -1, 100) {
		r.Track(step)
	}
	for _, step := range episode(-100, -1) {
		r.Track(step)
	}

	want := []float64{98, -101}
	if !floats.Equal(r.Data(), want) {
		t.Errorf("data: want %v, have %v", want, r.Data())
	}
}

func TestReturnNonSequential(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("track: non-sequential timesteps should panic")
		}
	}()

	r := NewReturn()
	steps := episode(-1, -1, -1)
	r.Track(steps[0])
	r.Track(steps[2])
}

func TestEpisodeLength(t *testing.T) {
	e := NewEpisodeLength()
	for _, step := range episode(-1, -1, 100) {
		e.Track(step)
	}
	for _, step := range episode(-1) {
		e.Track(step)
	}

	if data := e.Data(); len(data) != 2 || data[0] != 3 || data[1] != 1 {
		t.Errorf("data: want [3 1], have %v", data)
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 2)

	for i := 0; i < 5; i++ {
		for _, step := range episode(-1, float64(-i)) {
			p.Track(step)
		}
	}

	want := "Episode: 2, Total Reward: -2\nEpisode: 4, Total Reward: -4\n"
	if buf.String() != want {
		t.Errorf("track: want output %q, have %q", want, buf.String())
	}
	if p.Episodes() != 5 {
		t.Errorf("episodes: want 5, have %d", p.Episodes())
	}
}

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressBar(&buf, 10, 2)

	for _, step := range episode(-1, -1) {
		p.Track(step)
	}
	if !strings.Contains(buf.String(), "50.00%") {
		t.Errorf("track: want 50.00%%, have %q", buf.String())
	}
}
