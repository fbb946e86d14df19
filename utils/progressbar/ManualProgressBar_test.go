package progressbar

import (
	"bytes"
	"strings"
	"testing"
)

func TestManualProgressBar(t *testing.T) {
	var buf bytes.Buffer
	p := NewManualProgressBar(&buf, 10, 4)

	p.Increment()
	p.Display()
	if !strings.Contains(buf.String(), "25.00%") {
		t.Errorf("display: want 25.00%%, have %q", buf.String())
	}

	for i := 0; i < 10; i++ {
		p.Increment()
	}
	if p.Percent() != 100 {
		t.Errorf("increment: progress should saturate at 100%%, have %v",
			p.Percent())
	}

	buf.Reset()
	p.Display()
	if n := strings.Count(buf.String(), "█"); n != 10 {
		t.Errorf("display: want 10 filled cells, have %d", n)
	}
}
