package progressbar

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, 0, 1); err == nil {
		t.Error("new: expected error for zero width")
	}
	if _, err := New(&bytes.Buffer{}, 10, 0); err == nil {
		t.Error("new: expected error for zero total")
	}
}

func TestBar(t *testing.T) {
	var out bytes.Buffer
	p, err := New(&out, 10, 4)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		fraction float64
		bar      string
	}{
		{0.25, "|██        |"},
		{0.5, "|█████     |"},
		{0.75, "|███████   |"},
		{1, "|██████████|"},
		{1, "|██████████|"}, // Increment past total is ignored
	}

	for i, test := range tests {
		p.Increment()
		if p.Fraction() != test.fraction {
			t.Errorf("%v: fraction: expected %v, got %v", i, test.fraction,
				p.Fraction())
		}
		if p.Bar() != test.bar {
			t.Errorf("%v: bar: expected %q, got %q", i, test.bar, p.Bar())
		}
	}
}

func TestDisplay(t *testing.T) {
	var out bytes.Buffer
	p, err := New(&out, 4, 2)
	if err != nil {
		t.Fatal(err)
	}

	p.Increment()
	p.Display()
	if !strings.Contains(out.String(), "50.00% | 1/2") {
		t.Errorf("display: unexpected output %q", out.String())
	}
	if strings.HasSuffix(out.String(), "\n") {
		t.Error("display: unfinished bar should not end the line")
	}

	p.Increment()
	p.Display()
	if !strings.HasSuffix(out.String(), "\n") {
		t.Error("display: finished bar should end the line")
	}
}
