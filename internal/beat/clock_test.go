package beat

import (
	"testing"
	"time"
)

func TestUpdateAtEpoch(t *testing.T) {
	start := time.Unix(1000, 0)
	c := New(120, start)

	b := c.Update(start)
	if b.Count != 0 {
		t.Fatalf("expected count 0 at epoch, got %d", b.Count)
	}
	if b.Phase != 0 {
		t.Fatalf("expected phase 0 at epoch, got %f", b.Phase)
	}
}

func TestCountAndPhase(t *testing.T) {
	start := time.Unix(1000, 0)
	c := New(120, start) // 500ms beats

	b := c.Update(start.Add(750 * time.Millisecond))
	if b.Count != 1 {
		t.Fatalf("expected count 1 at 750ms, got %d", b.Count)
	}
	if b.Phase != 0.5 {
		t.Fatalf("expected phase 0.5 at 750ms, got %f", b.Phase)
	}

	b = c.Update(start.Add(10 * time.Second))
	if b.Count != 20 {
		t.Fatalf("expected count 20 at 10s, got %d", b.Count)
	}
}

func TestPhaseAlwaysInRange(t *testing.T) {
	start := time.Unix(0, 0)
	c := New(137, start) // awkward tempo on purpose

	for ms := 0; ms < 20000; ms += 7 {
		b := c.Update(start.Add(time.Duration(ms) * time.Millisecond))
		if b.Phase < 0 || b.Phase >= 1 {
			t.Fatalf("phase out of range at %dms: %f", ms, b.Phase)
		}
		if b.Count != int64(time.Duration(ms)*time.Millisecond/c.Interval()) {
			t.Fatalf("count mismatch at %dms: %d", ms, b.Count)
		}
	}
}

func TestPhaseResetsAtBeatBoundary(t *testing.T) {
	start := time.Unix(0, 0)
	c := New(120, start)

	b := c.Update(start.Add(500 * time.Millisecond))
	if b.Count != 1 || b.Phase != 0 {
		t.Fatalf("expected (1, 0) at the beat boundary, got (%d, %f)", b.Count, b.Phase)
	}
}

func TestResetEpoch(t *testing.T) {
	start := time.Unix(0, 0)
	c := New(120, start)

	later := start.Add(3210 * time.Millisecond)
	c.ResetEpoch(later)
	b := c.Update(later)
	if b.Count != 0 || b.Phase != 0 {
		t.Fatalf("expected fresh clock after reset, got (%d, %f)", b.Count, b.Phase)
	}
}

func TestBeforeEpochClampsToZero(t *testing.T) {
	start := time.Unix(1000, 0)
	c := New(120, start)

	b := c.Update(start.Add(-time.Second))
	if b.Count != 0 || b.Phase != 0 {
		t.Fatalf("expected zero state before epoch, got (%d, %f)", b.Count, b.Phase)
	}
}

func TestInvalidTempoFallsBack(t *testing.T) {
	c := New(0, time.Unix(0, 0))
	if c.Interval() != 500*time.Millisecond {
		t.Fatalf("expected 120 BPM fallback, got %v", c.Interval())
	}
}
