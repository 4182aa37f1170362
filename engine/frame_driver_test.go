package engine

import (
	"testing"
	"time"
)

func TestFrameDriverFirstStepIsZero(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	d := NewFrameDriver(clock, 16*time.Millisecond)

	if dt := d.Step(clock.Now()); dt != 0 {
		t.Errorf("first step dt = %v, want 0", dt)
	}
	if dt := d.Step(clock.Advance(16 * time.Millisecond)); dt != 16*time.Millisecond {
		t.Errorf("second step dt = %v, want 16ms", dt)
	}
	if dt := d.Step(clock.Advance(40 * time.Millisecond)); dt != 40*time.Millisecond {
		t.Errorf("variable step dt = %v, want 40ms", dt)
	}
}

func TestFrameDriverNeverNegative(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	d := NewFrameDriver(NewManualClock(start), 16*time.Millisecond)

	d.Step(start)
	if dt := d.Step(start.Add(-time.Second)); dt != 0 {
		t.Errorf("backwards step dt = %v, want 0", dt)
	}
	// The backwards timestamp becomes the new reference
	if dt := d.Step(start); dt != time.Second {
		t.Errorf("step after backwards = %v, want 1s", dt)
	}
}

func TestFrameDriverReset(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	d := NewFrameDriver(NewManualClock(start), 16*time.Millisecond)

	d.Step(start)
	d.Step(start.Add(16 * time.Millisecond))
	d.Reset()

	if dt := d.Step(start.Add(10 * time.Second)); dt != 0 {
		t.Errorf("step after reset dt = %v, want 0", dt)
	}
}

func TestFrameDriverPublishesFrames(t *testing.T) {
	d := NewFrameDriver(NewMonotonicTimeProvider(), 2*time.Millisecond)
	d.Start()
	d.Start() // second start is a no-op
	defer d.Stop()

	var prev time.Time
	for i := 0; i < 3; i++ {
		select {
		case now := <-d.Frames():
			if !prev.IsZero() && !now.After(prev) {
				t.Errorf("frame %d timestamp %v not after %v", i, now, prev)
			}
			prev = now
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for frame %d", i)
		}
	}
}

func TestFrameDriverStopIsIdempotent(t *testing.T) {
	d := NewFrameDriver(NewMonotonicTimeProvider(), time.Millisecond)
	d.Start()
	d.Stop()
	d.Stop()
}

func TestFrameDriverReadsItsClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	clock.AutoStep(16 * time.Millisecond)

	d := NewFrameDriver(clock, time.Millisecond)
	if d.Interval() != time.Millisecond {
		t.Errorf("Interval() = %v", d.Interval())
	}
	d.Start()
	defer d.Stop()

	var prev time.Time
	for i := 0; i < 3; i++ {
		select {
		case now := <-d.Frames():
			if now.Before(start) || now.Sub(start)%(16*time.Millisecond) != 0 {
				t.Fatalf("frame %d at %v is not on the clock's 16ms grid", i, now)
			}
			// Dropped frames still consume clock reads, so gaps are whole multiples
			if !prev.IsZero() && !now.After(prev) {
				t.Errorf("frame %d did not advance: %v -> %v", i, prev, now)
			}
			// Timestamps come from the clock and drive Step directly
			if !prev.IsZero() {
				if dt := d.Step(now); dt <= 0 || dt%(16*time.Millisecond) != 0 {
					t.Errorf("frame %d dt = %v", i, dt)
				}
			} else {
				d.Step(now)
			}
			prev = now
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for frame %d", i)
		}
	}
}
