package clock

import (
	"math"
	"testing"
	"time"
)

func TestFrameClock_Deltas(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	c := NewFrameClock(mock, time.Second/60, 6)

	if dt := c.Tick(); dt != 1.0 {
		t.Errorf("Expected first tick 1.0, got %v", dt)
	}

	mock.Advance(time.Second / 30)
	if dt := c.Tick(); math.Abs(dt-2.0) > 1e-6 {
		t.Errorf("Expected 2.0 ticks for 1/30s, got %v", dt)
	}

	mock.Advance(8 * time.Millisecond)
	if dt := c.Tick(); math.Abs(dt-0.48) > 1e-6 {
		t.Errorf("Expected 0.48 ticks for 8ms, got %v", dt)
	}

	if dt := c.Tick(); dt != 0 {
		t.Errorf("Expected 0 for no elapsed time, got %v", dt)
	}
}

func TestFrameClock_ClampsStall(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	c := NewFrameClock(mock, time.Second/60, 6)
	c.Tick()

	mock.Advance(2 * time.Second)
	if dt := c.Tick(); dt != 6 {
		t.Errorf("Expected clamp to 6, got %v", dt)
	}
}

func TestFrameClock_Reset(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	c := NewFrameClock(mock, time.Second/60, 6)
	c.Tick()

	mock.Advance(time.Minute)
	c.Reset()
	if dt := c.Tick(); dt != 1.0 {
		t.Errorf("Expected fresh tick 1.0 after reset, got %v", dt)
	}
}
