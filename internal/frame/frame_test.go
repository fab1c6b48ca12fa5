package frame_test

import (
	"testing"
	"time"

	"gltut/internal/frame"
)

func TestClockTick(t *testing.T) {
	var c frame.Clock
	if dt := c.Tick(10); dt != 0 {
		t.Errorf("first tick = %v, want 0", dt)
	}
	if dt := c.Tick(10.25); dt != 0.25 {
		t.Errorf("second tick = %v, want 0.25", dt)
	}
	if dt := c.Tick(10); dt != 0 {
		t.Errorf("backwards tick = %v, want 0", dt)
	}
	if dt := c.Tick(10.5); dt != 0.5 {
		t.Errorf("tick after reset = %v, want 0.5", dt)
	}
}

func TestFPSCounter(t *testing.T) {
	var f frame.FPSCounter
	start := time.Unix(1000, 0)

	// 60 frames spread over one second, the last exactly at +1s
	for i := 0; i < 60; i++ {
		now := start.Add(time.Duration(i) * time.Second / 60)
		if _, ok := f.Frame(now); ok {
			t.Fatalf("unexpected report at frame %d", i)
		}
	}
	fps, ok := f.Frame(start.Add(time.Second))
	if !ok {
		t.Fatal("expected a report after one second")
	}
	if fps != 61 {
		t.Errorf("fps = %d, want 61", fps)
	}

	if _, ok := f.Frame(start.Add(time.Second + time.Millisecond)); ok {
		t.Error("counter must restart after a report")
	}
}

type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

func (c *fakeClock) spin() time.Time {
	// each poll while spinning advances the clock a little
	c.t = c.t.Add(50 * time.Microsecond)
	return c.t
}

func TestLimiterWaitsForFrameSlot(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	start := clock.t
	l := frame.NewTestLimiter(clock.spin, clock.sleep)

	l.Wait(100)
	if elapsed := clock.t.Sub(start); elapsed < 10*time.Millisecond {
		t.Errorf("first wait took %v, want at least 10ms", elapsed)
	}
	if len(clock.slept) == 0 {
		t.Fatal("limiter never slept")
	}

	mid := clock.t
	l.Wait(100)
	if elapsed := clock.t.Sub(mid); elapsed > 11*time.Millisecond {
		t.Errorf("second wait took %v, want about 10ms", elapsed)
	}
}

func TestLimiterDisabled(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	l := frame.NewTestLimiter(clock.now, clock.sleep)

	l.Wait(0)
	l.Wait(-5)
	if len(clock.slept) != 0 {
		t.Errorf("disabled limiter slept %v", clock.slept)
	}
}

func TestLimiterResyncsAfterHitch(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	l := frame.NewTestLimiter(clock.spin, clock.sleep)

	l.Wait(100)
	// a frame that took far longer than the budget
	clock.t = clock.t.Add(time.Second)
	before := len(clock.slept)
	l.Wait(100)
	if len(clock.slept) != before {
		t.Errorf("late frame slept %v, want no sleep", clock.slept[before:])
	}

	mark := clock.t
	l.Wait(100)
	if elapsed := clock.t.Sub(mark); elapsed < 9*time.Millisecond {
		t.Errorf("wait after resync took %v, want about 10ms", elapsed)
	}
}
