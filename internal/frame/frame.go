// Package frame measures per-frame delta time and frame rate.
package frame

import "time"

// Clock turns absolute timestamps in seconds (as returned by glfw.GetTime)
// into per-frame deltas.
type Clock struct {
	last    float64
	started bool
}

// Tick records now and returns the seconds since the previous tick. The
// first tick returns 0. Timestamps going backwards also return 0.
func (c *Clock) Tick(now float64) float32 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}
	dt := now - c.last
	c.last = now
	if dt < 0 {
		return 0
	}
	return float32(dt)
}

// FPSCounter counts frames and reports the rate about once per second.
type FPSCounter struct {
	frames int
	last   time.Time
}

// Frame records one frame at now. When at least a second passed since the
// previous report it returns the rounded frame rate and ok.
func (f *FPSCounter) Frame(now time.Time) (fps int, ok bool) {
	if f.last.IsZero() {
		f.last = now
	}
	f.frames++
	elapsed := now.Sub(f.last)
	if elapsed < time.Second {
		return 0, false
	}
	fps = int(float64(f.frames)/elapsed.Seconds() + 0.5)
	f.frames = 0
	f.last = now
	return fps, true
}

// Limiter caps the frame rate by sleeping until the next frame slot.
type Limiter struct {
	next time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// spinWindow is the tail of each wait that is busy-polled instead of slept,
// since sleep overshoots by more than a frame at high caps.
const spinWindow = 200 * time.Microsecond

// Wait blocks until the next frame should start at fps frames per second.
// fps <= 0 disables the cap and forgets the schedule.
func (l *Limiter) Wait(fps int) {
	if fps <= 0 {
		l.next = time.Time{}
		return
	}
	now, sleep := l.now, l.sleep
	if now == nil {
		now = time.Now
	}
	if sleep == nil {
		sleep = time.Sleep
	}

	target := time.Second / time.Duration(fps)
	if l.next.IsZero() {
		l.next = now().Add(target)
	} else {
		l.next = l.next.Add(target)
	}

	for {
		remaining := l.next.Sub(now())
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			sleep(remaining - spinWindow)
		}
	}

	// resync after a hitch instead of rushing to catch up
	if late := now().Sub(l.next); late > target {
		l.next = now().Add(target)
	}
}
