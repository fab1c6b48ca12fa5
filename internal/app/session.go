// Package app runs the per-frame loop shared by the demos.
package app

import (
	"log/slog"
	"time"

	"gltut/internal/frame"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

// Session drives a window's render loop. An interrupt signal closes the
// window from the loop itself so GL objects are released on the thread that
// owns the context.
type Session struct {
	window *glfw.Window
	log    *slog.Logger

	// Swap presents the back buffer after each frame. Single-buffered
	// windows set it to false and flush in the frame function instead.
	Swap bool
	// FPSLimit caps the loop rate when positive.
	FPSLimit int

	clock   frame.Clock
	fps     frame.FPSCounter
	limiter frame.Limiter

	exitC chan struct{}
	doneC chan struct{}
}

// NewSession prepares a loop for w. Call Close once the caller released its
// GL resources.
func NewSession(w *glfw.Window, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		window: w,
		log:    logger,
		Swap:   true,
		exitC:  make(chan struct{}, 1),
		doneC:  make(chan struct{}, 1),
	}
	closer.Bind(func() {
		s.exitC <- struct{}{}
		<-s.doneC
	})
	return s
}

// Run calls render once per frame with the seconds elapsed since the previous
// frame, until the window is asked to close.
func (s *Session) Run(render func(dt float32)) {
	for !s.window.ShouldClose() {
		select {
		case <-s.exitC:
			s.log.Info("interrupted, closing window")
			s.window.SetShouldClose(true)
			continue
		default:
		}

		if s.window.GetKey(glfw.KeyEscape) == glfw.Press {
			s.window.SetShouldClose(true)
		}

		render(s.clock.Tick(glfw.GetTime()))

		if s.Swap {
			s.window.SwapBuffers()
		}
		glfw.PollEvents()
		s.limiter.Wait(s.FPSLimit)

		if fps, ok := s.fps.Frame(time.Now()); ok {
			s.log.Debug("frame rate", "fps", fps)
		}
	}
}

// Close signals a pending interrupt handler that cleanup finished.
func (s *Session) Close() {
	select {
	case s.doneC <- struct{}{}:
	default:
	}
}
