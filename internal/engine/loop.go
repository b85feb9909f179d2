package engine

import (
	"errors"
	"image"
)

// Scheduler runs a callback once at the next display refresh
type Scheduler interface {
	RequestFrame(fn func())
}

// Start begins the frame loop. Each tick requests the next one, so the
// loop runs until Teardown.
func (e *Engine) Start(s Scheduler) error {
	if e.tornDown {
		return ErrTornDown
	}
	if e.started {
		return ErrLoopStarted
	}
	if s == nil {
		return errors.New("nil scheduler")
	}

	e.started = true
	e.scheduler = s
	s.RequestFrame(e.tick)

	e.log.Info().Msg("render loop started")
	return nil
}

// Started reports whether Start succeeded
func (e *Engine) Started() bool {
	return e.started
}

func (e *Engine) tick() {
	if e.tornDown {
		return
	}

	e.scheduler.RequestFrame(e.tick)

	e.controls.Update()
	frame := e.Render()

	if e.surface != nil {
		e.surface.Present(frame)
	}
	e.frames++
}

// Render draws the scene from the camera without advancing the loop.
// The image is reused by the next frame.
func (e *Engine) Render() *image.RGBA {
	f := e.scene.frame()
	if e.overlay && e.plate != nil {
		f.Overlay = append(f.Overlay, e.plate.Solid.Dimensions.String())
		if e.wireframe {
			f.Overlay = append(f.Overlay, "wireframe")
		}
	}
	return e.renderer.Render(f, e.camera)
}

// FrameQueue is a Scheduler for hosts that pump frames themselves, from a
// vsync loop or a ticker. It is not safe for concurrent use.
type FrameQueue struct {
	pending []func()
}

// RequestFrame queues fn for the next RunFrame
func (q *FrameQueue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// RunFrame runs the callbacks queued before the call. Callbacks queued
// while running wait for the next frame. It returns how many ran.
func (q *FrameQueue) RunFrame() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Pending returns the number of queued callbacks
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
