// Package scanner runs the background detection loop and publishes the live
// tag list.
package scanner

import (
	"image"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"retag/internal/tag"
	"retag/pkg/geometry"
)

// Source supplies frames of the target window. Implementations report the
// window's on-screen offset so detections can be projected to absolute
// coordinates, and whether the window is currently minimized.
type Source interface {
	Frame() (img image.Image, offset geometry.PointInt, err error)
	Minimized() bool
}

// Detector turns one frame into detected tags.
type Detector interface {
	Detect(frame image.Image) ([]tag.Detected, error)
}

// Scanner owns the detection loop. Each pass replaces the published tag list
// wholesale; readers always observe a fully-formed list. At most one loop
// runs at a time, across any sequence of Start and Stop calls.
type Scanner struct {
	src Source
	det Detector

	intervalMs atomic.Int64

	ctl  sync.Mutex
	stop chan struct{} // non-nil while a loop is running
	done chan struct{} // closed when the current loop exits

	mu   sync.RWMutex
	tags []tag.Positioned
}

// New creates a Scanner with the given capture interval.
func New(src Source, det Detector, interval time.Duration) *Scanner {
	s := &Scanner{src: src, det: det}
	s.intervalMs.Store(interval.Milliseconds())
	return s
}

// SetInterval adjusts the loop interval. Takes effect on the next iteration.
func (s *Scanner) SetInterval(interval time.Duration) {
	s.intervalMs.Store(interval.Milliseconds())
}

// Interval returns the current loop interval.
func (s *Scanner) Interval() time.Duration {
	return time.Duration(s.intervalMs.Load()) * time.Millisecond
}

// Running reports whether the loop is active.
func (s *Scanner) Running() bool {
	s.ctl.Lock()
	defer s.ctl.Unlock()
	return s.stop != nil
}

// Start launches the detection loop. A second Start while running is a no-op.
// After a Stop, Start waits for the previous loop's in-flight iteration to
// finish before launching, so detection passes never overlap.
func (s *Scanner) Start() {
	s.ctl.Lock()
	defer s.ctl.Unlock()
	if s.stop != nil {
		return
	}
	if s.done != nil {
		<-s.done
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.loop(s.stop, s.done)
}

// Stop requests the loop to end and returns without waiting. An in-flight
// iteration completes; the signal is only checked at iteration boundaries.
func (s *Scanner) Stop() {
	s.ctl.Lock()
	defer s.ctl.Unlock()
	if s.stop == nil {
		return
	}
	close(s.stop)
	s.stop = nil
}

// Tags returns a snapshot of the most recently published tag list.
func (s *Scanner) Tags() []tag.Positioned {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]tag.Positioned(nil), s.tags...)
}

func (s *Scanner) loop(stop, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		case <-time.After(s.Interval()):
		}

		if s.src.Minimized() {
			continue
		}

		frame, offset, err := s.src.Frame()
		if err != nil {
			// Fatal to this iteration only; the loop survives bad frames.
			log.Printf("capture failed: %v", err)
			continue
		}

		detected, err := s.det.Detect(frame)
		if err != nil {
			log.Printf("detection failed: %v", err)
			continue
		}

		positioned := make([]tag.Positioned, len(detected))
		for i, d := range detected {
			positioned[i] = d.Position(offset)
		}
		s.publish(positioned)
	}
}

// publish installs the new tag list, discarding the previous one.
func (s *Scanner) publish(tags []tag.Positioned) {
	s.mu.Lock()
	s.tags = tags
	s.mu.Unlock()
}
