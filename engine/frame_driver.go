package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// FrameDriver is the only producer of frame ticks.
// Step turns consecutive timestamps into per-frame deltas; Start runs a ticker that
// publishes timestamps on Frames until Stop.
type FrameDriver struct {
	clock    TimeProvider
	interval time.Duration

	// Delta tracking, guarded by the caller's tick lock
	last    time.Time
	started bool

	frames   chan time.Time
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewFrameDriver creates a driver publishing one frame per interval
func NewFrameDriver(clock TimeProvider, interval time.Duration) *FrameDriver {
	return &FrameDriver{
		clock:    clock,
		interval: interval,
		frames:   make(chan time.Time, 1),
		stopChan: make(chan struct{}),
	}
}

// Step records now as the current frame and returns the time since the previous one.
// The first step after creation or Reset returns zero; a clock going backwards yields zero.
func (d *FrameDriver) Step(now time.Time) time.Duration {
	if !d.started {
		d.started = true
		d.last = now
		return 0
	}
	dt := now.Sub(d.last)
	d.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset makes the next Step behave as the first one
func (d *FrameDriver) Reset() {
	d.started = false
	d.last = time.Time{}
}

// Frames delivers one timestamp per display frame while running.
// A slow consumer drops frames rather than queueing them.
func (d *FrameDriver) Frames() <-chan time.Time {
	return d.frames
}

// Interval returns the frame period
func (d *FrameDriver) Interval() time.Duration {
	return d.interval
}

// Start launches the frame ticker; calling it twice is a no-op
func (d *FrameDriver) Start() {
	if !d.running.CompareAndSwap(false, true) {
		return
	}
	d.wg.Add(1)
	go d.loop()
}

// Stop halts the ticker and waits for the loop to exit
func (d *FrameDriver) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopChan)
	})
	d.wg.Wait()
	d.running.Store(false)
}

func (d *FrameDriver) loop() {
	defer d.wg.Done()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stopChan:
			return
		case <-ticker.C:
			select {
			case d.frames <- d.clock.Now():
			default:
				// Previous frame still unconsumed
			}
		}
	}
}
