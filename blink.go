package pinfield

import (
	"sync"
	"sync/atomic"
	"time"
)

// Ticker is a handle to a periodic callback. Stop must be idempotent and
// must guarantee no further callbacks once it returns, except ones already
// handed to the UI thread, which BlinkClock ignores.
type Ticker interface {
	Stop()
}

// Scheduler runs fn every interval until the returned Ticker is stopped.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Ticker
}

// Dispatcher hands a closure to the UI thread.
type Dispatcher interface {
	Post(fn func())
}

// BlinkClock toggles between two phases every interval while running.
// The caret is drawn in the OFF phase, which is also the phase the clock
// starts in, so a freshly attached field shows its caret immediately.
type BlinkClock struct {
	interval  time.Duration
	scheduler Scheduler
	onToggle  func()

	ticker Ticker
	on     bool

	// generation invalidates callbacks from a previous Start.
	generation uint64
}

// NewBlinkClock creates a stopped clock. onToggle is called after every flip.
func NewBlinkClock(scheduler Scheduler, interval time.Duration, onToggle func()) *BlinkClock {
	return &BlinkClock{
		interval:  interval,
		scheduler: scheduler,
		onToggle:  onToggle,
	}
}

// Start acquires a ticker from the scheduler. Starting a running clock is a no-op.
func (c *BlinkClock) Start() error {
	if c.ticker != nil {
		return nil
	}
	if c.scheduler == nil {
		return ErrNoScheduler
	}
	if c.interval <= 0 {
		return ErrInvalidBlinkInterval
	}

	c.generation++
	gen := c.generation
	c.on = false
	c.ticker = c.scheduler.Every(c.interval, func() {
		c.tick(gen)
	})
	return nil
}

// Stop releases the ticker. It is safe to call on a stopped clock.
func (c *BlinkClock) Stop() {
	c.generation++
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.on = false
}

// Running reports whether the clock holds a ticker.
func (c *BlinkClock) Running() bool {
	return c.ticker != nil
}

// On reports the current phase.
func (c *BlinkClock) On() bool {
	return c.on
}

// CaretPhase reports whether the current phase is the one that draws the caret.
func (c *BlinkClock) CaretPhase() bool {
	return !c.on
}

// Interval returns the half-period of the blink cycle.
func (c *BlinkClock) Interval() time.Duration {
	return c.interval
}

// SetInterval changes the period. A running clock is restarted.
func (c *BlinkClock) SetInterval(d time.Duration) error {
	if d <= 0 {
		return ErrInvalidBlinkInterval
	}
	if d == c.interval {
		return nil
	}
	c.interval = d
	if c.ticker != nil {
		c.Stop()
		return c.Start()
	}
	return nil
}

func (c *BlinkClock) tick(gen uint64) {
	if c.ticker == nil || gen != c.generation {
		return
	}
	c.on = !c.on
	if c.onToggle != nil {
		c.onToggle()
	}
}

// TimerScheduler implements Scheduler on time.Ticker. Ticks fire on a
// background goroutine and are handed to Dispatch; with a nil Dispatch they
// run on that goroutine, which is only safe when the host has no UI thread.
type TimerScheduler struct {
	Dispatch Dispatcher
}

func (s TimerScheduler) Every(interval time.Duration, fn func()) Ticker {
	t := &timerTicker{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go t.run(s.Dispatch, fn)
	return t
}

type timerTicker struct {
	ticker  *time.Ticker
	done    chan struct{}
	once    sync.Once
	pending atomic.Bool
}

func (t *timerTicker) run(d Dispatcher, fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			select {
			case <-t.done:
				return
			default:
			}
			if d != nil {
				// one tick in flight; ticks that fire before it runs are skipped
				if t.pending.CompareAndSwap(false, true) {
					d.Post(func() {
						t.pending.Store(false)
						fn()
					})
				}
			} else {
				fn()
			}
		}
	}
}

func (t *timerTicker) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
