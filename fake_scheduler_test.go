package pinfield

import "time"

// manualScheduler is a Scheduler whose ticks fire only when the test says so.
type manualScheduler struct {
	tickers []*manualTicker
}

type manualTicker struct {
	interval time.Duration
	fn       func()
	stopped  bool
}

func (t *manualTicker) Stop() { t.stopped = true }

func (s *manualScheduler) Every(interval time.Duration, fn func()) Ticker {
	t := &manualTicker{interval: interval, fn: fn}
	s.tickers = append(s.tickers, t)
	return t
}

// advance fires every live ticker n times.
func (s *manualScheduler) advance(n int) {
	for i := 0; i < n; i++ {
		for _, t := range s.tickers {
			if !t.stopped {
				t.fn()
			}
		}
	}
}

// fireStale invokes every ticker's callback, stopped or not, the way a tick
// already queued on the UI thread would arrive after Stop.
func (s *manualScheduler) fireStale() {
	for _, t := range s.tickers {
		t.fn()
	}
}

func (s *manualScheduler) live() int {
	n := 0
	for _, t := range s.tickers {
		if !t.stopped {
			n++
		}
	}
	return n
}

type redrawCounter struct {
	n int
}

func (r *redrawCounter) RequestRedraw() { r.n++ }

type fakeTextHost struct {
	text   string
	cursor int
	calls  int
}

func (h *fakeTextHost) ReplaceText(text string) {
	h.text = text
	h.calls++
}

func (h *fakeTextHost) SetCursor(pos int) {
	h.cursor = pos
}
