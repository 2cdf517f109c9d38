package viewstate

import (
	"sync"
	"time"
)

// fakeHost records timers and listeners so tests can fire them by hand.
type fakeHost struct {
	mu        sync.Mutex
	rects     map[SectionID]Rect
	scrollY   float64
	scrolled  []float64
	timers    map[int]func()
	listeners map[int]func()
	nextID    int

	everyErr  error
	scrollErr error

	// When set, Every closes entered and then waits on gate.
	entered chan struct{}
	gate    chan struct{}
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		rects:     map[SectionID]Rect{},
		timers:    map[int]func(){},
		listeners: map[int]func(){},
	}
}

func (h *fakeHost) Rect(id SectionID) (Rect, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.rects[id]
	return r, ok
}

func (h *fakeHost) ScrollY() float64 { return h.scrollY }

func (h *fakeHost) ScrollTo(top float64) {
	h.scrolled = append(h.scrolled, top)
}

func (h *fakeHost) Every(_ time.Duration, fn func()) (func(), error) {
	if h.entered != nil {
		close(h.entered)
		<-h.gate
	}
	if h.everyErr != nil {
		return nil, h.everyErr
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.timers[id] = fn
	return func() {
		h.mu.Lock()
		delete(h.timers, id)
		h.mu.Unlock()
	}, nil
}

func (h *fakeHost) OnScroll(fn func()) (func(), error) {
	if h.scrollErr != nil {
		return nil, h.scrollErr
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		delete(h.listeners, id)
		h.mu.Unlock()
	}, nil
}

func (h *fakeHost) tick() {
	for _, fn := range h.snapshot(h.timers) {
		fn()
	}
}

func (h *fakeHost) scroll() {
	for _, fn := range h.snapshot(h.listeners) {
		fn()
	}
}

func (h *fakeHost) snapshot(m map[int]func()) []func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	fns := make([]func(), 0, len(m))
	for _, fn := range m {
		fns = append(fns, fn)
	}
	return fns
}

func (h *fakeHost) counts() (timers, listeners int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.timers), len(h.listeners)
}

// layout places the four sections one after another, each height px tall,
// with the viewport scrolled to y.
func (h *fakeHost) layout(height, y float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.scrollY = y
	for i, id := range Sections {
		top := float64(i)*height - y
		h.rects[id] = Rect{Top: top, Bottom: top + height}
	}
}

type recordingNotifier struct{ messages []string }

func (n *recordingNotifier) Success(msg string) { n.messages = append(n.messages, msg) }

type recordingSubmitter struct{ submissions []Submission }

func (s *recordingSubmitter) Submit(sub Submission) { s.submissions = append(s.submissions, sub) }
