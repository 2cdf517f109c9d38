package viewstate

import "sync"

const (
	// ProbeLine is the distance from the viewport top, in px, that decides
	// which section is active.
	ProbeLine = 100.0
	// HeaderOffset keeps a scrolled-to section clear of the fixed nav bar.
	HeaderOffset = 70.0
)

// Rect is an element's bounding box in viewport coordinates.
type Rect struct {
	Top    float64
	Bottom float64
}

// Surface is the rendering host as seen by the scroll tracker.
type Surface interface {
	// Rect reports the bounding box of a section, or false when the
	// section is not in the current document.
	Rect(id SectionID) (Rect, bool)
	// ScrollY is the current vertical scroll offset of the viewport.
	ScrollY() float64
	// ScrollTo animates the viewport to an absolute offset.
	ScrollTo(top float64)
}

// ScrollTracker keeps the active section in sync with the scroll position.
type ScrollTracker struct {
	mu      sync.Mutex
	surface Surface
	active  SectionID
}

func NewScrollTracker(surface Surface) *ScrollTracker {
	return &ScrollTracker{surface: surface, active: Profile}
}

func (t *ScrollTracker) Active() SectionID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// HandleScroll re-evaluates the probe line and returns the active section.
// When several sections straddle the line the last one in document order
// wins; when none does the active section is left as it was.
func (t *ScrollTracker) HandleScroll() SectionID {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, id := range Sections {
		rect, ok := t.surface.Rect(id)
		if !ok {
			continue
		}
		if rect.Top <= ProbeLine && rect.Bottom >= ProbeLine {
			t.active = id
		}
	}
	return t.active
}

// ScrollTo smooth-scrolls so the section starts just below the nav bar.
// It reports false, without scrolling, when the section is missing.
func (t *ScrollTracker) ScrollTo(id SectionID) bool {
	rect, ok := t.surface.Rect(id)
	if !ok {
		return false
	}
	t.surface.ScrollTo(rect.Top + t.surface.ScrollY() - HeaderOffset)
	return true
}
