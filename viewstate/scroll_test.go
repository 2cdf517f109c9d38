package viewstate

import "testing"

func TestHandleScrollTracksProbeLine(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want SectionID
	}{
		{name: "top of page", y: 0, want: Profile},
		{name: "inside technologies", y: 600, want: Technologies},
		{name: "inside experience", y: 1100, want: Experience},
		{name: "inside contact", y: 1700, want: Contact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := newFakeHost()
			host.layout(500, tt.y)
			tracker := NewScrollTracker(host)

			if got := tracker.HandleScroll(); got != tt.want {
				t.Fatalf("active = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandleScrollBoundaryPicksLaterSection(t *testing.T) {
	host := newFakeHost()
	// Profile ends exactly on the probe line where technologies starts.
	host.layout(500, 400)
	tracker := NewScrollTracker(host)

	if got := tracker.HandleScroll(); got != Technologies {
		t.Fatalf("active = %q, want %q", got, Technologies)
	}
}

func TestHandleScrollKeepsPreviousWhenNothingMatches(t *testing.T) {
	host := newFakeHost()
	host.layout(500, 1100)
	tracker := NewScrollTracker(host)
	tracker.HandleScroll()

	// Everything pushed below the probe line.
	for _, id := range Sections {
		host.rects[id] = Rect{Top: 300, Bottom: 400}
	}
	if got := tracker.HandleScroll(); got != Experience {
		t.Fatalf("active = %q, want %q", got, Experience)
	}
}

func TestHandleScrollSkipsMissingSections(t *testing.T) {
	host := newFakeHost()
	host.rects[Experience] = Rect{Top: -20, Bottom: 900}
	tracker := NewScrollTracker(host)

	if got := tracker.HandleScroll(); got != Experience {
		t.Fatalf("active = %q, want %q", got, Experience)
	}
}

func TestScrollToSubtractsHeaderOffset(t *testing.T) {
	host := newFakeHost()
	host.layout(500, 200)
	tracker := NewScrollTracker(host)

	if !tracker.ScrollTo(Experience) {
		t.Fatal("expected scroll to succeed")
	}
	if len(host.scrolled) != 1 {
		t.Fatalf("expected one scroll, got %v", host.scrolled)
	}
	// Experience starts at 1000 in document coordinates.
	if got, want := host.scrolled[0], 1000-HeaderOffset; got != want {
		t.Fatalf("scrolled to %v, want %v", got, want)
	}
}

func TestScrollToMissingSectionIsNoop(t *testing.T) {
	host := newFakeHost()
	tracker := NewScrollTracker(host)

	if tracker.ScrollTo(Contact) {
		t.Fatal("expected scroll to a missing section to report false")
	}
	if len(host.scrolled) != 0 {
		t.Fatalf("expected no scrolling, got %v", host.scrolled)
	}
}

func TestParseSection(t *testing.T) {
	if id, ok := ParseSection(" Technologies "); !ok || id != Technologies {
		t.Fatalf("parse = %q, %v", id, ok)
	}
	if _, ok := ParseSection("blog"); ok {
		t.Fatal("expected unknown section to be rejected")
	}
	if got := Experience.Label(); got != "Experience" {
		t.Fatalf("label = %q", got)
	}
}
