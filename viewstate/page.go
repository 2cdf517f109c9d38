package viewstate

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrMounted = errors.New("viewstate: page already mounted")

// Host is the rendering environment a Page is mounted into.
type Host interface {
	Surface
	// Every schedules fn every d. The returned func cancels it.
	Every(d time.Duration, fn func()) (cancel func(), err error)
	// OnScroll registers fn for viewport scroll events. The returned func
	// removes the listener.
	OnScroll(fn func()) (remove func(), err error)
}

// Snapshot is everything needed to render the page once.
type Snapshot struct {
	ActiveSection  SectionID
	WordIndex      int
	Word           string
	MenuOpen       bool
	Tooltip        Technology
	TooltipVisible bool
	Draft          FormDraft
	ButtonLabel    string
	ButtonDisabled bool
}

// InitialSnapshot is the state of a page that has just loaded.
func InitialSnapshot(words []string) (Snapshot, error) {
	r, err := NewRotator(words)
	if err != nil {
		return Snapshot{}, err
	}
	_, word := r.Current()
	return Snapshot{
		ActiveSection: Profile,
		Word:          word,
		ButtonLabel:   SendLabel,
	}, nil
}

// Page owns all view state of the portfolio page and its lifecycle.
type Page struct {
	host    Host
	Rotator *Rotator
	Tracker *ScrollTracker
	Menu    *Menu
	Tooltip *Tooltip
	Form    *ContactForm

	// lifecycle serializes Mount and Unmount; mu guards the fields below.
	lifecycle   sync.Mutex
	mu          sync.Mutex
	releases    []func()
	subscribers []func(Snapshot)
}

type PageOptions struct {
	Words     []string
	NextURL   string
	Notifier  Notifier
	Submitter Submitter
}

func NewPage(host Host, opts PageOptions) (*Page, error) {
	rotator, err := NewRotator(opts.Words)
	if err != nil {
		return nil, err
	}
	return &Page{
		host:    host,
		Rotator: rotator,
		Tracker: NewScrollTracker(host),
		Menu:    &Menu{},
		Tooltip: &Tooltip{},
		Form:    NewContactForm(opts.NextURL, opts.Notifier, opts.Submitter),
	}, nil
}

// Mount starts the rotation timer and the scroll listener. If either
// cannot be registered, whatever was registered is released again. An
// Unmount that arrives while Mount is running waits for it to finish.
func (p *Page) Mount() error {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()
	if p.Mounted() {
		return ErrMounted
	}

	var acquired []func()
	fail := func(err error) error {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i]()
		}
		return err
	}

	cancel, err := p.host.Every(RotationPeriod, func() {
		p.Rotator.Advance()
		p.changed()
	})
	if err != nil {
		return fail(fmt.Errorf("start word rotation: %w", err))
	}
	acquired = append(acquired, cancel)

	remove, err := p.host.OnScroll(func() {
		before := p.Tracker.Active()
		if p.Tracker.HandleScroll() != before {
			p.changed()
		}
	})
	if err != nil {
		return fail(fmt.Errorf("listen for scroll: %w", err))
	}
	acquired = append(acquired, remove)

	p.mu.Lock()
	p.releases = acquired
	p.mu.Unlock()
	return nil
}

// Unmount stops the timer and removes the scroll listener. Safe to call
// on a page that is not mounted.
func (p *Page) Unmount() {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	p.mu.Lock()
	releases := p.releases
	p.releases = nil
	p.mu.Unlock()

	for i := len(releases) - 1; i >= 0; i-- {
		releases[i]()
	}
}

func (p *Page) Mounted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.releases != nil
}

// Navigate closes the mobile menu and scrolls to the section.
func (p *Page) Navigate(id SectionID) bool {
	p.Menu.Close()
	ok := p.Tracker.ScrollTo(id)
	p.changed()
	return ok
}

func (p *Page) ToggleMenu() {
	p.Menu.Toggle()
	p.changed()
}

func (p *Page) HoverTechnology(tech Technology) {
	if p.Tooltip.Enter(tech) {
		p.changed()
	}
}

func (p *Page) LeaveTechnology() {
	p.Tooltip.Leave()
	p.changed()
}

func (p *Page) Input(field Field, value string) error {
	if err := p.Form.Input(field, value); err != nil {
		return err
	}
	p.changed()
	return nil
}

func (p *Page) Submit() error {
	if err := p.Form.Submit(); err != nil {
		return err
	}
	p.changed()
	return nil
}

// Subscribe registers fn to be called with a fresh snapshot after every
// state change.
func (p *Page) Subscribe(fn func(Snapshot)) {
	p.mu.Lock()
	p.subscribers = append(p.subscribers, fn)
	p.mu.Unlock()
}

func (p *Page) Snapshot() Snapshot {
	index, word := p.Rotator.Current()
	tech, shown := p.Tooltip.Shown()
	label, disabled := p.Form.Button()
	return Snapshot{
		ActiveSection:  p.Tracker.Active(),
		WordIndex:      index,
		Word:           word,
		MenuOpen:       p.Menu.Open(),
		Tooltip:        tech,
		TooltipVisible: shown,
		Draft:          p.Form.Draft(),
		ButtonLabel:    label,
		ButtonDisabled: disabled,
	}
}

func (p *Page) changed() {
	p.mu.Lock()
	subs := make([]func(Snapshot), len(p.subscribers))
	copy(subs, p.subscribers)
	p.mu.Unlock()

	if len(subs) == 0 {
		return
	}
	snap := p.Snapshot()
	for _, fn := range subs {
		fn(snap)
	}
}
