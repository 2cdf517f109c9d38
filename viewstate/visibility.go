package viewstate

import "sync"

// Technology is the key of a technology tile.
type Technology string

const (
	Spring Technology = "spring"
	React  Technology = "react"
	NextJS Technology = "nextjs"
	MySQL  Technology = "mysql"
	Docker Technology = "docker"
)

// TechnologyKeys lists the tiles in display order.
var TechnologyKeys = []Technology{Spring, React, NextJS, MySQL, Docker}

func ParseTechnology(raw string) (Technology, bool) {
	for _, k := range TechnologyKeys {
		if string(k) == raw {
			return k, true
		}
	}
	return "", false
}

// Menu is the mobile navigation drawer.
type Menu struct {
	mu   sync.Mutex
	open bool
}

func (m *Menu) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = !m.open
	return m.open
}

func (m *Menu) Close() {
	m.mu.Lock()
	m.open = false
	m.mu.Unlock()
}

func (m *Menu) Open() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Tooltip tracks which technology tile, if any, is hovered.
type Tooltip struct {
	mu    sync.Mutex
	tech  Technology
	shown bool
}

// Enter shows the tooltip for tech, replacing any other one.
// Unknown keys are ignored.
func (t *Tooltip) Enter(tech Technology) bool {
	if _, ok := ParseTechnology(string(tech)); !ok {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tech, t.shown = tech, true
	return true
}

// Leave hides whatever tooltip is visible.
func (t *Tooltip) Leave() {
	t.mu.Lock()
	t.tech, t.shown = "", false
	t.mu.Unlock()
}

func (t *Tooltip) Shown() (Technology, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tech, t.shown
}
