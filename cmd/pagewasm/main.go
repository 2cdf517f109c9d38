//go:build js && wasm

// Command pagewasm drives the portfolio page's view state in the browser.
// Build with GOOS=js GOARCH=wasm and serve the result as /static/page.wasm.
package main

import (
	"errors"
	"strconv"
	"sync"
	"syscall/js"
	"time"

	"github.com/Duraisingan2405/portfolio/viewstate"
)

type domHost struct {
	window   js.Value
	document js.Value
}

func (h domHost) Rect(id viewstate.SectionID) (viewstate.Rect, bool) {
	el := h.document.Call("getElementById", string(id))
	if el.IsNull() || el.IsUndefined() {
		return viewstate.Rect{}, false
	}
	r := el.Call("getBoundingClientRect")
	return viewstate.Rect{Top: r.Get("top").Float(), Bottom: r.Get("bottom").Float()}, true
}

func (h domHost) ScrollY() float64 {
	return h.window.Get("pageYOffset").Float()
}

func (h domHost) ScrollTo(top float64) {
	opts := js.Global().Get("Object").New()
	opts.Set("top", top)
	opts.Set("behavior", "smooth")
	h.window.Call("scrollTo", opts)
}

func (h domHost) Every(d time.Duration, fn func()) (func(), error) {
	return viewstate.StartTicker(d, fn), nil
}

func (h domHost) OnScroll(fn func()) (func(), error) {
	return listen(h.window, "scroll", func(js.Value) { fn() })
}

// listen adds an event listener and returns the func that removes it and
// frees the callback.
func listen(target js.Value, event string, fn func(js.Value)) (func(), error) {
	if target.IsNull() || target.IsUndefined() {
		return nil, errors.New("no event target for " + event)
	}
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	target.Call("addEventListener", event, cb)
	var once sync.Once
	return func() {
		once.Do(func() {
			target.Call("removeEventListener", event, cb)
			cb.Release()
		})
	}, nil
}

type toast struct {
	el    js.Value
	timer *time.Timer
}

func (t *toast) Success(msg string) {
	if t.el.IsNull() {
		return
	}
	t.el.Set("textContent", msg)
	t.el.Get("classList").Call("remove", "hidden")
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(4*time.Second, func() {
		t.el.Get("classList").Call("add", "hidden")
	})
}

func main() {
	window := js.Global()
	document := window.Get("document")
	host := domHost{window: window, document: document}

	var words []string
	items := document.Call("querySelectorAll", "#words li")
	for i := 0; i < items.Length(); i++ {
		words = append(words, items.Index(i).Get("textContent").String())
	}

	page, err := viewstate.NewPage(host, viewstate.PageOptions{
		Words:    words,
		NextURL:  window.Get("location").Get("href").String(),
		Notifier: &toast{el: document.Call("getElementById", "toast")},
		// The browser's own form submission delivers the message.
		Submitter: nil,
	})
	if err != nil {
		window.Get("console").Call("warn", "portfolio: "+err.Error())
		return
	}

	r := newRenderer(document)
	page.Subscribe(r.render)

	var releases []func()
	bind := func(target js.Value, event string, fn func(js.Value)) {
		if remove, err := listen(target, event, fn); err == nil {
			releases = append(releases, remove)
		}
	}

	bind(document.Call("getElementById", "menu-toggle"), "click", func(js.Value) { page.ToggleMenu() })

	links := document.Call("querySelectorAll", "[data-section]")
	for i := 0; i < links.Length(); i++ {
		link := links.Index(i)
		id, ok := viewstate.ParseSection(link.Get("dataset").Get("section").String())
		if !ok {
			continue
		}
		bind(link, "click", func(ev js.Value) {
			ev.Call("preventDefault")
			page.Navigate(id)
		})
	}

	tiles := document.Call("querySelectorAll", "[data-tech]")
	for i := 0; i < tiles.Length(); i++ {
		tile := tiles.Index(i)
		tech := viewstate.Technology(tile.Get("dataset").Get("tech").String())
		bind(tile, "pointerenter", func(js.Value) { page.HoverTechnology(tech) })
		bind(tile, "pointerleave", func(js.Value) { page.LeaveTechnology() })
	}

	form := document.Call("getElementById", "contact-form")
	bind(form, "input", func(ev js.Value) {
		target := ev.Get("target")
		_ = page.Input(viewstate.Field(target.Get("name").String()), target.Get("value").String())
	})
	bind(form, "submit", func(ev js.Value) {
		// On success the native POST goes ahead. Anything the form refuses
		// must not reach the relay with the button still enabled.
		if err := page.Submit(); err != nil {
			ev.Call("preventDefault")
		}
	})

	if err := page.Mount(); err != nil {
		window.Get("console").Call("warn", "portfolio: "+err.Error())
	}

	done := make(chan struct{})
	var hide sync.Once
	bind(window, "pagehide", func(js.Value) {
		// Unmount waits for the ticker goroutine; js callbacks must not block.
		hide.Do(func() {
			go func() {
				page.Unmount()
				close(done)
			}()
		})
	})
	<-done

	for _, release := range releases {
		release()
	}
}

// renderer applies snapshots to the DOM, touching only what changed.
type renderer struct {
	tagline  js.Value
	nav      js.Value
	toggle   js.Value
	submit   js.Value
	links    js.Value
	tooltips js.Value

	mu   sync.Mutex
	last viewstate.Snapshot
}

func newRenderer(document js.Value) *renderer {
	return &renderer{
		tagline:  document.Call("getElementById", "tagline"),
		nav:      document.Call("getElementById", "nav-links"),
		toggle:   document.Call("getElementById", "menu-toggle"),
		submit:   document.Call("getElementById", "contact-submit"),
		links:    document.Call("querySelectorAll", "[data-section]"),
		tooltips: document.Call("querySelectorAll", "[data-tooltip]"),
		last:     viewstate.Snapshot{ActiveSection: viewstate.Profile, ButtonLabel: viewstate.SendLabel},
	}
}

func (r *renderer) render(s viewstate.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.WordIndex != r.last.WordIndex && !r.tagline.IsNull() {
		// Re-adding the class replays the entrance animation.
		classes := r.tagline.Get("classList")
		classes.Call("remove", "word-enter")
		_ = r.tagline.Get("offsetWidth")
		classes.Call("add", "word-enter")
		r.tagline.Set("textContent", s.Word)
		r.tagline.Get("dataset").Set("index", strconv.Itoa(s.WordIndex))
	}

	if s.ActiveSection != r.last.ActiveSection {
		for i := 0; i < r.links.Length(); i++ {
			link := r.links.Index(i)
			active := link.Get("dataset").Get("section").String() == string(s.ActiveSection)
			link.Get("classList").Call("toggle", "text-purple-400", active)
		}
	}

	if s.MenuOpen != r.last.MenuOpen && !r.nav.IsNull() {
		r.nav.Get("classList").Call("toggle", "hidden", !s.MenuOpen)
		if !r.toggle.IsNull() {
			r.toggle.Call("setAttribute", "aria-expanded", strconv.FormatBool(s.MenuOpen))
		}
	}

	if s.Tooltip != r.last.Tooltip || s.TooltipVisible != r.last.TooltipVisible {
		for i := 0; i < r.tooltips.Length(); i++ {
			tip := r.tooltips.Index(i)
			shown := s.TooltipVisible && tip.Get("dataset").Get("tooltip").String() == string(s.Tooltip)
			tip.Get("classList").Call("toggle", "hidden", !shown)
		}
	}

	if s.ButtonDisabled != r.last.ButtonDisabled && !r.submit.IsNull() {
		r.submit.Set("disabled", s.ButtonDisabled)
		r.submit.Set("textContent", s.ButtonLabel)
		r.submit.Get("classList").Call("toggle", "cursor-not-allowed", s.ButtonDisabled)
		r.submit.Get("classList").Call("toggle", "bg-gray-500", s.ButtonDisabled)
	}

	r.last = s
}
