package viewstate

import (
	"errors"
	"sync"
	"time"
)

// RotationPeriod is how long each tagline stays on screen.
const RotationPeriod = 3 * time.Second

var ErrNoWords = errors.New("viewstate: display word list is empty")

// Rotator cycles through a fixed list of display words.
type Rotator struct {
	mu    sync.Mutex
	words []string
	index int
}

func NewRotator(words []string) (*Rotator, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	list := make([]string, len(words))
	copy(list, words)
	return &Rotator{words: list}, nil
}

// Current returns the index and the word being displayed.
func (r *Rotator) Current() (int, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index, r.words[r.index]
}

// Advance moves to the next word, wrapping after the last one.
func (r *Rotator) Advance() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = (r.index + 1) % len(r.words)
	return r.index
}

func (r *Rotator) Len() int {
	return len(r.words)
}

// StartTicker calls fn every d until the returned cancel func is called.
// Cancel blocks until the ticking goroutine has exited, so fn never runs
// after cancel returns. Calling cancel more than once is safe.
func StartTicker(d time.Duration, fn func()) func() {
	ticker := time.NewTicker(d)
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				select {
				case <-stop:
					return
				default:
				}
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(stop)
			<-done
		})
	}
}
