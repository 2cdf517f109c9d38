package main

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Duraisingan2405/portfolio/viewstate"
)

const defaultTestTimeout = 5 * time.Second

var testSubmission = viewstate.Submission{
	FormDraft: viewstate.FormDraft{Name: "Ada", Email: "ada@example.com", Description: "Hello"},
	Next:      "https://portfolio.example/",
}

func TestRelayForwardPostsForm(t *testing.T) {
	got := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		got <- r
		http.Redirect(w, r, r.PostForm.Get("_next"), http.StatusFound)
	}))
	defer srv.Close()

	relay := newRelay(srv.URL, defaultTestTimeout)
	if err := relay.Forward(context.Background(), testSubmission); err != nil {
		t.Fatalf("forward: %v", err)
	}

	req := <-got
	if req.Method != http.MethodPost {
		t.Fatalf("method = %s", req.Method)
	}
	for key, want := range map[string]string{
		"name":        "Ada",
		"email":       "ada@example.com",
		"description": "Hello",
		"_captcha":    "false",
		"_next":       "https://portfolio.example/",
	} {
		if v := req.PostForm.Get(key); v != want {
			t.Errorf("%s = %q, want %q", key, v, want)
		}
	}
}

func TestRelayForwardReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	relay := newRelay(srv.URL, defaultTestTimeout)
	if err := relay.Forward(context.Background(), testSubmission); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestRelaySubmitDeliversInBackground(t *testing.T) {
	delivered := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delivered <- r.FormValue("name")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	newRelay(srv.URL, defaultTestTimeout).Submit(testSubmission)

	select {
	case name := <-delivered:
		if name != "Ada" {
			t.Fatalf("name = %q", name)
		}
	case <-time.After(defaultTestTimeout):
		t.Fatal("submission never reached the relay")
	}
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRelaySubmitFailureLogKeepsVisitorPrivate(t *testing.T) {
	var out lockedBuffer
	log.SetOutput(&out)
	defer log.SetOutput(os.Stderr)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	newRelay(srv.URL, defaultTestTimeout).Submit(testSubmission)

	deadline := time.Now().Add(defaultTestTimeout)
	for !strings.Contains(out.String(), "delivery failed") {
		if time.Now().After(deadline) {
			t.Fatalf("no failure logged, got %q", out.String())
		}
		time.Sleep(5 * time.Millisecond)
	}
	logged := out.String()
	if strings.Contains(logged, testSubmission.Email) || strings.Contains(logged, testSubmission.Name) {
		t.Fatalf("log exposes visitor details: %q", logged)
	}
}
