package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Duraisingan2405/portfolio/viewstate"
)

// Relay forwards contact submissions to the third-party form relay.
type Relay struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

func newRelay(endpoint string, timeout time.Duration) *Relay {
	return &Relay{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
			// Redirects point at _next, which is this site.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		timeout: timeout,
	}
}

// Forward posts the submission and checks the relay answered 2xx or 3xx.
func (r *Relay) Forward(ctx context.Context, sub viewstate.Submission) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(sub.Values().Encode()))
	if err != nil {
		return errors.Wrap(err, "build relay request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "post to relay")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("relay answered %s", resp.Status)
	}
	return nil
}

// Submit implements viewstate.Submitter. Delivery happens in the
// background and only failures are logged; the visitor has already been
// told the message was sent.
func (r *Relay) Submit(sub viewstate.Submission) {
	id := uuid.NewString()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if err := r.Forward(ctx, sub); err != nil {
			log.Printf("contact %s: delivery failed: %v", id, err)
			return
		}
		log.Printf("contact %s: delivered", id)
	}()
}
