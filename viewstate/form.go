package viewstate

import (
	"errors"
	"fmt"
	"net/url"
	"sync"
)

const (
	SendLabel      = "Send Message"
	SendingLabel   = "Sending..."
	SuccessMessage = "Message Sent Successfully!"
)

// Field is the name attribute of a contact form control.
type Field string

const (
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldDescription Field = "description"
)

var (
	ErrUnknownField     = errors.New("viewstate: unknown form field")
	ErrMissingField     = errors.New("viewstate: required field is empty")
	ErrAlreadySubmitted = errors.New("viewstate: form already submitted")
)

// FormDraft is the unsent content of the contact form.
type FormDraft struct {
	Name        string `form:"name" binding:"required"`
	Email       string `form:"email" binding:"required,email"`
	Description string `form:"description" binding:"required"`
}

// Set updates a single field and leaves the others alone.
func (d *FormDraft) Set(field Field, value string) error {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldDescription:
		d.Description = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Missing returns the first required field left empty, if any. Like the
// HTML required attribute, whitespace counts as a value.
func (d FormDraft) Missing() (Field, bool) {
	switch {
	case d.Name == "":
		return FieldName, true
	case d.Email == "":
		return FieldEmail, true
	case d.Description == "":
		return FieldDescription, true
	}
	return "", false
}

// Submission is what the form relay receives.
type Submission struct {
	FormDraft
	// Next is where the relay redirects the visitor afterwards.
	Next string
}

// Values encodes the submission the way the relay expects it, captcha
// disabled.
func (s Submission) Values() url.Values {
	v := url.Values{}
	v.Set(string(FieldName), s.Name)
	v.Set(string(FieldEmail), s.Email)
	v.Set(string(FieldDescription), s.Description)
	v.Set("_captcha", "false")
	v.Set("_next", s.Next)
	return v
}

// Notifier shows a transient toast.
type Notifier interface {
	Success(msg string)
}

// Submitter hands a submission to the host. It must not block; the form
// never learns the outcome.
type Submitter interface {
	Submit(Submission)
}

// ContactForm is the controlled contact form.
type ContactForm struct {
	mu         sync.Mutex
	draft      FormDraft
	submitting bool
	next       string
	notifier   Notifier
	submitter  Submitter
}

// NewContactForm builds a form that redirects to next after submission.
// A nil notifier or submitter is allowed.
func NewContactForm(next string, notifier Notifier, submitter Submitter) *ContactForm {
	return &ContactForm{next: next, notifier: notifier, submitter: submitter}
}

func (f *ContactForm) Input(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.Set(field, value)
}

// Fill replaces the whole draft, as when a finished form arrives at once.
func (f *ContactForm) Fill(draft FormDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return ErrAlreadySubmitted
	}
	f.draft = draft
	return nil
}

func (f *ContactForm) Draft() FormDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Submit locks the form and reports success straight away. The relay's
// real answer is never observed, so a failed delivery still shows the
// success toast to the visitor.
func (f *ContactForm) Submit() error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrAlreadySubmitted
	}
	if field, missing := f.draft.Missing(); missing {
		f.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	f.submitting = true
	sub := Submission{FormDraft: f.draft, Next: f.next}
	f.mu.Unlock()

	if f.notifier != nil {
		f.notifier.Success(SuccessMessage)
	}
	if f.submitter != nil {
		f.submitter.Submit(sub)
	}
	return nil
}

// Button returns the submit control's label and whether it is disabled.
func (f *ContactForm) Button() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return SendingLabel, true
	}
	return SendLabel, false
}
