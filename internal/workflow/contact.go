package workflow

import (
	"context"
	"sync"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
)

// ContactBackend is the slice of the contact service the workflow needs.
type ContactBackend interface {
	Send(ctx context.Context, input service.ContactInput) (*domain.ContactMessage, error)
	List(ctx context.Context, status *domain.ContactStatus) ([]domain.ContactMessage, error)
	SetStatus(ctx context.Context, id string, status domain.ContactStatus) error
}

// ContactWorkflow owns contact message submission and administration.
type ContactWorkflow struct {
	backend ContactBackend
	toast   Toaster
}

// NewContactWorkflow constructs the workflow with an injected toaster.
func NewContactWorkflow(backend ContactBackend, toast Toaster) *ContactWorkflow {
	return &ContactWorkflow{backend: backend, toast: toast}
}

// ContactFields is the contact form state.
type ContactFields struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ContactForm is one submission attempt's state.
type ContactForm struct {
	Fields ContactFields

	w     *ContactWorkflow
	mu    sync.Mutex
	state State
	busy  bool
}

// NewForm returns a fresh idle form.
func (w *ContactWorkflow) NewForm() *ContactForm {
	return &ContactForm{w: w, state: StateIdle}
}

// State reports the current lifecycle state.
func (f *ContactForm) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Busy reports whether a submit is in flight.
func (f *ContactForm) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// Submit validates required fields, inserts the record with status forced to
// unread, and reports the outcome.
func (f *ContactForm) Submit(ctx context.Context) (*domain.ContactMessage, error) {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}

	missing := missingRequired([]requiredField{
		{"name", f.Fields.Name},
		{"email", f.Fields.Email},
		{"message", f.Fields.Message},
	})
	if len(missing) > 0 {
		f.mu.Unlock()
		f.w.toast.Error(requiredFieldsMessage, "")
		return nil, validationError(missing)
	}

	f.busy = true
	f.state = StateSubmitting
	input := service.ContactInput{
		Name:    f.Fields.Name,
		Email:   f.Fields.Email,
		Phone:   f.Fields.Phone,
		Subject: f.Fields.Subject,
		Message: f.Fields.Message,
	}
	f.mu.Unlock()

	msg, err := f.w.backend.Send(ctx, input)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	if err != nil {
		f.state = StateFailed
		f.w.toast.Error("Error", "Failed to send message. Please try again.")
		return nil, err
	}

	f.state = StateSucceeded
	f.Fields = ContactFields{}
	f.w.toast.Success("Message Sent Successfully!", "We'll get back to you within 24 hours.")
	return msg, nil
}

// List returns contact messages for administrative display, newest first.
func (w *ContactWorkflow) List(ctx context.Context, status *domain.ContactStatus) ([]domain.ContactMessage, error) {
	return w.backend.List(ctx, status)
}

// SetStatus updates a message's status. Contact updates are silent; no toast.
func (w *ContactWorkflow) SetStatus(ctx context.Context, id string, status domain.ContactStatus) error {
	return w.backend.SetStatus(ctx, id, status)
}
