package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
)

type fakeContactBackend struct {
	createCalls   int
	failCreate    bool
	statusUpdates map[string]domain.ContactStatus
}

func (f *fakeContactBackend) Send(ctx context.Context, input service.ContactInput) (*domain.ContactMessage, error) {
	f.createCalls++
	if f.failCreate {
		return nil, errors.New("insert failed")
	}
	return &domain.ContactMessage{
		ID:        "msg-1",
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    domain.ContactStatusUnread,
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakeContactBackend) List(ctx context.Context, status *domain.ContactStatus) ([]domain.ContactMessage, error) {
	return nil, nil
}

func (f *fakeContactBackend) SetStatus(ctx context.Context, id string, status domain.ContactStatus) error {
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[string]domain.ContactStatus)
	}
	f.statusUpdates[id] = status
	return nil
}

func TestContactForm_SubmitSuccess(t *testing.T) {
	backend := &fakeContactBackend{}
	rec := &RecordingToaster{}
	form := NewContactWorkflow(backend, rec).NewForm()
	form.Fields = ContactFields{
		Name:    "Meera",
		Email:   "meera@example.com",
		Message: "Do you treat sports injuries?",
	}

	msg, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if msg.Status != domain.ContactStatusUnread {
		t.Fatalf("expected unread status, got %s", msg.Status)
	}
	if form.Fields != (ContactFields{}) {
		t.Fatalf("fields not reset: %+v", form.Fields)
	}

	toasts := rec.Toasts()
	if len(toasts) != 1 || toasts[0].Title != "Message Sent Successfully!" {
		t.Fatalf("expected success toast, got %+v", toasts)
	}
}

func TestContactForm_MissingEmailSkipsInsert(t *testing.T) {
	backend := &fakeContactBackend{}
	form := NewContactWorkflow(backend, &RecordingToaster{}).NewForm()
	form.Fields = ContactFields{
		Name:    "Meera",
		Message: "Hello",
	}

	if _, err := form.Submit(context.Background()); err == nil {
		t.Fatal("expected validation error")
	}
	if backend.createCalls != 0 {
		t.Fatalf("insert called %d times on invalid form", backend.createCalls)
	}
}

func TestContactWorkflow_SetStatusIsSilent(t *testing.T) {
	backend := &fakeContactBackend{}
	rec := &RecordingToaster{}
	wf := NewContactWorkflow(backend, rec)

	if err := wf.SetStatus(context.Background(), "msg-1", domain.ContactStatusReplied); err != nil {
		t.Fatalf("set status: %v", err)
	}

	if got := backend.statusUpdates["msg-1"]; got != domain.ContactStatusReplied {
		t.Fatalf("status not persisted, got %s", got)
	}
	if toasts := rec.Toasts(); len(toasts) != 0 {
		t.Fatalf("contact status update should be silent, got %+v", toasts)
	}
}
