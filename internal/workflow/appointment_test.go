package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
)

type fakeAppointmentBackend struct {
	mu          sync.Mutex
	createCalls int
	lastInput   service.AppointmentInput
	failCreate  bool
	entered     chan struct{}
	release     chan struct{}

	records       []domain.Appointment
	statusUpdates map[string]domain.AppointmentStatus
	failSetStatus bool
}

func (f *fakeAppointmentBackend) Request(ctx context.Context, input service.AppointmentInput) (*domain.Appointment, error) {
	f.mu.Lock()
	f.createCalls++
	f.lastInput = input
	entered, release, fail := f.entered, f.release, f.failCreate
	f.mu.Unlock()

	if entered != nil {
		close(entered)
	}
	if release != nil {
		<-release
	}
	if fail {
		return nil, errors.New("insert failed")
	}
	return &domain.Appointment{
		ID:            "appt-1",
		Name:          input.Name,
		Phone:         input.Phone,
		Service:       input.Service,
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		Status:        domain.AppointmentStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}, nil
}

func (f *fakeAppointmentBackend) List(ctx context.Context, status *domain.AppointmentStatus) ([]domain.Appointment, error) {
	return f.records, nil
}

func (f *fakeAppointmentBackend) SetStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	if f.failSetStatus {
		return errors.New("update failed")
	}
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[string]domain.AppointmentStatus)
	}
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeAppointmentBackend) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCalls
}

func validAppointmentFields() AppointmentFields {
	return AppointmentFields{
		Name:          "Asha",
		Phone:         "9998887770",
		Service:       "General Consultation",
		PreferredDate: "2024-05-01",
		PreferredTime: "10:00 AM",
	}
}

func TestAppointmentForm_SubmitSuccess(t *testing.T) {
	backend := &fakeAppointmentBackend{}
	rec := &RecordingToaster{}
	form := NewAppointmentWorkflow(backend, rec).NewForm()
	form.Fields = validAppointmentFields()

	if form.Busy() {
		t.Fatal("busy before submit")
	}

	appt, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if backend.calls() != 1 {
		t.Fatalf("expected 1 insert, got %d", backend.calls())
	}
	if appt.Status != domain.AppointmentStatusPending {
		t.Fatalf("expected pending status, got %s", appt.Status)
	}
	if form.State() != StateSucceeded {
		t.Fatalf("expected succeeded state, got %s", form.State())
	}
	if form.Busy() {
		t.Fatal("busy flag left set after success")
	}
	if form.Fields != (AppointmentFields{}) {
		t.Fatalf("fields not reset: %+v", form.Fields)
	}

	toasts := rec.Toasts()
	if len(toasts) != 1 || toasts[0].Level != "success" {
		t.Fatalf("expected one success toast, got %+v", toasts)
	}
	if toasts[0].Title != "Appointment Requested Successfully!" {
		t.Fatalf("unexpected toast title: %s", toasts[0].Title)
	}
}

func TestAppointmentForm_MissingRequiredFieldSkipsInsert(t *testing.T) {
	backend := &fakeAppointmentBackend{}
	rec := &RecordingToaster{}
	form := NewAppointmentWorkflow(backend, rec).NewForm()
	form.Fields = validAppointmentFields()
	form.Fields.Phone = ""

	if _, err := form.Submit(context.Background()); err == nil {
		t.Fatal("expected validation error")
	}

	if backend.calls() != 0 {
		t.Fatalf("insert called %d times on invalid form", backend.calls())
	}
	if form.State() != StateIdle {
		t.Fatalf("expected idle state, got %s", form.State())
	}
	if form.Fields.Name != "Asha" {
		t.Fatal("fields were reset on validation failure")
	}

	toasts := rec.Toasts()
	if len(toasts) != 1 || toasts[0].Title != "Please fill in all required fields" {
		t.Fatalf("expected validation toast, got %+v", toasts)
	}
}

func TestAppointmentForm_FailureRetainsFields(t *testing.T) {
	backend := &fakeAppointmentBackend{failCreate: true}
	rec := &RecordingToaster{}
	form := NewAppointmentWorkflow(backend, rec).NewForm()
	form.Fields = validAppointmentFields()
	want := form.Fields

	if _, err := form.Submit(context.Background()); err == nil {
		t.Fatal("expected error from failed insert")
	}

	if form.State() != StateFailed {
		t.Fatalf("expected failed state, got %s", form.State())
	}
	if form.Busy() {
		t.Fatal("busy flag left set after failure")
	}
	if form.Fields != want {
		t.Fatalf("fields changed on failure: %+v", form.Fields)
	}

	toasts := rec.Toasts()
	if len(toasts) != 1 || toasts[0].Level != "error" {
		t.Fatalf("expected one error toast, got %+v", toasts)
	}
}

func TestAppointmentForm_RapidDoubleSubmit(t *testing.T) {
	backend := &fakeAppointmentBackend{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	rec := &RecordingToaster{}
	form := NewAppointmentWorkflow(backend, rec).NewForm()
	form.Fields = validAppointmentFields()

	done := make(chan error, 1)
	go func() {
		_, err := form.Submit(context.Background())
		done <- err
	}()

	<-backend.entered
	if !form.Busy() {
		t.Fatal("expected busy while first submit in flight")
	}

	if _, err := form.Submit(context.Background()); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight, got %v", err)
	}

	close(backend.release)
	if err := <-done; err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	if backend.calls() != 1 {
		t.Fatalf("expected exactly 1 insert, got %d", backend.calls())
	}
}

func TestAppointmentWorkflow_SetStatusToasts(t *testing.T) {
	backend := &fakeAppointmentBackend{}
	rec := &RecordingToaster{}
	wf := NewAppointmentWorkflow(backend, rec)

	if err := wf.SetStatus(context.Background(), "appt-1", domain.AppointmentStatusConfirmed); err != nil {
		t.Fatalf("set status: %v", err)
	}

	if got := backend.statusUpdates["appt-1"]; got != domain.AppointmentStatusConfirmed {
		t.Fatalf("status not persisted, got %s", got)
	}
	toasts := rec.Toasts()
	if len(toasts) != 1 || toasts[0].Title != "Appointment Updated" {
		t.Fatalf("expected confirmation toast, got %+v", toasts)
	}
}

func TestAppointmentWorkflow_SetStatusFailureToasts(t *testing.T) {
	backend := &fakeAppointmentBackend{failSetStatus: true}
	rec := &RecordingToaster{}
	wf := NewAppointmentWorkflow(backend, rec)

	if err := wf.SetStatus(context.Background(), "appt-1", domain.AppointmentStatusConfirmed); err == nil {
		t.Fatal("expected error")
	}

	toasts := rec.Toasts()
	if len(toasts) != 1 || toasts[0].Level != "error" {
		t.Fatalf("expected error toast, got %+v", toasts)
	}
}
