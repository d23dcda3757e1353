package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
)

// AppointmentBackend is the slice of the appointment service the workflow needs.
type AppointmentBackend interface {
	Request(ctx context.Context, input service.AppointmentInput) (*domain.Appointment, error)
	List(ctx context.Context, status *domain.AppointmentStatus) ([]domain.Appointment, error)
	SetStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

// AppointmentWorkflow owns submission and administration of appointment requests.
type AppointmentWorkflow struct {
	backend AppointmentBackend
	toast   Toaster
}

// NewAppointmentWorkflow constructs the workflow with an injected toaster.
func NewAppointmentWorkflow(backend AppointmentBackend, toast Toaster) *AppointmentWorkflow {
	return &AppointmentWorkflow{backend: backend, toast: toast}
}

// AppointmentFields is the form state a visitor fills in.
type AppointmentFields struct {
	Name          string
	Phone         string
	Email         string
	Service       string
	PreferredDate string
	PreferredTime string
	Message       string
}

// AppointmentForm is one submission attempt's state.
type AppointmentForm struct {
	Fields AppointmentFields

	w     *AppointmentWorkflow
	mu    sync.Mutex
	state State
	busy  bool
}

// NewForm returns a fresh idle form.
func (w *AppointmentWorkflow) NewForm() *AppointmentForm {
	return &AppointmentForm{w: w, state: StateIdle}
}

// State reports the current lifecycle state.
func (f *AppointmentForm) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Busy reports whether a submit is in flight.
func (f *AppointmentForm) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// Submit validates required fields, inserts the record with status forced to
// pending, and reports the outcome. Fields reset on success and are retained
// on failure so the visitor can retry without retyping.
func (f *AppointmentForm) Submit(ctx context.Context) (*domain.Appointment, error) {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}

	missing := missingRequired([]requiredField{
		{"name", f.Fields.Name},
		{"phone", f.Fields.Phone},
		{"service", f.Fields.Service},
		{"preferred_date", f.Fields.PreferredDate},
		{"preferred_time", f.Fields.PreferredTime},
	})
	if len(missing) > 0 {
		f.mu.Unlock()
		f.w.toast.Error(requiredFieldsMessage, "")
		return nil, validationError(missing)
	}

	f.busy = true
	f.state = StateSubmitting
	input := service.AppointmentInput{
		Name:          f.Fields.Name,
		Phone:         f.Fields.Phone,
		Email:         f.Fields.Email,
		Service:       f.Fields.Service,
		PreferredDate: f.Fields.PreferredDate,
		PreferredTime: f.Fields.PreferredTime,
		Message:       f.Fields.Message,
	}
	f.mu.Unlock()

	appt, err := f.w.backend.Request(ctx, input)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	if err != nil {
		f.state = StateFailed
		f.w.toast.Error("Error", "Failed to submit appointment request. Please try again.")
		return nil, err
	}

	f.state = StateSucceeded
	f.Fields = AppointmentFields{}
	f.w.toast.Success("Appointment Requested Successfully!", "We'll contact you within 2 hours to confirm your appointment.")
	return appt, nil
}

// List returns appointments for administrative display, newest first.
func (w *AppointmentWorkflow) List(ctx context.Context, status *domain.AppointmentStatus) ([]domain.Appointment, error) {
	return w.backend.List(ctx, status)
}

// SetStatus updates a record's status and raises a confirmation toast.
func (w *AppointmentWorkflow) SetStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	if err := w.backend.SetStatus(ctx, id, status); err != nil {
		w.toast.Error("Error", "Failed to update appointment status")
		return err
	}
	w.toast.Success("Appointment Updated", fmt.Sprintf("Appointment status changed to %s", status))
	return nil
}
