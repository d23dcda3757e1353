package workflow

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// DonationBackend is the slice of the donation service the workflow needs.
type DonationBackend interface {
	Register(ctx context.Context, input service.DonorInput) (*domain.BloodDonation, error)
	List(ctx context.Context, status *domain.DonorStatus) ([]domain.BloodDonation, error)
	SetStatus(ctx context.Context, id string, status domain.DonorStatus) error
}

// DonationWorkflow owns donor registration and administration.
type DonationWorkflow struct {
	backend DonationBackend
	toast   Toaster
}

// NewDonationWorkflow constructs the workflow with an injected toaster.
func NewDonationWorkflow(backend DonationBackend, toast Toaster) *DonationWorkflow {
	return &DonationWorkflow{backend: backend, toast: toast}
}

// DonationFields is the registration form state. Age and Weight arrive as
// text inputs and are parsed at submit time.
type DonationFields struct {
	Name              string
	Phone             string
	Email             string
	Age               string
	BloodGroup        string
	Weight            string
	LastDonationDate  string
	MedicalConditions string
}

// DonationForm is one registration attempt's state.
type DonationForm struct {
	Fields DonationFields

	w     *DonationWorkflow
	mu    sync.Mutex
	state State
	busy  bool
}

// NewForm returns a fresh idle form.
func (w *DonationWorkflow) NewForm() *DonationForm {
	return &DonationForm{w: w, state: StateIdle}
}

// State reports the current lifecycle state.
func (f *DonationForm) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Busy reports whether a submit is in flight.
func (f *DonationForm) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// Submit validates required fields, inserts the record with status forced to
// registered, and reports the outcome.
func (f *DonationForm) Submit(ctx context.Context) (*domain.BloodDonation, error) {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}

	missing := missingRequired([]requiredField{
		{"name", f.Fields.Name},
		{"phone", f.Fields.Phone},
		{"blood_group", f.Fields.BloodGroup},
		{"age", f.Fields.Age},
	})
	if len(missing) > 0 {
		f.mu.Unlock()
		f.w.toast.Error(requiredFieldsMessage, "")
		return nil, validationError(missing)
	}

	input, err := f.buildInput()
	if err != nil {
		f.mu.Unlock()
		f.w.toast.Error(requiredFieldsMessage, "")
		return nil, err
	}

	f.busy = true
	f.state = StateSubmitting
	f.mu.Unlock()

	donor, err := f.w.backend.Register(ctx, input)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	if err != nil {
		f.state = StateFailed
		f.w.toast.Error("Error", "Failed to register. Please try again.")
		return nil, err
	}

	f.state = StateSucceeded
	f.Fields = DonationFields{}
	f.w.toast.Success("Registration Successful!", "Thank you for registering. We'll contact you with camp details.")
	return donor, nil
}

func (f *DonationForm) buildInput() (service.DonorInput, error) {
	age, err := strconv.Atoi(strings.TrimSpace(f.Fields.Age))
	if err != nil {
		return service.DonorInput{}, apperrors.NewValidationError("age must be a number", map[string]any{"age": f.Fields.Age})
	}

	var weight float64
	if w := strings.TrimSpace(f.Fields.Weight); w != "" {
		weight, err = strconv.ParseFloat(w, 64)
		if err != nil {
			return service.DonorInput{}, apperrors.NewValidationError("weight must be a number", map[string]any{"weight": f.Fields.Weight})
		}
	}

	return service.DonorInput{
		Name:              f.Fields.Name,
		Phone:             f.Fields.Phone,
		Email:             f.Fields.Email,
		Age:               age,
		BloodGroup:        f.Fields.BloodGroup,
		Weight:            weight,
		LastDonationDate:  f.Fields.LastDonationDate,
		MedicalConditions: f.Fields.MedicalConditions,
	}, nil
}

// List returns donor registrations for administrative display, newest first.
func (w *DonationWorkflow) List(ctx context.Context, status *domain.DonorStatus) ([]domain.BloodDonation, error) {
	return w.backend.List(ctx, status)
}

// SetStatus updates a donor's status and raises a confirmation toast.
func (w *DonationWorkflow) SetStatus(ctx context.Context, id string, status domain.DonorStatus) error {
	if err := w.backend.SetStatus(ctx, id, status); err != nil {
		w.toast.Error("Error", "Failed to update donor status")
		return err
	}
	w.toast.Success("Donor Status Updated", fmt.Sprintf("Status changed to %s", status))
	return nil
}
