package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
)

type fakeDonationBackend struct {
	createCalls int
	lastInput   service.DonorInput
	failCreate  bool
}

func (f *fakeDonationBackend) Register(ctx context.Context, input service.DonorInput) (*domain.BloodDonation, error) {
	f.createCalls++
	f.lastInput = input
	if f.failCreate {
		return nil, errors.New("insert failed")
	}
	return &domain.BloodDonation{
		ID:         "donor-1",
		Name:       input.Name,
		Phone:      input.Phone,
		Age:        input.Age,
		BloodGroup: input.BloodGroup,
		Weight:     input.Weight,
		Status:     domain.DonorStatusRegistered,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}, nil
}

func (f *fakeDonationBackend) List(ctx context.Context, status *domain.DonorStatus) ([]domain.BloodDonation, error) {
	return nil, nil
}

func (f *fakeDonationBackend) SetStatus(ctx context.Context, id string, status domain.DonorStatus) error {
	return nil
}

func TestDonationForm_MissingBloodGroupSkipsInsert(t *testing.T) {
	backend := &fakeDonationBackend{}
	rec := &RecordingToaster{}
	form := NewDonationWorkflow(backend, rec).NewForm()
	form.Fields = DonationFields{
		Name:  "Ravi",
		Phone: "9990001112",
		Age:   "28",
	}

	if _, err := form.Submit(context.Background()); err == nil {
		t.Fatal("expected validation error")
	}

	if backend.createCalls != 0 {
		t.Fatalf("insert called %d times on invalid form", backend.createCalls)
	}
	if form.State() != StateIdle {
		t.Fatalf("expected idle state, got %s", form.State())
	}
	toasts := rec.Toasts()
	if len(toasts) != 1 || toasts[0].Title != "Please fill in all required fields" {
		t.Fatalf("expected validation toast, got %+v", toasts)
	}
}

func TestDonationForm_SubmitSuccess(t *testing.T) {
	backend := &fakeDonationBackend{}
	rec := &RecordingToaster{}
	form := NewDonationWorkflow(backend, rec).NewForm()
	form.Fields = DonationFields{
		Name:       "Ravi",
		Phone:      "9990001112",
		Age:        "28",
		BloodGroup: "O+",
		Weight:     "72.5",
	}

	donor, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if donor.Status != domain.DonorStatusRegistered {
		t.Fatalf("expected registered status, got %s", donor.Status)
	}
	if backend.lastInput.Age != 28 {
		t.Fatalf("age not parsed, got %d", backend.lastInput.Age)
	}
	if backend.lastInput.Weight != 72.5 {
		t.Fatalf("weight not parsed, got %v", backend.lastInput.Weight)
	}
	if form.Fields != (DonationFields{}) {
		t.Fatalf("fields not reset: %+v", form.Fields)
	}
	if form.State() != StateSucceeded {
		t.Fatalf("expected succeeded state, got %s", form.State())
	}
}

func TestDonationForm_NonNumericAgeRefused(t *testing.T) {
	backend := &fakeDonationBackend{}
	rec := &RecordingToaster{}
	form := NewDonationWorkflow(backend, rec).NewForm()
	form.Fields = DonationFields{
		Name:       "Ravi",
		Phone:      "9990001112",
		Age:        "twenty-eight",
		BloodGroup: "O+",
	}

	if _, err := form.Submit(context.Background()); err == nil {
		t.Fatal("expected validation error for non-numeric age")
	}
	if backend.createCalls != 0 {
		t.Fatalf("insert called %d times on invalid form", backend.createCalls)
	}
}

func TestDonationForm_OptionalWeightDefaultsToZero(t *testing.T) {
	backend := &fakeDonationBackend{}
	form := NewDonationWorkflow(backend, &RecordingToaster{}).NewForm()
	form.Fields = DonationFields{
		Name:       "Ravi",
		Phone:      "9990001112",
		Age:        "28",
		BloodGroup: "O+",
	}

	if _, err := form.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if backend.lastInput.Weight != 0 {
		t.Fatalf("expected zero weight, got %v", backend.lastInput.Weight)
	}
}

func TestDonationForm_FailureRetainsFields(t *testing.T) {
	backend := &fakeDonationBackend{failCreate: true}
	form := NewDonationWorkflow(backend, &RecordingToaster{}).NewForm()
	form.Fields = DonationFields{
		Name:       "Ravi",
		Phone:      "9990001112",
		Age:        "28",
		BloodGroup: "O+",
	}
	want := form.Fields

	if _, err := form.Submit(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if form.Fields != want {
		t.Fatalf("fields changed on failure: %+v", form.Fields)
	}
	if form.State() != StateFailed {
		t.Fatalf("expected failed state, got %s", form.State())
	}
	if form.Busy() {
		t.Fatal("busy flag left set after failure")
	}
}
