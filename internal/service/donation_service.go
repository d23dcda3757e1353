package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/events"
	"github.com/spec-kit/clinic-service/internal/repository"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// DonationService coordinates the blood donor registration workflow.
type DonationService struct {
	repo       repository.DonationRepository
	dispatcher events.Dispatcher
}

// DonorInput describes a donor registration payload. Status is always forced
// to registered at creation.
type DonorInput struct {
	Name              string
	Phone             string
	Email             string
	Age               int
	BloodGroup        string
	Weight            float64
	LastDonationDate  string
	MedicalConditions string
}

// NewDonationService constructs the service.
func NewDonationService(repo repository.DonationRepository, dispatcher events.Dispatcher) *DonationService {
	return &DonationService{repo: repo, dispatcher: dispatcher}
}

// Register persists a new donor with status registered and publishes the
// created event.
func (s *DonationService) Register(ctx context.Context, input DonorInput) (*domain.BloodDonation, error) {
	donor := &domain.BloodDonation{
		Name:              strings.TrimSpace(input.Name),
		Phone:             strings.TrimSpace(input.Phone),
		Email:             strings.TrimSpace(input.Email),
		Age:               input.Age,
		BloodGroup:        strings.TrimSpace(input.BloodGroup),
		Weight:            input.Weight,
		LastDonationDate:  strings.TrimSpace(input.LastDonationDate),
		MedicalConditions: strings.TrimSpace(input.MedicalConditions),
		Status:            domain.DonorStatusRegistered,
	}

	if err := s.repo.Create(ctx, donor); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	s.publish(ctx, events.EventDonorRegistered, donor.ID, donor)
	return donor, nil
}

// List returns donor registrations, optionally filtered by status, newest first.
func (s *DonationService) List(ctx context.Context, status *domain.DonorStatus) ([]domain.BloodDonation, error) {
	if status != nil && !domain.ValidDonorStatus(*status) {
		return nil, apperrors.NewValidationError("unknown donor status", map[string]any{"status": string(*status)})
	}
	records, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return records, nil
}

// SetStatus persists a new status within the donor status domain.
func (s *DonationService) SetStatus(ctx context.Context, id string, status domain.DonorStatus) error {
	if !domain.ValidDonorStatus(status) {
		return apperrors.NewValidationError("unknown donor status", map[string]any{"status": string(status)})
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("donor", map[string]any{"id": id})
		}
		return apperrors.NewStoreError(err)
	}

	s.publish(ctx, events.EventDonorStatusChanged, id, events.StatusChangedPayload{NewStatus: string(status)})
	return nil
}

func (s *DonationService) publish(ctx context.Context, eventType events.EventType, recordID string, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		RecordID:  recordID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
