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

// AppointmentService coordinates the appointment request workflow.
type AppointmentService struct {
	repo       repository.AppointmentRepository
	dispatcher events.Dispatcher
}

// AppointmentInput describes an appointment request payload. Status is not
// part of the input; it is always forced to pending at creation.
type AppointmentInput struct {
	Name          string
	Phone         string
	Email         string
	Service       string
	PreferredDate string
	PreferredTime string
	Message       string
}

// NewAppointmentService constructs the service.
func NewAppointmentService(repo repository.AppointmentRepository, dispatcher events.Dispatcher) *AppointmentService {
	return &AppointmentService{repo: repo, dispatcher: dispatcher}
}

// Request persists a new appointment with status pending and publishes the
// created event. The event handlers run best-effort; a committed record is
// never rolled back by a failed notification.
func (s *AppointmentService) Request(ctx context.Context, input AppointmentInput) (*domain.Appointment, error) {
	appt := &domain.Appointment{
		Name:          strings.TrimSpace(input.Name),
		Phone:         strings.TrimSpace(input.Phone),
		Email:         strings.TrimSpace(input.Email),
		Service:       strings.TrimSpace(input.Service),
		PreferredDate: strings.TrimSpace(input.PreferredDate),
		PreferredTime: strings.TrimSpace(input.PreferredTime),
		Message:       strings.TrimSpace(input.Message),
		Status:        domain.AppointmentStatusPending,
	}

	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	s.publish(ctx, events.EventAppointmentRequested, appt.ID, appt)
	return appt, nil
}

// List returns appointments, optionally filtered by status, newest first.
func (s *AppointmentService) List(ctx context.Context, status *domain.AppointmentStatus) ([]domain.Appointment, error) {
	if status != nil && !domain.ValidAppointmentStatus(*status) {
		return nil, apperrors.NewValidationError("unknown appointment status", map[string]any{"status": string(*status)})
	}
	records, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return records, nil
}

// SetStatus persists a new status unconditionally within the status domain.
// No transition table is enforced; any valid status may replace any other.
func (s *AppointmentService) SetStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	if !domain.ValidAppointmentStatus(status) {
		return apperrors.NewValidationError("unknown appointment status", map[string]any{"status": string(status)})
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("appointment", map[string]any{"id": id})
		}
		return apperrors.NewStoreError(err)
	}

	s.publish(ctx, events.EventAppointmentStatusChanged, id, events.StatusChangedPayload{NewStatus: string(status)})
	return nil
}

func (s *AppointmentService) publish(ctx context.Context, eventType events.EventType, recordID string, payload any) {
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
