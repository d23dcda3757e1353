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

// ContactService coordinates the contact message workflow.
type ContactService struct {
	repo       repository.ContactRepository
	dispatcher events.Dispatcher
}

// ContactInput describes a contact message payload. Status is always forced
// to unread at creation.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// NewContactService constructs the service.
func NewContactService(repo repository.ContactRepository, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{repo: repo, dispatcher: dispatcher}
}

// Send persists a new contact message with status unread and publishes the
// received event.
func (s *ContactService) Send(ctx context.Context, input ContactInput) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
		Status:  domain.ContactStatusUnread,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	s.publish(ctx, events.EventContactMessageReceived, msg.ID, msg)
	return msg, nil
}

// List returns contact messages, optionally filtered by status, newest first.
func (s *ContactService) List(ctx context.Context, status *domain.ContactStatus) ([]domain.ContactMessage, error) {
	if status != nil && !domain.ValidContactStatus(*status) {
		return nil, apperrors.NewValidationError("unknown message status", map[string]any{"status": string(*status)})
	}
	records, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return records, nil
}

// SetStatus persists a new status within the message status domain.
func (s *ContactService) SetStatus(ctx context.Context, id string, status domain.ContactStatus) error {
	if !domain.ValidContactStatus(status) {
		return apperrors.NewValidationError("unknown message status", map[string]any{"status": string(status)})
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("message", map[string]any{"id": id})
		}
		return apperrors.NewStoreError(err)
	}

	s.publish(ctx, events.EventContactStatusChanged, id, events.StatusChangedPayload{NewStatus: string(status)})
	return nil
}

func (s *ContactService) publish(ctx context.Context, eventType events.EventType, recordID string, payload any) {
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
