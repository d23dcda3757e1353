package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/events"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

type fakeAppointmentRepo struct {
	created    []*domain.Appointment
	failCreate bool
	noRows     bool
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) error {
	if f.failCreate {
		return errors.New("connection refused")
	}
	appt.ID = "appt-1"
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.created = append(f.created, appt)
	return nil
}

func (f *fakeAppointmentRepo) List(ctx context.Context, status *domain.AppointmentStatus) ([]domain.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	if f.noRows {
		return pgx.ErrNoRows
	}
	return nil
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

type failingInvoker struct {
	calls int
}

func (f *failingInvoker) Invoke(ctx context.Context, route string, payload any) error {
	f.calls++
	return errors.New("functions endpoint unreachable")
}

func TestAppointmentService_RequestForcesPendingStatus(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	dispatcher := &recordingDispatcher{}
	svc := NewAppointmentService(repo, dispatcher)

	appt, err := svc.Request(context.Background(), AppointmentInput{
		Name:          "Asha",
		Phone:         "9998887770",
		Service:       "General Consultation",
		PreferredDate: "2024-05-01",
		PreferredTime: "10:00 AM",
	})
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.created))
	}
	if repo.created[0].Status != domain.AppointmentStatusPending {
		t.Fatalf("inserted status = %s, want pending", repo.created[0].Status)
	}
	if appt.ID == "" {
		t.Fatal("expected store-assigned id")
	}

	if len(dispatcher.published) != 1 || dispatcher.published[0].Type != events.EventAppointmentRequested {
		t.Fatalf("expected appointment_requested event, got %+v", dispatcher.published)
	}
	if dispatcher.published[0].ID == "" {
		t.Fatal("expected event id")
	}
}

func TestAppointmentService_RequestWrapsStoreError(t *testing.T) {
	repo := &fakeAppointmentRepo{failCreate: true}
	svc := NewAppointmentService(repo, &recordingDispatcher{})

	_, err := svc.Request(context.Background(), AppointmentInput{Name: "Asha", Phone: "1", Service: "x", PreferredDate: "d", PreferredTime: "t"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !apperrors.IsStoreError(err) {
		t.Fatalf("expected store error, got %v", err)
	}
}

// Insert success with a failing notifier must still be a success: the
// record is authoritative, notification is advisory.
func TestAppointmentService_NotificationFailureDoesNotFailRequest(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	dispatcher := events.NewInMemoryDispatcher()
	invoker := &failingInvoker{}

	notif := NewNotificationService(dispatcher, invoker, zap.NewNop())
	notif.RegisterHandlers()

	svc := NewAppointmentService(repo, dispatcher)
	appt, err := svc.Request(context.Background(), AppointmentInput{
		Name:          "Asha",
		Phone:         "9998887770",
		Service:       "General Consultation",
		PreferredDate: "2024-05-01",
		PreferredTime: "10:00 AM",
	})
	if err != nil {
		t.Fatalf("request should succeed despite notify failure: %v", err)
	}
	if appt.Status != domain.AppointmentStatusPending {
		t.Fatalf("unexpected status %s", appt.Status)
	}
	if invoker.calls != 1 {
		t.Fatalf("expected 1 notification attempt, got %d", invoker.calls)
	}
}

func TestAppointmentService_SetStatusRejectsUnknownValue(t *testing.T) {
	svc := NewAppointmentService(&fakeAppointmentRepo{}, &recordingDispatcher{})

	err := svc.SetStatus(context.Background(), "appt-1", domain.AppointmentStatus("archived"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
}

func TestAppointmentService_SetStatusNotFound(t *testing.T) {
	svc := NewAppointmentService(&fakeAppointmentRepo{noRows: true}, &recordingDispatcher{})

	err := svc.SetStatus(context.Background(), "missing", domain.AppointmentStatusConfirmed)
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestAppointmentService_ListRejectsUnknownStatusFilter(t *testing.T) {
	svc := NewAppointmentService(&fakeAppointmentRepo{}, &recordingDispatcher{})

	bad := domain.AppointmentStatus("archived")
	if _, err := svc.List(context.Background(), &bad); err == nil {
		t.Fatal("expected validation error")
	}
}
