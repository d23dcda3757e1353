package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/clinic-service/internal/events"
	"github.com/spec-kit/clinic-service/internal/notification"
)

type recordingInvoker struct {
	routes   []string
	payloads []any
}

func (r *recordingInvoker) Invoke(ctx context.Context, route string, payload any) error {
	r.routes = append(r.routes, route)
	r.payloads = append(r.payloads, payload)
	return nil
}

func TestNotificationService_RoutesPerRecordKind(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	invoker := &recordingInvoker{}
	notif := NewNotificationService(dispatcher, invoker, zap.NewNop())
	notif.RegisterHandlers()

	cases := []struct {
		eventType  events.EventType
		wantRoute  string
		payloadKey string
	}{
		{events.EventAppointmentRequested, notification.RouteAppointment, "appointment"},
		{events.EventDonorRegistered, notification.RouteDonor, "donor"},
		{events.EventContactMessageReceived, notification.RouteContact, "message"},
	}

	for _, tc := range cases {
		_ = dispatcher.Publish(context.Background(), events.Event{
			ID:        "evt",
			Type:      tc.eventType,
			RecordID:  "rec-1",
			Timestamp: time.Now(),
			Payload:   map[string]string{"id": "rec-1"},
		})
	}

	if len(invoker.routes) != len(cases) {
		t.Fatalf("expected %d invocations, got %d", len(cases), len(invoker.routes))
	}
	for i, tc := range cases {
		if invoker.routes[i] != tc.wantRoute {
			t.Fatalf("event %s routed to %s, want %s", tc.eventType, invoker.routes[i], tc.wantRoute)
		}
		body, ok := invoker.payloads[i].(map[string]any)
		if !ok {
			t.Fatalf("payload %d has unexpected shape %T", i, invoker.payloads[i])
		}
		if _, ok := body[tc.payloadKey]; !ok {
			t.Fatalf("payload %d missing %q key: %v", i, tc.payloadKey, body)
		}
	}
}

func TestNotificationService_StatusChangeSendsNoEmail(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	invoker := &recordingInvoker{}
	notif := NewNotificationService(dispatcher, invoker, zap.NewNop())
	notif.RegisterHandlers()

	_ = dispatcher.Publish(context.Background(), events.Event{
		ID:       "evt",
		Type:     events.EventAppointmentStatusChanged,
		RecordID: "rec-1",
		Payload:  events.StatusChangedPayload{NewStatus: "confirmed"},
	})

	if len(invoker.routes) != 0 {
		t.Fatalf("status change should not invoke functions, got %v", invoker.routes)
	}
}
