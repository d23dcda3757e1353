package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/clinic-service/internal/events"
	"github.com/spec-kit/clinic-service/internal/notification"
)

// NotificationService bridges domain events to the hosted email functions.
// Every handler is best-effort: invocation failures are logged and swallowed,
// they never surface to the submitting user.
type NotificationService struct {
	dispatcher events.Dispatcher
	invoker    notification.Invoker
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, invoker notification.Invoker, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		invoker:    invoker,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventAppointmentRequested, n.handleAppointmentRequested)
	n.dispatcher.Subscribe(events.EventDonorRegistered, n.handleDonorRegistered)
	n.dispatcher.Subscribe(events.EventContactMessageReceived, n.handleContactMessageReceived)
	n.dispatcher.Subscribe(events.EventAppointmentStatusChanged, n.handleStatusChanged)
	n.dispatcher.Subscribe(events.EventDonorStatusChanged, n.handleStatusChanged)
	n.dispatcher.Subscribe(events.EventContactStatusChanged, n.handleStatusChanged)
}

func (n *NotificationService) handleAppointmentRequested(ctx context.Context, event events.Event) error {
	n.invoke(ctx, notification.RouteAppointment, map[string]any{"appointment": event.Payload}, event)
	return nil
}

func (n *NotificationService) handleDonorRegistered(ctx context.Context, event events.Event) error {
	n.invoke(ctx, notification.RouteDonor, map[string]any{"donor": event.Payload}, event)
	return nil
}

func (n *NotificationService) handleContactMessageReceived(ctx context.Context, event events.Event) error {
	n.invoke(ctx, notification.RouteContact, map[string]any{"message": event.Payload}, event)
	return nil
}

// Status changes are logged for the audit trail but trigger no email.
func (n *NotificationService) handleStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("status changed",
		zap.String("event_type", string(event.Type)),
		zap.String("record_id", event.RecordID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) invoke(ctx context.Context, route string, payload map[string]any, event events.Event) {
	if n.invoker == nil {
		return
	}
	if err := n.invoker.Invoke(ctx, route, payload); err != nil {
		n.logger.Error("notification failed",
			zap.String("route", route),
			zap.String("record_id", event.RecordID),
			zap.Error(err))
		return
	}
	n.logger.Info("notification sent",
		zap.String("route", route),
		zap.String("record_id", event.RecordID))
}
