package dto

import (
	"time"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// CreateAppointmentRequest payload.
type CreateAppointmentRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Service       string `json:"service"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Message       string `json:"message"`
}

// UpdateStatusRequest payload shared by the three status-update endpoints.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AppointmentResponse response.
type AppointmentResponse struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Phone         string                   `json:"phone"`
	Email         string                   `json:"email,omitempty"`
	Service       string                   `json:"service"`
	PreferredDate string                   `json:"preferred_date"`
	PreferredTime string                   `json:"preferred_time"`
	Message       string                   `json:"message,omitempty"`
	Status        domain.AppointmentStatus `json:"status"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}
