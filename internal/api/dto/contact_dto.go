package dto

import (
	"time"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// SendMessageRequest payload.
type SendMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactMessageResponse response.
type ContactMessageResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Phone     string               `json:"phone,omitempty"`
	Subject   string               `json:"subject"`
	Message   string               `json:"message"`
	Status    domain.ContactStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}
