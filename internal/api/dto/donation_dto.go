package dto

import (
	"time"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// RegisterDonorRequest payload. Age and weight arrive as strings, mirroring
// the site's text inputs; the workflow parses them.
type RegisterDonorRequest struct {
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Age               string `json:"age"`
	BloodGroup        string `json:"blood_group"`
	Weight            string `json:"weight"`
	LastDonationDate  string `json:"last_donation_date"`
	MedicalConditions string `json:"medical_conditions"`
}

// DonorResponse response.
type DonorResponse struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Phone             string             `json:"phone"`
	Email             string             `json:"email,omitempty"`
	Age               int                `json:"age"`
	BloodGroup        string             `json:"blood_group"`
	Weight            float64            `json:"weight"`
	LastDonationDate  string             `json:"last_donation_date,omitempty"`
	MedicalConditions string             `json:"medical_conditions,omitempty"`
	Status            domain.DonorStatus `json:"status"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
