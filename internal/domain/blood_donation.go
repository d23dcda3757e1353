package domain

import "time"

// DonorStatus enumerates lifecycle states for blood donor registrations.
type DonorStatus string

const (
	DonorStatusRegistered DonorStatus = "registered"
	DonorStatusApproved   DonorStatus = "approved"
	DonorStatusRejected   DonorStatus = "rejected"
)

// ValidDonorStatus reports whether s belongs to the donor status domain.
func ValidDonorStatus(s DonorStatus) bool {
	switch s {
	case DonorStatusRegistered, DonorStatusApproved, DonorStatusRejected:
		return true
	}
	return false
}

// BloodDonation is a donor registration captured during a donation camp drive.
type BloodDonation struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Phone             string      `json:"phone"`
	Email             string      `json:"email,omitempty"`
	Age               int         `json:"age"`
	BloodGroup        string      `json:"blood_group"`
	Weight            float64     `json:"weight"`
	LastDonationDate  string      `json:"last_donation_date,omitempty"`
	MedicalConditions string      `json:"medical_conditions,omitempty"`
	Status            DonorStatus `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
