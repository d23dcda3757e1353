package domain

import "time"

// ContactStatus enumerates lifecycle states for contact messages.
type ContactStatus string

const (
	ContactStatusUnread  ContactStatus = "unread"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

// ValidContactStatus reports whether s belongs to the contact status domain.
func ValidContactStatus(s ContactStatus) bool {
	switch s {
	case ContactStatusUnread, ContactStatusRead, ContactStatusReplied:
		return true
	}
	return false
}

// ContactMessage is a message sent through the contact form.
// The contact_messages table carries no updated_at column.
type ContactMessage struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
