// Package whatsapp builds wa.me deep links for the alternate booking path.
// There is no messaging protocol here; the site just opens a pre-filled chat
// with the clinic's number.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// BookingDraft carries whatever the visitor has typed so far. Empty fields
// render as bracketed placeholders, matching the site's booking message.
type BookingDraft struct {
	Name          string
	Service       string
	PreferredDate string
	PreferredTime string
}

// BookingLink returns a wa.me URL that opens a chat with the clinic,
// pre-filled with an appointment request message.
func BookingLink(number, clinicName string, draft BookingDraft) string {
	message := fmt.Sprintf(`Hi! I'd like to book an appointment at %s.

Name: %s
Service: %s
Preferred Date: %s
Preferred Time: %s

Please confirm my appointment. Thank you!`,
		clinicName,
		orPlaceholder(draft.Name, "[Name]"),
		orPlaceholder(draft.Service, "[Service]"),
		orPlaceholder(draft.PreferredDate, "[Date]"),
		orPlaceholder(draft.PreferredTime, "[Time]"),
	)
	return Link(number, message)
}

// Link returns a wa.me URL for an arbitrary pre-filled message.
func Link(number, text string) string {
	number = strings.TrimPrefix(strings.TrimSpace(number), "+")
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(text)
}

func orPlaceholder(val, placeholder string) string {
	if strings.TrimSpace(val) == "" {
		return placeholder
	}
	return val
}
