package whatsapp

import (
	"net/url"
	"strings"
	"testing"
)

func TestLink(t *testing.T) {
	link := Link("+919876543210", "hello there")
	if !strings.HasPrefix(link, "https://wa.me/919876543210?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if got := parsed.Query().Get("text"); got != "hello there" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestBookingLink_Placeholders(t *testing.T) {
	link := BookingLink("919876543210", "RM Physiotherapy Center", BookingDraft{Name: "Asha"})

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	text := parsed.Query().Get("text")

	if !strings.Contains(text, "Name: Asha") {
		t.Fatalf("expected filled name, got %q", text)
	}
	if !strings.Contains(text, "Service: [Service]") {
		t.Fatalf("expected service placeholder, got %q", text)
	}
	if !strings.Contains(text, "RM Physiotherapy Center") {
		t.Fatalf("expected clinic name, got %q", text)
	}
}
