package domain

import "time"

// GalleryImage is a site gallery entry. Content rows are written by admin
// tooling outside this service; we only read them.
type GalleryImage struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
}

// Testimonial is a patient testimonial shown on the home page.
type Testimonial struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Treatment  string    `json:"treatment"`
	Rating     int       `json:"rating"`
	Message    string    `json:"message"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
}
