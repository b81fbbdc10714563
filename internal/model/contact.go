package model

import "time"

// ContactMessage represents an inquiry submitted via the contact form.
// ReceivedAt is assigned by the server at creation and never changes;
// messages are write-once and are only ever read back as a list.
type ContactMessage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Subject    string    `json:"subject,omitempty"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}
