package service

import (
	"context"

	"github.com/fourpaws/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and stores a new contact message. The msg.ID and
	// receipt timestamp are populated by the implementation.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns all stored contact messages.
	List(ctx context.Context) ([]*model.ContactMessage, error)
}
