package service

import "context"

// SignupInput carries the fields of a signup request. All four are required.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthService defines signup and login business logic.
type AuthService interface {
	// Signup validates the input, rejects duplicate emails and persists a
	// new user with a hashed password. The plaintext password is never
	// stored or logged.
	Signup(ctx context.Context, in SignupInput) error

	// Login verifies the credentials and returns a signed token bound to
	// the user's identity, expiring 10 hours after issuance.
	Login(ctx context.Context, email, password string) (string, error)
}
