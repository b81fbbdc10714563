package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fourpaws/backend/internal/model"
	"github.com/fourpaws/backend/internal/repository"
	"github.com/fourpaws/backend/pkg/auth"
)

// ---------------------------------------------------------------------------
// mockUserRepository — in-memory stub shared by auth and user service tests
// ---------------------------------------------------------------------------

type mockUserRepository struct {
	createFunc      func(ctx context.Context, user *model.User) error
	findByIDFunc    func(ctx context.Context, id string) (*model.User, error)
	findByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	listFunc        func(ctx context.Context) ([]*model.User, error)
	updateFunc      func(ctx context.Context, id string, patch model.UserPatch) (*model.User, error)
	deleteFunc      func(ctx context.Context, id string) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) List(ctx context.Context) ([]*model.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, id string, patch model.UserPatch) (*model.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

var testTokenSecret = auth.SecretBytes("auth-service-test-secret")

// ---------------------------------------------------------------------------
// Signup tests
// ---------------------------------------------------------------------------

func TestAuthService_Signup_MissingFields(t *testing.T) {
	lookups := 0
	creates := 0
	mock := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			lookups++
			return nil, repository.ErrNotFound
		},
		createFunc: func(ctx context.Context, user *model.User) error {
			creates++
			return nil
		},
	}
	svc := NewAuthService(mock, testTokenSecret)

	inputs := []SignupInput{
		{},
		{FirstName: "A", LastName: "B", Email: "a@b.com"},
		{FirstName: "A", LastName: "B", Password: "pw"},
		{FirstName: "A", Email: "a@b.com", Password: "pw"},
		{LastName: "B", Email: "a@b.com", Password: "pw"},
	}
	for _, in := range inputs {
		err := svc.Signup(context.Background(), in)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("Signup(%+v): expected ValidationError, got %v", in, err)
		}
	}
	if lookups != 0 || creates != 0 {
		t.Errorf("validation failure touched the repository: %d lookups, %d creates", lookups, creates)
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	creates := 0
	mock := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "u1", Email: email}, nil
		},
		createFunc: func(ctx context.Context, user *model.User) error {
			creates++
			return nil
		},
	}
	svc := NewAuthService(mock, testTokenSecret)

	err := svc.Signup(context.Background(), SignupInput{
		FirstName: "A", LastName: "B", Email: "a@b.com", Password: "pw",
	})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if creates != 0 {
		t.Errorf("duplicate signup wrote %d records, want 0", creates)
	}
}

func TestAuthService_Signup_HashesPassword(t *testing.T) {
	var saved *model.User
	mock := &mockUserRepository{
		createFunc: func(ctx context.Context, user *model.User) error {
			saved = user
			return nil
		},
	}
	svc := NewAuthService(mock, testTokenSecret)

	if err := svc.Signup(context.Background(), SignupInput{
		FirstName: "A", LastName: "B", Email: "a@b.com", Password: "pw",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatal("expected Create to be called")
	}
	if saved.Password == "pw" {
		t.Fatal("plaintext password reached the repository")
	}
	if !auth.CheckPassword("pw", saved.Password) {
		t.Error("stored hash does not verify against the plaintext")
	}
}

func TestAuthService_Signup_RaceOnUniqueIndex(t *testing.T) {
	mock := &mockUserRepository{
		createFunc: func(ctx context.Context, user *model.User) error {
			return repository.ErrDuplicate
		},
	}
	svc := NewAuthService(mock, testTokenSecret)

	err := svc.Signup(context.Background(), SignupInput{
		FirstName: "A", LastName: "B", Email: "a@b.com", Password: "pw",
	})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func loginTestUser(t *testing.T, password string) *model.User {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return &model.User{ID: "u1", Email: "a@b.com", Password: hashed}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testTokenSecret)

	token, err := svc.Login(context.Background(), "nobody@b.com", "pw")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if token != "" {
		t.Error("token issued for unknown email")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	user := loginTestUser(t, "right")
	mock := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return user, nil
		},
	}
	svc := NewAuthService(mock, testTokenSecret)

	token, err := svc.Login(context.Background(), "a@b.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if token != "" {
		t.Error("token issued for wrong password")
	}
}

func TestAuthService_Login_SameErrorForBothFailures(t *testing.T) {
	user := loginTestUser(t, "right")
	withUser := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return user, nil
		},
	}

	_, unknownErr := NewAuthService(&mockUserRepository{}, testTokenSecret).
		Login(context.Background(), "nobody@b.com", "pw")
	_, wrongErr := NewAuthService(withUser, testTokenSecret).
		Login(context.Background(), "a@b.com", "wrong")

	if unknownErr == nil || wrongErr == nil || unknownErr.Error() != wrongErr.Error() {
		t.Errorf("login failures are distinguishable: %v vs %v", unknownErr, wrongErr)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	user := loginTestUser(t, "pw")
	mock := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return user, nil
		},
	}
	svc := NewAuthService(mock, testTokenSecret)

	token, err := svc.Login(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	subject, err := auth.VerifyToken(token, testTokenSecret)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if subject != "u1" {
		t.Errorf("token bound to %q, want u1", subject)
	}
}
