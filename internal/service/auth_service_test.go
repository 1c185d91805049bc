package service

import (
	"errors"
	"testing"

	"github.com/lshigami/codementor/config"
	"github.com/lshigami/codementor/internal/dto"
	"github.com/lshigami/codementor/internal/model"
	"gorm.io/gorm"
)

// fakeUserRepo is an in-memory UserRepository for auth tests.
type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func testAuthService() (*fakeUserRepo, AuthService) {
	repo := newFakeUserRepo()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryMinutes = 30
	return repo, NewAuthService(repo, cfg)
}

func TestAuthService_RegisterLoginVerify(t *testing.T) {
	_, svc := testAuthService()

	reg, err := svc.Register(dto.RegisterRequest{
		Email:    "dev@example.com",
		Username: "dev",
		Password: "hunter22pass",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if reg.AccessToken == "" || reg.TokenType != "bearer" {
		t.Fatalf("unexpected auth response: %+v", reg)
	}

	login, err := svc.Login(dto.LoginRequest{Email: "dev@example.com", Password: "hunter22pass"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	user, err := svc.VerifyToken(login.AccessToken)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if user.Email != "dev@example.com" {
		t.Fatalf("verified wrong user: %s", user.Email)
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	_, svc := testAuthService()

	req := dto.RegisterRequest{Email: "dup@example.com", Username: "dup", Password: "password123"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if _, err := svc.Register(req); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	_, svc := testAuthService()

	if _, err := svc.Register(dto.RegisterRequest{Email: "a@b.com", Username: "a", Password: "correcthorse"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Login(dto.LoginRequest{Email: "a@b.com", Password: "wrongpass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(dto.LoginRequest{Email: "nobody@b.com", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_VerifyGarbageToken(t *testing.T) {
	_, svc := testAuthService()

	if _, err := svc.VerifyToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
