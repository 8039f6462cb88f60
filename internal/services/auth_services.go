package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"PetStoreAPI/internal/model"
	"PetStoreAPI/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLen = 8

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type AuthService struct {
	Users *repository.AuthRepository
}

func NewAuthService(u *repository.AuthRepository) *AuthService {
	return &AuthService{Users: u}
}

// Register creates a shopper account with role "user"
func (s *AuthService) Register(ctx context.Context, email, password, fullName, phone string) (int64, error) {
	switch {
	case email == "":
		return 0, errors.New("email is required")
	case !emailRegex.MatchString(email):
		return 0, errors.New("invalid email format")
	case len(password) < MinPasswordLen:
		return 0, fmt.Errorf("password too short: must be at least %d characters", MinPasswordLen)
	case fullName == "":
		return 0, errors.New("full name is required")
	}

	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.Users.CreateUser(ctx, email, string(hash), fullName, phone, "user")
}

// Login verifies credentials and returns the account for token issuance.
// Lookup and password failures share one message on purpose.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.AuthUser, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}
	if u.DeletedAt != nil {
		return nil, errors.New("account is banned")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, errors.New("invalid email or password")
	}
	return u, nil
}
