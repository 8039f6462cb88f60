package services

import (
	"context"
	"errors"

	"PetStoreAPI/internal/model"
	"PetStoreAPI/internal/repository"
)

type UserService struct {
	Repo     *repository.UserRepository
	AuthRepo *repository.AuthRepository
}

func NewUserService(r *repository.UserRepository, ar *repository.AuthRepository) *UserService {
	return &UserService{Repo: r, AuthRepo: ar}
}

// GetProfile returns the public account view
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*model.Profile, error) {
	u, err := s.AuthRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.Profile{
		UserID:   u.UserID,
		Email:    u.Email,
		FullName: u.FullName,
		Phone:    u.Phone,
		Role:     u.Role,
	}, nil
}

// UpdateProfile lets a user edit their own name and phone
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, fullName, phone string) error {
	if fullName == "" {
		return errors.New("full name is required")
	}
	return s.Repo.UpdateProfile(ctx, userID, fullName, phone)
}

// ---- admin ----

func (s *UserService) List(ctx context.Context) ([]model.AuthUser, error) {
	return s.Repo.List(ctx)
}

func (s *UserService) ListRoles(ctx context.Context) ([]model.Role, error) {
	return s.Repo.ListRoles(ctx)
}

// SetRole assigns a role; admins cannot demote themselves here
func (s *UserService) SetRole(ctx context.Context, actorID, userID int64, role string) error {
	if role == "" {
		return errors.New("role is required")
	}
	if actorID == userID {
		return errors.New("cannot change your own role")
	}
	return s.Repo.SetRole(ctx, userID, role)
}

func (s *UserService) Ban(ctx context.Context, actorID, userID int64) error {
	if actorID == userID {
		return errors.New("cannot ban yourself")
	}
	return s.Repo.Ban(ctx, userID)
}

func (s *UserService) Unban(ctx context.Context, userID int64) error {
	return s.Repo.Unban(ctx, userID)
}
