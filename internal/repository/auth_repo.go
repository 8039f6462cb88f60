package repository

import (
	"context"
	"errors"
	"time"

	"PetStoreAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthRepository struct {
	DB *pgxpool.Pool
}

func NewAuthRepository(db *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{DB: db}
}

// CreateUser inserts a new user and returns the created userid
func (r *AuthRepository) CreateUser(ctx context.Context, email, passwordhash, fullName, phone, role string) (int64, error) {
	var id int64
	query := `INSERT INTO users (email, passwordhash, fullname, phone, role, created_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING userid`
	if err := r.DB.QueryRow(ctx, query, email, passwordhash, fullName, phone, role, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AuthRepository) GetByEmail(ctx context.Context, email string) (*model.AuthUser, error) {
	var u model.AuthUser
	query := `SELECT userid, email, passwordhash, fullname, phone, role, created_at, deleted_at
			FROM users
			WHERE email=$1`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone, &u.Role, &u.CreatedAt, &u.DeletedAt); err != nil {
		return nil, errors.New("user not found")
	}
	return &u, nil
}

func (r *AuthRepository) GetByID(ctx context.Context, id int64) (*model.AuthUser, error) {
	var u model.AuthUser
	query := `SELECT userid, email, fullname, phone, role, created_at, deleted_at FROM users WHERE userid=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&u.UserID, &u.Email, &u.FullName, &u.Phone, &u.Role, &u.CreatedAt, &u.DeletedAt); err != nil {
		return nil, errors.New("user not found")
	}
	return &u, nil
}

func (r *AuthRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
