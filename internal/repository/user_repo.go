package repository

import (
	"context"
	"errors"
	"time"

	"PetStoreAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

// List returns all non-admin accounts for the back-office user screen
func (r *UserRepository) List(ctx context.Context) ([]model.AuthUser, error) {
	query := `SELECT userid, email, fullname, phone, role, created_at, deleted_at
			FROM users WHERE role <> 'admin' ORDER BY userid`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.AuthUser{}
	for rows.Next() {
		var u model.AuthUser
		if err := rows.Scan(&u.UserID, &u.Email, &u.FullName, &u.Phone, &u.Role, &u.CreatedAt, &u.DeletedAt); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, fullName, phone string) error {
	query := `UPDATE users SET fullname=$1, phone=$2 WHERE userid=$3 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, fullName, phone, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("user not found")
	}
	return nil
}

func (r *UserRepository) SetRole(ctx context.Context, userID int64, role string) error {
	query := `UPDATE users SET role=$1 WHERE userid=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, role, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("user not found")
	}
	return nil
}

// Ban soft-deletes a user (sets deleted_at)
func (r *UserRepository) Ban(ctx context.Context, userID int64) error {
	query := `UPDATE users SET deleted_at=$1 WHERE userid=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, time.Now(), userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("user not found or already banned")
	}
	return nil
}

func (r *UserRepository) Unban(ctx context.Context, userID int64) error {
	query := `UPDATE users SET deleted_at=NULL WHERE userid=$1 AND deleted_at IS NOT NULL`
	tag, err := r.DB.Exec(ctx, query, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("user not found or already unbanned")
	}
	return nil
}

// ListRoles returns assignable roles
func (r *UserRepository) ListRoles(ctx context.Context) ([]model.Role, error) {
	rows, err := r.DB.Query(ctx, `SELECT roleid, rolename FROM roles ORDER BY roleid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Role{}
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.RoleID, &role.RoleName); err != nil {
			return nil, err
		}
		list = append(list, role)
	}
	return list, nil
}
