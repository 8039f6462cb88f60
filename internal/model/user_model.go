package model

import "time"

// AuthUser represents a row in the users table (credentials + role)
type AuthUser struct {
	UserID       int64      `json:"userid"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"fullname"`
	Phone        string     `json:"phone"`
	Role         string     `json:"role"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Profile is the public view of an account returned to the client
type Profile struct {
	UserID   int64  `json:"userid"`
	Email    string `json:"email"`
	FullName string `json:"fullname"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// Role represents an assignable role row (admin back-office)
type Role struct {
	RoleID   int64  `json:"roleid"`
	RoleName string `json:"rolename"`
}
