package entity

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a back-office staff account. AdminUserID links a regular
// employee to the admin whose team they belong to; it is empty for admins.
type Employee struct {
	ID           uuid.UUID
	UserID       string
	FullName     string
	Email        string
	PasswordHash string
	Role         Role
	AdminUserID  string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Ref returns the denormalized reference embedded in customer records.
func (e *Employee) Ref() *EmployeeRef {
	return &EmployeeRef{UserID: e.UserID, FullName: e.FullName}
}
