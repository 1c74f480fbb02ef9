package model

import (
	"time"

	"bureau/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeModel stores back-office accounts for both admins and
// employees. AdminUserID links an employee to the admin who owns the
// roster; it is empty for admin accounts themselves.
type EmployeeModel struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       string         `gorm:"column:user_id;type:varchar(32);uniqueIndex;not null"`
	FullName     string         `gorm:"column:full_name;type:varchar(100);not null"`
	Email        string         `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	PasswordHash string         `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         string         `gorm:"column:role;type:varchar(16);not null"`
	AdminUserID  string         `gorm:"column:admin_user_id;type:varchar(32);index"`
	Active       bool           `gorm:"column:active;not null;default:true"`
	CreatedAt    time.Time      `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;not null;default:now()"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName sets the table name for EmployeeModel.
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to the domain entity.
func (m *EmployeeModel) ToDomain() *entity.Employee {
	return &entity.Employee{
		ID:           m.ID,
		UserID:       m.UserID,
		FullName:     m.FullName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		AdminUserID:  m.AdminUserID,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromEmployeeDomain converts the domain entity to the persistence model.
func FromEmployeeDomain(e *entity.Employee) *EmployeeModel {
	return &EmployeeModel{
		ID:           e.ID,
		UserID:       e.UserID,
		FullName:     e.FullName,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Role:         string(e.Role),
		AdminUserID:  e.AdminUserID,
		Active:       e.Active,
	}
}
