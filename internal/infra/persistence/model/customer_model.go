// Package model defines the GORM persistence models.
package model

import (
	"time"

	"bureau/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustomerModel holds the customer profile plus all lifecycle track
// columns. Track column names match the API field names one to one so
// partial updates can be written straight through.
type CustomerModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID   string    `gorm:"column:user_id;type:varchar(32);uniqueIndex;not null"`
	FullName string    `gorm:"column:full_name;type:varchar(100);not null"`
	Email    string    `gorm:"column:email;type:varchar(255)"`
	Phone    string    `gorm:"column:phone;type:varchar(32)"`

	AssignedEmployeeID *string        `gorm:"column:assigned_employee_id;type:varchar(32);index"`
	AssignedEmployee   *EmployeeModel `gorm:"foreignKey:AssignedEmployeeID;references:UserID"`

	Pinned bool `gorm:"column:pinned;not null;default:false"`
	Online bool `gorm:"column:online;not null;default:false"`

	// Payment track.
	PackageName          *int64           `gorm:"column:package_name"`
	PackageExpiry        *time.Time       `gorm:"column:package_expiry;type:date"`
	ProfileHighlighter   bool             `gorm:"column:profile_highlighter;not null;default:false"`
	AccountStatus        bool             `gorm:"column:account_status;not null;default:false"`
	ProfileVerified      bool             `gorm:"column:profile_verified;not null;default:false"`
	PaymentStatus        *int64           `gorm:"column:payment_status"`
	PaymentMethod        *int64           `gorm:"column:payment_method"`
	PaymentAmount        *decimal.Decimal `gorm:"column:payment_amount;type:numeric(12,2)"`
	PaymentDate          *time.Time       `gorm:"column:payment_date;type:date"`
	PaymentReceipt       string           `gorm:"column:payment_receipt;type:text"`
	PaymentAdminApproval *int64           `gorm:"column:payment_admin_approval"`
	BankName             string           `gorm:"column:bank_name;type:varchar(100)"`
	AccountHolderName    string           `gorm:"column:account_holder_name;type:varchar(100)"`

	// Agreement track.
	AgreementStatus        *int64 `gorm:"column:agreement_status"`
	AgreementFile          string `gorm:"column:agreement_file;type:text"`
	AdminAgreementApproval *int64 `gorm:"column:admin_agreement_approval"`

	// Settlement track.
	SettlementStatus        *int64           `gorm:"column:settlement_status"`
	SettlementBy            string           `gorm:"column:settlement_by;type:varchar(100)"`
	SettlementAmount        *decimal.Decimal `gorm:"column:settlement_amount;type:numeric(12,2)"`
	SettlementType          *int64           `gorm:"column:settlement_type"`
	SettlementDate          *time.Time       `gorm:"column:settlement_date;type:date"`
	SettlementReceipt       string           `gorm:"column:settlement_receipt;type:text"`
	SettlementAdminApproval *int64           `gorm:"column:settlement_admin_approval"`

	CreatedAt time.Time      `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null;default:now()"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName sets the table name for CustomerModel.
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to the domain entity.
func (m *CustomerModel) ToDomain() *entity.Customer {
	c := &entity.Customer{
		ID:       m.ID,
		UserID:   m.UserID,
		FullName: m.FullName,
		Email:    m.Email,
		Phone:    m.Phone,
		Pinned:   m.Pinned,
		Online:   m.Online,

		PackageName:          m.PackageName,
		PackageExpiry:        m.PackageExpiry,
		ProfileHighlighter:   m.ProfileHighlighter,
		AccountStatus:        m.AccountStatus,
		ProfileVerified:      m.ProfileVerified,
		PaymentStatus:        m.PaymentStatus,
		PaymentMethod:        m.PaymentMethod,
		PaymentAmount:        m.PaymentAmount,
		PaymentDate:          m.PaymentDate,
		PaymentReceipt:       m.PaymentReceipt,
		PaymentAdminApproval: m.PaymentAdminApproval,
		BankName:             m.BankName,
		AccountHolderName:    m.AccountHolderName,

		AgreementStatus:        m.AgreementStatus,
		AgreementFile:          m.AgreementFile,
		AdminAgreementApproval: m.AdminAgreementApproval,

		SettlementStatus:        m.SettlementStatus,
		SettlementBy:            m.SettlementBy,
		SettlementAmount:        m.SettlementAmount,
		SettlementType:          m.SettlementType,
		SettlementDate:          m.SettlementDate,
		SettlementReceipt:       m.SettlementReceipt,
		SettlementAdminApproval: m.SettlementAdminApproval,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.AssignedEmployee != nil {
		c.AssignedEmployee = &entity.EmployeeRef{
			UserID:   m.AssignedEmployee.UserID,
			FullName: m.AssignedEmployee.FullName,
		}
	} else if m.AssignedEmployeeID != nil {
		c.AssignedEmployee = &entity.EmployeeRef{UserID: *m.AssignedEmployeeID}
	}

	return c
}

// FromCustomerDomain converts the domain entity to the persistence model.
func FromCustomerDomain(c *entity.Customer) *CustomerModel {
	m := &CustomerModel{
		ID:       c.ID,
		UserID:   c.UserID,
		FullName: c.FullName,
		Email:    c.Email,
		Phone:    c.Phone,
		Pinned:   c.Pinned,
		Online:   c.Online,

		PackageName:          c.PackageName,
		PackageExpiry:        c.PackageExpiry,
		ProfileHighlighter:   c.ProfileHighlighter,
		AccountStatus:        c.AccountStatus,
		ProfileVerified:      c.ProfileVerified,
		PaymentStatus:        c.PaymentStatus,
		PaymentMethod:        c.PaymentMethod,
		PaymentAmount:        c.PaymentAmount,
		PaymentDate:          c.PaymentDate,
		PaymentReceipt:       c.PaymentReceipt,
		PaymentAdminApproval: c.PaymentAdminApproval,
		BankName:             c.BankName,
		AccountHolderName:    c.AccountHolderName,

		AgreementStatus:        c.AgreementStatus,
		AgreementFile:          c.AgreementFile,
		AdminAgreementApproval: c.AdminAgreementApproval,

		SettlementStatus:        c.SettlementStatus,
		SettlementBy:            c.SettlementBy,
		SettlementAmount:        c.SettlementAmount,
		SettlementType:          c.SettlementType,
		SettlementDate:          c.SettlementDate,
		SettlementReceipt:       c.SettlementReceipt,
		SettlementAdminApproval: c.SettlementAdminApproval,
	}
	if c.AssignedEmployee != nil {
		id := c.AssignedEmployee.UserID
		m.AssignedEmployeeID = &id
	}

	return m
}
