package model

import "bureau/internal/domain/entity"

// LookupOptionModel stores the select options for every lookup
// category in one table. Option ids are only unique within a
// category, hence the composite primary key.
type LookupOptionModel struct {
	Category string `gorm:"column:category;type:varchar(64);primary_key"`
	OptionID int64  `gorm:"column:option_id;primary_key"`
	Name     string `gorm:"column:name;type:varchar(100);not null"`
	Position int    `gorm:"column:position;not null;default:0"`
}

// TableName sets the table name for LookupOptionModel.
func (LookupOptionModel) TableName() string {
	return "lookup_options"
}

// ToDomain converts the persistence model to the domain entity.
func (m *LookupOptionModel) ToDomain() entity.LookupOption {
	return entity.LookupOption{
		ID:   m.OptionID,
		Name: m.Name,
	}
}
