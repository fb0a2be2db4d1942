package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Class represents a cohort of students. QuarterlyFee is a flat fallback
// figure used only in coarse reporting estimates; per-student balances
// always come from the fee structure for the (class, quarter) pair.
type Class struct {
	ID           string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name         string          `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Code         string          `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	QuarterlyFee decimal.Decimal `json:"quarterly_fee" gorm:"type:numeric;default:0"`
	IsActive     bool            `json:"is_active" gorm:"default:true"`
	StudentCount int             `json:"student_count" gorm:"-"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time      `json:"deleted_at,omitempty" gorm:"index"`

	Students []*Student `json:"students,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}
