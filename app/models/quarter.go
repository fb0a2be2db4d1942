package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LateFeePolicy is the configurable overdue-fee rule attached to a quarter.
// Grace days extend the due date; ApplyDaily multiplies the base fee by the
// number of days past the grace window; MaxLateFee caps the result when set
// to a positive amount.
type LateFeePolicy struct {
	Type       LateFeeType     `json:"type" validate:"required,oneof=flat percentage"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
	GraceDays  int             `json:"grace_days"`
	ApplyDaily bool            `json:"apply_daily"`
	MaxLateFee decimal.Decimal `json:"max_late_fee"`
}

// Quarter represents an academic billing period. Balances are always
// computed per (student, quarter) pair.
type Quarter struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	AcademicYear string         `json:"academic_year" gorm:"not null;index" validate:"required"`
	Name         string         `json:"name" gorm:"not null" validate:"required"`
	StartDate    CustomDate     `json:"start_date" gorm:"not null;type:date" validate:"required"`
	EndDate      CustomDate     `json:"end_date" gorm:"not null;type:date" validate:"required"`
	DueDate      CustomDate     `json:"due_date" gorm:"not null;type:date" validate:"required"`
	LateFee      *LateFeePolicy `json:"late_fee,omitempty" gorm:"embedded;embeddedPrefix:late_fee_"`
	IsActive     bool           `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time     `json:"deleted_at,omitempty" gorm:"index"`
}

// IsCurrentByDate checks if the quarter is current based on today's date
func (q *Quarter) IsCurrentByDate() bool {
	now := time.Now()
	return now.After(q.StartDate.Time) && now.Before(q.EndDate.Time)
}
