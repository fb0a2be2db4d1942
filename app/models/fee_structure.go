package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeStructure is the line-item fee composition for a (class, quarter)
// pair. TotalFee must equal the sum of the components; CreateFeeStructure
// and UpdateFeeStructure recompute it server-side.
type FeeStructure struct {
	ID             string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ClassID        string          `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	QuarterID      string          `json:"quarter_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TuitionFee     decimal.Decimal `json:"tuition_fee" gorm:"type:numeric;default:0"`
	TransportFee   decimal.Decimal `json:"transport_fee" gorm:"type:numeric;default:0"`
	ActivityFee    decimal.Decimal `json:"activity_fee" gorm:"type:numeric;default:0"`
	ExaminationFee decimal.Decimal `json:"examination_fee" gorm:"type:numeric;default:0"`
	OtherFee       decimal.Decimal `json:"other_fee" gorm:"type:numeric;default:0"`
	TotalFee       decimal.Decimal `json:"total_fee" gorm:"type:numeric;not null"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt      *time.Time      `json:"deleted_at,omitempty" gorm:"index"`

	Class   *Class   `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	Quarter *Quarter `json:"quarter,omitempty" gorm:"foreignKey:QuarterID;references:ID"`
}

// ComponentTotal sums the individual fee components.
func (fs *FeeStructure) ComponentTotal() decimal.Decimal {
	return fs.TuitionFee.
		Add(fs.TransportFee).
		Add(fs.ActivityFee).
		Add(fs.ExaminationFee).
		Add(fs.OtherFee)
}
