package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Student represents an enrolled student. Students are deactivated, never
// erased, so their transaction history stays intact.
type Student struct {
	ID                 string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	AdmissionNumber    string          `json:"admission_number" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName          string          `json:"first_name" gorm:"not null" validate:"required"`
	LastName           string          `json:"last_name" gorm:"not null" validate:"required"`
	ClassID            string          `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Section            *string         `json:"section,omitempty" gorm:"type:varchar(10)"`
	GuardianName       *string         `json:"guardian_name,omitempty"`
	GuardianPhone      *string         `json:"guardian_phone,omitempty" gorm:"type:varchar(20)"`
	GuardianEmail      *string         `json:"guardian_email,omitempty" validate:"omitempty,email"`
	ConcessionAmount   decimal.Decimal `json:"concession_amount" gorm:"type:numeric;default:0" validate:"omitempty"`
	ConcessionPercent  decimal.Decimal `json:"concession_percent" gorm:"type:numeric;default:0" validate:"omitempty"`
	IsActive           bool            `json:"is_active" gorm:"default:true;index"`
	CreatedAt          time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt          *time.Time      `json:"deleted_at,omitempty" gorm:"index"`

	Class *Class `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// HasConcession reports whether any concession applies to the student.
func (s *Student) HasConcession() bool {
	return s.ConcessionAmount.IsPositive() || s.ConcessionPercent.IsPositive()
}
