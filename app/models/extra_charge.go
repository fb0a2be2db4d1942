package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeScope is the explicit form of an extra charge's reach. The stored
// encoding uses nullable student/class columns; Scope() converts that into
// a tagged value so callers never reason about null combinations.
type ChargeScope struct {
	Kind      ChargeScopeKind `json:"kind"`
	StudentID string          `json:"student_id,omitempty"`
	ClassID   string          `json:"class_id,omitempty"`
}

// ExtraCharge is an additional amount tied to a quarter and scoped to one
// student, one class, or the whole school. The mandatory flag is stored but
// not yet enforced during balance computation.
type ExtraCharge struct {
	ID        string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	QuarterID string          `json:"quarter_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID *string         `json:"student_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	ClassID   *string         `json:"class_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	Title     string          `json:"title" gorm:"not null" validate:"required"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:numeric;not null"`
	Mandatory bool            `json:"mandatory" gorm:"default:true"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty" gorm:"index"`

	Quarter *Quarter `json:"quarter,omitempty" gorm:"foreignKey:QuarterID;references:ID"`
}

// Scope resolves the nullable student/class columns into a tagged scope.
// A charge with a student id is individual regardless of its class column.
func (ec *ExtraCharge) Scope() ChargeScope {
	if ec.StudentID != nil && *ec.StudentID != "" {
		return ChargeScope{Kind: ScopeIndividual, StudentID: *ec.StudentID}
	}
	if ec.ClassID != nil && *ec.ClassID != "" {
		return ChargeScope{Kind: ScopeClassWide, ClassID: *ec.ClassID}
	}
	return ChargeScope{Kind: ScopeSchoolWide}
}
