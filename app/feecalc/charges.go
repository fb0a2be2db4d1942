package feecalc

import (
	"github.com/shopspring/decimal"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

// SumExtraCharges totals the extra charges that apply to a student for one
// quarter. Quarter and scope are independent filters: a charge contributes
// only when its quarter matches AND its scope covers the student, either
// individually, through the student's class, or school-wide.
func SumExtraCharges(studentID, classID, quarterID string, all []models.ExtraCharge) decimal.Decimal {
	total := decimal.Zero
	for i := range all {
		ec := &all[i]
		if ec.QuarterID != quarterID {
			continue
		}
		if !chargeApplies(ec, studentID, classID) {
			continue
		}
		total = total.Add(ec.Amount)
	}
	return total
}

func chargeApplies(ec *models.ExtraCharge, studentID, classID string) bool {
	scope := ec.Scope()
	switch scope.Kind {
	case models.ScopeIndividual:
		return scope.StudentID == studentID
	case models.ScopeClassWide:
		return scope.ClassID == classID
	case models.ScopeSchoolWide:
		return true
	}
	return false
}
