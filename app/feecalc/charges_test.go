package feecalc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

func charge(quarterID string, studentID, classID *string, amount int64) models.ExtraCharge {
	return models.ExtraCharge{
		QuarterID: quarterID,
		StudentID: studentID,
		ClassID:   classID,
		Amount:    decimal.NewFromInt(amount),
	}
}

func strPtr(s string) *string { return &s }

func TestSumExtraChargesScopes(t *testing.T) {
	all := []models.ExtraCharge{
		charge("q1", strPtr("stu-1"), nil, 200),     // individual
		charge("q1", nil, strPtr("class-a"), 300),   // class-wide
		charge("q1", nil, nil, 50),                  // school-wide
		charge("q1", strPtr("stu-2"), nil, 999),     // someone else
		charge("q1", nil, strPtr("class-b"), 999),   // other class
	}

	got := SumExtraCharges("stu-1", "class-a", "q1", all)
	assert.True(t, got.Equal(decimal.NewFromInt(550)), "got %s", got)

	// A student outside class-a still picks up the school-wide charge.
	got = SumExtraCharges("stu-3", "class-c", "q1", all)
	assert.True(t, got.Equal(decimal.NewFromInt(50)), "got %s", got)
}

// An extra charge scoped to one quarter never contributes to another
// quarter, even for a matching student or class.
func TestSumExtraChargesQuarterIndependence(t *testing.T) {
	all := []models.ExtraCharge{
		charge("q1", strPtr("stu-1"), nil, 200),
		charge("q1", nil, strPtr("class-a"), 300),
		charge("q1", nil, nil, 50),
	}

	got := SumExtraCharges("stu-1", "class-a", "q2", all)
	assert.True(t, got.IsZero(), "charges for q1 must not leak into q2, got %s", got)
}

func TestSumExtraChargesEmpty(t *testing.T) {
	assert.True(t, SumExtraCharges("stu-1", "class-a", "q1", nil).IsZero())
}

// E2E scenario: class-wide sports fee plus school-wide annual day charge.
func TestSumExtraChargesClassPlusSchoolWide(t *testing.T) {
	all := []models.ExtraCharge{
		charge("q1", nil, strPtr("class-c"), 300), // Sports Fee
		charge("q1", nil, nil, 50),                // Annual Day
	}
	got := SumExtraCharges("stu-s", "class-c", "q1", all)
	assert.True(t, got.Equal(decimal.NewFromInt(350)), "got %s", got)
}

func TestChargeScopeTagging(t *testing.T) {
	ind := charge("q1", strPtr("stu-1"), strPtr("class-a"), 10)
	assert.Equal(t, models.ScopeIndividual, ind.Scope().Kind, "student id wins over class id")

	cls := charge("q1", nil, strPtr("class-a"), 10)
	assert.Equal(t, models.ScopeClassWide, cls.Scope().Kind)

	sch := charge("q1", nil, nil, 10)
	assert.Equal(t, models.ScopeSchoolWide, sch.Scope().Kind)

	// Empty strings behave like nulls.
	empty := charge("q1", strPtr(""), strPtr(""), 10)
	assert.Equal(t, models.ScopeSchoolWide, empty.Scope().Kind)
}
