package feecalc

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
	"github.com/Kalpit0710/fee-manage-sub000/app/money"
)

// ComputeLateFee applies a quarter's late-fee policy as of a given date.
// The grace period extends the due date; past it, the number of whole days
// late (minimum 1) drives the daily multiplier when the policy enables it.
// Percentage fees are taken from the gross due, so a quarter with nothing
// due never accrues a percentage fee. A positive MaxLateFee caps the
// result. The function is total: a nil policy, a zero grossDue, or an
// inconsistent date ordering all produce a well-defined non-negative fee.
func ComputeLateFee(policy *models.LateFeePolicy, dueDate time.Time, grossDue decimal.Decimal, asOf time.Time) decimal.Decimal {
	if policy == nil {
		return decimal.Zero
	}

	deadline := dueDate.AddDate(0, 0, policy.GraceDays)
	if !asOf.After(deadline) {
		return decimal.Zero
	}

	days := wholeDaysLate(deadline, asOf)

	var base decimal.Decimal
	switch policy.Type {
	case models.LateFeePercentage:
		base = money.Percent(grossDue, policy.Percentage)
	default:
		base = policy.Amount
	}

	fee := base
	if policy.ApplyDaily {
		fee = base.Mul(decimal.NewFromInt(int64(days)))
	}

	if policy.MaxLateFee.IsPositive() {
		fee = money.MinOf(fee, policy.MaxLateFee)
	}
	return money.MaxZero(money.Round2(fee))
}

// wholeDaysLate counts whole days between the deadline and asOf, never
// less than 1 once the deadline has passed.
func wholeDaysLate(deadline, asOf time.Time) int {
	days := int(asOf.Sub(deadline).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}
