package feecalc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

var dueDate = time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)

func day(d int) time.Time { return dueDate.AddDate(0, 0, d) }

func TestComputeLateFeeFlat(t *testing.T) {
	policy := &models.LateFeePolicy{
		Type:   models.LateFeeFlat,
		Amount: decimal.NewFromInt(100),
	}
	gross := decimal.NewFromInt(5000)

	cases := []struct {
		name string
		asOf time.Time
		want int64
	}{
		{"on due date", day(0), 0},
		{"one day late", day(1), 100},
		{"thirty days late, no daily flag", day(30), 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeLateFee(policy, dueDate, gross, tc.asOf)
			assert.True(t, got.Equal(decimal.NewFromInt(tc.want)), "got %s want %d", got, tc.want)
		})
	}
}

func TestComputeLateFeeGracePeriod(t *testing.T) {
	policy := &models.LateFeePolicy{
		Type:      models.LateFeeFlat,
		Amount:    decimal.NewFromInt(100),
		GraceDays: 5,
	}
	gross := decimal.NewFromInt(5000)

	assert.True(t, ComputeLateFee(policy, dueDate, gross, day(5)).IsZero(), "inside grace window")
	assert.True(t, ComputeLateFee(policy, dueDate, gross, day(6)).Equal(decimal.NewFromInt(100)))
}

func TestComputeLateFeeFlatDaily(t *testing.T) {
	policy := &models.LateFeePolicy{
		Type:       models.LateFeeFlat,
		Amount:     decimal.NewFromInt(20),
		ApplyDaily: true,
	}
	gross := decimal.NewFromInt(5000)

	got := ComputeLateFee(policy, dueDate, gross, day(5))
	assert.True(t, got.Equal(decimal.NewFromInt(100)), "5 days x 20, got %s", got)

	// Hours past the deadline still count as one whole day.
	got = ComputeLateFee(policy, dueDate, gross, dueDate.Add(6*time.Hour))
	assert.True(t, got.Equal(decimal.NewFromInt(20)), "minimum one day, got %s", got)
}

func TestComputeLateFeePercentage(t *testing.T) {
	policy := &models.LateFeePolicy{
		Type:       models.LateFeePercentage,
		Percentage: decimal.NewFromInt(2),
	}

	got := ComputeLateFee(policy, dueDate, decimal.NewFromInt(5000), day(3))
	assert.True(t, got.Equal(decimal.NewFromInt(100)), "2%% of 5000, got %s", got)

	// Zero gross due means zero percentage fee regardless of days late.
	got = ComputeLateFee(policy, dueDate, decimal.Zero, day(90))
	assert.True(t, got.IsZero())
}

// Percentage + daily policy grows strictly with each extra day until the
// cap kicks in.
func TestComputeLateFeePercentageDailyMonotonic(t *testing.T) {
	policy := &models.LateFeePolicy{
		Type:       models.LateFeePercentage,
		Percentage: decimal.NewFromInt(1),
		ApplyDaily: true,
		MaxLateFee: decimal.NewFromInt(500),
	}
	gross := decimal.NewFromInt(5000)

	prev := decimal.Zero
	for d := 1; d <= 10; d++ {
		got := ComputeLateFee(policy, dueDate, gross, day(d))
		assert.True(t, got.GreaterThan(prev), "day %d: %s should exceed %s", d, got, prev)
		prev = got
	}
	// 1% of 5000 = 50/day; capped at 500 from day 10 onward.
	assert.True(t, prev.Equal(decimal.NewFromInt(500)))
	assert.True(t, ComputeLateFee(policy, dueDate, gross, day(30)).Equal(decimal.NewFromInt(500)))
}

func TestComputeLateFeeNeverNegativeAndTotal(t *testing.T) {
	assert.True(t, ComputeLateFee(nil, dueDate, decimal.NewFromInt(5000), day(10)).IsZero(), "nil policy")

	neg := &models.LateFeePolicy{Type: models.LateFeeFlat, Amount: decimal.NewFromInt(-40)}
	assert.True(t, ComputeLateFee(neg, dueDate, decimal.NewFromInt(5000), day(10)).IsZero(), "never negative")

	// Unknown type falls back to the flat amount rather than panicking.
	odd := &models.LateFeePolicy{Type: "weird", Amount: decimal.NewFromInt(75)}
	assert.True(t, ComputeLateFee(odd, dueDate, decimal.NewFromInt(5000), day(10)).Equal(decimal.NewFromInt(75)))
}
