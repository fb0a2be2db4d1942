package feecalc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

type fakeStore struct {
	student       *models.Student
	studentErr    error
	quarters      []models.Quarter
	quartersErr   error
	structures    []models.FeeStructure
	structuresErr error
	charges       []models.ExtraCharge
	chargesErr    error
	txns          []models.Transaction
	txnsErr       error
}

func (f *fakeStore) StudentByID(_ context.Context, id string) (*models.Student, error) {
	if f.studentErr != nil {
		return nil, f.studentErr
	}
	if f.student == nil || f.student.ID != id {
		return nil, ErrStudentNotFound
	}
	return f.student, nil
}

func (f *fakeStore) ActiveQuarters(context.Context) ([]models.Quarter, error) {
	return f.quarters, f.quartersErr
}

func (f *fakeStore) AllFeeStructures(context.Context) ([]models.FeeStructure, error) {
	return f.structures, f.structuresErr
}

func (f *fakeStore) AllExtraCharges(context.Context) ([]models.ExtraCharge, error) {
	return f.charges, f.chargesErr
}

func (f *fakeStore) TransactionsByStudent(context.Context, string) ([]models.Transaction, error) {
	return f.txns, f.txnsErr
}

type recordingObserver struct {
	errs    []error
	metrics map[string]float64
}

func (r *recordingObserver) CaptureError(err error) { r.errs = append(r.errs, err) }
func (r *recordingObserver) RecordMetric(name string, v float64) {
	if r.metrics == nil {
		r.metrics = map[string]float64{}
	}
	r.metrics[name] = v
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func q1FlatHundred() models.Quarter {
	return models.Quarter{
		ID:           "q1",
		AcademicYear: "2024-25",
		Name:         "Q1",
		StartDate:    models.CustomDate{Time: date(2024, 4, 1)},
		EndDate:      models.CustomDate{Time: date(2024, 6, 30)},
		DueDate:      models.CustomDate{Time: date(2024, 7, 10)},
		LateFee: &models.LateFeePolicy{
			Type:   models.LateFeeFlat,
			Amount: decimal.NewFromInt(100),
		},
		IsActive: true,
	}
}

func studentS() *models.Student {
	return &models.Student{
		ID:              "stu-s",
		AdmissionNumber: "ADM-1001",
		FirstName:       "Asha",
		LastName:        "Verma",
		ClassID:         "class-c",
		IsActive:        true,
	}
}

func baseStore() *fakeStore {
	return &fakeStore{
		student:  studentS(),
		quarters: []models.Quarter{q1FlatHundred()},
		structures: []models.FeeStructure{
			structure("fs-1", "class-c", "q1", 5000, date(2024, 3, 1)),
		},
	}
}

func completedTxn(id string, amount int64, paid time.Time) models.Transaction {
	return models.Transaction{
		ID:          id,
		StudentID:   "stu-s",
		QuarterID:   "q1",
		AmountPaid:  decimal.NewFromInt(amount),
		Status:      models.TxnCompleted,
		PaymentDate: paid,
	}
}

func compute(t *testing.T, store *fakeStore, asOf time.Time) *StudentFeeDetails {
	t.Helper()
	engine := NewEngine(store, nil)
	details, err := engine.ComputeStudentFeeDetailsAsOf(context.Background(), "stu-s", asOf)
	require.NoError(t, err)
	require.Len(t, details.Quarters, len(store.quarters))
	return details
}

// Unpaid quarter five days past due: the flat late fee lands on top of the
// base fee and the quarter is overdue.
func TestComputeUnpaidOverdueQuarter(t *testing.T) {
	details := compute(t, baseStore(), date(2024, 7, 15))

	qb := details.Quarters[0]
	assert.True(t, qb.BaseFee.Equal(decimal.NewFromInt(5000)))
	assert.True(t, qb.ExtraCharges.IsZero())
	assert.True(t, qb.LateFee.Equal(decimal.NewFromInt(100)))
	assert.True(t, qb.TotalDue.Equal(decimal.NewFromInt(5100)))
	assert.True(t, qb.AmountPaid.IsZero())
	assert.True(t, qb.Balance.Equal(decimal.NewFromInt(5100)))
	assert.True(t, qb.IsOverdue)
	assert.True(t, IsDefaulter(qb))
	assert.True(t, details.TotalBalance.Equal(decimal.NewFromInt(5100)))
}

// Fully settled after the due date: no late fee, zero balance, not
// overdue even though now > due date.
func TestComputePaidQuarterNotOverdue(t *testing.T) {
	store := baseStore()
	store.txns = []models.Transaction{completedTxn("t1", 5100, date(2024, 7, 12))}

	details := compute(t, store, date(2024, 7, 15))

	qb := details.Quarters[0]
	assert.True(t, qb.LateFee.IsZero(), "fully paid quarter accrues no late fee")
	assert.True(t, qb.AmountPaid.Equal(decimal.NewFromInt(5100)))
	assert.True(t, qb.Balance.IsZero())
	assert.False(t, qb.IsOverdue)
	assert.False(t, IsDefaulter(qb))
}

// Flat concession reduces the total due; a payment of the reduced amount
// settles the quarter.
func TestComputeFlatConcession(t *testing.T) {
	store := baseStore()
	store.student.ConcessionAmount = decimal.NewFromInt(500)
	store.txns = []models.Transaction{completedTxn("t1", 4500, date(2024, 7, 5))}

	details := compute(t, store, date(2024, 7, 8))

	qb := details.Quarters[0]
	assert.True(t, qb.Concession.Equal(decimal.NewFromInt(500)))
	assert.True(t, qb.TotalDue.Equal(decimal.NewFromInt(4500)))
	assert.True(t, qb.Balance.IsZero())
	assert.False(t, qb.IsOverdue)
}

func TestComputePercentageConcessionCombines(t *testing.T) {
	store := baseStore()
	store.student.ConcessionAmount = decimal.NewFromInt(200)
	store.student.ConcessionPercent = decimal.NewFromInt(10)

	details := compute(t, store, date(2024, 7, 1))

	// 200 flat + 10% of 5000 = 700 off.
	qb := details.Quarters[0]
	assert.True(t, qb.Concession.Equal(decimal.NewFromInt(700)), "got %s", qb.Concession)
	assert.True(t, qb.TotalDue.Equal(decimal.NewFromInt(4300)))
}

// Class-wide and school-wide extra charges stack on the base fee for a
// student with no individual charge.
func TestComputeExtraChargesInGrossDue(t *testing.T) {
	store := baseStore()
	store.charges = []models.ExtraCharge{
		charge("q1", nil, strPtr("class-c"), 300), // Sports Fee
		charge("q1", nil, nil, 50),                // Annual Day
	}

	details := compute(t, store, date(2024, 7, 1))

	qb := details.Quarters[0]
	assert.True(t, qb.ExtraCharges.Equal(decimal.NewFromInt(350)))
	assert.True(t, qb.TotalDue.Equal(decimal.NewFromInt(5350)))
}

// Refund restores the pre-payment balance: the original flips to refunded
// (amount retained) and the negative refund transaction nets it out.
func TestComputeRefundRestoresBalance(t *testing.T) {
	store := baseStore()
	orig := completedTxn("t1", 5000, date(2024, 7, 5))
	orig.Status = models.TxnRefunded
	refund := completedTxn("t2", -5000, date(2024, 7, 20))
	refund.RefundOf = strPtr("t1")
	store.txns = []models.Transaction{orig, refund}

	details := compute(t, store, date(2024, 7, 20).Add(12*time.Hour))

	qb := details.Quarters[0]
	assert.True(t, qb.AmountPaid.IsZero(), "payment and refund cancel, got %s", qb.AmountPaid)
	assert.True(t, qb.LateFee.Equal(decimal.NewFromInt(100)))
	assert.True(t, qb.Balance.Equal(decimal.NewFromInt(5100)), "balance as if no payment occurred")
	assert.True(t, qb.IsOverdue)
}

// Balance never goes negative, whatever gets thrown at the engine.
func TestComputeBalanceNeverNegative(t *testing.T) {
	store := baseStore()
	store.student.ConcessionAmount = decimal.NewFromInt(9000) // exceeds gross due
	store.txns = []models.Transaction{completedTxn("t1", 7000, date(2024, 7, 1))}

	details := compute(t, store, date(2024, 8, 1))
	for _, qb := range details.Quarters {
		assert.False(t, qb.Balance.IsNegative(), "quarter %s balance %s", qb.QuarterID, qb.Balance)
	}
}

// A quarter with no fee structure contributes a zero base fee rather than
// an error; extra charges still apply.
func TestComputeMissingFeeStructure(t *testing.T) {
	store := baseStore()
	store.structures = nil
	store.charges = []models.ExtraCharge{charge("q1", nil, nil, 50)}

	details := compute(t, store, date(2024, 7, 1))

	qb := details.Quarters[0]
	assert.True(t, qb.BaseFee.IsZero())
	assert.True(t, qb.TotalDue.Equal(decimal.NewFromInt(50)))
}

// Every active quarter is evaluated, including ones the student has no
// transactions for.
func TestComputeCoversAllActiveQuarters(t *testing.T) {
	store := baseStore()
	q2 := q1FlatHundred()
	q2.ID = "q2"
	q2.Name = "Q2"
	q2.DueDate = models.CustomDate{Time: date(2024, 10, 10)}
	store.quarters = append(store.quarters, q2)
	store.structures = append(store.structures,
		structure("fs-2", "class-c", "q2", 5200, date(2024, 3, 1)))
	store.txns = []models.Transaction{completedTxn("t1", 5000, date(2024, 7, 5))}

	details := compute(t, store, date(2024, 7, 8))

	require.Len(t, details.Quarters, 2)
	assert.True(t, details.Quarters[1].BaseFee.Equal(decimal.NewFromInt(5200)))
	assert.True(t, details.TotalDue.Equal(decimal.NewFromInt(10200)))
	assert.True(t, details.TotalBalance.Equal(decimal.NewFromInt(5200)))
}

// Two computations over unchanged data produce identical results.
func TestComputeIdempotent(t *testing.T) {
	store := baseStore()
	store.charges = []models.ExtraCharge{charge("q1", nil, strPtr("class-c"), 300)}
	store.txns = []models.Transaction{completedTxn("t1", 2000, date(2024, 7, 5))}

	engine := NewEngine(store, nil)
	asOf := date(2024, 7, 15)

	first, err := engine.ComputeStudentFeeDetailsAsOf(context.Background(), "stu-s", asOf)
	require.NoError(t, err)
	second, err := engine.ComputeStudentFeeDetailsAsOf(context.Background(), "stu-s", asOf)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestComputeStudentNotFound(t *testing.T) {
	engine := NewEngine(&fakeStore{}, nil)
	_, err := engine.ComputeStudentFeeDetails(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

// A failing collaborator load aborts the whole computation instead of
// substituting empty data, and the error reaches the observer.
func TestComputeAbortsOnLoadFailure(t *testing.T) {
	boom := errors.New("connection reset")
	cases := []struct {
		name string
		mut  func(*fakeStore)
	}{
		{"quarters", func(f *fakeStore) { f.quartersErr = boom }},
		{"structures", func(f *fakeStore) { f.structuresErr = boom }},
		{"charges", func(f *fakeStore) { f.chargesErr = boom }},
		{"transactions", func(f *fakeStore) { f.txnsErr = boom }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := baseStore()
			tc.mut(store)
			obs := &recordingObserver{}
			engine := NewEngine(store, obs)

			details, err := engine.ComputeStudentFeeDetails(context.Background(), "stu-s")
			assert.Nil(t, details)
			assert.ErrorIs(t, err, boom)
			require.Len(t, obs.errs, 1)
		})
	}
}

func TestComputeRecordsMetric(t *testing.T) {
	obs := &recordingObserver{}
	engine := NewEngine(baseStore(), obs)

	_, err := engine.ComputeStudentFeeDetails(context.Background(), "stu-s")
	require.NoError(t, err)
	assert.Equal(t, 1.0, obs.metrics["feecalc.quarters_computed"])
}

func TestHasOutstanding(t *testing.T) {
	details := compute(t, baseStore(), date(2024, 7, 15))
	assert.True(t, HasOutstanding(details))

	store := baseStore()
	store.txns = []models.Transaction{completedTxn("t1", 5100, date(2024, 7, 12))}
	details = compute(t, store, date(2024, 7, 15))
	assert.False(t, HasOutstanding(details))
}
