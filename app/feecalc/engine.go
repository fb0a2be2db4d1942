// Package feecalc is the fee-balance computation and payment-ledger
// reconciliation core. Everything in it is a pure read over data loaded
// through the Store interface: balances are derived fresh on every call
// and never persisted, so they always agree with the transaction set at
// read time.
package feecalc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Kalpit0710/fee-manage-sub000/app/models"
	"github.com/Kalpit0710/fee-manage-sub000/app/money"
)

// ErrStudentNotFound is returned when the requested student does not
// exist or has been deactivated.
var ErrStudentNotFound = errors.New("student not found")

// Store loads the inputs of a balance computation. Implemented by the
// database package against Postgres and by fakes in tests.
type Store interface {
	StudentByID(ctx context.Context, id string) (*models.Student, error)
	ActiveQuarters(ctx context.Context) ([]models.Quarter, error)
	AllFeeStructures(ctx context.Context) ([]models.FeeStructure, error)
	AllExtraCharges(ctx context.Context) ([]models.ExtraCharge, error)
	TransactionsByStudent(ctx context.Context, studentID string) ([]models.Transaction, error)
}

// Observer receives errors and metrics from the engine. Injected rather
// than reached for as process-global state so computations stay
// unit-testable.
type Observer interface {
	CaptureError(err error)
	RecordMetric(name string, value float64)
}

// NopObserver discards everything.
type NopObserver struct{}

func (NopObserver) CaptureError(error)           {}
func (NopObserver) RecordMetric(string, float64) {}

// QuarterBalance is the derived fee breakdown for one (student, quarter)
// pair. It is recomputed on every read and never stored.
type QuarterBalance struct {
	QuarterID    string          `json:"quarter_id"`
	QuarterName  string          `json:"quarter_name"`
	AcademicYear string          `json:"academic_year"`
	DueDate      models.CustomDate `json:"due_date"`
	BaseFee      decimal.Decimal `json:"base_fee"`
	ExtraCharges decimal.Decimal `json:"extra_charges"`
	LateFee      decimal.Decimal `json:"late_fee"`
	Concession   decimal.Decimal `json:"concession"`
	TotalDue     decimal.Decimal `json:"total_due"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	Balance      decimal.Decimal `json:"balance"`
	IsOverdue    bool            `json:"is_overdue"`
}

// StudentFeeDetails is the aggregate multi-quarter view for a student.
type StudentFeeDetails struct {
	Student      *models.Student  `json:"student"`
	Quarters     []QuarterBalance `json:"quarters"`
	TotalDue     decimal.Decimal  `json:"total_due"`
	TotalPaid    decimal.Decimal  `json:"total_paid"`
	TotalBalance decimal.Decimal  `json:"total_balance"`
}

// Engine orchestrates the per-quarter fee breakdown. Now is swappable so
// late-fee accrual can be pinned in tests and recomputed as-of a date.
type Engine struct {
	store    Store
	observer Observer
	Now      func() time.Time
}

// NewEngine creates an engine over a store. A nil observer defaults to
// NopObserver.
func NewEngine(store Store, observer Observer) *Engine {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Engine{store: store, observer: observer, Now: time.Now}
}

// ComputeStudentFeeDetails derives the fee breakdown for every active
// quarter, not just quarters the student has transactions for, so the
// full obligation history is visible. It is idempotent and mutates
// nothing. If any collaborator load fails the whole computation aborts:
// partial data would silently understate a balance, which is worse than
// failing loudly.
func (e *Engine) ComputeStudentFeeDetails(ctx context.Context, studentID string) (*StudentFeeDetails, error) {
	return e.ComputeStudentFeeDetailsAsOf(ctx, studentID, e.Now())
}

// ComputeStudentFeeDetailsAsOf is ComputeStudentFeeDetails with an
// explicit as-of date for late-fee and overdue evaluation.
func (e *Engine) ComputeStudentFeeDetailsAsOf(ctx context.Context, studentID string, asOf time.Time) (*StudentFeeDetails, error) {
	student, err := e.store.StudentByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			return nil, err
		}
		e.observer.CaptureError(err)
		return nil, fmt.Errorf("load student %s: %w", studentID, err)
	}

	quarters, err := e.store.ActiveQuarters(ctx)
	if err != nil {
		e.observer.CaptureError(err)
		return nil, fmt.Errorf("load quarters: %w", err)
	}
	structures, err := e.store.AllFeeStructures(ctx)
	if err != nil {
		e.observer.CaptureError(err)
		return nil, fmt.Errorf("load fee structures: %w", err)
	}
	charges, err := e.store.AllExtraCharges(ctx)
	if err != nil {
		e.observer.CaptureError(err)
		return nil, fmt.Errorf("load extra charges: %w", err)
	}
	txns, err := e.store.TransactionsByStudent(ctx, studentID)
	if err != nil {
		e.observer.CaptureError(err)
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	details := &StudentFeeDetails{
		Student:      student,
		Quarters:     make([]QuarterBalance, 0, len(quarters)),
		TotalDue:     decimal.Zero,
		TotalPaid:    decimal.Zero,
		TotalBalance: decimal.Zero,
	}

	for i := range quarters {
		qb := e.quarterBalance(student, &quarters[i], structures, charges, txns, asOf)
		details.TotalDue = details.TotalDue.Add(qb.TotalDue)
		details.TotalPaid = details.TotalPaid.Add(qb.AmountPaid)
		details.TotalBalance = details.TotalBalance.Add(qb.Balance)
		details.Quarters = append(details.Quarters, qb)
	}

	e.observer.RecordMetric("feecalc.quarters_computed", float64(len(details.Quarters)))
	return details, nil
}

func (e *Engine) quarterBalance(
	student *models.Student,
	quarter *models.Quarter,
	structures []models.FeeStructure,
	charges []models.ExtraCharge,
	txns []models.Transaction,
	asOf time.Time,
) QuarterBalance {
	baseFee := decimal.Zero
	if fs := ResolveFeeStructure(student.ClassID, quarter.ID, structures); fs != nil {
		baseFee = fs.TotalFee
	}

	extra := SumExtraCharges(student.ID, student.ClassID, quarter.ID, charges)
	grossDue := baseFee.Add(extra)

	amountPaid := NetPaid(FilterQuarter(txns, quarter.ID))

	// Late fee only accrues while a balance remains outstanding past the
	// due date; a fully-paid quarter never accrues one.
	overdueWindow := asOf.After(quarter.DueDate.Time)
	lateFee := decimal.Zero
	if overdueWindow && amountPaid.LessThan(grossDue) {
		lateFee = ComputeLateFee(quarter.LateFee, quarter.DueDate.Time, grossDue, asOf)
	}

	concession := concessionFor(student, grossDue)

	totalDue := money.Round2(grossDue.Add(lateFee).Sub(concession))
	balance := money.MaxZero(totalDue.Sub(amountPaid))

	return QuarterBalance{
		QuarterID:    quarter.ID,
		QuarterName:  quarter.Name,
		AcademicYear: quarter.AcademicYear,
		DueDate:      quarter.DueDate,
		BaseFee:      baseFee,
		ExtraCharges: extra,
		LateFee:      lateFee,
		Concession:   concession,
		TotalDue:     totalDue,
		AmountPaid:   amountPaid,
		Balance:      balance,
		IsOverdue:    overdueWindow && balance.IsPositive(),
	}
}

// concessionFor combines the student's flat and percentage concessions.
// Both may apply; the percentage is taken from the gross due.
func concessionFor(student *models.Student, grossDue decimal.Decimal) decimal.Decimal {
	c := student.ConcessionAmount
	if student.ConcessionPercent.IsPositive() {
		c = c.Add(money.Percent(grossDue, student.ConcessionPercent))
	}
	return money.MaxZero(c)
}
