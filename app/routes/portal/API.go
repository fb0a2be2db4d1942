package portal

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Kalpit0710/fee-manage-sub000/app/feecalc"
	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

// Handler serves the parent-facing balance lookup. Lookup resolves an
// admission number to a student; the engine derives everything else from
// the ledger.
type Handler struct {
	Lookup func(ctx context.Context, admissionNumber string) (*models.Student, error)
	Engine *feecalc.Engine
}

// quarterView is the restricted per-quarter shape shown to parents.
type quarterView struct {
	QuarterName  string `json:"quarter_name"`
	AcademicYear string `json:"academic_year"`
	DueDate      models.CustomDate `json:"due_date"`
	TotalDue     string `json:"total_due"`
	AmountPaid   string `json:"amount_paid"`
	Balance      string `json:"balance"`
	IsOverdue    bool   `json:"is_overdue"`
	IsDefaulter  bool   `json:"is_defaulter"`
}

// GetBalanceAPI returns a student's fee position looked up by admission
// number. Internal fields (collector ids, concession breakdown) are not
// exposed; parents see due, paid and balance per quarter.
func (h *Handler) GetBalanceAPI(c *fiber.Ctx) error {
	admissionNumber := c.Params("admission")
	if admissionNumber == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Admission number is required")
	}

	student, err := h.Lookup(c.Context(), admissionNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "No student with that admission number")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up student")
	}
	if !student.IsActive {
		return fiber.NewError(fiber.StatusNotFound, "No student with that admission number")
	}

	details, err := h.Engine.ComputeStudentFeeDetails(c.Context(), student.ID)
	if err != nil {
		if errors.Is(err, feecalc.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No student with that admission number")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute fee details")
	}

	quarters := make([]quarterView, 0, len(details.Quarters))
	for _, qb := range details.Quarters {
		quarters = append(quarters, quarterView{
			QuarterName:  qb.QuarterName,
			AcademicYear: qb.AcademicYear,
			DueDate:      qb.DueDate,
			TotalDue:     qb.TotalDue.StringFixed(2),
			AmountPaid:   qb.AmountPaid.StringFixed(2),
			Balance:      qb.Balance.StringFixed(2),
			IsOverdue:    qb.IsOverdue,
			IsDefaulter:  feecalc.IsDefaulter(qb),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"student_name":     student.FullName(),
			"admission_number": student.AdmissionNumber,
			"quarters":         quarters,
			"total_due":        details.TotalDue.StringFixed(2),
			"total_paid":       details.TotalPaid.StringFixed(2),
			"total_balance":    details.TotalBalance.StringFixed(2),
			"has_outstanding":  feecalc.HasOutstanding(details),
		},
	})
}
