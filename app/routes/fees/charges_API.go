package fees

import (
	"database/sql"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Kalpit0710/fee-manage-sub000/app/database"
	"github.com/Kalpit0710/fee-manage-sub000/app/models"
	"github.com/Kalpit0710/fee-manage-sub000/app/money"
)

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := money.FromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must be non-negative")
	}
	return d, nil
}

// ExtraChargeRequest is the payload for creating or updating an extra
// charge. Scope is encoded by which of student_id/class_id is set; both
// empty means school-wide.
type ExtraChargeRequest struct {
	QuarterID string  `json:"quarter_id"`
	StudentID *string `json:"student_id,omitempty"`
	ClassID   *string `json:"class_id,omitempty"`
	Title     string  `json:"title"`
	Amount    string  `json:"amount"`
	Mandatory *bool   `json:"mandatory,omitempty"`
}

// GetExtraChargesAPI returns extra charges with optional filtering
func GetExtraChargesAPI(c *fiber.Ctx, db *sql.DB) error {
	charges, err := database.GetExtraCharges(db, c.Query("quarter_id"), c.Query("student_id"), c.Query("class_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch extra charges")
	}

	// Expose the resolved scope alongside the raw columns.
	type chargeWithScope struct {
		models.ExtraCharge
		Scope models.ChargeScope `json:"scope"`
	}
	out := make([]chargeWithScope, len(charges))
	for i := range charges {
		out[i] = chargeWithScope{ExtraCharge: charges[i], Scope: charges[i].Scope()}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    out,
	})
}

// CreateExtraChargeAPI creates an extra charge scoped to a student, a
// class, or the whole school
func CreateExtraChargeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req ExtraChargeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.QuarterID == "" || req.Title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "quarter_id and title are required")
	}
	if req.StudentID != nil && *req.StudentID != "" && req.ClassID != nil && *req.ClassID != "" {
		return fiber.NewError(fiber.StatusBadRequest, "A charge is scoped to a student OR a class, not both")
	}

	amount, err := parseAmount(req.Amount)
	if err != nil || amount.IsZero() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid charge amount")
	}

	mandatory := true
	if req.Mandatory != nil {
		mandatory = *req.Mandatory
	}

	charge := &models.ExtraCharge{
		QuarterID: req.QuarterID,
		StudentID: normalizeID(req.StudentID),
		ClassID:   normalizeID(req.ClassID),
		Title:     req.Title,
		Amount:    amount,
		Mandatory: mandatory,
	}

	if err := database.CreateExtraCharge(db, charge); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create extra charge")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    charge,
		"message": "Extra charge created successfully",
	})
}

// UpdateExtraChargeAPI updates an extra charge's title, amount, and
// mandatory flag; scope and quarter are fixed at creation
func UpdateExtraChargeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req ExtraChargeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	charge, err := database.GetExtraChargeByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Extra charge not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch extra charge")
	}

	if req.Title != "" {
		charge.Title = req.Title
	}
	if req.Amount != "" {
		amount, err := parseAmount(req.Amount)
		if err != nil || amount.IsZero() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid charge amount")
		}
		charge.Amount = amount
	}
	if req.Mandatory != nil {
		charge.Mandatory = *req.Mandatory
	}

	if err := database.UpdateExtraCharge(db, charge); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update extra charge")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    charge,
		"message": "Extra charge updated successfully",
	})
}

// DeleteExtraChargeAPI soft-deletes an extra charge
func DeleteExtraChargeAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteExtraCharge(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Extra charge not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete extra charge")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Extra charge deleted successfully",
	})
}

func normalizeID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}
