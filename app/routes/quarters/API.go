package quarters

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Kalpit0710/fee-manage-sub000/app/database"
	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

// GetQuartersAPI returns quarters, optionally filtered by academic year
func GetQuartersAPI(c *fiber.Ctx, db *sql.DB) error {
	activeOnly := c.Query("status") != "all"
	quarters, err := database.GetQuarters(db, c.Query("academic_year"), activeOnly)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch quarters")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    quarters,
	})
}

// GetQuarterAPI returns a single quarter by id
func GetQuarterAPI(c *fiber.Ctx, db *sql.DB) error {
	quarter, err := database.GetQuarterByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Quarter not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch quarter")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    quarter,
	})
}

func validateQuarter(q *models.Quarter) error {
	if q.AcademicYear == "" || q.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Academic year and name are required")
	}
	if q.StartDate.IsZero() || q.EndDate.IsZero() || q.DueDate.IsZero() {
		return fiber.NewError(fiber.StatusBadRequest, "Start, end and due dates are required")
	}
	if p := q.LateFee; p != nil {
		if p.Type != models.LateFeeFlat && p.Type != models.LateFeePercentage {
			return fiber.NewError(fiber.StatusBadRequest, "Late fee type must be flat or percentage")
		}
		if p.Amount.IsNegative() || p.Percentage.IsNegative() || p.MaxLateFee.IsNegative() || p.GraceDays < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Late fee values must be non-negative")
		}
		if p.Percentage.GreaterThan(decimal.NewFromInt(100)) {
			return fiber.NewError(fiber.StatusBadRequest, "Late fee percentage must be 0-100")
		}
	}
	return nil
}

// CreateQuarterAPI creates a new billing quarter
func CreateQuarterAPI(c *fiber.Ctx, db *sql.DB) error {
	var quarter models.Quarter
	if err := c.BodyParser(&quarter); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuarter(&quarter); err != nil {
		return err
	}

	if err := database.CreateQuarter(db, &quarter); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create quarter")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    quarter,
		"message": "Quarter created successfully",
	})
}

// UpdateQuarterAPI updates an existing quarter, including its late-fee
// policy
func UpdateQuarterAPI(c *fiber.Ctx, db *sql.DB) error {
	var quarter models.Quarter
	if err := c.BodyParser(&quarter); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	quarter.ID = c.Params("id")
	if err := validateQuarter(&quarter); err != nil {
		return err
	}

	if err := database.UpdateQuarter(db, &quarter); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Quarter not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update quarter")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Quarter updated successfully",
	})
}

// DeleteQuarterAPI soft-deletes a quarter
func DeleteQuarterAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteQuarter(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Quarter not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete quarter")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Quarter deleted successfully",
	})
}
