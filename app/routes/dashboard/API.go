package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Kalpit0710/fee-manage-sub000/app/database"
	"github.com/Kalpit0710/fee-manage-sub000/app/feecalc"
)

// GetDashboardStatsAPI returns the headline numbers for the admin
// dashboard. The defaulter count is derived through the balance engine
// rather than a stored flag, so it is always consistent with the ledger.
func GetDashboardStatsAPI(c *fiber.Ctx, db *sql.DB, engine *feecalc.Engine) error {
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}

	studentIDs, err := database.GetActiveStudentIDs(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student list")
	}

	defaulters := 0
	for _, id := range studentIDs {
		details, err := engine.ComputeStudentFeeDetails(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute defaulter count")
		}
		if feecalc.HasOutstanding(details) {
			defaulters++
		}
	}
	stats.Defaulters = defaulters

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// GetQuarterCollectionsAPI returns per-quarter collection totals,
// optionally filtered by academic year
func GetQuarterCollectionsAPI(c *fiber.Ctx, db *sql.DB) error {
	collections, err := database.GetQuarterCollections(db, c.Query("academic_year"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch quarter collections")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    collections,
	})
}

// GetDefaultersAPI lists students with any outstanding balance, with the
// per-quarter breakdown cashiers need for follow-up calls
func GetDefaultersAPI(c *fiber.Ctx, db *sql.DB, engine *feecalc.Engine) error {
	studentIDs, err := database.GetActiveStudentIDs(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student list")
	}

	defaulters := make([]*feecalc.StudentFeeDetails, 0)
	for _, id := range studentIDs {
		details, err := engine.ComputeStudentFeeDetails(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute balances")
		}
		if feecalc.HasOutstanding(details) {
			defaulters = append(defaulters, details)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    defaulters,
		"count":   len(defaulters),
	})
}
