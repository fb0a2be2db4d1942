package classes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Kalpit0710/fee-manage-sub000/app/database"
	"github.com/Kalpit0710/fee-manage-sub000/app/models"
	"github.com/Kalpit0710/fee-manage-sub000/app/money"
)

// ClassRequest is the payload for creating or updating a class.
type ClassRequest struct {
	Name         string `json:"name"`
	Code         string `json:"code"`
	QuarterlyFee string `json:"quarterly_fee"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

// GetClassesAPI returns all active classes
func GetClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classes, err := database.GetActiveClassesSimple(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    classes,
	})
}

// GetClassAPI returns a single class by id
func GetClassAPI(c *fiber.Ctx, db *sql.DB) error {
	class, err := database.GetClassByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    class,
	})
}

// CreateClassAPI creates a new class
func CreateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" || req.Code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name and code are required")
	}

	fee := money.Zero
	if req.QuarterlyFee != "" {
		var err error
		fee, err = money.FromString(req.QuarterlyFee)
		if err != nil || fee.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid quarterly fee")
		}
	}

	class := &models.Class{Name: req.Name, Code: req.Code, QuarterlyFee: fee, IsActive: true}
	if err := database.CreateClass(db, class); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create class")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    class,
		"message": "Class created successfully",
	})
}

// UpdateClassAPI updates an existing class
func UpdateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	class, err := database.GetClassByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
	}

	if req.Name != "" {
		class.Name = req.Name
	}
	if req.Code != "" {
		class.Code = req.Code
	}
	if req.QuarterlyFee != "" {
		fee, err := money.FromString(req.QuarterlyFee)
		if err != nil || fee.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid quarterly fee")
		}
		class.QuarterlyFee = fee
	}
	if req.IsActive != nil {
		class.IsActive = *req.IsActive
	}

	if err := database.UpdateClass(db, class); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update class")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    class,
		"message": "Class updated successfully",
	})
}
