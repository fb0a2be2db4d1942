package fees

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Kalpit0710/fee-manage-sub000/app/database"
	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

// FeeStructureRequest is the payload for creating or updating a fee
// structure. Amounts arrive as strings so they parse into exact decimals.
type FeeStructureRequest struct {
	ClassID        string `json:"class_id"`
	QuarterID      string `json:"quarter_id"`
	TuitionFee     string `json:"tuition_fee"`
	TransportFee   string `json:"transport_fee"`
	ActivityFee    string `json:"activity_fee"`
	ExaminationFee string `json:"examination_fee"`
	OtherFee       string `json:"other_fee"`
}

func (req *FeeStructureRequest) toModel() (*models.FeeStructure, error) {
	fs := &models.FeeStructure{ClassID: req.ClassID, QuarterID: req.QuarterID}

	var err error
	if fs.TuitionFee, err = parseAmount(req.TuitionFee); err != nil {
		return nil, err
	}
	if fs.TransportFee, err = parseAmount(req.TransportFee); err != nil {
		return nil, err
	}
	if fs.ActivityFee, err = parseAmount(req.ActivityFee); err != nil {
		return nil, err
	}
	if fs.ExaminationFee, err = parseAmount(req.ExaminationFee); err != nil {
		return nil, err
	}
	if fs.OtherFee, err = parseAmount(req.OtherFee); err != nil {
		return nil, err
	}

	// TotalFee is derived, never client-supplied.
	fs.TotalFee = fs.ComponentTotal()
	return fs, nil
}

// GetFeeStructuresAPI returns fee structures with optional class/quarter
// filtering
func GetFeeStructuresAPI(c *fiber.Ctx, db *sql.DB) error {
	structures, err := database.GetFeeStructures(db, c.Query("class_id"), c.Query("quarter_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee structures")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    structures,
	})
}

// CreateFeeStructureAPI creates a fee structure for a (class, quarter)
// pair
func CreateFeeStructureAPI(c *fiber.Ctx, db *sql.DB) error {
	var req FeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.ClassID == "" || req.QuarterID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "class_id and quarter_id are required")
	}

	fs, err := req.toModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid fee amount")
	}

	// One structure per (class, quarter) pair.
	existing, err := database.GetFeeStructures(db, req.ClassID, req.QuarterID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing structures")
	}
	if len(existing) > 0 {
		return fiber.NewError(fiber.StatusConflict, "A fee structure already exists for this class and quarter")
	}

	if err := database.CreateFeeStructure(db, fs); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee structure")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fs,
		"message": "Fee structure created successfully",
	})
}

// UpdateFeeStructureAPI updates a fee structure's components, recomputing
// the total
func UpdateFeeStructureAPI(c *fiber.Ctx, db *sql.DB) error {
	var req FeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	fs, err := req.toModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid fee amount")
	}
	fs.ID = c.Params("id")

	if err := database.UpdateFeeStructure(db, fs); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Fee structure not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update fee structure")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fs,
		"message": "Fee structure updated successfully",
	})
}

// DeleteFeeStructureAPI soft-deletes a fee structure
func DeleteFeeStructureAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteFeeStructure(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Fee structure not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete fee structure")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee structure deleted successfully",
	})
}
