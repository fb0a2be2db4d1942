package students

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Kalpit0710/fee-manage-sub000/app/database"
	"github.com/Kalpit0710/fee-manage-sub000/app/models"
	"github.com/Kalpit0710/fee-manage-sub000/app/money"
)

var validate = validator.New()

// StudentRequest is the payload for creating or updating a student.
type StudentRequest struct {
	AdmissionNumber   string  `json:"admission_number" validate:"required"`
	FirstName         string  `json:"first_name" validate:"required"`
	LastName          string  `json:"last_name" validate:"required"`
	ClassID           string  `json:"class_id" validate:"required,uuid"`
	Section           *string `json:"section,omitempty"`
	GuardianName      *string `json:"guardian_name,omitempty"`
	GuardianPhone     *string `json:"guardian_phone,omitempty"`
	GuardianEmail     *string `json:"guardian_email,omitempty" validate:"omitempty,email"`
	ConcessionAmount  string  `json:"concession_amount,omitempty"`
	ConcessionPercent string  `json:"concession_percent,omitempty"`
}

func (req *StudentRequest) toModel() (*models.Student, error) {
	concession := decimal.Zero
	if req.ConcessionAmount != "" {
		var err error
		concession, err = money.FromString(req.ConcessionAmount)
		if err != nil {
			return nil, err
		}
	}
	percent := decimal.Zero
	if req.ConcessionPercent != "" {
		var err error
		percent, err = money.FromString(req.ConcessionPercent)
		if err != nil {
			return nil, err
		}
	}
	if concession.IsNegative() || percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid concession values")
	}

	return &models.Student{
		AdmissionNumber:   req.AdmissionNumber,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		ClassID:           req.ClassID,
		Section:           req.Section,
		GuardianName:      req.GuardianName,
		GuardianPhone:     req.GuardianPhone,
		GuardianEmail:     req.GuardianEmail,
		ConcessionAmount:  concession,
		ConcessionPercent: percent,
	}, nil
}

// GetStudentsAPI returns students with filtering and pagination
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.StudentFilters{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		ClassID:   c.Query("class_id"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Limit:     c.QueryInt("limit", 20),
		Offset:    c.QueryInt("offset", 0),
	}

	students, total, err := database.GetStudentsWithFilters(db, filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"data":        students,
		"total_count": total,
		"has_more":    filters.Offset+len(students) < total,
	})
}

// GetStudentAPI returns a single student by id
func GetStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// CreateStudentAPI registers a new student
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid fields: "+err.Error())
	}

	student, err := req.toModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid concession amount")
	}

	if err := database.CreateStudent(db, student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    student,
		"message": "Student created successfully",
	})
}

// UpdateStudentAPI updates an existing student
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing or invalid fields: "+err.Error())
	}

	student, err := req.toModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid concession amount")
	}
	student.ID = c.Params("id")

	if err := database.UpdateStudent(db, student); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student updated successfully",
	})
}

// DeactivateStudentAPI soft-deactivates a student, keeping transaction
// history intact
func DeactivateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeactivateStudent(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student deactivated successfully",
	})
}
