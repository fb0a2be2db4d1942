package portal

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/Kalpit0710/fee-manage-sub000/app/config"
	"github.com/Kalpit0710/fee-manage-sub000/app/database"
	"github.com/Kalpit0710/fee-manage-sub000/app/feecalc"
	"github.com/Kalpit0710/fee-manage-sub000/app/models"
)

// SetupPortalRoutes sets up the public parent portal. No auth: the
// admission number is the lookup key and the response is restricted.
func SetupPortalRoutes(app *fiber.App) {
	db := config.GetDB()
	handler := &Handler{
		Lookup: func(_ context.Context, admissionNumber string) (*models.Student, error) {
			return database.GetStudentByAdmissionNumber(db, admissionNumber)
		},
		Engine: feecalc.NewEngine(database.NewStore(db), nil),
	}

	api := app.Group("/api/portal")

	api.Get("/balance/:admission", handler.GetBalanceAPI)
}
