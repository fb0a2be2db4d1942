package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kalpit0710/fee-manage-sub000/app/config"
	"github.com/Kalpit0710/fee-manage-sub000/app/database"
	"github.com/Kalpit0710/fee-manage-sub000/app/feecalc"
	"github.com/Kalpit0710/fee-manage-sub000/app/routes/auth"
)

// SetupDashboardRoutes sets up the admin dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	engine := feecalc.NewEngine(database.NewStore(config.GetDB()), nil)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "cashier"))

	api.Get("/stats", func(c *fiber.Ctx) error {
		return GetDashboardStatsAPI(c, config.GetDB(), engine)
	})

	api.Get("/collections", func(c *fiber.Ctx) error {
		return GetQuarterCollectionsAPI(c, config.GetDB())
	})

	api.Get("/defaulters", func(c *fiber.Ctx) error {
		return GetDefaultersAPI(c, config.GetDB(), engine)
	})
}
