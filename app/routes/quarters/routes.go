package quarters

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kalpit0710/fee-manage-sub000/app/config"
	"github.com/Kalpit0710/fee-manage-sub000/app/routes/auth"
)

// SetupQuartersRoutes sets up the quarters routes
func SetupQuartersRoutes(app *fiber.App) {
	quartersAPI := app.Group("/api/quarters")
	quartersAPI.Use(auth.AuthMiddleware)
	quartersAPI.Use(auth.RoleMiddleware("admin", "cashier"))

	quartersAPI.Get("/", func(c *fiber.Ctx) error {
		return GetQuartersAPI(c, config.GetDB())
	})

	quartersAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetQuarterAPI(c, config.GetDB())
	})

	quartersAPI.Post("/", auth.RoleMiddleware("admin"), func(c *fiber.Ctx) error {
		return CreateQuarterAPI(c, config.GetDB())
	})

	quartersAPI.Put("/:id", auth.RoleMiddleware("admin"), func(c *fiber.Ctx) error {
		return UpdateQuarterAPI(c, config.GetDB())
	})

	quartersAPI.Delete("/:id", auth.RoleMiddleware("admin"), func(c *fiber.Ctx) error {
		return DeleteQuarterAPI(c, config.GetDB())
	})
}
