package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kalpit0710/fee-manage-sub000/app/config"
	"github.com/Kalpit0710/fee-manage-sub000/app/routes/auth"
)

// SetupFeesRoutes sets up fee structure and extra charge routes
func SetupFeesRoutes(app *fiber.App) {
	structuresAPI := app.Group("/api/fee-structures")
	structuresAPI.Use(auth.AuthMiddleware)
	structuresAPI.Use(auth.RoleMiddleware("admin"))

	structuresAPI.Get("/", func(c *fiber.Ctx) error {
		return GetFeeStructuresAPI(c, config.GetDB())
	})

	structuresAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateFeeStructureAPI(c, config.GetDB())
	})

	structuresAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateFeeStructureAPI(c, config.GetDB())
	})

	structuresAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteFeeStructureAPI(c, config.GetDB())
	})

	chargesAPI := app.Group("/api/extra-charges")
	chargesAPI.Use(auth.AuthMiddleware)
	chargesAPI.Use(auth.RoleMiddleware("admin"))

	chargesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetExtraChargesAPI(c, config.GetDB())
	})

	chargesAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateExtraChargeAPI(c, config.GetDB())
	})

	chargesAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateExtraChargeAPI(c, config.GetDB())
	})

	chargesAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteExtraChargeAPI(c, config.GetDB())
	})
}
