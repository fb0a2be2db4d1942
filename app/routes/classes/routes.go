package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kalpit0710/fee-manage-sub000/app/config"
	"github.com/Kalpit0710/fee-manage-sub000/app/routes/auth"
)

// SetupClassesRoutes sets up the classes routes
func SetupClassesRoutes(app *fiber.App) {
	classesAPI := app.Group("/api/classes")
	classesAPI.Use(auth.AuthMiddleware)
	classesAPI.Use(auth.RoleMiddleware("admin", "cashier"))

	classesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetClassesAPI(c, config.GetDB())
	})

	classesAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetClassAPI(c, config.GetDB())
	})

	classesAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateClassAPI(c, config.GetDB())
	})

	classesAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateClassAPI(c, config.GetDB())
	})
}
