package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kalpit0710/fee-manage-sub000/app/config"
	"github.com/Kalpit0710/fee-manage-sub000/app/database"
	"github.com/Kalpit0710/fee-manage-sub000/app/feecalc"
	"github.com/Kalpit0710/fee-manage-sub000/app/routes/auth"
)

// SetupPaymentsRoutes sets up the payment ledger routes
func SetupPaymentsRoutes(app *fiber.App) {
	engine := feecalc.NewEngine(database.NewStore(config.GetDB()), nil)

	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "cashier"))

	api.Get("/", func(c *fiber.Ctx) error {
		return GetTransactionsAPI(c, config.GetDB())
	})

	api.Get("/receipt/:receipt", func(c *fiber.Ctx) error {
		return GetReceiptAPI(c, config.GetDB())
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetTransactionAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CollectPaymentAPI(c, config.GetDB())
	})

	api.Post("/:id/refund", func(c *fiber.Ctx) error {
		return RefundPaymentAPI(c, config.GetDB())
	})

	api.Patch("/:id/status", func(c *fiber.Ctx) error {
		return UpdateTransactionStatusAPI(c, config.GetDB())
	})

	feesAPI := app.Group("/api/students/:id/fees")
	feesAPI.Use(auth.AuthMiddleware)
	feesAPI.Use(auth.RoleMiddleware("admin", "cashier"))

	feesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetStudentFeesAPI(c, engine)
	})
}
