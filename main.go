package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Kalpit0710/fee-manage-sub000/app/config"
	"github.com/Kalpit0710/fee-manage-sub000/app/database"
	"github.com/Kalpit0710/fee-manage-sub000/app/routes/auth"
	"github.com/Kalpit0710/fee-manage-sub000/app/routes/classes"
	"github.com/Kalpit0710/fee-manage-sub000/app/routes/dashboard"
	"github.com/Kalpit0710/fee-manage-sub000/app/routes/fees"
	"github.com/Kalpit0710/fee-manage-sub000/app/routes/payments"
	"github.com/Kalpit0710/fee-manage-sub000/app/routes/portal"
	"github.com/Kalpit0710/fee-manage-sub000/app/routes/quarters"
	"github.com/Kalpit0710/fee-manage-sub000/app/routes/students"
	"github.com/Kalpit0710/fee-manage-sub000/app/services"
)

// customErrorHandler renders every error as the standard JSON envelope
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Set global time zone to Indian Standard Time
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Kolkata location, falling back to UTC+5:30: %v", err)
		time.Local = time.FixedZone("IST", 5*60*60+30*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "fee-manage",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup classes routes
	classes.SetupClassesRoutes(app)

	// Setup quarters routes
	quarters.SetupQuartersRoutes(app)

	// Setup fee structure and extra charge routes
	fees.SetupFeesRoutes(app)

	// Setup payments routes
	payments.SetupPaymentsRoutes(app)

	// Setup parent portal routes
	portal.SetupPortalRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	log.Println("Server starting on :8080")
	log.Fatal(app.Listen(":8080"))
}
