package api

import (
	"coinkeeper/docs"
	"coinkeeper/internal/api/handlers"
	"coinkeeper/pkg/auth"
	"coinkeeper/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Category *handlers.CategoryHandler
	Expense  *handlers.ExpenseHandler
	Income   *handlers.IncomeHandler
	Stats    *handlers.StatsHandler
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Importing docs registers the OpenAPI document through its init().
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes (public)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	users := protected.Group("/users")
	users.Get("/me", h.User.Profile)
	users.Put("/me/limit", h.User.UpdateExpenseLimit)

	categories := protected.Group("/categories")
	categories.Post("", h.Category.Create)
	categories.Get("", h.Category.List)
	categories.Get("/:id", h.Category.Get)
	categories.Put("/:id", h.Category.Update)
	categories.Delete("/:id", h.Category.Delete)

	expenses := protected.Group("/expenses")
	expenses.Post("", h.Expense.Create)
	expenses.Get("", h.Expense.List)
	expenses.Get("/:id", h.Expense.Get)
	expenses.Put("/:id", h.Expense.Update)
	expenses.Delete("/:id", h.Expense.Delete)

	incomes := protected.Group("/incomes")
	incomes.Post("", h.Income.Create)
	incomes.Get("", h.Income.List)
	incomes.Get("/:id", h.Income.Get)
	incomes.Put("/:id", h.Income.Update)
	incomes.Delete("/:id", h.Income.Delete)

	stats := protected.Group("/stats")
	stats.Get("/expenses", h.Stats.CategoryExpenses)
	stats.Get("/dynamic", h.Stats.Dynamics)

	return app
}
