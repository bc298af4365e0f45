package routes

import (
	"Meal-Planner-Backend/internal/api/handlers"
	"Meal-Planner-Backend/internal/middleware"
	"Meal-Planner-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	MealPlanHandler   handlers.MealPlanHandler
	MacroHandler      handlers.MacroHandler
	ChatHandler       handlers.ChatHandler
	IngredientHandler handlers.IngredientHandler
	FoodHandler       handlers.FoodHandler
	HealthHandler     handlers.HealthHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.MealPlan()
	c.Nutrition()
	c.Assistant()
	c.GuestRoute()
}

func (c *Config) User() {
	api := c.App.Group("/api")
	{
		api.Post("/create-user", c.UserHandler.CreateUser)
		api.Post("/login", c.UserHandler.Login)
		api.Post("/logout", c.UserHandler.Logout)
	}

	auth := api.Group("/auth")
	{
		auth.Get("/session", c.UserHandler.Session)
		auth.Post("/forgot-password", c.UserHandler.ForgotPassword)
		auth.Post("/reset-password", c.UserHandler.ResetPassword)
	}
}

func (c *Config) MealPlan() {
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)
	required := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Post("/api/save-meal-plan", optional, c.MealPlanHandler.SaveMealPlan)
	c.App.Post("/api/update-meal-plan-name", required, c.MealPlanHandler.RenameMealPlanLegacy)

	plans := c.App.Group("/api/meal-plans", required)
	{
		plans.Get("/", c.MealPlanHandler.GetMealPlans)
		plans.Get("/count", c.MealPlanHandler.CountMealPlans)
		plans.Patch("/:id", c.MealPlanHandler.RenameMealPlan)
		plans.Delete("/:id", c.MealPlanHandler.DeleteMealPlan)
	}
}

func (c *Config) Nutrition() {
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	api := c.App.Group("/api")
	{
		api.Post("/save-macros", c.MacroHandler.SaveMacros)
		api.Get("/get-user-macros/:username", c.MacroHandler.GetUserMacros)
		api.Get("/get-user-weekly-macros/:username", c.MacroHandler.GetUserWeeklyMacros)
		api.Post("/analyze-food-macros", optional, c.FoodHandler.AnalyzeFoodMacros)
	}
}

func (c *Config) Assistant() {
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	api := c.App.Group("/api")
	{
		api.Post("/chat", optional, c.ChatHandler.Chat)
		api.Post("/identify-ingredients", optional, c.IngredientHandler.IdentifyIngredients)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", c.HealthHandler.Ping)
	c.App.Get("/api/health", c.HealthHandler.Health)
}
