package config

import (
	"Meal-Planner-Backend/internal/api/handlers"
	"Meal-Planner-Backend/internal/api/presenters"
	"Meal-Planner-Backend/internal/api/routes"
	"Meal-Planner-Backend/internal/middleware"
	"Meal-Planner-Backend/internal/utils"
	"Meal-Planner-Backend/internal/utils/mailing"
	"Meal-Planner-Backend/internal/utils/storage"
	"Meal-Planner-Backend/pkg/backend"
	"Meal-Planner-Backend/pkg/chat"
	"Meal-Planner-Backend/pkg/food"
	"Meal-Planner-Backend/pkg/ingredient"
	"Meal-Planner-Backend/pkg/jwt"
	"Meal-Planner-Backend/pkg/macro"
	"Meal-Planner-Backend/pkg/mealplan"
	"Meal-Planner-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// errorHandler renders errors that escape a handler in the JSON envelope the
// handlers use.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return presenters.ErrorResponse(c, code, err.Error(), nil)
}

func accessLogOutput(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	return file, nil
}

func NewApp(db *gorm.DB, cfg utils.Config) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:      "Meal Planner Backend",
		ErrorHandler: errorHandler,
		BodyLimit:    16 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware(cfg.CORSAllowOrigins)
	validator := utils.Validate

	// setting up logging and limiter
	output, err := accessLogOutput(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     output,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3, err := storage.NewAwsS3(context.Background(), storage.S3Config{
		Bucket:    cfg.AWSS3Bucket,
		Region:    cfg.AWSS3Region,
		AccessKey: cfg.AWSAccessKey,
		SecretKey: cfg.AWSSecretKey,
	})
	if err != nil {
		log.Warnf("photo archiving disabled: %v", err)
		s3 = nil
	}
	mailer := mailing.NewMailer(mailing.MailConfig{
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		SMTPSender:   cfg.SMTPSenderName,
		SMTPEmail:    cfg.SMTPAuthEmail,
		SMTPPassword: cfg.SMTPAuthPassword,
	})
	aiClient := backend.NewClient(cfg.APIBaseURL)
	degrade := cfg.BackendFailurePolicy != utils.PolicyFail

	// Repository
	userRepository := user.NewUserRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)

	// Service
	jwtService := jwt.NewJWTService(cfg.JWTSecret)
	userService := user.NewUserService(userRepository, jwtService, mailer, cfg.AppURL)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository)
	macroService := macro.NewMacroService(aiClient, degrade)
	chatService := chat.NewChatService(aiClient)
	ingredientService := ingredient.NewIngredientService(aiClient, s3, degrade)
	foodService := food.NewFoodService(aiClient, s3, degrade)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator, strings.HasPrefix(cfg.AppURL, "https://"))
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	macroHandler := handlers.NewMacroHandler(macroService, validator)
	chatHandler := handlers.NewChatHandler(chatService)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	foodHandler := handlers.NewFoodHandler(foodService)
	healthHandler := handlers.NewHealthHandler(userRepository, aiClient)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		MealPlanHandler:   mealPlanHandler,
		MacroHandler:      macroHandler,
		ChatHandler:       chatHandler,
		IngredientHandler: ingredientHandler,
		FoodHandler:       foodHandler,
		HealthHandler:     healthHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
