package config

import (
	"FoodBridge-Backend/internal/api/handlers"
	"FoodBridge-Backend/internal/api/routes"
	"FoodBridge-Backend/internal/middleware"
	"FoodBridge-Backend/internal/utils"
	"FoodBridge-Backend/internal/utils/storage"
	"FoodBridge-Backend/pkg/food"
	"FoodBridge-Backend/pkg/jwt"
	"FoodBridge-Backend/pkg/location"
	"FoodBridge-Backend/pkg/request"
	"FoodBridge-Backend/pkg/transaction"
	"FoodBridge-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	locationRepository := location.NewLocationRepository(db)
	foodRepository := food.NewFoodRepository(db)
	requestRepository := request.NewRequestRepository(db)
	transactionRepository := transaction.NewTransactionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, locationRepository, jwtService)
	locationService := location.NewLocationService(locationRepository)
	foodService := food.NewFoodService(foodRepository, userRepository, locationRepository, s3)
	requestService := request.NewRequestService(requestRepository)
	transactionService := transaction.NewTransactionService(transactionRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	locationHandler := handlers.NewLocationHandler(locationService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)
	transactionHandler := handlers.NewTransactionHandler(transactionService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		LocationHandler:    locationHandler,
		FoodHandler:        foodHandler,
		RequestHandler:     requestHandler,
		TransactionHandler: transactionHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
