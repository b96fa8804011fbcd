package routes

import (
	"FoodBridge-Backend/internal/api/handlers"
	"FoodBridge-Backend/internal/middleware"
	"FoodBridge-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	LocationHandler    handlers.LocationHandler
	FoodHandler        handlers.FoodHandler
	RequestHandler     handlers.RequestHandler
	TransactionHandler handlers.TransactionHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Locations()
	c.FoodItems()
	c.Requests()
	c.Transactions()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/roles", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.AssignRole)
	}
}

func (c *Config) Locations() {
	locations := c.App.Group("/api/v1/locations")
	locations.Get("", c.LocationHandler.GetLocations)
	locations.Post("", c.LocationHandler.CreateLocation)
	locations.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.LocationHandler.DeleteLocation)
}

func (c *Config) FoodItems() {
	// marketplace browse is public, everything else needs a user
	c.App.Get("/api/v1/food-items/browse", c.FoodHandler.BrowseListings)

	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboardStats)

	foodItems.Post("", c.FoodHandler.CreateListing)
	foodItems.Get("", c.FoodHandler.GetMyListings)
	foodItems.Get("/:id", c.FoodHandler.GetListingDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateListing)
	foodItems.Patch("/:id/status", c.FoodHandler.UpdateListingStatus)
	foodItems.Delete("/:id", c.FoodHandler.DeleteListing)

	foodItems.Post("/image", c.FoodHandler.UploadListingImage)
	foodItems.Get("/:id/requests", c.RequestHandler.GetRequestsForItem)
}

func (c *Config) Requests() {
	requests := c.App.Group("/api/v1/requests", c.Middleware.AuthMiddleware(c.JWTService))
	requests.Post("", c.RequestHandler.CreateRequest)
	requests.Get("", c.RequestHandler.GetMyRequests)
	requests.Get("/:id", c.RequestHandler.GetRequestDetails)
	requests.Patch("/:id/status", c.RequestHandler.UpdateRequestStatus)
}

func (c *Config) Transactions() {
	transactions := c.App.Group("/api/v1/transactions", c.Middleware.AuthMiddleware(c.JWTService))
	transactions.Post("", c.TransactionHandler.CreateTransaction)
	transactions.Get("", c.TransactionHandler.GetMyTransactions)
	transactions.Get("/:id", c.TransactionHandler.GetTransactionDetails)
	transactions.Patch("/:id/complete", c.TransactionHandler.CompleteTransaction)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
