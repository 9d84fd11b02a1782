package routes

import (
	"Food2Plate-Backend/internal/api/handlers"
	"Food2Plate-Backend/internal/middleware"
	"Food2Plate-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	FoodPostHandler    handlers.FoodPostHandler
	ReservationHandler handlers.ReservationHandler
	RatingHandler      handlers.RatingHandler
	RewardHandler      handlers.RewardHandler
	ImpactHandler      handlers.ImpactHandler
	AssistantHandler   handlers.AssistantHandler
	QualityHandler     handlers.QualityHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodPosts()
	c.Reservations()
	c.Ratings()
	c.Rewards()
	c.Impact()
	c.Assistant()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Get("/auth-callback", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.AuthCallback)
		user.Post("/select-role", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.SelectRole)
		user.Patch("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Get("/profiles/:id", c.UserHandler.GetPublicProfile)
	}
}

func (c *Config) FoodPosts() {
	posts := c.App.Group("/api/v1/food-posts")
	{
		posts.Get("/browse", c.FoodPostHandler.BrowseFoodPosts)
		posts.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.FoodPostHandler.CreateFoodPost)
		posts.Get("/mine", c.Middleware.AuthMiddleware(c.JWTService), c.FoodPostHandler.GetMyFoodPosts)
		posts.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.FoodPostHandler.DeleteFoodPost)
		posts.Post("/analyze", c.Middleware.AuthMiddleware(c.JWTService), c.QualityHandler.AnalyzeFood)
	}
}

func (c *Config) Reservations() {
	reservations := c.App.Group("/api/v1/reservations", c.Middleware.AuthMiddleware(c.JWTService))
	{
		reservations.Post("", c.ReservationHandler.ReserveFood)
		reservations.Get("/mine", c.ReservationHandler.GetMyReservations)
		reservations.Patch("/:id/complete", c.ReservationHandler.CompleteReservation)
	}
}

func (c *Config) Ratings() {
	ratings := c.App.Group("/api/v1/ratings", c.Middleware.AuthMiddleware(c.JWTService))
	{
		ratings.Post("", c.RatingHandler.SubmitRating)
	}
}

func (c *Config) Rewards() {
	rewards := c.App.Group("/api/v1/rewards")
	{
		rewards.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.RewardHandler.GetMyReward)
		rewards.Get("/leaderboard", c.RewardHandler.GetLeaderboard)
	}
}

func (c *Config) Impact() {
	c.App.Get("/api/v1/impact", c.ImpactHandler.GetImpactStats)
}

func (c *Config) Assistant() {
	c.App.Post("/api/v1/assistant/chat", c.AssistantHandler.Chat)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
