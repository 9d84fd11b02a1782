package config

import (
	"context"
	"os"
	"time"

	"Food2Plate-Backend/internal/api/handlers"
	"Food2Plate-Backend/internal/api/routes"
	"Food2Plate-Backend/internal/middleware"
	"Food2Plate-Backend/internal/utils"
	"Food2Plate-Backend/internal/utils/storage"
	"Food2Plate-Backend/pkg/assistant"
	"Food2Plate-Backend/pkg/foodpost"
	"Food2Plate-Backend/pkg/impact"
	"Food2Plate-Backend/pkg/jwt"
	"Food2Plate-Backend/pkg/quality"
	"Food2Plate-Backend/pkg/rating"
	"Food2Plate-Backend/pkg/reservation"
	"Food2Plate-Backend/pkg/reward"
	"Food2Plate-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/robfig/cron/v3"
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
		TimeZone:   "Asia/Jakarta",
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
	foodPostRepository := foodpost.NewFoodPostRepository(db)
	reservationRepository := reservation.NewReservationRepository(db)
	ratingRepository := rating.NewRatingRepository(db)
	rewardRepository := reward.NewRewardRepository(db)
	impactRepository := impact.NewImpactRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	rewardService := reward.NewRewardService(rewardRepository, userRepository)
	userService := user.NewUserService(userRepository, rewardService, jwtService, s3)
	foodPostService := foodpost.NewFoodPostService(foodPostRepository, userRepository, s3)
	reservationService := reservation.NewReservationService(reservationRepository, foodPostRepository, userRepository, rewardService)
	ratingService := rating.NewRatingService(ratingRepository, reservationRepository, userRepository)
	impactService := impact.NewImpactService(impactRepository)
	assistantService := assistant.NewAssistantService()
	qualityService := quality.NewQualityService()

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodPostHandler := handlers.NewFoodPostHandler(foodPostService, validator)
	reservationHandler := handlers.NewReservationHandler(reservationService, validator)
	ratingHandler := handlers.NewRatingHandler(ratingService, validator)
	rewardHandler := handlers.NewRewardHandler(rewardService)
	impactHandler := handlers.NewImpactHandler(impactService)
	assistantHandler := handlers.NewAssistantHandler(assistantService, validator)
	qualityHandler := handlers.NewQualityHandler(qualityService, validator)

	// background sweep of posts past their pickup window
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("*/10 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		expired, err := foodPostService.ExpireOldPosts(ctx)
		if err != nil {
			log.Errorf("expiry sweep failed: %v", err)
			return
		}
		if expired > 0 {
			log.Infof("expiry sweep flipped %d posts", expired)
		}
	}); err != nil {
		return nil, err
	}
	scheduler.Start()

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		FoodPostHandler:    foodPostHandler,
		ReservationHandler: reservationHandler,
		RatingHandler:      ratingHandler,
		RewardHandler:      rewardHandler,
		ImpactHandler:      impactHandler,
		AssistantHandler:   assistantHandler,
		QualityHandler:     qualityHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
