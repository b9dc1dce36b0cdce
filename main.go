package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"github.com/jayakrishnatangudu/Mini-Social-Platform/bootstrap"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/configs"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/database"
	_ "github.com/jayakrishnatangudu/Mini-Social-Platform/docs"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/middleware"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/routes"
)

// @title        Mini Social Platform API
// @version      1.0
// @description  Social post feed: register/login, create posts, like, comment.
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := configs.Load()
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Static("/uploads", cfg.UploadDir)

	app.Use(middleware.JWTAuth(cfg.JWTSecret))

	routes.Register(app, db, cfg)

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
