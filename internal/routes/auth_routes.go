package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jayakrishnatangudu/Mini-Social-Platform/configs"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/handlers"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/middleware"
)

func AuthRoutes(api fiber.Router, db *mongo.Database, cfg configs.Config) {
	auth := api.Group("/auth")

	auth.Post("/register", handlers.RegisterHandler(db, cfg))
	auth.Post("/login", handlers.LoginHandler(db, cfg))
	auth.Get("/me", middleware.RequireAuth(), handlers.MeHandler(db))
}
