package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jayakrishnatangudu/Mini-Social-Platform/configs"
)

// Register mounts the whole /api surface.
func Register(app *fiber.App, db *mongo.Database, cfg configs.Config) {
	api := app.Group("/api")

	AuthRoutes(api, db, cfg)
	PostRoutes(api, db, cfg)
}
