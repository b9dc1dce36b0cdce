package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jayakrishnatangudu/Mini-Social-Platform/configs"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/handlers"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/middleware"
)

func PostRoutes(api fiber.Router, db *mongo.Database, cfg configs.Config) {
	posts := api.Group("/posts")

	// Reading the feed is public; every write requires a resolved identity.
	posts.Get("/", handlers.GetPostsHandler(db))
	posts.Post("/", middleware.RequireAuth(), handlers.CreatePostHandler(db, cfg))
	posts.Put("/:id/like", middleware.RequireAuth(), handlers.ToggleLikeHandler(db))
	posts.Post("/:id/comment", middleware.RequireAuth(), handlers.AddCommentHandler(db))
}
