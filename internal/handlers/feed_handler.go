package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jayakrishnatangudu/Mini-Social-Platform/configs"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/dto"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/repository"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/services"
)

// GetPostsHandler godoc
// @Summary      Public feed
// @Description  List posts newest first with page/limit pagination
// @Tags         posts
// @Produce      json
// @Param        page   query  int  false  "Page number"      minimum(1) default(1)
// @Param        limit  query  int  false  "Posts per page"   minimum(1) maximum(50) default(10)
// @Success      200    {object}  dto.FeedResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /posts [get]
func GetPostsHandler(db *mongo.Database) fiber.Handler {
	posts := repository.NewPostRepository(db)
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", configs.DefaultLimitPosts)

		resp, err := services.ListFeed(c.Context(), posts, page, limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Server error while fetching posts"})
		}
		return c.JSON(resp)
	}
}
