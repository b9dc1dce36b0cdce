package dto

import "github.com/jayakrishnatangudu/Mini-Social-Platform/model"

type Pagination struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages"  example:"5"`
	TotalPosts  int64 `json:"totalPosts"  example:"42"`
	HasMore     bool  `json:"hasMore"     example:"true"`
}

type FeedResponse struct {
	Posts      []model.FeedPost `json:"posts"`
	Pagination Pagination       `json:"pagination"`
}
