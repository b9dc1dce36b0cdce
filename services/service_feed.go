package services

import (
	"context"

	"github.com/jayakrishnatangudu/Mini-Social-Platform/configs"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/dto"
	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/repository"
)

// ListFeed returns one page of the public feed, newest first, with the
// pagination summary. Reading an empty or out-of-range page is not an
// error; it yields an empty posts array.
func ListFeed(ctx context.Context, posts *repository.PostRepository, page, limit int) (*dto.FeedResponse, error) {
	page, limit = clampPaging(page, limit)

	total, err := posts.Count(ctx)
	if err != nil {
		return nil, err
	}

	skip := int64(page-1) * int64(limit)
	items, err := posts.ListPage(ctx, skip, int64(limit))
	if err != nil {
		return nil, err
	}

	return &dto.FeedResponse{
		Posts:      items,
		Pagination: NewPagination(total, page, limit),
	}, nil
}

func NewPagination(total int64, page, limit int) dto.Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return dto.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalPosts:  total,
		HasMore:     page < totalPages,
	}
}

func clampPaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = configs.DefaultLimitPosts
	}
	if limit > configs.MaxLimitPosts {
		limit = configs.MaxLimitPosts
	}
	return page, limit
}
