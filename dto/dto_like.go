package dto

import "github.com/jayakrishnatangudu/Mini-Social-Platform/model"

type LikeEnvelope struct {
	Message    string         `json:"message" example:"Post liked"`
	Post       model.FeedPost `json:"post"`
	LikesCount int            `json:"likesCount" example:"2"`
}
