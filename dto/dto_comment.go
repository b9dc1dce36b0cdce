package dto

import "github.com/jayakrishnatangudu/Mini-Social-Platform/model"

type CreateCommentReq struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}

type CommentEnvelope struct {
	Message       string         `json:"message" example:"Comment added successfully"`
	Post          model.FeedPost `json:"post"`
	CommentsCount int            `json:"commentsCount" example:"3"`
}
