package dto

import "github.com/jayakrishnatangudu/Mini-Social-Platform/model"

// CreatePostDTO is the JSON body of POST /posts. When the request is
// multipart, content comes from the form and image from the uploaded file.
type CreatePostDTO struct {
	Content string `json:"content" form:"content" example:"hello!"`
	Image   string `json:"image"   form:"image"   example:"/uploads/cat.png"`
}

type PostEnvelope struct {
	Message string         `json:"message" example:"Post created successfully"`
	Post    model.FeedPost `json:"post"`
}
