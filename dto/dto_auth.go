package dto

import "github.com/jayakrishnatangudu/Mini-Social-Platform/model"

type RegisterReq struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Message string     `json:"message" example:"Login successful"`
	Token   string     `json:"token"`
	User    model.User `json:"user"`
}
