package http

import (
	"calendarhub/internal/model"
	"calendarhub/internal/user"
)

// --- Request DTOs ---

type createReq struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"  binding:"required,min=1,max=255"`
}

func (r createReq) toInput() user.CreateUserInput {
	return user.CreateUserInput{
		Email: r.Email,
		Name:  r.Name,
	}
}

// --- Response DTOs ---

type createResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *handler) newCreateResp(u model.User) createResp {
	return createResp{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
