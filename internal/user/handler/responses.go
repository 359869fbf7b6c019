package handler

import (
	"time"

	"ecrc42/internal/user/models"
	"ecrc42/internal/user/service"
)

type UserResponse struct {
	ID            string          `json:"id"`
	Lernname      string          `json:"lernname"`
	Role          string          `json:"role"`
	Email         string          `json:"email,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	Activity      models.Activity `json:"activity"`
	ActivityTotal int             `json:"activity_total"`
}

type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	AccessCode  string       `json:"access_code,omitempty"`
	User        UserResponse `json:"user"`
}

func FromUser(u *models.User) UserResponse {
	return UserResponse{
		ID:            u.ID.String(),
		Lernname:      u.Lernname,
		Role:          string(u.Role),
		Email:         u.Email,
		CreatedAt:     u.CreatedAt,
		Activity:      u.Activity,
		ActivityTotal: u.Activity.Total(),
	}
}

func FromSession(s *service.Session) *SessionResponse {
	return &SessionResponse{
		AccessToken: s.Token,
		TokenType:   "Bearer",
		ExpiresAt:   s.ExpiresAt,
		AccessCode:  s.AccessCode,
		User:        FromUser(s.User),
	}
}
