// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

import (
	"time"

	"fypet_backend/internal/feature/auth/domain/entity"
)

// RegisterReq represents the request body for user registration.
type RegisterReq struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Phone       string `json:"phone"`
	AccountType string `json:"accountType"`
}

// LoginReq represents the request body for user login.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LogoutReq carries the refresh token to revoke.
type LogoutReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserInfo is the public JSON representation of a user.
// The password hash never leaves the server.
type UserInfo struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	AccountType   string    `json:"accountType"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

// LoginResp is the response body for a successful login.
type LoginResp struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         UserInfo `json:"user"`
}

// UserInfoFromEntity converts a domain user to its public representation.
func UserInfoFromEntity(u *entity.User) UserInfo {
	return UserInfo{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		AccountType:   u.AccountType,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}
