// Package dto defines data transfer objects for the profile feature's HTTP transport layer.
package dto

import "fypet_backend/internal/feature/profile/domain/entity"

// UpdateProfileReq represents the request body for a profile update.
// Nil fields are left unchanged.
type UpdateProfileReq struct {
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zipCode"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
	UserType  *string `json:"userType"`
}

// ProfileResp is the JSON representation of a profile.
type ProfileResp struct {
	UserID    uint   `json:"userId"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
	UserType  string `json:"userType"`
}

// ProfileRespFromEntity converts a domain profile to its JSON representation.
func ProfileRespFromEntity(p *entity.Profile) ProfileResp {
	return ProfileResp{
		UserID:    p.UserID,
		Phone:     p.Phone,
		Address:   p.Address,
		City:      p.City,
		State:     p.State,
		ZipCode:   p.ZipCode,
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
		UserType:  p.UserType,
	}
}
