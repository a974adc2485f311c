// Package usecase はprofileフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"fypet_backend/internal/feature/profile/domain/entity"
)

// ErrProfileNotFound is returned when a user has never saved a profile.
var ErrProfileNotFound = errors.New("profile not found")

// ErrInvalidUserType is returned when an update carries an unknown user type.
var ErrInvalidUserType = errors.New("user type must be individual or ong")

// ProfileRepository abstracts the persistence layer for user profiles.
type ProfileRepository interface {
	// FindByUserID retrieves the profile of a user.
	// It returns ErrProfileNotFound when the user never saved one.
	FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error)

	// Upsert creates or replaces the user's profile.
	Upsert(ctx context.Context, profile *entity.Profile) error
}

// UpdateProfileInput は更新するプロフィールのフィールドです。
// nilのフィールドは変更されません。
type UpdateProfileInput struct {
	Phone     *string
	Address   *string
	City      *string
	State     *string
	ZipCode   *string
	Bio       *string
	AvatarURL *string
	UserType  *string
}

// profileUsecase はプロフィール操作のビジネスロジックを実装します。
type profileUsecase struct {
	profiles ProfileRepository
}

// NewProfileUsecase はprofileUsecaseの新しいインスタンスを生成します。
func NewProfileUsecase(profiles ProfileRepository) *profileUsecase {
	return &profileUsecase{profiles: profiles}
}

// Get はユーザーのプロフィールを取得します。
// 未保存のユーザーには空のプロフィールを返します（エラーにしません）。
func (u *profileUsecase) Get(ctx context.Context, userID uint) (*entity.Profile, error) {
	profile, err := u.profiles.FindByUserID(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		return &entity.Profile{UserID: userID, UserType: entity.UserTypeIndividual}, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Update はプロフィールを部分更新します。初回保存時は新規作成します。
func (u *profileUsecase) Update(ctx context.Context, userID uint, in UpdateProfileInput) (*entity.Profile, error) {
	if in.UserType != nil && !entity.ValidUserType(*in.UserType) {
		return nil, ErrInvalidUserType
	}

	profile, err := u.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Phone != nil {
		profile.Phone = *in.Phone
	}
	if in.Address != nil {
		profile.Address = *in.Address
	}
	if in.City != nil {
		profile.City = *in.City
	}
	if in.State != nil {
		profile.State = *in.State
	}
	if in.ZipCode != nil {
		profile.ZipCode = *in.ZipCode
	}
	if in.Bio != nil {
		profile.Bio = *in.Bio
	}
	if in.AvatarURL != nil {
		profile.AvatarURL = *in.AvatarURL
	}
	if in.UserType != nil {
		profile.UserType = *in.UserType
	}

	if err := u.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
