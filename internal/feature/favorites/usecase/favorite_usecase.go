// Package usecase はfavoritesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"fypet_backend/internal/feature/animals/domain/entity"
)

// FavoriteRepository abstracts the persistence layer for favorite marks.
// A favorite is the pair (userID, animalID); adding one that already
// exists and removing one that does not are both no-ops.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, animalID uint) error
	Remove(ctx context.Context, userID, animalID uint) error
	Exists(ctx context.Context, userID, animalID uint) (bool, error)
	ListAnimalIDs(ctx context.Context, userID uint) ([]uint, error)
}

// AnimalFinder resolves favorited IDs into full listings.
type AnimalFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.Animal, error)
}

// favoriteUsecase はお気に入り操作のビジネスロジックを実装します。
type favoriteUsecase struct {
	favorites FavoriteRepository
	animals   AnimalFinder
}

// NewFavoriteUsecase はfavoriteUsecaseの新しいインスタンスを生成します。
func NewFavoriteUsecase(favorites FavoriteRepository, animals AnimalFinder) *favoriteUsecase {
	return &favoriteUsecase{favorites: favorites, animals: animals}
}

// Add はお気に入りに追加します。既に追加済みでも成功扱いです（冪等）。
func (u *favoriteUsecase) Add(ctx context.Context, userID, animalID uint) error {
	// 存在しない掲載はお気に入りにできない
	if _, err := u.animals.FindByID(ctx, animalID); err != nil {
		return err
	}
	return u.favorites.Add(ctx, userID, animalID)
}

// Remove はお気に入りから削除します。未追加でも成功扱いです（冪等）。
func (u *favoriteUsecase) Remove(ctx context.Context, userID, animalID uint) error {
	return u.favorites.Remove(ctx, userID, animalID)
}

// IsFavorite は掲載がお気に入り済みかを返します。
func (u *favoriteUsecase) IsFavorite(ctx context.Context, userID, animalID uint) (bool, error) {
	return u.favorites.Exists(ctx, userID, animalID)
}

// List はお気に入りの掲載一覧を返します。
// 既に削除された掲載はスキップします（エラーにしません）。
func (u *favoriteUsecase) List(ctx context.Context, userID uint) ([]entity.Animal, error) {
	ids, err := u.favorites.ListAnimalIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Animal, 0, len(ids))
	for _, id := range ids {
		animal, err := u.animals.FindByID(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, *animal)
	}
	return out, nil
}
