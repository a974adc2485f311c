package adapters

import "time"

// FavoriteModel is the GORM model for a favorite mark.
// The composite unique index makes duplicate inserts detectable,
// which keeps Add idempotent.
type FavoriteModel struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_animal"`
	AnimalID  uint `gorm:"not null;uniqueIndex:idx_user_animal"`
	CreatedAt time.Time
}

// TableName specifies the database table name.
func (FavoriteModel) TableName() string {
	return "favorites"
}
