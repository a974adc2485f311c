package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	animalentity "fypet_backend/internal/feature/animals/domain/entity"
	authadapters "fypet_backend/internal/feature/auth/adapters"
	authentity "fypet_backend/internal/feature/auth/domain/entity"
	favadapters "fypet_backend/internal/feature/favorites/adapters"
	lostpetentity "fypet_backend/internal/feature/lostpets/domain/entity"
	profileentity "fypet_backend/internal/feature/profile/domain/entity"
)

// OpenDB opens the application database.
// When DB_HOST is set a Postgres connection is used; otherwise it falls back
// to a local SQLite file so the service can run without infrastructure.
func OpenDB() *gorm.DB {
	cfg := &gorm.Config{
		// 重複キーをgorm.ErrDuplicatedKeyへ変換する（アダプタ層のエラー判定が依存）
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)

	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host,
			envOr("DB_PORT", "5432"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			envOr("DB_SSLMODE", "disable"),
		)

		deadline := time.Now().Add(60 * time.Second)
		for {
			db, err = gorm.Open(postgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				log.Fatalf("DB connect failed after 60s: %v", err)
			}
			log.Printf("DB connect failed, retrying...: %v", err)
			time.Sleep(3 * time.Second)
		}
	} else {
		path := envOr("DB_PATH", "./fypet.db")
		db, err = gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			log.Fatalf("failed to open sqlite database: %v", err)
		}
		log.Println("USING_SQLITE:", path)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&authadapters.TokenModel{},
			&profileentity.Profile{},
			&animalentity.Animal{},
			&lostpetentity.LostPet{},
			&favadapters.FavoriteModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
