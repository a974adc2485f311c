package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"fypet_backend/internal/app/di"
	"fypet_backend/internal/app/router"
	animaladapters "fypet_backend/internal/feature/animals/adapters"
	animalhandler "fypet_backend/internal/feature/animals/transport/handler"
	animalusecase "fypet_backend/internal/feature/animals/usecase"
	authadapters "fypet_backend/internal/feature/auth/adapters"
	authhandler "fypet_backend/internal/feature/auth/transport/handler"
	authusecase "fypet_backend/internal/feature/auth/usecase"
	favoritehandler "fypet_backend/internal/feature/favorites/transport/handler"
	favoriteusecase "fypet_backend/internal/feature/favorites/usecase"
	lostpetadapters "fypet_backend/internal/feature/lostpets/adapters"
	lostpethandler "fypet_backend/internal/feature/lostpets/transport/handler"
	lostpetusecase "fypet_backend/internal/feature/lostpets/usecase"
	profileadapters "fypet_backend/internal/feature/profile/adapters"
	profilehandler "fypet_backend/internal/feature/profile/transport/handler"
	profileusecase "fypet_backend/internal/feature/profile/usecase"
	uploadhandler "fypet_backend/internal/feature/upload/transport/handler"
	uploadusecase "fypet_backend/internal/feature/upload/usecase"
	platformdb "fypet_backend/internal/platform/db"
	jwtmw "fypet_backend/internal/platform/jwt"
	platformredis "fypet_backend/internal/platform/redis"
)

func main() {
	// .env はローカル開発用。本番では環境変数を直接設定する
	_ = godotenv.Load()

	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	tokenRepo := authadapters.NewTokenGorm(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	animalRepo := animaladapters.NewAnimalGorm(db)
	lostPetRepo := lostpetadapters.NewLostPetGorm(db)
	profileRepo := profileadapters.NewProfileGorm(db)
	// Redisキャッシュでラップ
	favoriteRepo := di.NewFavoriteRepository(rdb, db)

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenRepo, sessionRepo, jwtGen, di.NewEmailSender())
	profileUC := profileusecase.NewProfileUsecase(profileRepo)
	animalUC := animalusecase.NewAnimalUsecase(animalRepo)
	lostPetUC := lostpetusecase.NewLostPetUsecase(lostPetRepo)
	favoriteUC := favoriteusecase.NewFavoriteUsecase(favoriteRepo, animalRepo)
	uploadUC := uploadusecase.NewUploadUsecase(di.NewFileStore(context.Background()))

	// ルータ生成
	r := router.NewRouter(router.Handlers{
		Auth:      authhandler.NewAuthHandler(authUC),
		Profile:   profilehandler.NewProfileHandler(profileUC),
		Animals:   animalhandler.NewAnimalHandler(animalUC),
		LostPets:  lostpethandler.NewLostPetHandler(lostPetUC),
		Favorites: favoritehandler.NewFavoriteHandler(favoriteUC),
		Upload:    uploadhandler.NewUploadHandler(uploadUC),
	})

	// ローカル保存のアップロードを配信
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	r.Static("/uploads", uploadDir)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
