package router

import (
	"os"

	animalhandler "fypet_backend/internal/feature/animals/transport/handler"
	authhandler "fypet_backend/internal/feature/auth/transport/handler"
	favoritehandler "fypet_backend/internal/feature/favorites/transport/handler"
	lostpethandler "fypet_backend/internal/feature/lostpets/transport/handler"
	profilehandler "fypet_backend/internal/feature/profile/transport/handler"
	uploadhandler "fypet_backend/internal/feature/upload/transport/handler"
	jwtmw "fypet_backend/internal/platform/jwt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups the feature handlers the router wires up.
type Handlers struct {
	Auth      *authhandler.AuthHandler
	Profile   *profilehandler.ProfileHandler
	Animals   *animalhandler.AnimalHandler
	LostPets  *lostpethandler.LostPetHandler
	Favorites *favoritehandler.FavoriteHandler
	Upload    *uploadhandler.UploadHandler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	// CORSはルート登録前に適用する（ginは登録時点のミドルウェア列を固定する）
	// Webフロントエンドからのアクセスを許可
	corsConfig := cors.DefaultConfig()
	if origin := os.Getenv("CORS_ALLOW_ORIGIN"); origin != "" {
		corsConfig.AllowOrigins = []string{origin}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", health)
	// 新規ユーザー登録
	r.POST("/register", h.Auth.Register)
	// ログイン（JWT 発行）
	r.POST("/login", h.Auth.Login)
	// メール確認（メール内リンクから遷移）
	r.GET("/verify-email", h.Auth.VerifyEmail)
	// カタログは未ログインでも閲覧可能
	r.GET("/animals", h.Animals.List)
	r.GET("/animals/:id", h.Animals.Get)
	// 迷子ペット一覧も公開
	r.GET("/lost-pets", h.LostPets.List)
	r.GET("/lost-pets/:id", h.LostPets.Get)

	// 認証必須のルート
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", h.Auth.Me)

		auth.GET("/profile", h.Profile.Get)
		auth.PUT("/profile", h.Profile.Update)

		auth.POST("/animals", h.Animals.Create)
		auth.GET("/my/animals", h.Animals.ListMine)
		auth.PUT("/animals/:id", h.Animals.Update)

		auth.POST("/lost-pets", h.LostPets.Create)
		auth.GET("/my/lost-pets", h.LostPets.ListMine)
		auth.PUT("/lost-pets/:id/status", h.LostPets.UpdateStatus)

		auth.GET("/favorites", h.Favorites.List)
		auth.PUT("/favorites/:animalId", h.Favorites.Add)
		auth.DELETE("/favorites/:animalId", h.Favorites.Remove)
		auth.GET("/favorites/:animalId", h.Favorites.Check)

		auth.POST("/upload", h.Upload.File)
	}

	return r
}
