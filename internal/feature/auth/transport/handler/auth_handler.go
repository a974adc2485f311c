// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fypet_backend/internal/feature/auth/domain/entity"
	"fypet_backend/internal/feature/auth/transport/http/dto"
	"fypet_backend/internal/feature/auth/usecase"
	jwtmw "fypet_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、確認メールを送信します。
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	// Login はユーザーを認証し、成功時にトークンの組を返します。
	Login(ctx context.Context, email, password, userAgent, ipAddress string) (*usecase.LoginResult, error)
	// Logout はリフレッシュトークンのセッションを失効させます。
	Logout(ctx context.Context, refreshToken string) error
	// GetUser はIDでユーザーを取得します。
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	// VerifyEmail は確認トークンを検証して消費します。
	VerifyEmail(ctx context.Context, token string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時は201と作成されたユーザーを返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Phone:       req.Phone,
		AccountType: req.AccountType,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register failed: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	slog.Info("user registered", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.UserInfoFromEntity(user))
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はアクセストークンとリフレッシュトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginResp{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         dto.UserInfoFromEntity(result.User),
	})
}

// Logout はログアウトAPIエンドポイントを処理します。
// リフレッシュトークンが未知でも200を返します（結果は同じ「ログアウト済み」のため）。
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh token is required"})
		return
	}
	if err := h.auth.Logout(c.Request.Context(), req.RefreshToken); err != nil &&
		!errors.Is(err, usecase.ErrSessionNotFound) {
		slog.Error("logout failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// Me は認証ユーザー自身の情報を返すAPIエンドポイントを処理します。
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	user, err := h.auth.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("get user failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user"})
		return
	}
	c.JSON(http.StatusOK, dto.UserInfoFromEntity(user))
}

// VerifyEmail はメール確認APIエンドポイントを処理します。
// トークンはクエリパラメータで受け取ります（メール内リンクから遷移するため）。
// - トークン未指定は400
// - 未知または使用済みトークンは404
// - 期限切れトークンは410 Gone
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if err := h.auth.VerifyEmail(c.Request.Context(), token); err != nil {
		switch {
		case errors.Is(err, usecase.ErrTokenNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "verification token not found"})
		case errors.Is(err, usecase.ErrTokenExpired):
			c.JSON(http.StatusGone, gin.H{"error": "verification token expired"})
		default:
			slog.Error("email verification failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify email"})
		}
		return
	}
	slog.Info("email verified")
	c.JSON(http.StatusOK, gin.H{"message": "email verified"})
}
