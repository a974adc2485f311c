// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"fypet_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 6

	// verificationTokenTTL は確認メールリンクの有効期限です。
	verificationTokenTTL = 24 * time.Hour

	// sessionTTL はリフレッシュトークンの有効期限です。
	sessionTTL = 30 * 24 * time.Hour

	// maxSessionsPerUser はユーザーごとの同時セッション数の上限です。
	// 上限に達した場合、最も古いセッションが削除されます。
	maxSessionsPerUser = 5
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// MarkEmailVerified はユーザーのメール確認済みフラグを立てます。
	MarkEmailVerified(ctx context.Context, id uint) error
}

// TokenRepository はメール確認トークンの永続化層を抽象化します。
type TokenRepository interface {
	// Create は新しい確認トークンを永続化します。
	Create(ctx context.Context, token *entity.VerificationToken) error

	// FindByToken はトークン値で確認トークンを取得します。
	// 存在しない場合、ErrTokenNotFoundを返します。
	FindByToken(ctx context.Context, token string) (*entity.VerificationToken, error)

	// Delete はトークンを削除します。存在しない場合もエラーにしません。
	Delete(ctx context.Context, token string) error

	// DeleteExpired は期限切れのトークンをすべて削除し、削除件数を返します。
	DeleteExpired(ctx context.Context) (int64, error)
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// EmailSender は確認メールの送信を抽象化します。
// 本番ではSMTP実装、開発ではログ出力実装を注入します。
type EmailSender interface {
	// SendVerificationEmail は確認リンク付きのメールを送信します。
	SendVerificationEmail(ctx context.Context, toEmail, userName, token string) error
}

// RegisterInput は新規登録の入力データです。
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Phone       string
	AccountType string
}

// LoginResult はログイン成功時に発行されるトークンの組です。
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	tokens       TokenRepository
	sessions     SessionRepository
	jwtGenerator JWTGenerator
	email        EmailSender
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenRepository, sessions SessionRepository,
	jwtGenerator JWTGenerator, email EmailSender) *authUsecase {
	return &authUsecase{
		users:        users,
		tokens:       tokens,
		sessions:     sessions,
		jwtGenerator: jwtGenerator,
		email:        email,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// newRandomToken は64文字の16進トークンを生成します。
// セッションIDとメール確認トークンの両方に使用します。
func newRandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、
// メール確認トークンを発行して確認メールを送信します。
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	// パスワード強度を検証
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	accountType := in.AccountType
	if accountType == "" {
		accountType = entity.AccountTypeIndividual
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:        in.Name,
		Email:       in.Email,
		Password:    string(hashed),
		Phone:       in.Phone,
		AccountType: accountType,
		Role:        entity.RoleUser,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// 確認トークンを発行（Unverified → TokenIssued）
	tokenValue, err := newRandomToken()
	if err != nil {
		return nil, err
	}
	token := &entity.VerificationToken{
		Token:     tokenValue,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: time.Now().Add(verificationTokenTTL),
	}
	if err := u.tokens.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store verification token: %w", err)
	}

	// メール送信はベストエフォート。失敗しても登録は成立し、
	// ユーザーは再発行フローでトークンを取り直せます。
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := u.email.SendVerificationEmail(ctx, user.Email, user.Name, tokenValue); err != nil {
			slog.Warn("verification email dispatch failed", "email", user.Email, "error", err)
		}
	}()

	return user, nil
}

// Login はユーザーを認証し、成功時にJWTアクセストークンとリフレッシュトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password, userAgent, ipAddress string) (*LoginResult, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	// 注入されたジェネレーターを使用してJWTトークンを生成
	accessToken, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	// セッション（リフレッシュトークン）を作成
	refreshToken, err := u.createSession(ctx, user.ID, userAgent, ipAddress)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// createSession は新しいセッションを作成します。
// セッション数が上限に達している場合、最も古いセッションを削除します。
func (u *authUsecase) createSession(ctx context.Context, userID uint, userAgent, ipAddress string) (string, error) {
	count, err := u.sessions.CountByUserID(ctx, userID)
	if err == nil && count >= maxSessionsPerUser {
		if err := u.sessions.DeleteOldestByUserID(ctx, userID); err != nil {
			slog.Warn("failed to evict oldest session", "user_id", userID, "error", err)
		}
	}

	id, err := newRandomToken()
	if err != nil {
		return "", err
	}
	session := &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// Logout は指定されたリフレッシュトークンのセッションを失効させます。
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	return u.sessions.Revoke(ctx, refreshToken)
}

// GetUser はIDでユーザーを取得します。auth.me相当の問い合わせに使用します。
func (u *authUsecase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// VerifyEmail は確認トークンを検証し、ユーザーを確認済みに遷移させます。
// トークンは単回使用です。成功時は即座に削除され、再提示はErrTokenNotFoundになります。
// 期限切れトークンの提示はトークンを削除した上でErrTokenExpiredを返し、
// ユーザー状態はUnverifiedのまま変わりません。
func (u *authUsecase) VerifyEmail(ctx context.Context, tokenValue string) error {
	token, err := u.tokens.FindByToken(ctx, tokenValue)
	if err != nil {
		return err
	}

	if token.IsExpired() {
		// 期限切れトークンはその場で消費される
		if err := u.tokens.Delete(ctx, tokenValue); err != nil {
			slog.Warn("failed to delete expired token", "error", err)
		}
		return ErrTokenExpired
	}

	if err := u.users.MarkEmailVerified(ctx, token.UserID); err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}

	// リプレイ防止のため、検証成功後すぐに削除する
	return u.tokens.Delete(ctx, tokenValue)
}
