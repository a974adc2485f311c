package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fypet_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	CreateFunc            func(ctx context.Context, user *entity.User) error
	FindByEmailFunc       func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc          func(ctx context.Context, id uint) (*entity.User, error)
	MarkEmailVerifiedFunc func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil // Default: success
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) MarkEmailVerified(ctx context.Context, id uint) error {
	if m.MarkEmailVerifiedFunc != nil {
		return m.MarkEmailVerifiedFunc(ctx, id)
	}
	return nil
}

// mockTokenRepository is an in-memory TokenRepository.
// Verification-token tests need real store/delete semantics, so this mock
// keeps state instead of delegating to func fields.
type mockTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]*entity.VerificationToken
}

func newMockTokenRepository() *mockTokenRepository {
	return &mockTokenRepository{tokens: map[string]*entity.VerificationToken{}}
}

func (m *mockTokenRepository) Create(ctx context.Context, token *entity.VerificationToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token.Token] = token
	return nil
}

func (m *mockTokenRepository) FindByToken(ctx context.Context, token string) (*entity.VerificationToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tokens[token]
	if !ok {
		return nil, ErrTokenNotFound
	}
	return t, nil
}

func (m *mockTokenRepository) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

func (m *mockTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for k, t := range m.tokens {
		if t.IsExpired() {
			delete(m.tokens, k)
			n++
		}
	}
	return n, nil
}

// mockSessionRepository is a mock implementation of the SessionRepository interface.
type mockSessionRepository struct {
	CreateFunc               func(ctx context.Context, session *entity.Session) error
	FindByIDFunc             func(ctx context.Context, id string) (*entity.Session, error)
	RevokeFunc               func(ctx context.Context, id string) error
	RevokeAllByUserIDFunc    func(ctx context.Context, userID uint) error
	CountByUserIDFunc        func(ctx context.Context, userID uint) (int64, error)
	DeleteOldestByUserIDFunc func(ctx context.Context, userID uint) error
}

func (m *mockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *mockSessionRepository) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrSessionNotFound
}

func (m *mockSessionRepository) Revoke(ctx context.Context, id string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, id)
	}
	return nil
}

func (m *mockSessionRepository) RevokeAllByUserID(ctx context.Context, userID uint) error {
	if m.RevokeAllByUserIDFunc != nil {
		return m.RevokeAllByUserIDFunc(ctx, userID)
	}
	return nil
}

func (m *mockSessionRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	if m.CountByUserIDFunc != nil {
		return m.CountByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockSessionRepository) DeleteOldestByUserID(ctx context.Context, userID uint) error {
	if m.DeleteOldestByUserIDFunc != nil {
		return m.DeleteOldestByUserIDFunc(ctx, userID)
	}
	return nil
}

// mockJWTGenerator is a mock implementation of the JWTGenerator interface.
type mockJWTGenerator struct {
	GenerateTokenFunc func(userID uint, email string) (string, error)
}

func (m *mockJWTGenerator) GenerateToken(userID uint, email string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, email)
	}
	// Default: return a dummy token
	return "mock-jwt-token", nil
}

// mockEmailSender records sent verification emails.
type mockEmailSender struct {
	mu   sync.Mutex
	sent []string // tokens
}

func (m *mockEmailSender) SendVerificationEmail(ctx context.Context, toEmail, userName, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, token)
	return nil
}

func (m *mockEmailSender) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

// newTestUsecase wires an authUsecase with sensible mock defaults.
func newTestUsecase(users *mockUserRepository, tokens *mockTokenRepository,
	sessions *mockSessionRepository, email *mockEmailSender) *authUsecase {
	if users == nil {
		users = &mockUserRepository{}
	}
	if tokens == nil {
		tokens = newMockTokenRepository()
	}
	if sessions == nil {
		sessions = &mockSessionRepository{}
	}
	if email == nil {
		email = &mockEmailSender{}
	}
	return NewAuthUsecase(users, tokens, sessions, &mockJWTGenerator{}, email)
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("successful registration hashes the password", func(t *testing.T) {
		users := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				// Verify that the password is hashed
				if user.Password == "segredo" {
					t.Errorf("password is not hashed")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("segredo")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				if user.EmailVerified {
					t.Errorf("new user must start unverified")
				}
				user.ID = 1
				return nil
			},
		}
		tokens := newMockTokenRepository()

		uc := newTestUsecase(users, tokens, nil, nil)
		user, err := uc.Register(context.Background(), RegisterInput{
			Name: "Maria", Email: "maria@example.com", Password: "segredo",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.AccountType != entity.AccountTypeIndividual {
			t.Errorf("expected default account type, got %q", user.AccountType)
		}
		// A verification token must have been issued
		if len(tokens.tokens) != 1 {
			t.Errorf("expected 1 verification token, got %d", len(tokens.tokens))
		}
	})

	t.Run("short password is rejected before any storage call", func(t *testing.T) {
		created := false
		users := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				created = true
				return nil
			},
		}

		uc := newTestUsecase(users, nil, nil, nil)
		_, err := uc.Register(context.Background(), RegisterInput{
			Name: "Maria", Email: "maria@example.com", Password: "curta",
		})

		if err == nil {
			t.Fatal("expected validation error")
		}
		if created {
			t.Error("user must not be created for an invalid password")
		}
	})

	t.Run("six characters is the accepted minimum", func(t *testing.T) {
		uc := newTestUsecase(nil, nil, nil, nil)
		if _, err := uc.Register(context.Background(), RegisterInput{
			Name: "Maria", Email: "maria@example.com", Password: "123456",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate email propagates ErrEmailAlreadyExists", func(t *testing.T) {
		users := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrEmailAlreadyExists
			},
		}

		uc := newTestUsecase(users, nil, nil, nil)
		_, err := uc.Register(context.Background(), RegisterInput{
			Name: "Maria", Email: "maria@example.com", Password: "segredo",
		})

		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("ong account type is preserved", func(t *testing.T) {
		var created *entity.User
		users := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				user.ID = 2
				created = user
				return nil
			},
		}

		uc := newTestUsecase(users, nil, nil, nil)
		_, err := uc.Register(context.Background(), RegisterInput{
			Name: "Abrigo Feliz", Email: "contato@abrigofeliz.org", Password: "segredo",
			AccountType: entity.AccountTypeOng,
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.AccountType != entity.AccountTypeOng {
			t.Errorf("expected ong account type, got %q", created.AccountType)
		}
	})

	t.Run("verification email is dispatched", func(t *testing.T) {
		email := &mockEmailSender{}

		uc := newTestUsecase(nil, nil, nil, email)
		_, err := uc.Register(context.Background(), RegisterInput{
			Name: "Maria", Email: "maria@example.com", Password: "segredo",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 送信はgoroutineで行われるため、少し待つ
		deadline := time.Now().Add(time.Second)
		for time.Now().Before(deadline) && email.sentCount() == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		if email.sentCount() != 1 {
			t.Fatalf("expected 1 verification email, got %d", email.sentCount())
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	// Hashed password for testing
	password := "segredo123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{ID: 1, Email: "maria@example.com", Password: string(hashedPassword)}

	t.Run("successful login returns both tokens", func(t *testing.T) {
		var createdSession *entity.Session
		users := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return testUser, nil
			},
		}
		sessions := &mockSessionRepository{
			CreateFunc: func(ctx context.Context, session *entity.Session) error {
				createdSession = session
				return nil
			},
		}

		uc := newTestUsecase(users, nil, sessions, nil)
		result, err := uc.Login(context.Background(), "maria@example.com", password, "test-agent", "127.0.0.1")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.AccessToken != "mock-jwt-token" {
			t.Errorf("unexpected access token %q", result.AccessToken)
		}
		if len(result.RefreshToken) != 64 {
			t.Errorf("expected 64-char refresh token, got %d chars", len(result.RefreshToken))
		}
		if createdSession == nil || createdSession.ID != result.RefreshToken {
			t.Error("session was not created with the refresh token as ID")
		}
		if createdSession.UserAgent != "test-agent" || createdSession.IPAddress != "127.0.0.1" {
			t.Error("session metadata not recorded")
		}
	})

	t.Run("wrong password returns generic error", func(t *testing.T) {
		users := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return testUser, nil
			},
		}

		uc := newTestUsecase(users, nil, nil, nil)
		_, err := uc.Login(context.Background(), "maria@example.com", "errada", "", "")

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email returns the same generic error", func(t *testing.T) {
		uc := newTestUsecase(nil, nil, nil, nil)
		_, err := uc.Login(context.Background(), "ninguem@example.com", password, "", "")

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("session cap evicts the oldest session", func(t *testing.T) {
		evicted := false
		users := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return testUser, nil
			},
		}
		sessions := &mockSessionRepository{
			CountByUserIDFunc: func(ctx context.Context, userID uint) (int64, error) {
				return maxSessionsPerUser, nil
			},
			DeleteOldestByUserIDFunc: func(ctx context.Context, userID uint) error {
				evicted = true
				return nil
			},
		}

		uc := newTestUsecase(users, nil, sessions, nil)
		if _, err := uc.Login(context.Background(), "maria@example.com", password, "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !evicted {
			t.Error("expected oldest session to be evicted at the cap")
		}
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	revokedID := ""
	sessions := &mockSessionRepository{
		RevokeFunc: func(ctx context.Context, id string) error {
			revokedID = id
			return nil
		},
	}

	uc := newTestUsecase(nil, nil, sessions, nil)
	if err := uc.Logout(context.Background(), "some-refresh-token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revokedID != "some-refresh-token" {
		t.Errorf("expected revoke of the given token, got %q", revokedID)
	}
}

func TestAuthUsecase_VerifyEmail(t *testing.T) {
	t.Run("valid token marks the user verified and is consumed", func(t *testing.T) {
		verifiedID := uint(0)
		users := &mockUserRepository{
			MarkEmailVerifiedFunc: func(ctx context.Context, id uint) error {
				verifiedID = id
				return nil
			},
		}
		tokens := newMockTokenRepository()
		_ = tokens.Create(context.Background(), &entity.VerificationToken{
			Token: "valid-token", UserID: 5, ExpiresAt: time.Now().Add(time.Hour),
		})

		uc := newTestUsecase(users, tokens, nil, nil)
		if err := uc.VerifyEmail(context.Background(), "valid-token"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if verifiedID != 5 {
			t.Errorf("expected user 5 verified, got %d", verifiedID)
		}

		// Tokens are single-use: the second presentation must fail as unknown
		err := uc.VerifyEmail(context.Background(), "valid-token")
		if !errors.Is(err, ErrTokenNotFound) {
			t.Fatalf("expected ErrTokenNotFound on reuse, got %v", err)
		}
	})

	t.Run("expired token is deleted and user stays unverified", func(t *testing.T) {
		markCalled := false
		users := &mockUserRepository{
			MarkEmailVerifiedFunc: func(ctx context.Context, id uint) error {
				markCalled = true
				return nil
			},
		}
		tokens := newMockTokenRepository()
		_ = tokens.Create(context.Background(), &entity.VerificationToken{
			Token: "stale-token", UserID: 5, ExpiresAt: time.Now().Add(-time.Minute),
		})

		uc := newTestUsecase(users, tokens, nil, nil)
		err := uc.VerifyEmail(context.Background(), "stale-token")

		if !errors.Is(err, ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired, got %v", err)
		}
		if markCalled {
			t.Error("expired token must not verify the user")
		}
		// The stale token is consumed too
		if _, err := tokens.FindByToken(context.Background(), "stale-token"); !errors.Is(err, ErrTokenNotFound) {
			t.Error("expired token should have been deleted")
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		uc := newTestUsecase(nil, nil, nil, nil)
		err := uc.VerifyEmail(context.Background(), "never-issued")

		if !errors.Is(err, ErrTokenNotFound) {
			t.Fatalf("expected ErrTokenNotFound, got %v", err)
		}
	})
}
