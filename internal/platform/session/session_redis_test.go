package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fypet_backend/internal/feature/auth/domain/entity"
	"fypet_backend/internal/feature/auth/usecase"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

// createTestSession creates a session entity for testing.
func createTestSession(id string, userID uint, expiresIn time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestNewSessionRedis(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.client, "client is nil")
	assert.Equal(t, "session", repo.prefix)
}

func TestSessionRedis_Create(t *testing.T) {
	t.Run("success: create session", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")
		session := createTestSession("session-001", 1, 30*24*time.Hour)

		err := repo.Create(context.Background(), session)
		require.NoError(t, err)

		// Verify session exists in Redis
		data, err := client.Get(context.Background(), repo.sessionKey("session-001")).Result()
		assert.NoError(t, err)
		assert.NotEmpty(t, data)

		// Verify session ID is in user's session set
		isMember, err := client.SIsMember(context.Background(), repo.userSessionsKey(1), "session-001").Result()
		assert.NoError(t, err)
		assert.True(t, isMember)
	})

	t.Run("failure: expired session", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")
		session := createTestSession("expired-session", 1, -time.Hour)

		err := repo.Create(context.Background(), session)
		assert.Error(t, err)
	})
}

func TestSessionRedis_FindByID(t *testing.T) {
	t.Run("success: find session", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")
		session := createTestSession("find-session-id", 1, 30*24*time.Hour)
		require.NoError(t, repo.Create(context.Background(), session))

		got, err := repo.FindByID(context.Background(), "find-session-id")

		require.NoError(t, err)
		assert.Equal(t, session.ID, got.ID)
		assert.Equal(t, session.UserID, got.UserID)
		assert.Equal(t, "test-agent", got.UserAgent)
	})

	t.Run("failure: session not found", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		_, err := repo.FindByID(context.Background(), "nonexistent-id")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}

func TestSessionRedis_Revoke(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")
	session := createTestSession("revocable", 1, 30*24*time.Hour)
	require.NoError(t, repo.Create(context.Background(), session))

	require.NoError(t, repo.Revoke(context.Background(), "revocable"))

	// Revoked sessions stay readable for auditing but are no longer valid
	got, err := repo.FindByID(context.Background(), "revocable")
	require.NoError(t, err)
	assert.True(t, got.IsRevoked())
	assert.False(t, got.IsValid())
}

func TestSessionRedis_CountByUserID(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestSession("s1", 1, 30*24*time.Hour)))
	require.NoError(t, repo.Create(ctx, createTestSession("s2", 1, 30*24*time.Hour)))
	require.NoError(t, repo.Create(ctx, createTestSession("s3", 2, 30*24*time.Hour)))

	count, err := repo.CountByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Revoked sessions are no longer counted
	require.NoError(t, repo.Revoke(ctx, "s1"))
	count, err = repo.CountByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSessionRedis_DeleteOldestByUserID(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")
	ctx := context.Background()

	oldest := createTestSession("oldest", 1, 30*24*time.Hour)
	oldest.CreatedAt = time.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.Create(ctx, oldest))

	newer := createTestSession("newer", 1, 30*24*time.Hour)
	require.NoError(t, repo.Create(ctx, newer))

	require.NoError(t, repo.DeleteOldestByUserID(ctx, 1))

	_, err := repo.FindByID(ctx, "oldest")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	_, err = repo.FindByID(ctx, "newer")
	assert.NoError(t, err)
}

func TestSessionRedis_RevokeAllByUserID(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestSession("a", 1, 30*24*time.Hour)))
	require.NoError(t, repo.Create(ctx, createTestSession("b", 1, 30*24*time.Hour)))

	require.NoError(t, repo.RevokeAllByUserID(ctx, 1))

	count, err := repo.CountByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)
}
