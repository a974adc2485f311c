package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

// mockFavoriteRepository はテスト用のFavoriteRepositoryモック実装です。
type mockFavoriteRepository struct {
	addFn    func(ctx context.Context, userID, animalID uint) error
	removeFn func(ctx context.Context, userID, animalID uint) error
	existsFn func(ctx context.Context, userID, animalID uint) (bool, error)
	listFn   func(ctx context.Context, userID uint) ([]uint, error)
}

func (m *mockFavoriteRepository) Add(ctx context.Context, userID, animalID uint) error {
	if m.addFn != nil {
		return m.addFn(ctx, userID, animalID)
	}
	return nil
}

func (m *mockFavoriteRepository) Remove(ctx context.Context, userID, animalID uint) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, userID, animalID)
	}
	return nil
}

func (m *mockFavoriteRepository) Exists(ctx context.Context, userID, animalID uint) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, userID, animalID)
	}
	return false, nil
}

func (m *mockFavoriteRepository) ListAnimalIDs(ctx context.Context, userID uint) ([]uint, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

// TestNewCachingFavoriteRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingFavoriteRepository_Defaults(t *testing.T) {
	t.Parallel()

	repo := NewCachingFavoriteRepository(nil, 0, &mockFavoriteRepository{}, "")

	if repo.ttl != 5*time.Minute {
		t.Errorf("expected default TTL 5m, got %v", repo.ttl)
	}
	if repo.namespace != "favorites" {
		t.Errorf("expected default namespace favorites, got %q", repo.namespace)
	}
}

// TestCachingFavoriteRepository_NilRedis はRedis未設定時にDBへ素通しすることを検証します。
func TestCachingFavoriteRepository_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockFavoriteRepository{
		listFn: func(ctx context.Context, userID uint) ([]uint, error) {
			return []uint{1, 2, 3}, nil
		},
	}
	repo := NewCachingFavoriteRepository(nil, time.Minute, inner, "favorites")

	ids, err := repo.ListAnimalIDs(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(ids))
	}
}

// TestCachingFavoriteRepository_CacheMissThenStore はキャッシュミス時に
// DBへフォールバックし、結果をキャッシュすることを検証します。
func TestCachingFavoriteRepository_CacheMissThenStore(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	dbCalls := 0
	inner := &mockFavoriteRepository{
		listFn: func(ctx context.Context, userID uint) ([]uint, error) {
			dbCalls++
			return []uint{10, 20}, nil
		},
	}
	repo := NewCachingFavoriteRepository(rdb, time.Minute, inner, "favorites")

	payload, _ := json.Marshal([]uint{10, 20})
	mock.ExpectGet("favorites:7").RedisNil()
	mock.ExpectSet("favorites:7", payload, time.Minute).SetVal("OK")

	ids, err := repo.ListAnimalIDs(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || dbCalls != 1 {
		t.Fatalf("expected 2 ids from 1 db call, got %d ids / %d calls", len(ids), dbCalls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("redis expectations: %v", err)
	}
}

// TestCachingFavoriteRepository_CacheHit はキャッシュヒット時にDBへ
// アクセスしないことを検証します。
func TestCachingFavoriteRepository_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	inner := &mockFavoriteRepository{
		listFn: func(ctx context.Context, userID uint) ([]uint, error) {
			t.Error("database must not be hit on a cache hit")
			return nil, nil
		},
	}
	repo := NewCachingFavoriteRepository(rdb, time.Minute, inner, "favorites")

	payload, _ := json.Marshal([]uint{10, 20})
	mock.ExpectGet("favorites:7").SetVal(string(payload))

	ids, err := repo.ListAnimalIDs(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != 10 {
		t.Fatalf("unexpected ids %v", ids)
	}
}

// TestCachingFavoriteRepository_AddInvalidates は書き込みがユーザーの
// キャッシュエントリを無効化することを検証します。
func TestCachingFavoriteRepository_AddInvalidates(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	repo := NewCachingFavoriteRepository(rdb, time.Minute, &mockFavoriteRepository{}, "favorites")

	mock.ExpectDel("favorites:7").SetVal(1)

	if err := repo.Add(context.Background(), 7, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("redis expectations: %v", err)
	}
}

// TestCachingFavoriteRepository_AddFailureSkipsInvalidation はDB書き込みが
// 失敗した場合、キャッシュへ触れないことを検証します。
func TestCachingFavoriteRepository_AddFailureSkipsInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	wantErr := errors.New("database error")
	inner := &mockFavoriteRepository{
		addFn: func(ctx context.Context, userID, animalID uint) error {
			return wantErr
		},
	}
	repo := NewCachingFavoriteRepository(rdb, time.Minute, inner, "favorites")

	err := repo.Add(context.Background(), 7, 10)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected database error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no redis command expected: %v", err)
	}
}

// TestCachingFavoriteRepository_CorruptedEntry は壊れたキャッシュエントリを
// 削除してDBへフォールバックすることを検証します。
func TestCachingFavoriteRepository_CorruptedEntry(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	inner := &mockFavoriteRepository{
		listFn: func(ctx context.Context, userID uint) ([]uint, error) {
			return []uint{1}, nil
		},
	}
	repo := NewCachingFavoriteRepository(rdb, time.Minute, inner, "favorites")

	payload, _ := json.Marshal([]uint{1})
	mock.ExpectGet("favorites:7").SetVal("not-json")
	mock.ExpectDel("favorites:7").SetVal(1)
	mock.ExpectSet("favorites:7", payload, time.Minute).SetVal("OK")

	ids, err := repo.ListAnimalIDs(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected db fallback result, got %v", ids)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("redis expectations: %v", err)
	}
}

// TestCachingFavoriteRepository_ExistsUsesCachedList はExistsがキャッシュ済み
// リストから回答することを検証します。
func TestCachingFavoriteRepository_ExistsUsesCachedList(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	inner := &mockFavoriteRepository{
		existsFn: func(ctx context.Context, userID, animalID uint) (bool, error) {
			t.Error("database must not be hit when the list is cached")
			return false, nil
		},
	}
	repo := NewCachingFavoriteRepository(rdb, time.Minute, inner, "favorites")

	payload, _ := json.Marshal([]uint{10, 20})
	mock.ExpectGet("favorites:7").SetVal(string(payload))

	ok, err := repo.Exists(context.Background(), 7, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected animal 20 to be favorited")
	}
}
