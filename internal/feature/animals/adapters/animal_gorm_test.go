package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fypet_backend/internal/feature/animals/domain/entity"
	"fypet_backend/internal/feature/animals/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Animal{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func seedAnimal(t *testing.T, repo *animalGorm, a entity.Animal) *entity.Animal {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &a))
	return &a
}

func TestAnimalGorm_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnimalGorm(db)

	created := seedAnimal(t, repo, entity.Animal{
		UserID:    7,
		Name:      "Thor",
		Species:   "dog",
		Breed:     "Golden Retriever",
		Status:    entity.StatusAvailable,
		PhotoURLs: []string{"https://cdn.example.com/thor-1.jpg", "https://cdn.example.com/thor-2.jpg"},
	})
	require.NotZero(t, created.ID)

	got, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Thor", got.Name)
	// PhotoURLs round-trips through the JSON serializer
	assert.Equal(t, created.PhotoURLs, got.PhotoURLs)
}

func TestAnimalGorm_FindMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnimalGorm(db)

	_, err := repo.FindByID(context.Background(), 404)

	assert.ErrorIs(t, err, usecase.ErrAnimalNotFound)
}

func TestAnimalGorm_ListAvailable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnimalGorm(db)

	seedAnimal(t, repo, entity.Animal{UserID: 1, Name: "Thor", Species: "dog", Status: entity.StatusAvailable})
	seedAnimal(t, repo, entity.Animal{UserID: 1, Name: "Rex", Species: "dog", Status: entity.StatusAdopted})
	seedAnimal(t, repo, entity.Animal{UserID: 2, Name: "Luna", Species: "cat", Status: entity.StatusAvailable})

	got, err := repo.ListAvailable(context.Background(), 50)
	require.NoError(t, err)

	// 譲渡済みはカタログに出ない
	require.Len(t, got, 2)
	for _, a := range got {
		assert.Equal(t, entity.StatusAvailable, a.Status)
	}
}

func TestAnimalGorm_ListAvailableLimit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnimalGorm(db)

	for i := 0; i < 5; i++ {
		seedAnimal(t, repo, entity.Animal{UserID: 1, Name: "Pet", Species: "dog", Status: entity.StatusAvailable})
	}

	got, err := repo.ListAvailable(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestAnimalGorm_ListByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnimalGorm(db)

	seedAnimal(t, repo, entity.Animal{UserID: 1, Name: "Thor", Species: "dog", Status: entity.StatusAvailable})
	// 自分の一覧にはステータスに関係なく全掲載が出る
	seedAnimal(t, repo, entity.Animal{UserID: 1, Name: "Rex", Species: "dog", Status: entity.StatusAdopted})
	seedAnimal(t, repo, entity.Animal{UserID: 2, Name: "Luna", Species: "cat", Status: entity.StatusAvailable})

	got, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAnimalGorm_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnimalGorm(db)

	created := seedAnimal(t, repo, entity.Animal{UserID: 1, Name: "Thor", Species: "dog", Status: entity.StatusAvailable})

	created.Status = entity.StatusPending
	require.NoError(t, repo.Save(context.Background(), created))

	got, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, got.Status)
}
