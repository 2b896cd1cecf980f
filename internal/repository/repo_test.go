package repository

import (
	"context"
	"testing"
	"time"

	"filmoteka/internal/database"
	"filmoteka/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "failed to open test database")

	// A single connection keeps every statement on the same in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	require.NoError(t, SeedCatalog(db))
	return db
}

func createTestUser(t *testing.T, repo *UserRepository, login string) *domain.User {
	t.Helper()

	u := &domain.User{
		Email:    login + "@example.com",
		Login:    login,
		Name:     login,
		Birthday: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func createTestFilm(t *testing.T, repo *FilmRepository, name string, genreIDs ...int64) *domain.Film {
	t.Helper()

	f := &domain.Film{
		Name:        name,
		Description: "test film",
		ReleaseDate: time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC),
		Duration:    136,
		Mpa:         &domain.MpaRating{ID: 1},
	}
	for _, id := range genreIDs {
		f.Genres = append(f.Genres, domain.Genre{ID: id})
	}

	created, err := repo.Create(context.Background(), f)
	require.NoError(t, err)
	return created
}
