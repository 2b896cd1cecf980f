package catalog

import (
	"context"

	"filmoteka/internal/domain"
)

type GenreRepository interface {
	ListAll(ctx context.Context) ([]domain.Genre, error)
	GetByID(ctx context.Context, id int64) (*domain.Genre, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	AttachToFilm(ctx context.Context, filmID, genreID int64) error
	DetachFromFilm(ctx context.Context, filmID, genreID int64) (bool, error)
}

type MpaRepository interface {
	ListAll(ctx context.Context) ([]domain.MpaRating, error)
	GetByID(ctx context.Context, id int64) (*domain.MpaRating, error)
}

// FilmChecker is the slice of the film store the catalog needs for
// validating film references on attach.
type FilmChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
