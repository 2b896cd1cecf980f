package catalog

import (
	"context"

	"filmoteka/internal/domain"
)

// Service exposes the genre and MPA reference data plus the single-genre
// attach/detach operations on films. The catalogs themselves are read-only
// here; rows come from the seed command.
type Service struct {
	genres GenreRepository
	mpa    MpaRepository
	films  FilmChecker
}

func NewService(genres GenreRepository, mpa MpaRepository, films FilmChecker) *Service {
	return &Service{genres: genres, mpa: mpa, films: films}
}

func (s *Service) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	return s.genres.ListAll(ctx)
}

func (s *Service) GetGenre(ctx context.Context, id int64) (*domain.Genre, error) {
	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, &domain.NotFoundError{Kind: "genre", ID: id}
	}
	return genre, nil
}

func (s *Service) ListMpa(ctx context.Context) ([]domain.MpaRating, error) {
	return s.mpa.ListAll(ctx)
}

func (s *Service) GetMpa(ctx context.Context, id int64) (*domain.MpaRating, error) {
	rating, err := s.mpa.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, &domain.NotFoundError{Kind: "mpa", ID: id}
	}
	return rating, nil
}

// AddGenreToFilm attaches one genre to an existing film. Both endpoints must
// exist; attaching an already-attached genre is a no-op.
func (s *Service) AddGenreToFilm(ctx context.Context, filmID, genreID int64) error {
	ok, err := s.films.ExistsByID(ctx, filmID)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.NotFoundError{Kind: "film", ID: filmID}
	}

	ok, err = s.genres.ExistsByID(ctx, genreID)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.NotFoundError{Kind: "genre", ID: genreID}
	}

	return s.genres.AttachToFilm(ctx, filmID, genreID)
}

// RemoveGenreFromFilm reports whether an association was actually removed.
func (s *Service) RemoveGenreFromFilm(ctx context.Context, filmID, genreID int64) (bool, error) {
	return s.genres.DetachFromFilm(ctx, filmID, genreID)
}
