package film

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"filmoteka/internal/domain"
)

const maxDescriptionLen = 200

// Cinema's birthday. Films cannot have been released before it.
var earliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

type Service struct {
	films FilmRepository
	users UserChecker
}

func NewService(films FilmRepository, users UserChecker) *Service {
	return &Service{films: films, users: users}
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Film, error) {
	return s.films.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Film, error) {
	film, err := s.films.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if film == nil {
		return nil, &domain.NotFoundError{Kind: "film", ID: id}
	}
	return film, nil
}

func (s *Service) Create(ctx context.Context, f *domain.Film) (*domain.Film, error) {
	if err := validateFilm(f); err != nil {
		return nil, err
	}
	return s.films.Create(ctx, f)
}

func (s *Service) Update(ctx context.Context, f *domain.Film) (*domain.Film, error) {
	if err := validateFilm(f); err != nil {
		return nil, err
	}
	return s.films.Update(ctx, f)
}

// Delete is idempotent: deleting an unknown id reports false, not an error.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.films.Delete(ctx, id)
}

// AddLike requires both the film and the user to exist, then delegates to
// the idempotent store insert.
func (s *Service) AddLike(ctx context.Context, filmID, userID int64) error {
	if err := s.checkEndpoints(ctx, filmID, userID); err != nil {
		return err
	}
	return s.films.AddLike(ctx, filmID, userID)
}

// RemoveLike requires both endpoints to exist; removing a like that was
// never recorded reports false.
func (s *Service) RemoveLike(ctx context.Context, filmID, userID int64) (bool, error) {
	if err := s.checkEndpoints(ctx, filmID, userID); err != nil {
		return false, err
	}
	return s.films.RemoveLike(ctx, filmID, userID)
}

func (s *Service) LikeCount(ctx context.Context, filmID int64) (int64, error) {
	ok, err := s.films.ExistsByID(ctx, filmID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &domain.NotFoundError{Kind: "film", ID: filmID}
	}
	return s.films.LikeCount(ctx, filmID)
}

func (s *Service) GetTop(ctx context.Context, count int) ([]domain.Film, error) {
	if count < 1 {
		return nil, &domain.ValidationError{Field: "count", Rule: "must be positive"}
	}
	return s.films.GetTop(ctx, count)
}

func (s *Service) checkEndpoints(ctx context.Context, filmID, userID int64) error {
	ok, err := s.films.ExistsByID(ctx, filmID)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.NotFoundError{Kind: "film", ID: filmID}
	}

	ok, err = s.users.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.NotFoundError{Kind: "user", ID: userID}
	}
	return nil
}

// validateFilm checks every structural field rule before any write is
// attempted. Referential rules (mpa id, genre ids) are checked by the store
// inside the write transaction.
func validateFilm(f *domain.Film) error {
	if strings.TrimSpace(f.Name) == "" {
		return &domain.ValidationError{Field: "name", Rule: "must not be empty"}
	}
	if utf8.RuneCountInString(f.Description) > maxDescriptionLen {
		return &domain.ValidationError{Field: "description", Rule: "must not exceed 200 characters"}
	}
	if f.ReleaseDate.Before(earliestReleaseDate) {
		return &domain.ValidationError{Field: "release_date", Rule: "must not precede 1895-12-28"}
	}
	if f.ReleaseDate.After(endOfToday()) {
		return &domain.ValidationError{Field: "release_date", Rule: "must not be in the future"}
	}
	if f.Duration <= 0 {
		return &domain.ValidationError{Field: "duration", Rule: "must be positive"}
	}
	return nil
}

func endOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
}
