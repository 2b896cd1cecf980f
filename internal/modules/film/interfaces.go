package film

import (
	"context"

	"filmoteka/internal/domain"
)

// FilmRepository is the storage contract for films, their genre set and
// their likes.
type FilmRepository interface {
	ListAll(ctx context.Context) ([]domain.Film, error)
	GetByID(ctx context.Context, id int64) (*domain.Film, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, f *domain.Film) (*domain.Film, error)
	Update(ctx context.Context, f *domain.Film) (*domain.Film, error)
	Delete(ctx context.Context, id int64) (bool, error)
	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) (bool, error)
	LikeCount(ctx context.Context, filmID int64) (int64, error)
	GetTop(ctx context.Context, limit int) ([]domain.Film, error)
}

// UserChecker is the slice of the user store the like operations need.
type UserChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
