package film

import (
	"time"

	"filmoteka/internal/domain"
)

type FilmRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	ReleaseDate string  `json:"release_date" binding:"required"`
	Duration    int     `json:"duration" binding:"required"`
	MpaID       *int64  `json:"mpa_id"`
	GenreIDs    []int64 `json:"genre_ids"`
}

func (r FilmRequest) toDomain(id int64) (*domain.Film, error) {
	releaseDate, err := time.Parse("2006-01-02", r.ReleaseDate)
	if err != nil {
		return nil, &domain.ValidationError{Field: "release_date", Rule: "must be a YYYY-MM-DD date"}
	}

	f := &domain.Film{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		ReleaseDate: releaseDate,
		Duration:    r.Duration,
		Genres:      make([]domain.Genre, 0, len(r.GenreIDs)),
	}
	if r.MpaID != nil {
		f.Mpa = &domain.MpaRating{ID: *r.MpaID}
	}
	for _, gid := range r.GenreIDs {
		f.Genres = append(f.Genres, domain.Genre{ID: gid})
	}
	return f, nil
}
