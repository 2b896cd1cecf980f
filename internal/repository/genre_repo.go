package repository

import (
	"context"
	"errors"

	"filmoteka/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

func (r *GenreRepository) ListAll(ctx context.Context) ([]domain.Genre, error) {
	var rows []genreRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translate("list genres", err)
	}

	genres := make([]domain.Genre, 0, len(rows))
	for _, row := range rows {
		genres = append(genres, domain.Genre{ID: row.ID, Name: row.Name})
	}
	return genres, nil
}

// GetByID returns nil without error when the genre does not exist.
func (r *GenreRepository) GetByID(ctx context.Context, id int64) (*domain.Genre, error) {
	var row genreRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("get genre", err)
	}
	return &domain.Genre{ID: row.ID, Name: row.Name}, nil
}

func (r *GenreRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&genreRow{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, translate("check genre", err)
	}
	return count > 0, nil
}

// AttachToFilm adds a single genre to an existing film. Idempotent: attaching
// an already-attached genre is a no-op.
func (r *GenreRepository) AttachToFilm(ctx context.Context, filmID, genreID int64) error {
	row := filmGenreRow{FilmID: filmID, GenreID: genreID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
	return translate("attach genre to film", err)
}

// DetachFromFilm reports whether an association row was actually removed.
func (r *GenreRepository) DetachFromFilm(ctx context.Context, filmID, genreID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("film_id = ? AND genre_id = ?", filmID, genreID).
		Delete(&filmGenreRow{})
	if tx.Error != nil {
		return false, translate("detach genre from film", tx.Error)
	}
	return tx.RowsAffected > 0, nil
}
