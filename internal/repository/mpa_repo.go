package repository

import (
	"context"
	"errors"

	"filmoteka/internal/domain"

	"gorm.io/gorm"
)

type MpaRepository struct {
	db *gorm.DB
}

func NewMpaRepository(db *gorm.DB) *MpaRepository {
	return &MpaRepository{db: db}
}

func (r *MpaRepository) ListAll(ctx context.Context) ([]domain.MpaRating, error) {
	var rows []mpaRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translate("list mpa ratings", err)
	}

	ratings := make([]domain.MpaRating, 0, len(rows))
	for _, row := range rows {
		ratings = append(ratings, domain.MpaRating{ID: row.ID, Name: row.Name})
	}
	return ratings, nil
}

// GetByID returns nil without error when the rating does not exist.
func (r *MpaRepository) GetByID(ctx context.Context, id int64) (*domain.MpaRating, error) {
	var row mpaRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("get mpa rating", err)
	}
	return &domain.MpaRating{ID: row.ID, Name: row.Name}, nil
}

func (r *MpaRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&mpaRow{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, translate("check mpa rating", err)
	}
	return count > 0, nil
}
