package repository

import (
	"context"
	"errors"

	"filmoteka/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FilmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) *FilmRepository {
	return &FilmRepository{db: db}
}

func toFilmRow(f *domain.Film) filmRow {
	row := filmRow{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: f.ReleaseDate,
		Duration:    f.Duration,
	}
	if f.Mpa != nil {
		id := f.Mpa.ID
		row.MpaID = &id
	}
	return row
}

func (r *FilmRepository) ListAll(ctx context.Context) ([]domain.Film, error) {
	var rows []filmRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translate("list films", err)
	}
	return r.hydrateAll(ctx, rows)
}

// GetByID returns the film fully hydrated (resolved MPA rating, genres
// ordered by id), or nil without error when it does not exist.
func (r *FilmRepository) GetByID(ctx context.Context, id int64) (*domain.Film, error) {
	var row filmRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("get film", err)
	}
	return r.hydrate(ctx, row)
}

func (r *FilmRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&filmRow{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, translate("check film", err)
	}
	return count > 0, nil
}

// Create validates catalog references, inserts the film and rewrites its
// genre set inside one transaction, then re-reads the stored film so the
// returned rating name and genre order are authoritative.
func (r *FilmRepository) Create(ctx context.Context, f *domain.Film) (*domain.Film, error) {
	row := toFilmRow(f)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkCatalogRefs(tx, f); err != nil {
			return err
		}
		if err := tx.Create(&row).Error; err != nil {
			return translate("create film", err)
		}
		return rewriteGenres(tx, row.ID, f.Genres)
	})
	if err != nil {
		return nil, err
	}

	created, err := r.GetByID(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, &domain.StorageError{Op: "create film", Err: errors.New("row missing after insert")}
	}
	return created, nil
}

// Update replaces every scalar column and rewrites the genre association set
// with the same delete-then-insert routine used by Create, so a full-replace
// update really is a full replace.
func (r *FilmRepository) Update(ctx context.Context, f *domain.Film) (*domain.Film, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&filmRow{}).Where("id = ?", f.ID).Count(&count).Error; err != nil {
			return translate("check film", err)
		}
		if count == 0 {
			return &domain.NotFoundError{Kind: "film", ID: f.ID}
		}
		if err := checkCatalogRefs(tx, f); err != nil {
			return err
		}

		row := toFilmRow(f)
		res := tx.Model(&filmRow{}).
			Where("id = ?", f.ID).
			Select("name", "description", "release_date", "duration", "mpa_id").
			Updates(row)
		if res.Error != nil {
			return translate("update film", res.Error)
		}
		return rewriteGenres(tx, f.ID, f.Genres)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, f.ID)
}

// Delete removes the film together with its genre and like associations.
// Reports whether a film row was actually removed.
func (r *FilmRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("film_id = ?", id).Delete(&filmGenreRow{}).Error; err != nil {
			return translate("delete film genres", err)
		}
		if err := tx.Where("film_id = ?", id).Delete(&filmLikeRow{}).Error; err != nil {
			return translate("delete film likes", err)
		}
		res := tx.Where("id = ?", id).Delete(&filmRow{})
		if res.Error != nil {
			return translate("delete film", res.Error)
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AddLike is idempotent: a duplicate (film, user) pair is a no-op.
func (r *FilmRepository) AddLike(ctx context.Context, filmID, userID int64) error {
	row := filmLikeRow{FilmID: filmID, UserID: userID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
	return translate("add like", err)
}

// RemoveLike reports whether a like row was actually removed.
func (r *FilmRepository) RemoveLike(ctx context.Context, filmID, userID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("film_id = ? AND user_id = ?", filmID, userID).
		Delete(&filmLikeRow{})
	if tx.Error != nil {
		return false, translate("remove like", tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

func (r *FilmRepository) LikeCount(ctx context.Context, filmID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&filmLikeRow{}).Where("film_id = ?", filmID).Count(&count).Error
	if err != nil {
		return 0, translate("count likes", err)
	}
	return count, nil
}

// GetTop returns up to limit films ordered by descending like count. Ties
// break ascending by film id, which also puts zero-like films in creation
// order at the tail.
func (r *FilmRepository) GetTop(ctx context.Context, limit int) ([]domain.Film, error) {
	var rows []filmRow
	err := r.db.WithContext(ctx).
		Table("films").
		Select("films.*").
		Joins("LEFT JOIN film_likes ON film_likes.film_id = films.id").
		Group("films.id").
		Order("COUNT(film_likes.user_id) DESC, films.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, translate("get top films", err)
	}
	return r.hydrateAll(ctx, rows)
}

func (r *FilmRepository) hydrateAll(ctx context.Context, rows []filmRow) ([]domain.Film, error) {
	films := make([]domain.Film, 0, len(rows))
	for _, row := range rows {
		film, err := r.hydrate(ctx, row)
		if err != nil {
			return nil, err
		}
		films = append(films, *film)
	}
	return films, nil
}

func (r *FilmRepository) hydrate(ctx context.Context, row filmRow) (*domain.Film, error) {
	film := &domain.Film{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		ReleaseDate: row.ReleaseDate,
		Duration:    row.Duration,
		Genres:      []domain.Genre{},
	}

	if row.MpaID != nil {
		var mpa mpaRow
		err := r.db.WithContext(ctx).First(&mpa, *row.MpaID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, translate("resolve mpa rating", err)
		}
		if err == nil {
			film.Mpa = &domain.MpaRating{ID: mpa.ID, Name: mpa.Name}
		}
	}

	var genres []genreRow
	err := r.db.WithContext(ctx).
		Model(&genreRow{}).
		Joins("JOIN film_genre ON film_genre.genre_id = genre.id").
		Where("film_genre.film_id = ?", row.ID).
		Order("genre.id ASC").
		Find(&genres).Error
	if err != nil {
		return nil, translate("resolve genres", err)
	}
	for _, g := range genres {
		film.Genres = append(film.Genres, domain.Genre{ID: g.ID, Name: g.Name})
	}
	return film, nil
}

// checkCatalogRefs rejects dangling MPA or genre references before any
// write happens, inside the same transaction as the write itself.
func checkCatalogRefs(tx *gorm.DB, f *domain.Film) error {
	if f.Mpa != nil {
		var count int64
		if err := tx.Model(&mpaRow{}).Where("id = ?", f.Mpa.ID).Count(&count).Error; err != nil {
			return translate("check mpa rating", err)
		}
		if count == 0 {
			return &domain.ReferenceNotFoundError{Kind: "mpa", ID: f.Mpa.ID}
		}
	}
	for _, g := range f.Genres {
		var count int64
		if err := tx.Model(&genreRow{}).Where("id = ?", g.ID).Count(&count).Error; err != nil {
			return translate("check genre", err)
		}
		if count == 0 {
			return &domain.ReferenceNotFoundError{Kind: "genre", ID: g.ID}
		}
	}
	return nil
}

// rewriteGenres replaces the whole genre set: delete everything, reinsert.
// Used by both Create and Update to keep the two symmetric.
func rewriteGenres(tx *gorm.DB, filmID int64, genres []domain.Genre) error {
	if err := tx.Where("film_id = ?", filmID).Delete(&filmGenreRow{}).Error; err != nil {
		return translate("rewrite genres", err)
	}
	if len(genres) == 0 {
		return nil
	}

	rows := make([]filmGenreRow, 0, len(genres))
	seen := make(map[int64]bool, len(genres))
	for _, g := range genres {
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		rows = append(rows, filmGenreRow{FilmID: filmID, GenreID: g.ID})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return translate("rewrite genres", err)
	}
	return nil
}
