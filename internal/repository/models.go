package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Row models are kept separate from the domain structs so table and column
// names stay an implementation detail of this package.

type filmRow struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description;size:200"`
	ReleaseDate time.Time `gorm:"column:release_date"`
	Duration    int       `gorm:"column:duration"`
	MpaID       *int64    `gorm:"column:mpa_id"`
}

func (filmRow) TableName() string { return "films" }

type genreRow struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null"`
}

func (genreRow) TableName() string { return "genre" }

type mpaRow struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null"`
}

func (mpaRow) TableName() string { return "mpa" }

type userRow struct {
	ID       int64     `gorm:"column:id;primaryKey"`
	Email    string    `gorm:"column:email;not null"`
	Login    string    `gorm:"column:login;not null"`
	Name     string    `gorm:"column:name"`
	Birthday time.Time `gorm:"column:birthday"`
}

func (userRow) TableName() string { return "users" }

type filmGenreRow struct {
	FilmID  int64 `gorm:"column:film_id;primaryKey"`
	GenreID int64 `gorm:"column:genre_id;primaryKey"`
}

func (filmGenreRow) TableName() string { return "film_genre" }

type filmLikeRow struct {
	FilmID int64 `gorm:"column:film_id;primaryKey"`
	UserID int64 `gorm:"column:user_id;primaryKey"`
}

func (filmLikeRow) TableName() string { return "film_likes" }

type friendshipRow struct {
	UserID   int64 `gorm:"column:user_id;primaryKey"`
	FriendID int64 `gorm:"column:friend_id;primaryKey"`
}

func (friendshipRow) TableName() string { return "friendship" }

// Migrate creates or updates the schema for every table this package owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&mpaRow{},
		&genreRow{},
		&filmRow{},
		&userRow{},
		&filmGenreRow{},
		&filmLikeRow{},
		&friendshipRow{},
	)
}

// SeedCatalog inserts the genre and MPA reference rows. Idempotent, so it is
// safe to run on every startup of the seed command.
func SeedCatalog(db *gorm.DB) error {
	genres := []genreRow{
		{ID: 1, Name: "Comedy"},
		{ID: 2, Name: "Drama"},
		{ID: 3, Name: "Cartoon"},
		{ID: 4, Name: "Thriller"},
		{ID: 5, Name: "Documentary"},
		{ID: 6, Name: "Action"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&genres).Error; err != nil {
		return err
	}

	ratings := []mpaRow{
		{ID: 1, Name: "G"},
		{ID: 2, Name: "PG"},
		{ID: 3, Name: "PG-13"},
		{ID: 4, Name: "R"},
		{ID: 5, Name: "NC-17"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&ratings).Error
}
