package domain

import "time"

// Genre is reference data. Rows are seeded out-of-band and never mutated
// through the service API.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MpaRating is the MPA age classification, same treatment as Genre.
type MpaRating struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Film struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ReleaseDate time.Time  `json:"release_date"`
	Duration    int        `json:"duration"` // minutes
	Mpa         *MpaRating `json:"mpa,omitempty"`
	// Genres is ordered ascending by genre id when read back from storage.
	Genres []Genre `json:"genres"`
}
