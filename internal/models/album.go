package models

import "time"

// Album corresponds to a row in the albums table.
type Album struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	TotalCards  int       `json:"totalCards"`
	ReleaseDate time.Time `json:"releaseDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AlbumRequest is the body for creating or updating an album.
type AlbumRequest struct {
	Name        string     `json:"name" validate:"required,min=2,max=100"`
	Description string     `json:"description" validate:"required"`
	ImageURL    string     `json:"imageUrl" validate:"omitempty,max=500"`
	TotalCards  int        `json:"totalCards" validate:"omitempty,gte=1"`
	ReleaseDate *time.Time `json:"releaseDate"`
}

// RarityStats counts the cards of an album per tier.
type RarityStats struct {
	Bronze int `json:"bronze"`
	Silver int `json:"silver"`
	Gold   int `json:"gold"`
	Total  int `json:"total"`
}

// AlbumWithStats is an album plus its per-rarity card counts, used by the
// public album listing.
type AlbumWithStats struct {
	Album
	Stats RarityStats `json:"stats"`
}

// AlbumWithCards is an album plus its full card list ordered by number.
type AlbumWithCards struct {
	Album
	Cards []Card `json:"cards"`
}
