package models

import "time"

// Rarity is the fixed tier of a card. It determines the scoring weight used
// by the ranking engine.
type Rarity string

const (
	RarityBronze Rarity = "bronze"
	RaritySilver Rarity = "silver"
	RarityGold   Rarity = "gold"
)

// Valid reports whether r is one of the known tiers.
func (r Rarity) Valid() bool {
	return r == RarityBronze || r == RaritySilver || r == RarityGold
}

// Weight returns the score weight of the tier. Unrecognized values count as 1,
// matching how unknown rarities have always been scored.
func (r Rarity) Weight() int {
	switch r {
	case RarityGold:
		return 5
	case RaritySilver:
		return 3
	case RarityBronze:
		return 1
	default:
		return 1
	}
}

// Card corresponds to a row in the cards table. The (albumId, number) pair is
// unique, an album cannot hold two cards with the same number.
type Card struct {
	ID          int64     `json:"id"`
	AlbumID     int64     `json:"albumId"`
	Number      int       `json:"number"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Rarity      Rarity    `json:"rarity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CardRequest is the body for creating or updating a card.
type CardRequest struct {
	AlbumID     int64  `json:"albumId" validate:"required,gt=0"`
	Number      int    `json:"number" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,max=500"`
	Rarity      Rarity `json:"rarity" validate:"omitempty,oneof=bronze silver gold"`
}

// AlbumSummary is the short album reference embedded in card responses.
type AlbumSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CardWithAlbum is a card plus the album it belongs to.
type CardWithAlbum struct {
	Card
	Album *AlbumSummary `json:"album"`
}
