package models

import "time"

// Condition is the physical state of an owned card.
type Condition string

const (
	ConditionMint Condition = "mint"
	ConditionGood Condition = "good"
	ConditionFair Condition = "fair"
	ConditionPoor Condition = "poor"
)

// Valid reports whether c is one of the known conditions.
func (c Condition) Valid() bool {
	switch c {
	case ConditionMint, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// OwnershipFact corresponds to a row in the user_collections table: a given
// user owns a given card in some quantity. The (userId, cardId) pair is
// unique, acquiring the same card again increments quantity on the same row.
type OwnershipFact struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	CardID     int64     `json:"cardId"`
	Quantity   int       `json:"quantity"`
	Condition  Condition `json:"condition"`
	ObtainedAt time.Time `json:"obtainedAt"`
}

// CollectionEntry is an ownership fact joined with the card it refers to,
// returned by the collection listing.
type CollectionEntry struct {
	OwnershipFact
	Card Card `json:"card"`
}
