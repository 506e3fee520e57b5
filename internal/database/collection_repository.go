package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cardcollection-app/cardcollection-backend/internal/models"
)

// CollectionRepository defines the ownership-fact database operations.
type CollectionRepository interface {
	// ListByUser returns the caller's ownership facts joined with their
	// cards, ordered by acquisition time (newest first).
	ListByUser(ctx context.Context, userID int64) ([]models.CollectionEntry, error)

	// AddCard records an acquisition: inserts a quantity-1 row, or increments
	// quantity when the (user, card) row already exists.
	AddCard(ctx context.Context, userID, cardID int64) (*models.OwnershipFact, error)
}

type collectionRepositoryImpl struct {
	db *sql.DB
}

// NewCollectionRepository creates a new CollectionRepository backed by db.
func NewCollectionRepository(db *sql.DB) CollectionRepository {
	return &collectionRepositoryImpl{db: db}
}

func (r *collectionRepositoryImpl) ListByUser(ctx context.Context, userID int64) ([]models.CollectionEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			uc.id, uc.user_id, uc.card_id, uc.quantity, uc.condition, uc.obtained_at,
			c.id, c.album_id, c.number, c.name, c.description, COALESCE(c.image_url, ''), c.rarity,
			c.created_at, c.updated_at
		FROM user_collections uc
		JOIN cards c ON uc.card_id = c.id
		WHERE uc.user_id = $1
		ORDER BY uc.obtained_at DESC, uc.id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list collection: %w", err)
	}
	defer rows.Close()

	var entries []models.CollectionEntry
	for rows.Next() {
		var e models.CollectionEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.CardID, &e.Quantity, &e.Condition, &e.ObtainedAt,
			&e.Card.ID, &e.Card.AlbumID, &e.Card.Number, &e.Card.Name, &e.Card.Description,
			&e.Card.ImageURL, &e.Card.Rarity, &e.Card.CreatedAt, &e.Card.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("could not scan collection row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collection rows: %w", err)
	}
	return entries, nil
}

func (r *collectionRepositoryImpl) AddCard(ctx context.Context, userID, cardID int64) (*models.OwnershipFact, error) {
	// The (user_id, card_id) pair is unique, so re-acquiring a card bumps the
	// quantity on the existing row instead of inserting a second one.
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO user_collections (user_id, card_id, quantity, condition, obtained_at)
		VALUES ($1, $2, 1, 'good', NOW())
		ON CONFLICT (user_id, card_id)
		DO UPDATE SET quantity = user_collections.quantity + 1
		RETURNING id, user_id, card_id, quantity, condition, obtained_at`,
		userID, cardID)

	var fact models.OwnershipFact
	if err := row.Scan(&fact.ID, &fact.UserID, &fact.CardID, &fact.Quantity,
		&fact.Condition, &fact.ObtainedAt); err != nil {
		return nil, fmt.Errorf("could not add card to collection: %w", err)
	}
	return &fact, nil
}
