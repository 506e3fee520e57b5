package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cardcollection-app/cardcollection-backend/internal/models"
)

// CardRepository defines the card-related database operations.
type CardRepository interface {
	// ListCardsByAlbum returns the cards of an album ordered by number,
	// optionally restricted to a single rarity tier.
	ListCardsByAlbum(ctx context.Context, albumID int64, rarity *models.Rarity) ([]models.Card, error)

	// GetCardByID returns nil when the card does not exist.
	GetCardByID(ctx context.Context, id int64) (*models.Card, error)

	CreateCard(ctx context.Context, req *models.CardRequest) (*models.Card, error)

	// UpdateCard returns nil when the card does not exist.
	UpdateCard(ctx context.Context, id int64, req *models.CardRequest) (*models.Card, error)

	// DeleteCard reports whether a row was actually deleted.
	DeleteCard(ctx context.Context, id int64) (bool, error)
}

type cardRepositoryImpl struct {
	db *sql.DB
}

// NewCardRepository creates a new CardRepository backed by db.
func NewCardRepository(db *sql.DB) CardRepository {
	return &cardRepositoryImpl{db: db}
}

const cardColumns = "id, album_id, number, name, description, COALESCE(image_url, ''), rarity, created_at, updated_at"

func scanCard(row *sql.Row) (*models.Card, error) {
	var c models.Card
	err := row.Scan(&c.ID, &c.AlbumID, &c.Number, &c.Name, &c.Description,
		&c.ImageURL, &c.Rarity, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not scan card row: %w", err)
	}
	return &c, nil
}

func (r *cardRepositoryImpl) ListCardsByAlbum(ctx context.Context, albumID int64, rarity *models.Rarity) ([]models.Card, error) {
	query := "SELECT " + cardColumns + " FROM cards WHERE album_id = $1"
	args := []interface{}{albumID}
	if rarity != nil {
		query += " AND rarity = $2"
		args = append(args, *rarity)
	}
	query += " ORDER BY number ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not list cards: %w", err)
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(&c.ID, &c.AlbumID, &c.Number, &c.Name, &c.Description,
			&c.ImageURL, &c.Rarity, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("could not scan card row: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card rows: %w", err)
	}
	return cards, nil
}

func (r *cardRepositoryImpl) GetCardByID(ctx context.Context, id int64) (*models.Card, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+cardColumns+" FROM cards WHERE id = $1", id)
	return scanCard(row)
}

func (r *cardRepositoryImpl) CreateCard(ctx context.Context, req *models.CardRequest) (*models.Card, error) {
	rarity := req.Rarity
	if rarity == "" {
		rarity = models.RarityBronze
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO cards (album_id, number, name, description, image_url, rarity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NOW(), NOW())
		RETURNING `+cardColumns,
		req.AlbumID, req.Number, req.Name, req.Description, req.ImageURL, rarity,
	)

	card, err := scanCard(row)
	if err != nil {
		return nil, fmt.Errorf("could not create card: %w", err)
	}
	return card, nil
}

func (r *cardRepositoryImpl) UpdateCard(ctx context.Context, id int64, req *models.CardRequest) (*models.Card, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE cards
		SET album_id = $1,
		    number = $2,
		    name = $3,
		    description = $4,
		    image_url = NULLIF($5, ''),
		    rarity = COALESCE(NULLIF($6, ''), rarity),
		    updated_at = NOW()
		WHERE id = $7
		RETURNING `+cardColumns,
		req.AlbumID, req.Number, req.Name, req.Description, req.ImageURL, string(req.Rarity), id,
	)
	return scanCard(row)
}

func (r *cardRepositoryImpl) DeleteCard(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM cards WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("could not delete card: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}
	return n > 0, nil
}
