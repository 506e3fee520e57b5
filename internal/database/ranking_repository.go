package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cardcollection-app/cardcollection-backend/internal/models"
	"github.com/cardcollection-app/cardcollection-backend/internal/services/ranking"
)

// rankingRepositoryImpl implements ranking.Store against Postgres. It only
// ships raw rows, the engine does the join and aggregation itself.
type rankingRepositoryImpl struct {
	db *sql.DB
}

// NewRankingStore creates the storage backend for the ranking engine.
func NewRankingStore(db *sql.DB) ranking.Store {
	return &rankingRepositoryImpl{db: db}
}

func (r *rankingRepositoryImpl) ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name FROM users WHERE role = $1 ORDER BY id ASC", role)
	if err != nil {
		return nil, fmt.Errorf("could not list users by role: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, fmt.Errorf("could not scan user row: %w", err)
		}
		u.Role = role
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

func (r *rankingRepositoryImpl) ListOwnershipFacts(ctx context.Context, since *time.Time) ([]models.OwnershipFact, error) {
	query := "SELECT id, user_id, card_id, quantity, obtained_at FROM user_collections"
	args := []interface{}{}
	if since != nil {
		query += " WHERE obtained_at >= $1"
		args = append(args, *since)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not list ownership facts: %w", err)
	}
	defer rows.Close()

	var facts []models.OwnershipFact
	for rows.Next() {
		var f models.OwnershipFact
		if err := rows.Scan(&f.ID, &f.UserID, &f.CardID, &f.Quantity, &f.ObtainedAt); err != nil {
			return nil, fmt.Errorf("could not scan ownership fact row: %w", err)
		}
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ownership fact rows: %w", err)
	}
	return facts, nil
}

func (r *rankingRepositoryImpl) CardRarities(ctx context.Context) (map[int64]models.Rarity, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, rarity FROM cards")
	if err != nil {
		return nil, fmt.Errorf("could not list card rarities: %w", err)
	}
	defer rows.Close()

	rarities := make(map[int64]models.Rarity)
	for rows.Next() {
		var id int64
		var rarity models.Rarity
		if err := rows.Scan(&id, &rarity); err != nil {
			return nil, fmt.Errorf("could not scan card rarity row: %w", err)
		}
		rarities[id] = rarity
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card rarity rows: %w", err)
	}
	return rarities, nil
}

func (r *rankingRepositoryImpl) CountStats(ctx context.Context) (*models.Stats, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users WHERE role = 'user'),
			(SELECT COUNT(*) FROM cards),
			(SELECT COUNT(*) FROM albums),
			(SELECT COUNT(*) FROM user_collections)`)

	var stats models.Stats
	if err := row.Scan(&stats.TotalUsers, &stats.TotalCards, &stats.TotalAlbums, &stats.TotalCollections); err != nil {
		return nil, fmt.Errorf("could not count stats: %w", err)
	}
	return &stats, nil
}
