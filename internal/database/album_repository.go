package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cardcollection-app/cardcollection-backend/internal/models"
)

// AlbumRepository defines the album-related database operations.
type AlbumRepository interface {
	ListAlbums(ctx context.Context) ([]models.Album, error)

	// GetAlbumByID returns nil when the album does not exist.
	GetAlbumByID(ctx context.Context, id int64) (*models.Album, error)

	CreateAlbum(ctx context.Context, req *models.AlbumRequest) (*models.Album, error)

	// UpdateAlbum returns nil when the album does not exist.
	UpdateAlbum(ctx context.Context, id int64, req *models.AlbumRequest) (*models.Album, error)

	// DeleteAlbum reports whether a row was actually deleted.
	DeleteAlbum(ctx context.Context, id int64) (bool, error)

	// CountCardsByRarity returns the per-tier card counts of an album.
	CountCardsByRarity(ctx context.Context, albumID int64) (*models.RarityStats, error)
}

type albumRepositoryImpl struct {
	db *sql.DB
}

// NewAlbumRepository creates a new AlbumRepository backed by db.
func NewAlbumRepository(db *sql.DB) AlbumRepository {
	return &albumRepositoryImpl{db: db}
}

const albumColumns = "id, name, description, COALESCE(image_url, ''), total_cards, release_date, created_at, updated_at"

func scanAlbum(row *sql.Row) (*models.Album, error) {
	var a models.Album
	err := row.Scan(&a.ID, &a.Name, &a.Description, &a.ImageURL, &a.TotalCards,
		&a.ReleaseDate, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not scan album row: %w", err)
	}
	return &a, nil
}

func (r *albumRepositoryImpl) ListAlbums(ctx context.Context) ([]models.Album, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+albumColumns+" FROM albums ORDER BY release_date ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("could not list albums: %w", err)
	}
	defer rows.Close()

	var albums []models.Album
	for rows.Next() {
		var a models.Album
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.ImageURL, &a.TotalCards,
			&a.ReleaseDate, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("could not scan album row: %w", err)
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating album rows: %w", err)
	}
	return albums, nil
}

func (r *albumRepositoryImpl) GetAlbumByID(ctx context.Context, id int64) (*models.Album, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+albumColumns+" FROM albums WHERE id = $1", id)
	return scanAlbum(row)
}

func (r *albumRepositoryImpl) CreateAlbum(ctx context.Context, req *models.AlbumRequest) (*models.Album, error) {
	totalCards := req.TotalCards
	if totalCards == 0 {
		totalCards = 100
	}
	releaseDate := time.Now()
	if req.ReleaseDate != nil {
		releaseDate = *req.ReleaseDate
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO albums (name, description, image_url, total_cards, release_date, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NOW(), NOW())
		RETURNING `+albumColumns,
		req.Name, req.Description, req.ImageURL, totalCards, releaseDate,
	)

	album, err := scanAlbum(row)
	if err != nil {
		return nil, fmt.Errorf("could not create album: %w", err)
	}
	return album, nil
}

func (r *albumRepositoryImpl) UpdateAlbum(ctx context.Context, id int64, req *models.AlbumRequest) (*models.Album, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE albums
		SET name = $1,
		    description = $2,
		    image_url = NULLIF($3, ''),
		    total_cards = COALESCE(NULLIF($4, 0), total_cards),
		    release_date = COALESCE($5, release_date),
		    updated_at = NOW()
		WHERE id = $6
		RETURNING `+albumColumns,
		req.Name, req.Description, req.ImageURL, req.TotalCards, req.ReleaseDate, id,
	)
	return scanAlbum(row)
}

func (r *albumRepositoryImpl) DeleteAlbum(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM albums WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("could not delete album: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}
	return n > 0, nil
}

func (r *albumRepositoryImpl) CountCardsByRarity(ctx context.Context, albumID int64) (*models.RarityStats, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE rarity = 'bronze'),
			COUNT(*) FILTER (WHERE rarity = 'silver'),
			COUNT(*) FILTER (WHERE rarity = 'gold'),
			COUNT(*)
		FROM cards
		WHERE album_id = $1`, albumID)

	var stats models.RarityStats
	if err := row.Scan(&stats.Bronze, &stats.Silver, &stats.Gold, &stats.Total); err != nil {
		return nil, fmt.Errorf("could not count cards by rarity: %w", err)
	}
	return &stats, nil
}
