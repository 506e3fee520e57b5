// Command seed creates the schema if needed and loads the initial data: the
// admin account plus two sample albums with 100 cards each.
package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cardcollection-app/cardcollection-backend/internal/config"
	"github.com/cardcollection-app/cardcollection-backend/internal/database"
	"github.com/cardcollection-app/cardcollection-backend/internal/logger"
	"github.com/cardcollection-app/cardcollection-backend/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         SERIAL PRIMARY KEY,
	name       VARCHAR(100) NOT NULL,
	email      VARCHAR(150) NOT NULL UNIQUE,
	password   VARCHAR(255) NOT NULL,
	cedula     VARCHAR(10)  NOT NULL UNIQUE,
	role       VARCHAR(10)  NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin')),
	created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS albums (
	id           SERIAL PRIMARY KEY,
	name         VARCHAR(100) NOT NULL,
	description  TEXT         NOT NULL,
	image_url    VARCHAR(500),
	total_cards  INTEGER      NOT NULL DEFAULT 100 CHECK (total_cards >= 1),
	release_date TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	created_at   TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS cards (
	id          SERIAL PRIMARY KEY,
	album_id    INTEGER      NOT NULL REFERENCES albums(id) ON DELETE CASCADE,
	number      INTEGER      NOT NULL CHECK (number >= 1),
	name        VARCHAR(100) NOT NULL,
	description TEXT         NOT NULL,
	image_url   VARCHAR(500),
	rarity      VARCHAR(10)  NOT NULL DEFAULT 'bronze' CHECK (rarity IN ('bronze', 'silver', 'gold')),
	created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	UNIQUE (album_id, number)
);

CREATE TABLE IF NOT EXISTS user_collections (
	id          SERIAL PRIMARY KEY,
	user_id     INTEGER     NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	card_id     INTEGER     NOT NULL REFERENCES cards(id) ON DELETE CASCADE,
	quantity    INTEGER     NOT NULL DEFAULT 1 CHECK (quantity >= 1),
	condition   VARCHAR(10) NOT NULL DEFAULT 'good' CHECK (condition IN ('mint', 'good', 'fair', 'poor')),
	obtained_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (user_id, card_id)
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("could not load configuration: %v", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Error("could not connect to database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := seed(db.DB); err != nil {
		logger.Error("seed failed: %v", err)
		os.Exit(1)
	}
	logger.Success("Initial data ready")
}

func seed(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("could not create schema: %w", err)
	}
	logger.Info("Schema ready")

	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedAlbums(db)
}

func seedAdmin(db *sql.DB) error {
	var exists bool
	err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM users WHERE role = 'admin')").Scan(&exists)
	if err != nil {
		return fmt.Errorf("could not check for admin account: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash admin password: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (name, email, password, cedula, role)
		VALUES ($1, $2, $3, $4, $5)`,
		"Administrador", "admin@cardcollection.com", string(hash), "1234567890", models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("could not create admin account: %w", err)
	}
	logger.Success("Admin account created")
	return nil
}

func seedAlbums(db *sql.DB) error {
	var exists bool
	err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM albums WHERE name = $1)", "Álbum Legendario").Scan(&exists)
	if err != nil {
		return fmt.Errorf("could not check for sample albums: %w", err)
	}
	if exists {
		return nil
	}

	albums := []struct {
		name        string
		description string
		cardPrefix  string
		releaseDate time.Time
	}{
		{
			name:        "Álbum Legendario",
			description: "Colección de cartas legendarias con criaturas míticas",
			cardPrefix:  "Carta Legendaria",
			releaseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "Álbum Elemental",
			description: "Cartas elementales de fuego, agua, tierra y aire",
			cardPrefix:  "Carta Elemental",
			releaseDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, album := range albums {
		var albumID int64
		err := db.QueryRow(`
			INSERT INTO albums (name, description, total_cards, release_date)
			VALUES ($1, $2, 100, $3)
			RETURNING id`,
			album.name, album.description, album.releaseDate).Scan(&albumID)
		if err != nil {
			return fmt.Errorf("could not create album %q: %w", album.name, err)
		}

		stmt, err := db.Prepare(`
			INSERT INTO cards (album_id, number, name, description, rarity)
			VALUES ($1, $2, $3, $4, $5)`)
		if err != nil {
			return fmt.Errorf("could not prepare card insert: %w", err)
		}

		for i := 1; i <= 100; i++ {
			rarity := models.RarityBronze
			switch {
			case i > 85:
				rarity = models.RarityGold
			case i > 60:
				rarity = models.RaritySilver
			}

			name := fmt.Sprintf("%s %d", album.cardPrefix, i)
			description := fmt.Sprintf("Descripción de la carta número %d", i)
			if _, err := stmt.Exec(albumID, i, name, description, rarity); err != nil {
				stmt.Close()
				return fmt.Errorf("could not create card %d of %q: %w", i, album.name, err)
			}
		}
		stmt.Close()
		logger.Success("Album %q created with 100 cards", album.name)
	}
	return nil
}
