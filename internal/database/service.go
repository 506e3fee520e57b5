package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Service wraps the shared database handle. It is constructed once at startup
// and injected into the repositories, there is no package-level connection.
type Service struct {
	DB *sql.DB
}

// New opens a connection pool against the given Postgres URL and verifies it
// with a ping before returning.
func New(databaseURL string) (*Service, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("could not create database handle: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping database: %w", err)
	}
	return &Service{DB: db}, nil
}

// Close releases the connection pool.
func (s *Service) Close() error {
	return s.DB.Close()
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation (duplicate email, duplicate card number, and so on).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
