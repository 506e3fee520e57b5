// Package api wires the repositories, handlers and middleware into the HTTP
// router.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cardcollection-app/cardcollection-backend/internal/api/handlers"
	"github.com/cardcollection-app/cardcollection-backend/internal/api/middleware"
	"github.com/cardcollection-app/cardcollection-backend/internal/config"
	"github.com/cardcollection-app/cardcollection-backend/internal/database"
	"github.com/cardcollection-app/cardcollection-backend/internal/services/ranking"
)

// NewRouter builds the full route table on top of the shared database handle.
func NewRouter(cfg *config.Config, db *database.Service) http.Handler {
	users := database.NewUserRepository(db.DB)
	albums := database.NewAlbumRepository(db.DB)
	cards := database.NewCardRepository(db.DB)
	collection := database.NewCollectionRepository(db.DB)
	rankingSvc := ranking.NewService(database.NewRankingStore(db.DB))

	validate := handlers.NewValidator()
	authHandler := handlers.NewAuthHandler(users, cfg.JWTSecret, validate)
	albumHandler := handlers.NewAlbumHandler(albums, cards, validate)
	cardHandler := handlers.NewCardHandler(cards, albums, validate)
	collectionHandler := handlers.NewCollectionHandler(collection, cards)
	rankingHandler := handlers.NewRankingHandler(rankingSvc)

	auth := middleware.NewAuth(cfg.JWTSecret, users)
	protect := func(h http.HandlerFunc) http.Handler {
		return auth.Protect(h)
	}
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return auth.Protect(auth.AdminOnly(h))
	}

	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)

	r.HandleFunc("/", handlers.Root).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost)
	r.Handle("/api/auth/profile", protect(authHandler.Profile)).Methods(http.MethodGet)

	// Albums: public catalog, admin CRUD
	r.HandleFunc("/api/albums", albumHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/albums/{id:[0-9]+}", albumHandler.Get).Methods(http.MethodGet)
	r.Handle("/api/albums", adminOnly(albumHandler.Create)).Methods(http.MethodPost)
	r.Handle("/api/albums/{id:[0-9]+}", adminOnly(albumHandler.Update)).Methods(http.MethodPut)
	r.Handle("/api/albums/{id:[0-9]+}", adminOnly(albumHandler.Delete)).Methods(http.MethodDelete)

	// Cards: public catalog, admin CRUD
	r.HandleFunc("/api/cards/album/{albumId:[0-9]+}", cardHandler.ListByAlbum).Methods(http.MethodGet)
	r.HandleFunc("/api/cards/{id:[0-9]+}", cardHandler.Get).Methods(http.MethodGet)
	r.Handle("/api/cards", adminOnly(cardHandler.Create)).Methods(http.MethodPost)
	r.Handle("/api/cards/{id:[0-9]+}", adminOnly(cardHandler.Update)).Methods(http.MethodPut)
	r.Handle("/api/cards/{id:[0-9]+}", adminOnly(cardHandler.Delete)).Methods(http.MethodDelete)

	// Collection of the authenticated collector
	r.Handle("/api/collection", protect(collectionHandler.List)).Methods(http.MethodGet)
	r.Handle("/api/collection/cards/{cardId:[0-9]+}", protect(collectionHandler.AddCard)).Methods(http.MethodPost)

	// Leaderboard and stats
	r.Handle("/api/ranking", protect(rankingHandler.GetRanking)).Methods(http.MethodGet)
	r.Handle("/api/stats", protect(rankingHandler.GetStats)).Methods(http.MethodGet)

	return middleware.CORSHandler(cfg.AllowedOrigins)(r)
}
