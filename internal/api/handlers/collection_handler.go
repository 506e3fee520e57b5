package handlers

import (
	"net/http"

	"github.com/cardcollection-app/cardcollection-backend/internal/api/httputil"
	"github.com/cardcollection-app/cardcollection-backend/internal/api/middleware"
	"github.com/cardcollection-app/cardcollection-backend/internal/database"
	"github.com/cardcollection-app/cardcollection-backend/internal/logger"
	"github.com/cardcollection-app/cardcollection-backend/internal/models"
)

// CollectionHandler manages the authenticated collector's own cards.
type CollectionHandler struct {
	collection database.CollectionRepository
	cards      database.CardRepository
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(collection database.CollectionRepository, cards database.CardRepository) *CollectionHandler {
	return &CollectionHandler{collection: collection, cards: cards}
}

// List handles GET /api/collection: the caller's ownership facts with card
// detail, newest first.
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "No autorizado")
		return
	}

	entries, err := h.collection.ListByUser(r.Context(), user.ID)
	if err != nil {
		logger.Error("collection: could not list for user %d: %v", user.ID, err)
		httputil.Error(w, http.StatusInternalServerError, "Error al obtener la colección")
		return
	}
	if entries == nil {
		entries = []models.CollectionEntry{}
	}

	httputil.JSON(w, http.StatusOK, struct {
		Success bool                     `json:"success"`
		Count   int                      `json:"count"`
		Data    []models.CollectionEntry `json:"data"`
	}{true, len(entries), entries})
}

// AddCard handles POST /api/collection/cards/{cardId}: records an acquisition
// for the caller, incrementing quantity when the card is already owned.
func (h *CollectionHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "No autorizado")
		return
	}

	cardID, ok := pathID(r, "cardId")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "ID de carta inválido")
		return
	}

	card, err := h.cards.GetCardByID(r.Context(), cardID)
	if err != nil {
		logger.Error("collection: could not get card %d: %v", cardID, err)
		httputil.Error(w, http.StatusInternalServerError, "Error al agregar la carta")
		return
	}
	if card == nil {
		httputil.Error(w, http.StatusNotFound, "Carta no encontrada")
		return
	}

	fact, err := h.collection.AddCard(r.Context(), user.ID, cardID)
	if err != nil {
		logger.Error("collection: could not add card %d for user %d: %v", cardID, user.ID, err)
		httputil.Error(w, http.StatusInternalServerError, "Error al agregar la carta")
		return
	}
	httputil.Created(w, fact)
}
