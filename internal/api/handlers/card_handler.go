package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cardcollection-app/cardcollection-backend/internal/api/httputil"
	"github.com/cardcollection-app/cardcollection-backend/internal/database"
	"github.com/cardcollection-app/cardcollection-backend/internal/logger"
	"github.com/cardcollection-app/cardcollection-backend/internal/models"
)

// CardHandler manages the public card catalog and the admin CRUD.
type CardHandler struct {
	cards    database.CardRepository
	albums   database.AlbumRepository
	validate *validator.Validate
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cards database.CardRepository, albums database.AlbumRepository, validate *validator.Validate) *CardHandler {
	return &CardHandler{cards: cards, albums: albums, validate: validate}
}

// ListByAlbum handles GET /api/cards/album/{albumId}?rarity=.
func (h *CardHandler) ListByAlbum(w http.ResponseWriter, r *http.Request) {
	albumID, ok := pathID(r, "albumId")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "ID de álbum inválido")
		return
	}

	var rarity *models.Rarity
	if raw := r.URL.Query().Get("rarity"); raw != "" {
		rr := models.Rarity(raw)
		rarity = &rr
	}

	cards, err := h.cards.ListCardsByAlbum(r.Context(), albumID, rarity)
	if err != nil {
		logger.Error("cards: could not list for album %d: %v", albumID, err)
		httputil.Error(w, http.StatusInternalServerError, "Error al obtener cartas")
		return
	}
	if cards == nil {
		cards = []models.Card{}
	}

	album, err := h.albums.GetAlbumByID(r.Context(), albumID)
	if err != nil {
		logger.Error("cards: could not get album %d: %v", albumID, err)
		httputil.Error(w, http.StatusInternalServerError, "Error al obtener cartas")
		return
	}
	var summary *models.AlbumSummary
	if album != nil {
		summary = &models.AlbumSummary{ID: album.ID, Name: album.Name}
	}

	httputil.JSON(w, http.StatusOK, struct {
		Success bool                 `json:"success"`
		Count   int                  `json:"count"`
		Album   *models.AlbumSummary `json:"album"`
		Data    []models.Card        `json:"data"`
	}{true, len(cards), summary, cards})
}

// Get handles GET /api/cards/{id}.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "ID de carta inválido")
		return
	}

	card, err := h.cards.GetCardByID(r.Context(), id)
	if err != nil {
		logger.Error("cards: could not get card %d: %v", id, err)
		httputil.Error(w, http.StatusInternalServerError, "Error al obtener la carta")
		return
	}
	if card == nil {
		httputil.Error(w, http.StatusNotFound, "Carta no encontrada")
		return
	}

	album, err := h.albums.GetAlbumByID(r.Context(), card.AlbumID)
	if err != nil {
		logger.Error("cards: could not get album %d: %v", card.AlbumID, err)
		httputil.Error(w, http.StatusInternalServerError, "Error al obtener la carta")
		return
	}
	var summary *models.AlbumSummary
	if album != nil {
		summary = &models.AlbumSummary{ID: album.ID, Name: album.Name}
	}

	httputil.Success(w, models.CardWithAlbum{Card: *card, Album: summary})
}

// Create handles POST /api/cards (admin only).
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Datos de la carta inválidos: "+err.Error())
		return
	}

	card, err := h.cards.CreateCard(r.Context(), &req)
	if err != nil {
		if database.IsUniqueViolation(err) {
			httputil.Error(w, http.StatusBadRequest, "Ya existe una carta con ese número en el álbum")
			return
		}
		logger.Error("cards: could not create: %v", err)
		httputil.Error(w, http.StatusBadRequest, "No se pudo crear la carta")
		return
	}
	httputil.Created(w, card)
}

// Update handles PUT /api/cards/{id} (admin only).
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "ID de carta inválido")
		return
	}

	var req models.CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Datos de la carta inválidos: "+err.Error())
		return
	}

	card, err := h.cards.UpdateCard(r.Context(), id, &req)
	if err != nil {
		if database.IsUniqueViolation(err) {
			httputil.Error(w, http.StatusBadRequest, "Ya existe una carta con ese número en el álbum")
			return
		}
		logger.Error("cards: could not update card %d: %v", id, err)
		httputil.Error(w, http.StatusBadRequest, "No se pudo actualizar la carta")
		return
	}
	if card == nil {
		httputil.Error(w, http.StatusNotFound, "Carta no encontrada")
		return
	}
	httputil.Success(w, card)
}

// Delete handles DELETE /api/cards/{id} (admin only).
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "ID de carta inválido")
		return
	}

	deleted, err := h.cards.DeleteCard(r.Context(), id)
	if err != nil {
		logger.Error("cards: could not delete card %d: %v", id, err)
		httputil.Error(w, http.StatusInternalServerError, "Error al eliminar la carta")
		return
	}
	if !deleted {
		httputil.Error(w, http.StatusNotFound, "Carta no encontrada")
		return
	}
	httputil.Message(w, "Carta eliminada correctamente")
}
