package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/cardcollection-app/cardcollection-backend/internal/api/httputil"
	"github.com/cardcollection-app/cardcollection-backend/internal/database"
	"github.com/cardcollection-app/cardcollection-backend/internal/logger"
	"github.com/cardcollection-app/cardcollection-backend/internal/models"
)

// AlbumHandler manages the public album catalog and the admin CRUD.
type AlbumHandler struct {
	albums   database.AlbumRepository
	cards    database.CardRepository
	validate *validator.Validate
}

// NewAlbumHandler creates a new AlbumHandler.
func NewAlbumHandler(albums database.AlbumRepository, cards database.CardRepository, validate *validator.Validate) *AlbumHandler {
	return &AlbumHandler{albums: albums, cards: cards, validate: validate}
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id, err == nil && id > 0
}

// List handles GET /api/albums: every album with its per-rarity card counts.
func (h *AlbumHandler) List(w http.ResponseWriter, r *http.Request) {
	albums, err := h.albums.ListAlbums(r.Context())
	if err != nil {
		logger.Error("albums: could not list: %v", err)
		httputil.Error(w, http.StatusInternalServerError, "Error al obtener álbumes")
		return
	}

	withStats := make([]models.AlbumWithStats, 0, len(albums))
	for _, album := range albums {
		stats, err := h.albums.CountCardsByRarity(r.Context(), album.ID)
		if err != nil {
			logger.Error("albums: could not count cards for album %d: %v", album.ID, err)
			httputil.Error(w, http.StatusInternalServerError, "Error al obtener álbumes")
			return
		}
		withStats = append(withStats, models.AlbumWithStats{Album: album, Stats: *stats})
	}

	httputil.JSON(w, http.StatusOK, struct {
		Success bool                    `json:"success"`
		Count   int                     `json:"count"`
		Data    []models.AlbumWithStats `json:"data"`
	}{true, len(withStats), withStats})
}

// Get handles GET /api/albums/{id}: the album plus its cards by number.
func (h *AlbumHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "ID de álbum inválido")
		return
	}

	album, err := h.albums.GetAlbumByID(r.Context(), id)
	if err != nil {
		logger.Error("albums: could not get album %d: %v", id, err)
		httputil.Error(w, http.StatusInternalServerError, "Error al obtener el álbum")
		return
	}
	if album == nil {
		httputil.Error(w, http.StatusNotFound, "Álbum no encontrado")
		return
	}

	cards, err := h.cards.ListCardsByAlbum(r.Context(), id, nil)
	if err != nil {
		logger.Error("albums: could not list cards for album %d: %v", id, err)
		httputil.Error(w, http.StatusInternalServerError, "Error al obtener el álbum")
		return
	}
	if cards == nil {
		cards = []models.Card{}
	}

	httputil.Success(w, models.AlbumWithCards{Album: *album, Cards: cards})
}

// Create handles POST /api/albums (admin only).
func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.AlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Datos del álbum inválidos: "+err.Error())
		return
	}

	album, err := h.albums.CreateAlbum(r.Context(), &req)
	if err != nil {
		logger.Error("albums: could not create: %v", err)
		httputil.Error(w, http.StatusBadRequest, "No se pudo crear el álbum")
		return
	}
	httputil.Created(w, album)
}

// Update handles PUT /api/albums/{id} (admin only).
func (h *AlbumHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "ID de álbum inválido")
		return
	}

	var req models.AlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Datos del álbum inválidos: "+err.Error())
		return
	}

	album, err := h.albums.UpdateAlbum(r.Context(), id, &req)
	if err != nil {
		logger.Error("albums: could not update album %d: %v", id, err)
		httputil.Error(w, http.StatusBadRequest, "No se pudo actualizar el álbum")
		return
	}
	if album == nil {
		httputil.Error(w, http.StatusNotFound, "Álbum no encontrado")
		return
	}
	httputil.Success(w, album)
}

// Delete handles DELETE /api/albums/{id} (admin only).
func (h *AlbumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "ID de álbum inválido")
		return
	}

	deleted, err := h.albums.DeleteAlbum(r.Context(), id)
	if err != nil {
		logger.Error("albums: could not delete album %d: %v", id, err)
		httputil.Error(w, http.StatusInternalServerError, "Error al eliminar el álbum")
		return
	}
	if !deleted {
		httputil.Error(w, http.StatusNotFound, "Álbum no encontrado")
		return
	}
	httputil.Message(w, "Álbum eliminado correctamente")
}
