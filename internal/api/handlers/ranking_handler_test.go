package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardcollection-app/cardcollection-backend/internal/models"
	"github.com/cardcollection-app/cardcollection-backend/internal/services/ranking"
)

type stubRankingStore struct {
	users    []models.User
	facts    []models.OwnershipFact
	rarities map[int64]models.Rarity
	stats    *models.Stats
	err      error
}

func (s *stubRankingStore) ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	return s.users, s.err
}

func (s *stubRankingStore) ListOwnershipFacts(ctx context.Context, since *time.Time) ([]models.OwnershipFact, error) {
	return s.facts, s.err
}

func (s *stubRankingStore) CardRarities(ctx context.Context) (map[int64]models.Rarity, error) {
	return s.rarities, s.err
}

func (s *stubRankingStore) CountStats(ctx context.Context) (*models.Stats, error) {
	return s.stats, s.err
}

func TestGetRankingEnvelope(t *testing.T) {
	store := &stubRankingStore{
		users: []models.User{{ID: 1, Name: "Alice", Role: models.RoleUser}},
		facts: []models.OwnershipFact{
			{UserID: 1, CardID: 10, Quantity: 2, ObtainedAt: time.Now().Add(-24 * time.Hour)},
		},
		rarities: map[int64]models.Rarity{10: models.RarityGold},
	}
	h := NewRankingHandler(ranking.NewService(store))

	req := httptest.NewRequest(http.MethodGet, "/api/ranking?period=month", nil)
	rec := httptest.NewRecorder()
	h.GetRanking(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                   `json:"success"`
		Data    models.RankingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Último Mes", body.Data.Period)
	require.Len(t, body.Data.Ranking, 1)
	assert.Equal(t, 1, body.Data.Ranking[0].Position)
	assert.Equal(t, 1, body.Data.Ranking[0].UniqueCards)
	assert.Equal(t, 2, body.Data.Ranking[0].TotalCards)
	assert.Equal(t, 10, body.Data.Ranking[0].RarityScore)
	assert.Equal(t, 30, body.Data.Ranking[0].TotalScore)
	assert.Len(t, body.Data.AvailablePeriods, 4)
}

func TestGetRankingStorageFailure(t *testing.T) {
	h := NewRankingHandler(ranking.NewService(&stubRankingStore{err: errors.New("down")}))

	req := httptest.NewRequest(http.MethodGet, "/api/ranking", nil)
	rec := httptest.NewRecorder()
	h.GetRanking(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Error al obtener ranking", body.Message)
}

func TestGetStats(t *testing.T) {
	h := NewRankingHandler(ranking.NewService(&stubRankingStore{
		stats: &models.Stats{TotalUsers: 3, TotalCards: 200, TotalAlbums: 2, TotalCollections: 12},
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	h.GetStats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool         `json:"success"`
		Data    models.Stats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 3, body.Data.TotalUsers)
	assert.Equal(t, 12, body.Data.TotalCollections)
}
