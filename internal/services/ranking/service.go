// Package ranking computes the collector leaderboard: a deterministic, totally
// ordered ranking of every regular account by unique cards owned, weighted
// rarity and recency of acquisition.
//
// The engine is read-only and stateless. It fetches raw rows through the Store
// interface and performs the join and aggregation itself in a single pass, so
// the scoring logic is independent of the storage technology and can be tested
// against an in-memory fixture.
package ranking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cardcollection-app/cardcollection-backend/internal/models"
)

// recentWindow is the fixed trailing window used for the recentActivity
// aggregate. It does not follow the selected period.
const recentWindow = 30 * 24 * time.Hour

// Score weights: every distinct card is worth 10 points, every rarity point
// is worth 2.
const (
	uniqueCardWeight  = 10
	rarityScoreWeight = 2
)

// Store is the boundary to the storage collaborator. It returns raw rows
// only, the engine never asks it to pre-aggregate.
type Store interface {
	// ListUsersByRole enumerates the accounts with the given role.
	ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)

	// ListOwnershipFacts enumerates ownership facts, restricted to those
	// acquired at or after since when since is non-nil.
	ListOwnershipFacts(ctx context.Context, since *time.Time) ([]models.OwnershipFact, error)

	// CardRarities resolves every card id to its rarity tier.
	CardRarities(ctx context.Context) (map[int64]models.Rarity, error)

	// CountStats returns the catalog-wide scalar counts.
	CountStats(ctx context.Context) (*models.Stats, error)
}

// Service is the ranking engine. Safe for concurrent use, it holds no mutable
// state beyond the injected store handle.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a ranking engine on top of the given store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// ComputeRanking builds the leaderboard for the given period.
//
// Every role=user account appears exactly once, including accounts with no
// ownership facts at all (all-zero aggregates). The period filter restricts
// which facts feed uniqueCards, totalCards and rarityScore; recentActivity
// always uses the fixed trailing 30-day window.
func (s *Service) ComputeRanking(ctx context.Context, period Period) (*models.RankingResponse, error) {
	now := s.now()

	var since *time.Time
	if window, ok := period.Window(); ok {
		cutoff := now.Add(-window)
		since = &cutoff
	}

	users, err := s.store.ListUsersByRole(ctx, models.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("could not list ranked users: %w", err)
	}
	facts, err := s.store.ListOwnershipFacts(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("could not list ownership facts: %w", err)
	}
	rarities, err := s.store.CardRarities(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not resolve card rarities: %w", err)
	}

	// Seed one aggregate per ranked user so nobody is dropped for lack of
	// data, then fold the facts in a single pass.
	byUser := make(map[int64]*models.RankingEntry, len(users))
	entries := make([]*models.RankingEntry, 0, len(users))
	for _, u := range users {
		entry := &models.RankingEntry{UserID: u.ID, UserName: u.Name}
		byUser[u.ID] = entry
		entries = append(entries, entry)
	}

	recentCutoff := now.Add(-recentWindow)
	for _, fact := range facts {
		entry, ok := byUser[fact.UserID]
		if !ok {
			// Facts owned by admin accounts are not ranked.
			continue
		}
		entry.UniqueCards++
		entry.TotalCards += fact.Quantity
		entry.RarityScore += fact.Quantity * rarities[fact.CardID].Weight()
		if !fact.ObtainedAt.Before(recentCutoff) {
			entry.RecentActivity += fact.Quantity
		}
	}
	for _, entry := range entries {
		entry.TotalScore = entry.UniqueCards*uniqueCardWeight + entry.RarityScore*rarityScoreWeight
	}

	// Total order: score, then unique cards, then rarity score, all
	// descending. User id ascending is the final key so repeated calls over
	// identical data always produce the same sequence.
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		if a.UniqueCards != b.UniqueCards {
			return a.UniqueCards > b.UniqueCards
		}
		if a.RarityScore != b.RarityScore {
			return a.RarityScore > b.RarityScore
		}
		return a.UserID < b.UserID
	})

	ranking := make([]models.RankingEntry, len(entries))
	for i, entry := range entries {
		entry.Position = i + 1
		ranking[i] = *entry
	}

	return &models.RankingResponse{
		Period:           period.Label(),
		Ranking:          ranking,
		AvailablePeriods: AvailablePeriods(),
	}, nil
}

// ComputeStats returns the catalog-wide counts, independent of any period.
func (s *Service) ComputeStats(ctx context.Context) (*models.Stats, error) {
	stats, err := s.store.CountStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not compute stats: %w", err)
	}
	return stats, nil
}
