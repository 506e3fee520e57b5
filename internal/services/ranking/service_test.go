package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardcollection-app/cardcollection-backend/internal/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return testNow.Add(-time.Duration(n) * 24 * time.Hour)
}

type fakeStore struct {
	users    []models.User
	facts    []models.OwnershipFact
	rarities map[int64]models.Rarity
	stats    *models.Stats
	err      error
}

func (f *fakeStore) ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeStore) ListOwnershipFacts(ctx context.Context, since *time.Time) ([]models.OwnershipFact, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.OwnershipFact
	for _, fact := range f.facts {
		if since != nil && fact.ObtainedAt.Before(*since) {
			continue
		}
		out = append(out, fact)
	}
	return out, nil
}

func (f *fakeStore) CardRarities(ctx context.Context) (map[int64]models.Rarity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rarities, nil
}

func (f *fakeStore) CountStats(ctx context.Context) (*models.Stats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}

func newTestService(store *fakeStore) *Service {
	svc := NewService(store)
	svc.now = func() time.Time { return testNow }
	return svc
}

func user(id int64, name string) models.User {
	return models.User{ID: id, Name: name, Role: models.RoleUser}
}

func fact(userID, cardID int64, quantity, ageDays int) models.OwnershipFact {
	return models.OwnershipFact{
		UserID:     userID,
		CardID:     cardID,
		Quantity:   quantity,
		ObtainedAt: daysAgo(ageDays),
	}
}

func TestComputeRankingAliceAndBob(t *testing.T) {
	// Alice: one gold, one silver, one bronze, all 200 days old.
	// Bob: one gold acquired 5 days ago.
	store := &fakeStore{
		users: []models.User{user(1, "Alice"), user(2, "Bob")},
		facts: []models.OwnershipFact{
			fact(1, 10, 1, 200),
			fact(1, 11, 1, 200),
			fact(1, 12, 1, 200),
			fact(2, 10, 1, 5),
		},
		rarities: map[int64]models.Rarity{
			10: models.RarityGold,
			11: models.RaritySilver,
			12: models.RarityBronze,
		},
	}
	svc := newTestService(store)

	result, err := svc.ComputeRanking(context.Background(), PeriodAll)
	require.NoError(t, err)
	require.Len(t, result.Ranking, 2)

	alice := result.Ranking[0]
	assert.Equal(t, int64(1), alice.UserID)
	assert.Equal(t, 1, alice.Position)
	assert.Equal(t, 3, alice.UniqueCards)
	assert.Equal(t, 3, alice.TotalCards)
	assert.Equal(t, 9, alice.RarityScore)
	assert.Equal(t, 48, alice.TotalScore)
	assert.Equal(t, 0, alice.RecentActivity)

	bob := result.Ranking[1]
	assert.Equal(t, int64(2), bob.UserID)
	assert.Equal(t, 2, bob.Position)
	assert.Equal(t, 1, bob.UniqueCards)
	assert.Equal(t, 5, bob.RarityScore)
	assert.Equal(t, 20, bob.TotalScore)
	assert.Equal(t, 1, bob.RecentActivity)

	assert.Equal(t, "Todo el Tiempo", result.Period)
	assert.Len(t, result.AvailablePeriods, 4)
}

func TestComputeRankingRarityWeights(t *testing.T) {
	// 2 gold + 1 silver + 4 bronze = 2*5 + 1*3 + 4*1 = 17.
	store := &fakeStore{
		users: []models.User{user(1, "Collector")},
		facts: []models.OwnershipFact{
			fact(1, 10, 2, 10),
			fact(1, 11, 1, 10),
			fact(1, 12, 4, 10),
		},
		rarities: map[int64]models.Rarity{
			10: models.RarityGold,
			11: models.RaritySilver,
			12: models.RarityBronze,
		},
	}
	svc := newTestService(store)

	result, err := svc.ComputeRanking(context.Background(), PeriodAll)
	require.NoError(t, err)
	require.Len(t, result.Ranking, 1)

	entry := result.Ranking[0]
	assert.Equal(t, 17, entry.RarityScore)
	assert.Equal(t, 3, entry.UniqueCards)
	assert.Equal(t, 7, entry.TotalCards)
	assert.Equal(t, 3*10+17*2, entry.TotalScore)
}

func TestComputeRankingUnknownRarityCountsAsOne(t *testing.T) {
	store := &fakeStore{
		users:    []models.User{user(1, "Collector")},
		facts:    []models.OwnershipFact{fact(1, 99, 3, 10)},
		rarities: map[int64]models.Rarity{}, // card 99 unresolved
	}
	svc := newTestService(store)

	result, err := svc.ComputeRanking(context.Background(), PeriodAll)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Ranking[0].RarityScore)
}

func TestComputeRankingPositionsContiguous(t *testing.T) {
	store := &fakeStore{
		users: []models.User{
			user(1, "A"), user(2, "B"), user(3, "C"), user(4, "D"), user(5, "E"),
		},
		facts: []models.OwnershipFact{
			fact(2, 10, 1, 10),
			fact(4, 10, 2, 40),
			fact(4, 11, 1, 300),
		},
		rarities: map[int64]models.Rarity{10: models.RarityGold, 11: models.RarityBronze},
	}
	svc := newTestService(store)

	for _, period := range []Period{PeriodMonth, PeriodQuarter, PeriodYear, PeriodAll} {
		result, err := svc.ComputeRanking(context.Background(), period)
		require.NoError(t, err)
		require.Len(t, result.Ranking, 5, "period %s", period)
		for i, entry := range result.Ranking {
			assert.Equal(t, i+1, entry.Position, "period %s", period)
			assert.Equal(t, entry.UniqueCards*10+entry.RarityScore*2, entry.TotalScore)
		}
	}
}

func TestComputeRankingZeroFactUserIncluded(t *testing.T) {
	store := &fakeStore{
		users:    []models.User{user(1, "Empty"), user(2, "Busy")},
		facts:    []models.OwnershipFact{fact(2, 10, 1, 1)},
		rarities: map[int64]models.Rarity{10: models.RarityBronze},
	}
	svc := newTestService(store)

	result, err := svc.ComputeRanking(context.Background(), PeriodAll)
	require.NoError(t, err)
	require.Len(t, result.Ranking, 2)

	empty := result.Ranking[1]
	assert.Equal(t, int64(1), empty.UserID)
	assert.Equal(t, 0, empty.UniqueCards)
	assert.Equal(t, 0, empty.TotalCards)
	assert.Equal(t, 0, empty.RarityScore)
	assert.Equal(t, 0, empty.RecentActivity)
	assert.Equal(t, 0, empty.TotalScore)
	assert.Equal(t, 2, empty.Position)
}

func TestComputeRankingAdminsExcluded(t *testing.T) {
	admin := models.User{ID: 9, Name: "Admin", Role: models.RoleAdmin}
	store := &fakeStore{
		users:    []models.User{user(1, "Collector"), admin},
		facts:    []models.OwnershipFact{fact(9, 10, 5, 1)},
		rarities: map[int64]models.Rarity{10: models.RarityGold},
	}
	svc := newTestService(store)

	result, err := svc.ComputeRanking(context.Background(), PeriodAll)
	require.NoError(t, err)
	require.Len(t, result.Ranking, 1)
	assert.Equal(t, int64(1), result.Ranking[0].UserID)
}

func TestComputeRankingTieBreaks(t *testing.T) {
	// Same totalScore (24): user 1 has 2 unique bronze cards (2*10 + 2*2),
	// user 2 has 7 copies of one bronze card (1*10 + 7*2).
	// Higher uniqueCards must rank strictly above.
	store := &fakeStore{
		users: []models.User{user(2, "FewUnique"), user(1, "ManyUnique")},
		facts: []models.OwnershipFact{
			fact(1, 10, 1, 1),
			fact(1, 11, 1, 1),
			fact(2, 12, 7, 1),
		},
		rarities: map[int64]models.Rarity{
			10: models.RarityBronze,
			11: models.RarityBronze,
			12: models.RarityBronze,
		},
	}
	svc := newTestService(store)

	result, err := svc.ComputeRanking(context.Background(), PeriodAll)
	require.NoError(t, err)
	require.Len(t, result.Ranking, 2)
	assert.Equal(t, result.Ranking[0].TotalScore, result.Ranking[1].TotalScore)
	assert.Equal(t, int64(1), result.Ranking[0].UserID)
	assert.Equal(t, int64(2), result.Ranking[1].UserID)
}

func TestComputeRankingFullTieOrderedByUserID(t *testing.T) {
	store := &fakeStore{
		users:    []models.User{user(3, "C"), user(1, "A"), user(2, "B")},
		rarities: map[int64]models.Rarity{},
	}
	svc := newTestService(store)

	// Repeated calls over identical data must give the same sequence.
	for i := 0; i < 3; i++ {
		result, err := svc.ComputeRanking(context.Background(), PeriodAll)
		require.NoError(t, err)
		require.Len(t, result.Ranking, 3)
		assert.Equal(t, int64(1), result.Ranking[0].UserID)
		assert.Equal(t, int64(2), result.Ranking[1].UserID)
		assert.Equal(t, int64(3), result.Ranking[2].UserID)
	}
}

func TestComputeRankingPeriodNarrowing(t *testing.T) {
	// Old facts drop out of a narrower window but recentActivity stays fixed
	// at the trailing 30 days no matter the period.
	store := &fakeStore{
		users: []models.User{user(1, "Collector")},
		facts: []models.OwnershipFact{
			fact(1, 10, 1, 5),   // inside every window
			fact(1, 11, 2, 60),  // outside month
			fact(1, 12, 1, 400), // only in all
		},
		rarities: map[int64]models.Rarity{
			10: models.RarityGold,
			11: models.RaritySilver,
			12: models.RarityBronze,
		},
	}
	svc := newTestService(store)

	all, err := svc.ComputeRanking(context.Background(), PeriodAll)
	require.NoError(t, err)
	month, err := svc.ComputeRanking(context.Background(), PeriodMonth)
	require.NoError(t, err)

	allEntry, monthEntry := all.Ranking[0], month.Ranking[0]
	assert.Equal(t, 3, allEntry.UniqueCards)
	assert.Equal(t, 1, monthEntry.UniqueCards)
	assert.LessOrEqual(t, monthEntry.UniqueCards, allEntry.UniqueCards)
	assert.LessOrEqual(t, monthEntry.TotalCards, allEntry.TotalCards)
	assert.LessOrEqual(t, monthEntry.RarityScore, allEntry.RarityScore)

	// Fixed recent window: quantity 1 from the 5-day-old fact in both cases.
	assert.Equal(t, 1, allEntry.RecentActivity)
	assert.Equal(t, 1, monthEntry.RecentActivity)
}

func TestComputeRankingInvalidPeriodEqualsAll(t *testing.T) {
	store := &fakeStore{
		users: []models.User{user(1, "Collector")},
		facts: []models.OwnershipFact{
			fact(1, 10, 1, 400),
		},
		rarities: map[int64]models.Rarity{10: models.RarityGold},
	}
	svc := newTestService(store)

	all, err := svc.ComputeRanking(context.Background(), PeriodAll)
	require.NoError(t, err)
	decade, err := svc.ComputeRanking(context.Background(), ParsePeriod("decade"))
	require.NoError(t, err)

	assert.Equal(t, all, decade)
}

func TestComputeRankingStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	svc := newTestService(store)

	result, err := svc.ComputeRanking(context.Background(), PeriodAll)
	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestComputeStats(t *testing.T) {
	store := &fakeStore{
		stats: &models.Stats{TotalUsers: 7, TotalCards: 200, TotalAlbums: 2, TotalCollections: 31},
	}
	svc := newTestService(store)

	stats, err := svc.ComputeStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalUsers)
	assert.Equal(t, 200, stats.TotalCards)
	assert.Equal(t, 2, stats.TotalAlbums)
	assert.Equal(t, 31, stats.TotalCollections)
}

func TestComputeStatsStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	svc := newTestService(store)

	stats, err := svc.ComputeStats(context.Background())
	assert.Nil(t, stats)
	assert.Error(t, err)
}
