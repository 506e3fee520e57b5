package models

// RankingEntry is one row of the leaderboard: the per-user aggregate computed
// fresh on every request, never persisted.
type RankingEntry struct {
	UserID         int64  `json:"userId"`
	UserName       string `json:"userName"`
	UniqueCards    int    `json:"uniqueCards"`
	TotalCards     int    `json:"totalCards"`
	RarityScore    int    `json:"rarityScore"`
	RecentActivity int    `json:"recentActivity"`
	TotalScore     int    `json:"totalScore"`
	Position       int    `json:"position"`
}

// PeriodOption is one selectable entry of the period catalog.
type PeriodOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// RankingResponse is the payload of GET /api/ranking.
type RankingResponse struct {
	Period           string         `json:"period"`
	Ranking          []RankingEntry `json:"ranking"`
	AvailablePeriods []PeriodOption `json:"availablePeriods"`
}

// Stats is the payload of GET /api/stats: scalar catalog-wide counts,
// independent of any period filter.
type Stats struct {
	TotalUsers       int `json:"totalUsers"`
	TotalCards       int `json:"totalCards"`
	TotalAlbums      int `json:"totalAlbums"`
	TotalCollections int `json:"totalCollections"`
}
