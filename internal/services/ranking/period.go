package ranking

import (
	"time"

	"github.com/cardcollection-app/cardcollection-backend/internal/models"
)

// Period is the caller-selected recency window that decides which ownership
// facts count toward the leaderboard aggregates.
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodAll     Period = "all"
)

// ParsePeriod maps a raw query value to a Period. Unknown values are not an
// error, they fall back to PeriodAll silently.
func ParsePeriod(raw string) Period {
	switch Period(raw) {
	case PeriodMonth, PeriodQuarter, PeriodYear, PeriodAll:
		return Period(raw)
	default:
		return PeriodAll
	}
}

// Window returns the trailing duration covered by the period. The second
// return value is false for PeriodAll, which applies no filter at all.
func (p Period) Window() (time.Duration, bool) {
	switch p {
	case PeriodMonth:
		return 30 * 24 * time.Hour, true
	case PeriodQuarter:
		return 90 * 24 * time.Hour, true
	case PeriodYear:
		return 365 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

// Label returns the display label shown to collectors for the period.
func (p Period) Label() string {
	switch p {
	case PeriodMonth:
		return "Último Mes"
	case PeriodQuarter:
		return "Últimos 3 Meses"
	case PeriodYear:
		return "Último Año"
	default:
		return "Todo el Tiempo"
	}
}

// AvailablePeriods is the static catalog of selectable periods returned with
// every ranking response.
func AvailablePeriods() []models.PeriodOption {
	return []models.PeriodOption{
		{Label: "Último Mes", Value: string(PeriodMonth)},
		{Label: "Últimos 3 Meses", Value: string(PeriodQuarter)},
		{Label: "Último Año", Value: string(PeriodYear)},
		{Label: "Todo el Tiempo", Value: string(PeriodAll)},
	}
}
