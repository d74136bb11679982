// Package medals normalizes raw upstream medal snapshots into canonical
// country medal tables and per-event medalist records.
package medals

// Snapshot is the upstream medal standings payload as embedded in the
// results page. The shape mirrors the provider's JSON; everything else in
// this package works on the normalized forms derived from it.
type Snapshot struct {
	MedalsTable []TableEntry `json:"medalsTable"`
}

// TableEntry is one country's row in the upstream standings.
type TableEntry struct {
	Organisation string       `json:"organisation"`
	Description  string       `json:"description"`
	MedalsNumber []MedalCount `json:"medalsNumber"`
	Disciplines  []Discipline `json:"disciplines"`
}

// MedalCount is a per-type medal tally; the entry with Type "Total" carries
// the country's overall counts.
type MedalCount struct {
	Type   string `json:"type"`
	Gold   int    `json:"gold"`
	Silver int    `json:"silver"`
	Bronze int    `json:"bronze"`
	Total  int    `json:"total"`
}

// Discipline groups one country's medal winners within a single sport.
type Discipline struct {
	Code         string        `json:"code"`
	Name         string        `json:"name"`
	Gold         int           `json:"gold"`
	MedalWinners []MedalWinner `json:"medalWinners"`
}

// Medal type constants used by the upstream feed.
const (
	MedalTypeGold   = "ME_GOLD"
	MedalTypeSilver = "ME_SILVER"
	MedalTypeBronze = "ME_BRONZE"
)

// MedalWinner is a single medal awarded to a competitor.
type MedalWinner struct {
	EventCode        string `json:"eventCode"`
	EventDescription string `json:"eventDescription"`
	MedalType        string `json:"medalType"`
	CompetitorName   string `json:"competitorDisplayTvName"`
	Organisation     string `json:"organisation"`
}
