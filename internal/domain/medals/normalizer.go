package medals

import (
	"context"
	"sort"
	"strings"

	"github.com/medalpool/podium/internal/domain/country"
)

// TableRow is one country's totals in the normalized medal table.
type TableRow struct {
	IOC     string `json:"ioc"`
	Country string `json:"country"`
	Flag    string `json:"flag"`
	Gold    int    `json:"gold"`
	Silver  int    `json:"silver"`
	Bronze  int    `json:"bronze"`
	Total   int    `json:"total"`
}

// Winner is one medalist entry: an athlete or team and its resolved country.
type Winner struct {
	Athlete string `json:"athlete"`
	Country string `json:"country"`
}

// Medalist is one resolved event result. Tied medalists at the same position
// appear as multiple winners, never as duplicate records.
type Medalist struct {
	Event  string   `json:"event"`
	Sport  string   `json:"sport"`
	Gold   []Winner `json:"gold"`
	Silver []Winner `json:"silver"`
	Bronze []Winner `json:"bronze"`
}

// EventMedals is the per-sport view of a single event's medal countries,
// ties kept as ordered lists.
type EventMedals struct {
	Gold   []string `json:"gold"`
	Silver []string `json:"silver"`
	Bronze []string `json:"bronze"`
}

// Normalizer turns raw snapshots into canonical collections. It feeds every
// committee code it sees into the resolver's learn path.
type Normalizer struct {
	resolver country.Resolver
}

// NewNormalizer creates a Normalizer backed by the given resolver.
func NewNormalizer(resolver country.Resolver) *Normalizer {
	return &Normalizer{resolver: resolver}
}

// Table produces the country medal table, sorted by gold then silver then
// bronze, all descending. Countries without medals are omitted. A nil or
// malformed snapshot yields an empty table; downstream treats "no data yet"
// and "parse failure" identically.
func (n *Normalizer) Table(ctx context.Context, snap *Snapshot) []TableRow {
	if snap == nil {
		return nil
	}

	var rows []TableRow
	for _, entry := range snap.MedalsTable {
		n.resolver.Learn(ctx, entry.Organisation, entry.Description)

		var totals MedalCount
		for _, mc := range entry.MedalsNumber {
			if mc.Type == "Total" {
				totals = mc
				break
			}
		}
		if totals.Total == 0 {
			continue
		}
		rows = append(rows, TableRow{
			IOC:     entry.Organisation,
			Country: n.resolver.Resolve(entry.Organisation),
			Flag:    country.Flag(entry.Organisation),
			Gold:    totals.Gold,
			Silver:  totals.Silver,
			Bronze:  totals.Bronze,
			Total:   totals.Total,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Gold != rows[j].Gold {
			return rows[i].Gold > rows[j].Gold
		}
		if rows[i].Silver != rows[j].Silver {
			return rows[i].Silver > rows[j].Silver
		}
		return rows[i].Bronze > rows[j].Bronze
	})
	return rows
}

// Medalists flattens the snapshot into one record per event. Events without
// a gold entry are still pending and omitted entirely. Winners tied at the
// same position are merged into the same record.
func (n *Normalizer) Medalists(ctx context.Context, snap *Snapshot) []Medalist {
	if snap == nil {
		return nil
	}

	byEvent := map[string]*Medalist{}
	var order []string

	for _, entry := range snap.MedalsTable {
		n.resolver.Learn(ctx, entry.Organisation, entry.Description)

		for _, disc := range entry.Disciplines {
			sport := SportName(disc.Code, disc.Name)

			for _, w := range disc.MedalWinners {
				rec, ok := byEvent[w.EventCode]
				if !ok {
					rec = &Medalist{Event: w.EventDescription, Sport: sport}
					byEvent[w.EventCode] = rec
					order = append(order, w.EventCode)
				}

				winner := Winner{
					Athlete: w.CompetitorName,
					Country: n.resolver.Resolve(w.Organisation),
				}
				switch w.MedalType {
				case MedalTypeGold:
					rec.Gold = append(rec.Gold, winner)
				case MedalTypeSilver:
					rec.Silver = append(rec.Silver, winner)
				case MedalTypeBronze:
					rec.Bronze = append(rec.Bronze, winner)
				}
			}
		}
	}

	var out []Medalist
	for _, code := range order {
		rec := byEvent[code]
		if len(rec.Gold) == 0 {
			continue
		}
		out = append(out, *rec)
	}
	return out
}

// SportResults returns event name -> medal countries for one sport. The
// sport is matched case-insensitively on its display name.
func (n *Normalizer) SportResults(ctx context.Context, snap *Snapshot, sport string) map[string]EventMedals {
	want := strings.ToLower(strings.TrimSpace(sport))

	out := map[string]EventMedals{}
	for _, rec := range n.Medalists(ctx, snap) {
		if strings.ToLower(strings.TrimSpace(rec.Sport)) != want {
			continue
		}
		out[rec.Event] = EventMedals{
			Gold:   winnerCountries(rec.Gold),
			Silver: winnerCountries(rec.Silver),
			Bronze: winnerCountries(rec.Bronze),
		}
	}
	return out
}

func winnerCountries(ws []Winner) []string {
	var out []string
	for _, w := range ws {
		if w.Country != "" {
			out = append(out, w.Country)
		}
	}
	return out
}
