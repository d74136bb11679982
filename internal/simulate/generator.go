package simulate

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/medalpool/podium/internal/domain/medals"
	"github.com/medalpool/podium/internal/domain/schedule"
)

// medalistPool maps IOC codes to the display names seeded winners draw
// from; it mirrors predictionPool so predictions can be right.
var medalistPool = []struct {
	ioc  string
	name string
}{
	{"NOR", "Norway"},
	{"GER", "Germany"},
	{"USA", "United States"},
	{"CAN", "Canada"},
	{"AUT", "Austria"},
	{"SUI", "Switzerland"},
	{"SWE", "Sweden"},
	{"NED", "Netherlands"},
	{"KOR", "South Korea"},
	{"FRA", "France"},
	{"ITA", "Italy"},
	{"FIN", "Finland"},
	{"JPN", "Japan"},
}

// BuildSnapshot synthesizes an upstream snapshot in which every event whose
// gold-medal time is before asOf has a full podium. Winner selection is
// driven by rng so runs are reproducible per seed.
func BuildSnapshot(asOf time.Time, rng *rand.Rand) *medals.Snapshot {
	type countryAgg struct {
		entry      medals.TableEntry
		discipline map[string]*medals.Discipline
	}
	byCountry := map[string]*countryAgg{}

	agg := func(ioc string) *countryAgg {
		a, ok := byCountry[ioc]
		if !ok {
			a = &countryAgg{
				entry: medals.TableEntry{
					Organisation: ioc,
					MedalsNumber: []medals.MedalCount{{Type: "Total"}},
				},
				discipline: map[string]*medals.Discipline{},
			}
			byCountry[ioc] = a
		}
		return a
	}

	award := func(ioc, sport, code, eventCode, eventName, medalType string) {
		a := agg(ioc)
		d, ok := a.discipline[code]
		if !ok {
			d = &medals.Discipline{Code: code, Name: sport}
			a.discipline[code] = d
		}
		d.MedalWinners = append(d.MedalWinners, medals.MedalWinner{
			EventCode:        eventCode,
			EventDescription: eventName,
			MedalType:        medalType,
			CompetitorName:   "Team " + ioc,
			Organisation:     ioc,
		})
		totals := &a.entry.MedalsNumber[0]
		switch medalType {
		case medals.MedalTypeGold:
			d.Gold++
			totals.Gold++
		case medals.MedalTypeSilver:
			totals.Silver++
		case medals.MedalTypeBronze:
			totals.Bronze++
		}
		totals.Total++
	}

	eventSeq := 0
	for _, ev := range schedule.All() {
		if !ev.GoldMedal.Before(asOf) {
			continue
		}
		code, ok := medals.DisciplineCode(ev.Sport)
		if !ok {
			continue
		}
		eventSeq++
		eventCode := fmt.Sprintf("%s%03d", code, eventSeq)

		podium := rng.Perm(len(medalistPool))[:3]
		award(medalistPool[podium[0]].ioc, ev.Sport, code, eventCode, ev.Name, medals.MedalTypeGold)
		award(medalistPool[podium[1]].ioc, ev.Sport, code, eventCode, ev.Name, medals.MedalTypeSilver)
		award(medalistPool[podium[2]].ioc, ev.Sport, code, eventCode, ev.Name, medals.MedalTypeBronze)
	}

	iocs := make([]string, 0, len(byCountry))
	for ioc := range byCountry {
		iocs = append(iocs, ioc)
	}
	sort.Strings(iocs)

	snap := &medals.Snapshot{}
	for _, ioc := range iocs {
		a := byCountry[ioc]
		codes := make([]string, 0, len(a.discipline))
		for c := range a.discipline {
			codes = append(codes, c)
		}
		sort.Strings(codes)
		for _, c := range codes {
			a.entry.Disciplines = append(a.entry.Disciplines, *a.discipline[c])
		}
		snap.MedalsTable = append(snap.MedalsTable, a.entry)
	}
	return snap
}
