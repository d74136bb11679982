package medals

// disciplineToSportID maps upstream discipline codes to category sport IDs.
var disciplineToSportID = map[string]string{
	"ALP": "alpine_skiing",
	"BTH": "biathlon",
	"BOB": "bobsled",
	"CCS": "cross_country_skiing",
	"CUR": "curling",
	"FSK": "figure_skating",
	"FRS": "freestyle_skiing",
	"IHO": "ice_hockey",
	"LUG": "luge",
	"NCB": "nordic_combined",
	"STK": "short_track_speed_skating",
	"SKN": "skeleton",
	"SJP": "ski_jumping",
	"SKM": "ski_mountaineering",
	"SBD": "snowboard",
	"SSK": "speed_skating",
}

// sportIDToName maps category sport IDs to the display names used in the app.
var sportIDToName = map[string]string{
	"alpine_skiing":             "Alpine Skiing",
	"biathlon":                  "Biathlon",
	"bobsled":                   "Bobsled",
	"cross_country_skiing":      "Cross-Country Skiing",
	"curling":                   "Curling",
	"figure_skating":            "Figure Skating",
	"freestyle_skiing":          "Freestyle Skiing",
	"ice_hockey":                "Ice Hockey",
	"luge":                      "Luge",
	"nordic_combined":           "Nordic Combined",
	"short_track_speed_skating": "Short Track Speed Skating",
	"skeleton":                  "Skeleton",
	"ski_jumping":               "Ski Jumping",
	"ski_mountaineering":        "Ski Mountaineering",
	"snowboard":                 "Snowboard",
	"speed_skating":             "Speed Skating",
}

// SportName returns the display name for a discipline code, falling back to
// the provided upstream name for unknown codes.
func SportName(disciplineCode, upstreamName string) string {
	if id, ok := disciplineToSportID[disciplineCode]; ok {
		if name, ok := sportIDToName[id]; ok {
			return name
		}
	}
	return upstreamName
}

// DisciplineCode returns the upstream discipline code for a sport display
// name, for synthesizing snapshots in tests and simulation.
func DisciplineCode(sportName string) (string, bool) {
	for code, id := range disciplineToSportID {
		if sportIDToName[id] == sportName {
			return code, true
		}
	}
	return "", false
}

// SportIDs returns the sport IDs that can be auto-resolved from upstream
// discipline data.
func SportIDs() []string {
	out := make([]string, 0, len(disciplineToSportID))
	for _, id := range disciplineToSportID {
		out = append(out, id)
	}
	return out
}
