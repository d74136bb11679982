package schedule

import "time"

// loc is the schedule-local timezone. All event times below are wall-clock
// times at the venues (CET).
var loc = func() *time.Location {
	l, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		return time.FixedZone("CET", 60*60)
	}
	return l
}()

// Location returns the schedule-local timezone.
func Location() *time.Location {
	return loc
}

// feb builds a timestamp in February 2026, schedule-local time.
func feb(day, hour, minute int) time.Time {
	return time.Date(2026, time.February, day, hour, minute, 0, 0, loc)
}

// events lists all 116 medal events of Milano-Cortina 2026, grouped by venue
// zone. The games run February 6-22, 2026.
var events = []Event{
	// Cortina zone.

	// Alpine Skiing, women's events (Cortina d'Ampezzo).
	{"Alpine Skiing", "Women's Downhill", Women, feb(10, 11, 0), feb(10, 11, 0)},
	{"Alpine Skiing", "Women's Super-G", Women, feb(9, 11, 0), feb(9, 11, 0)},
	{"Alpine Skiing", "Women's Giant Slalom", Women, feb(18, 10, 0), feb(18, 13, 30)},
	{"Alpine Skiing", "Women's Slalom", Women, feb(20, 10, 0), feb(20, 13, 30)},
	{"Alpine Skiing", "Women's Team Combined", Women, feb(11, 10, 0), feb(11, 14, 0)},

	// Curling.
	{"Curling", "Men's", Men, feb(10, 9, 0), feb(21, 14, 30)},
	{"Curling", "Women's", Women, feb(10, 9, 0), feb(20, 14, 30)},
	{"Curling", "Mixed Doubles", Mixed, feb(6, 20, 0), feb(10, 14, 30)},

	// Bobsled.
	{"Bobsled", "Two-Man", Men, feb(14, 20, 0), feb(15, 20, 0)},
	{"Bobsled", "Four-Man", Men, feb(21, 9, 30), feb(22, 9, 30)},
	{"Bobsled", "Women's Monobob", Women, feb(16, 9, 30), feb(17, 9, 30)},
	{"Bobsled", "Two-Woman", Women, feb(18, 20, 0), feb(19, 20, 0)},

	// Skeleton.
	{"Skeleton", "Men's", Men, feb(12, 9, 30), feb(13, 11, 30)},
	{"Skeleton", "Women's", Women, feb(13, 18, 0), feb(14, 20, 0)},
	{"Skeleton", "Mixed Team", Mixed, feb(14, 9, 30), feb(14, 12, 0)},

	// Luge.
	{"Luge", "Men's Singles", Men, feb(7, 18, 0), feb(8, 20, 30)},
	{"Luge", "Women's Singles", Women, feb(9, 18, 0), feb(10, 20, 30)},
	{"Luge", "Women's Doubles", Women, feb(11, 18, 30), feb(11, 20, 30)},
	{"Luge", "Men's Doubles", Men, feb(12, 18, 30), feb(12, 20, 30)},
	{"Luge", "Team Relay", Mixed, feb(13, 18, 30), feb(13, 20, 0)},

	// Biathlon (Anterselva).
	{"Biathlon", "Mixed Relay", Mixed, feb(8, 10, 0), feb(8, 10, 0)},
	{"Biathlon", "Men's 20km Individual", Men, feb(12, 14, 30), feb(12, 14, 30)},
	{"Biathlon", "Women's 15km Individual", Women, feb(11, 14, 30), feb(11, 14, 30)},
	{"Biathlon", "Men's 10km Sprint", Men, feb(8, 14, 30), feb(8, 14, 30)},
	{"Biathlon", "Women's 7.5km Sprint", Women, feb(9, 14, 30), feb(9, 14, 30)},
	{"Biathlon", "Men's 12.5km Pursuit", Men, feb(10, 14, 30), feb(10, 14, 30)},
	{"Biathlon", "Women's 10km Pursuit", Women, feb(11, 10, 0), feb(11, 10, 0)},
	{"Biathlon", "Men's 4x7.5km Relay", Men, feb(14, 14, 30), feb(14, 14, 30)},
	{"Biathlon", "Women's 4x6km Relay", Women, feb(17, 14, 30), feb(17, 14, 30)},
	{"Biathlon", "Men's 15km Mass Start", Men, feb(22, 12, 30), feb(22, 12, 30)},
	{"Biathlon", "Women's 12.5km Mass Start", Women, feb(21, 12, 30), feb(21, 12, 30)},

	// Milano zone.

	// Ice Hockey.
	{"Ice Hockey", "Men's", Men, feb(11, 12, 10), feb(22, 12, 10)},
	{"Ice Hockey", "Women's", Women, feb(6, 12, 10), feb(17, 12, 10)},

	// Speed Skating.
	{"Speed Skating", "Women's 3000m", Women, feb(8, 15, 0), feb(8, 17, 0)},
	{"Speed Skating", "Men's 5000m", Men, feb(9, 15, 0), feb(9, 17, 0)},
	{"Speed Skating", "Women's 1500m", Women, feb(10, 14, 30), feb(10, 16, 0)},
	{"Speed Skating", "Men's 1000m", Men, feb(14, 16, 0), feb(14, 17, 30)},
	{"Speed Skating", "Women's 500m", Women, feb(13, 16, 0), feb(13, 17, 30)},
	{"Speed Skating", "Men's 500m", Men, feb(12, 16, 0), feb(12, 17, 30)},
	{"Speed Skating", "Men's 1500m", Men, feb(11, 14, 30), feb(11, 16, 0)},
	{"Speed Skating", "Women's 1000m", Women, feb(16, 13, 30), feb(16, 15, 0)},
	{"Speed Skating", "Women's Team Pursuit", Women, feb(16, 14, 0), feb(17, 15, 30)},
	{"Speed Skating", "Men's Team Pursuit", Men, feb(16, 16, 0), feb(17, 17, 0)},
	{"Speed Skating", "Men's 10000m", Men, feb(15, 15, 0), feb(15, 17, 30)},
	{"Speed Skating", "Women's 5000m", Women, feb(18, 15, 0), feb(18, 17, 0)},
	{"Speed Skating", "Women's Mass Start", Women, feb(21, 14, 0), feb(21, 15, 0)},
	{"Speed Skating", "Men's Mass Start", Men, feb(21, 15, 0), feb(21, 16, 0)},

	// Short Track Speed Skating.
	{"Short Track Speed Skating", "Men's 1000m", Men, feb(7, 18, 0), feb(10, 19, 30)},
	{"Short Track Speed Skating", "Women's 1500m", Women, feb(7, 18, 0), feb(8, 19, 30)},
	{"Short Track Speed Skating", "Mixed Team Relay", Mixed, feb(7, 18, 0), feb(7, 20, 30)},
	{"Short Track Speed Skating", "Men's 1500m", Men, feb(8, 18, 0), feb(9, 19, 30)},
	{"Short Track Speed Skating", "Women's 500m", Women, feb(10, 18, 0), feb(12, 19, 30)},
	{"Short Track Speed Skating", "Women's 1000m", Women, feb(14, 18, 0), feb(16, 19, 30)},
	{"Short Track Speed Skating", "Men's 500m", Men, feb(15, 18, 0), feb(16, 19, 30)},
	{"Short Track Speed Skating", "Women's 3000m Relay", Women, feb(9, 18, 0), feb(12, 19, 30)},
	{"Short Track Speed Skating", "Men's 5000m Relay", Men, feb(10, 18, 0), feb(14, 19, 30)},

	// Figure Skating.
	{"Figure Skating", "Team Event", Mixed, feb(6, 10, 0), feb(8, 18, 30)},
	{"Figure Skating", "Pairs", Mixed, feb(7, 18, 30), feb(9, 18, 30)},
	{"Figure Skating", "Men's Singles", Men, feb(10, 10, 0), feb(12, 18, 30)},
	{"Figure Skating", "Ice Dance", Mixed, feb(13, 10, 0), feb(15, 18, 30)},
	{"Figure Skating", "Women's Singles", Women, feb(17, 10, 0), feb(19, 18, 30)},

	// Val di Fiemme zone.

	// Ski Jumping (Predazzo).
	{"Ski Jumping", "Women's Normal Hill", Women, feb(7, 18, 0), feb(7, 19, 30)},
	{"Ski Jumping", "Men's Normal Hill", Men, feb(8, 18, 0), feb(8, 19, 30)},
	{"Ski Jumping", "Mixed Team", Mixed, feb(10, 18, 0), feb(10, 19, 30)},
	{"Ski Jumping", "Men's Large Hill", Men, feb(12, 18, 0), feb(12, 19, 30)},
	{"Ski Jumping", "Women's Large Hill", Women, feb(13, 18, 0), feb(13, 19, 30)},
	{"Ski Jumping", "Men's Super Team", Men, feb(14, 18, 0), feb(14, 19, 30)},

	// Nordic Combined (Tesero & Predazzo).
	{"Nordic Combined", "Men's Individual Normal Hill", Men, feb(9, 10, 0), feb(9, 16, 0)},
	{"Nordic Combined", "Men's Individual Large Hill", Men, feb(13, 10, 0), feb(13, 16, 0)},
	{"Nordic Combined", "Men's Team Sprint Large Hill", Men, feb(17, 10, 0), feb(17, 16, 0)},

	// Cross-Country Skiing (Tesero).
	{"Cross-Country Skiing", "Women's 10km Skiathlon", Women, feb(7, 12, 0), feb(7, 12, 0)},
	{"Cross-Country Skiing", "Men's 10km+ Skiathlon", Men, feb(8, 12, 0), feb(8, 12, 0)},
	{"Cross-Country Skiing", "Women's Sprint Free", Women, feb(11, 11, 0), feb(11, 13, 0)},
	{"Cross-Country Skiing", "Men's Sprint Free", Men, feb(11, 12, 0), feb(11, 14, 0)},
	{"Cross-Country Skiing", "Men's Interval Start", Men, feb(14, 12, 0), feb(14, 12, 0)},
	{"Cross-Country Skiing", "Women's Interval Start", Women, feb(13, 12, 0), feb(13, 12, 0)},
	{"Cross-Country Skiing", "Women's 4x7.5km Relay", Women, feb(15, 10, 0), feb(15, 10, 0)},
	{"Cross-Country Skiing", "Men's 4x10km Relay", Men, feb(16, 10, 0), feb(16, 10, 0)},
	{"Cross-Country Skiing", "Women's Team Sprint Free", Women, feb(19, 11, 0), feb(19, 13, 0)},
	{"Cross-Country Skiing", "Men's Team Sprint Free", Men, feb(19, 12, 0), feb(19, 14, 0)},
	{"Cross-Country Skiing", "Men's 50km Mass Start Classic", Men, feb(22, 10, 0), feb(22, 10, 0)},
	{"Cross-Country Skiing", "Women's 30km Mass Start Classic", Women, feb(21, 10, 0), feb(21, 10, 0)},

	// Valtellina zone.

	// Freestyle Skiing (Livigno & Bormio).
	{"Freestyle Skiing", "Women's Moguls", Women, feb(6, 12, 0), feb(8, 12, 30)},
	{"Freestyle Skiing", "Men's Moguls", Men, feb(7, 12, 0), feb(9, 12, 30)},
	{"Freestyle Skiing", "Women's Dual Moguls", Women, feb(9, 12, 0), feb(9, 14, 0)},
	{"Freestyle Skiing", "Men's Dual Moguls", Men, feb(10, 12, 0), feb(10, 14, 0)},
	{"Freestyle Skiing", "Women's Aerials", Women, feb(10, 19, 0), feb(13, 19, 30)},
	{"Freestyle Skiing", "Men's Aerials", Men, feb(11, 19, 0), feb(14, 19, 30)},
	{"Freestyle Skiing", "Mixed Team Aerials", Mixed, feb(8, 19, 0), feb(8, 20, 30)},
	{"Freestyle Skiing", "Women's Freeski Big Air", Women, feb(9, 18, 0), feb(10, 18, 0)},
	{"Freestyle Skiing", "Men's Freeski Big Air", Men, feb(10, 18, 0), feb(11, 18, 0)},
	{"Freestyle Skiing", "Women's Freeski Halfpipe", Women, feb(11, 10, 30), feb(13, 10, 30)},
	{"Freestyle Skiing", "Men's Freeski Halfpipe", Men, feb(12, 10, 30), feb(14, 10, 30)},
	{"Freestyle Skiing", "Women's Freeski Slopestyle", Women, feb(7, 10, 30), feb(9, 10, 30)},
	{"Freestyle Skiing", "Men's Freeski Slopestyle", Men, feb(8, 10, 30), feb(10, 10, 30)},
	{"Freestyle Skiing", "Women's Ski Cross", Women, feb(18, 12, 0), feb(19, 12, 30)},
	{"Freestyle Skiing", "Men's Ski Cross", Men, feb(19, 12, 0), feb(20, 12, 30)},

	// Snowboard (Livigno).
	{"Snowboard", "Women's Slopestyle", Women, feb(6, 9, 30), feb(8, 9, 30)},
	{"Snowboard", "Men's Slopestyle", Men, feb(7, 9, 30), feb(9, 9, 30)},
	{"Snowboard", "Women's Big Air", Women, feb(8, 18, 0), feb(9, 18, 0)},
	{"Snowboard", "Men's Big Air", Men, feb(9, 18, 0), feb(10, 18, 0)},
	{"Snowboard", "Women's Halfpipe", Women, feb(10, 9, 30), feb(12, 9, 30)},
	{"Snowboard", "Men's Halfpipe", Men, feb(11, 9, 30), feb(13, 9, 30)},
	{"Snowboard", "Women's Snowboard Cross", Women, feb(17, 13, 0), feb(18, 13, 30)},
	{"Snowboard", "Men's Snowboard Cross", Men, feb(18, 13, 0), feb(19, 13, 30)},
	{"Snowboard", "Mixed Team Snowboard Cross", Mixed, feb(21, 13, 0), feb(21, 14, 30)},
	{"Snowboard", "Women's PGS", Women, feb(20, 12, 0), feb(20, 13, 30)},
	{"Snowboard", "Men's PGS", Men, feb(20, 13, 0), feb(20, 14, 30)},

	// Alpine Skiing, men's events (Bormio).
	{"Alpine Skiing", "Men's Downhill", Men, feb(7, 11, 0), feb(7, 11, 0)},
	{"Alpine Skiing", "Men's Super-G", Men, feb(8, 11, 0), feb(8, 11, 0)},
	{"Alpine Skiing", "Men's Giant Slalom", Men, feb(15, 10, 0), feb(15, 13, 30)},
	{"Alpine Skiing", "Men's Slalom", Men, feb(21, 10, 0), feb(21, 13, 30)},
	{"Alpine Skiing", "Men's Team Combined", Men, feb(12, 10, 0), feb(12, 14, 0)},

	// Ski Mountaineering (Bormio).
	{"Ski Mountaineering", "Women's Sprint", Women, feb(18, 10, 0), feb(18, 12, 0)},
	{"Ski Mountaineering", "Men's Sprint", Men, feb(18, 14, 0), feb(18, 16, 0)},
	{"Ski Mountaineering", "Mixed Relay", Mixed, feb(19, 10, 0), feb(19, 12, 0)},
}

// countries lists the national committees competing in the 2026 winter games.
var countries = []string{
	"Albania", "Andorra", "Argentina", "Armenia", "Australia", "Austria",
	"Azerbaijan", "Belgium", "Benin", "Bolivia", "Bosnia and Herzegovina",
	"Brazil", "Bulgaria", "Canada", "Chile", "China", "Chinese Taipei",
	"Colombia", "Croatia", "Cyprus", "Czech Republic", "Denmark", "Ecuador",
	"Eritrea", "Estonia", "Finland", "France", "Georgia", "Germany",
	"Great Britain", "Greece", "Guinea-Bissau", "Haiti", "Hong Kong",
	"Hungary", "Iceland", "India", "Individual Neutral Athletes", "Iran",
	"Ireland", "Israel", "Italy", "Jamaica", "Japan", "Kazakhstan", "Kenya",
	"Kosovo", "Kyrgyzstan", "Latvia", "Lebanon", "Liechtenstein", "Lithuania",
	"Luxembourg", "Madagascar", "Malaysia", "Malta", "Mexico", "Moldova",
	"Monaco", "Mongolia", "Montenegro", "Morocco", "Netherlands",
	"New Zealand", "Nigeria", "North Macedonia", "Norway", "Pakistan",
	"Philippines", "Poland", "Portugal", "Puerto Rico", "ROC/Russia",
	"Romania", "San Marino", "Saudi Arabia", "Serbia", "Singapore",
	"Slovakia", "Slovenia", "South Africa", "South Korea", "Spain", "Sweden",
	"Switzerland", "Thailand", "Trinidad and Tobago", "Turkey", "Ukraine",
	"United Arab Emirates", "United States", "Uruguay", "Uzbekistan",
	"Venezuela",
}
