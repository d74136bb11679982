package country

// staticCodes maps IOC committee codes to the display names used across the
// app. Codes absent here are resolved from the learned cache or returned raw.
var staticCodes = map[string]string{
	"AIN": "Individual Neutral Athletes",
	"ALB": "Albania",
	"AND": "Andorra",
	"ARG": "Argentina",
	"ARM": "Armenia",
	"AUS": "Australia",
	"AUT": "Austria",
	"AZE": "Azerbaijan",
	"BEL": "Belgium",
	"BEN": "Benin",
	"BIH": "Bosnia and Herzegovina",
	"BLR": "Belarus",
	"BOL": "Bolivia",
	"BRA": "Brazil",
	"BUL": "Bulgaria",
	"CAN": "Canada",
	"CHI": "Chile",
	"CHN": "China",
	"COL": "Colombia",
	"CRO": "Croatia",
	"CYP": "Cyprus",
	"CZE": "Czech Republic",
	"DEN": "Denmark",
	"ECU": "Ecuador",
	"ERI": "Eritrea",
	"ESP": "Spain",
	"EST": "Estonia",
	"FIN": "Finland",
	"FRA": "France",
	"GBR": "Great Britain",
	"GBS": "Guinea-Bissau",
	"GEO": "Georgia",
	"GER": "Germany",
	"GRE": "Greece",
	"HAI": "Haiti",
	"HKG": "Hong Kong",
	"HUN": "Hungary",
	"ICE": "Iceland", // IOC code ISL also used
	"IND": "India",
	"IRI": "Iran",
	"IRL": "Ireland",
	"ISL": "Iceland",
	"ISR": "Israel",
	"ITA": "Italy",
	"JAM": "Jamaica",
	"JPN": "Japan",
	"KAZ": "Kazakhstan",
	"KEN": "Kenya",
	"KGZ": "Kyrgyzstan",
	"KOR": "South Korea",
	"KOS": "Kosovo",
	"KSA": "Saudi Arabia",
	"LAT": "Latvia",
	"LBN": "Lebanon",
	"LIE": "Liechtenstein",
	"LTU": "Lithuania",
	"LUX": "Luxembourg",
	"MAD": "Madagascar",
	"MAR": "Morocco",
	"MAS": "Malaysia",
	"MDA": "Moldova",
	"MEX": "Mexico",
	"MGL": "Mongolia",
	"MKD": "North Macedonia",
	"MLT": "Malta",
	"MNE": "Montenegro",
	"MON": "Monaco",
	"NED": "Netherlands",
	"NGR": "Nigeria",
	"NOR": "Norway",
	"NZL": "New Zealand",
	"PAK": "Pakistan",
	"PHI": "Philippines",
	"POL": "Poland",
	"POR": "Portugal",
	"PUR": "Puerto Rico",
	"ROC": "ROC/Russia",
	"ROU": "Romania",
	"RSA": "South Africa",
	"RUS": "ROC/Russia",
	"SGP": "Singapore",
	"SLO": "Slovenia",
	"SMR": "San Marino",
	"SRB": "Serbia",
	"SUI": "Switzerland",
	"SVK": "Slovakia",
	"SWE": "Sweden",
	"THA": "Thailand",
	"TPE": "Chinese Taipei",
	"TTO": "Trinidad and Tobago",
	"TUR": "Turkey",
	"UAE": "United Arab Emirates",
	"UKR": "Ukraine",
	"URU": "Uruguay",
	"USA": "United States",
	"UZB": "Uzbekistan",
	"VEN": "Venezuela",
}
