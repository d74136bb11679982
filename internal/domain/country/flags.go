package country

// iocToISO2 maps IOC codes to ISO 3166-1 alpha-2 codes for flag rendering.
// Only codes where the two differ are listed; matching codes are derived
// from the first two letters of the IOC code.
var iocToISO2 = map[string]string{
	"BIH": "BA", "BUL": "BG", "CHI": "CL", "CRO": "HR", "CZE": "CZ",
	"DEN": "DK", "ESP": "ES", "GBR": "GB", "GBS": "GW", "GER": "DE",
	"GRE": "GR", "HAI": "HT", "HKG": "HK", "ICE": "IS", "IRI": "IR",
	"IRL": "IE", "KGZ": "KG", "KOR": "KR", "KOS": "XK", "KSA": "SA",
	"LAT": "LV", "LBN": "LB", "LIE": "LI", "LTU": "LT", "LUX": "LU",
	"MAD": "MG", "MAR": "MA", "MAS": "MY", "MDA": "MD", "MEX": "MX",
	"MGL": "MN", "MKD": "MK", "MLT": "MT", "MNE": "ME", "MON": "MC",
	"NED": "NL", "NGR": "NG", "NOR": "NO", "PHI": "PH", "POR": "PT",
	"PUR": "PR", "ROC": "RU", "ROU": "RO", "RSA": "ZA", "RUS": "RU",
	"SGP": "SG", "SLO": "SI", "SMR": "SM", "SRB": "RS", "SUI": "CH",
	"SVK": "SK", "THA": "TH", "TPE": "TW", "TTO": "TT", "TUR": "TR",
	"UAE": "AE", "URU": "UY", "UZB": "UZ", "VEN": "VE",
}

const regionalIndicatorBase = 0x1F1E6

// Flag returns the Unicode flag emoji for an IOC code, or "" when no flag
// can be derived. Individual Neutral Athletes get the white flag.
func Flag(ioc string) string {
	if ioc == "AIN" {
		return "\U0001F3F3\uFE0F"
	}

	iso2, ok := iocToISO2[ioc]
	if !ok {
		if len(ioc) < 2 {
			return ""
		}
		// IOC and ISO alpha-2 usually agree on the first two letters.
		iso2 = ioc[:2]
	}

	out := make([]rune, 0, 2)
	for _, c := range iso2 {
		if c < 'A' || c > 'Z' {
			return ""
		}
		out = append(out, rune(regionalIndicatorBase+int(c-'A')))
	}
	return string(out)
}
