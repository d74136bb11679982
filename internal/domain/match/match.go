// Package match decides whether an upstream event description refers to the
// same Olympic event as a canonical schedule entry. It is the single point of
// truth for completed/remaining event accounting, so it must stay
// deterministic and side-effect free.
package match

import (
	"regexp"
	"strings"

	"github.com/medalpool/podium/pkg/metrics"
)

// minKeywordLen rejects degenerate fuzzy keywords like a bare "m".
const minKeywordLen = 4

var (
	genderPrefixRe = regexp.MustCompile(`^(men'?s?|women'?s?|mixed)\s*`)
	normalHillRe   = regexp.MustCompile(`\bnh\b`)
	largeHillRe    = regexp.MustCompile(`\blh\b`)
	nonAlnumRe     = regexp.MustCompile(`[^a-z0-9]`)
	digitRe        = regexp.MustCompile(`[0-9]`)
)

// Matches reports whether an upstream result name and a canonical event name
// describe the same event.
//
// Gender is compared first and a mismatch is always a non-match, even for
// otherwise identical strings; "Men's Downhill" must never match inside
// "Women's Downhill" results. After that, normalized names match on equality
// or containment, with a digit-stripped keyword comparison as a fallback for
// distance variations ("10km Skiathlon" vs "15km Skiathlon" style renames).
func Matches(resultName, eventName string) bool {
	matched := matches(resultName, eventName)
	metrics.RecordMatcherComparison(matched)
	return matched
}

func matches(resultName, eventName string) bool {
	if ExtractGender(resultName) != ExtractGender(eventName) {
		return false
	}

	resultNorm := Normalize(resultName)
	eventNorm := Normalize(eventName)

	if resultNorm == eventNorm ||
		strings.Contains(eventNorm, resultNorm) ||
		strings.Contains(resultNorm, eventNorm) {
		return true
	}

	resultKw := typeKeyword(resultNorm)
	eventKw := typeKeyword(eventNorm)
	if len(resultKw) < minKeywordLen || len(eventKw) < minKeywordLen {
		return false
	}
	return resultKw == eventKw ||
		strings.Contains(eventKw, resultKw) ||
		strings.Contains(resultKw, eventKw)
}

// ExtractGender returns the gender prefix token of an event name:
// "men", "women", "mixed", or "" when the name has no gender prefix.
func ExtractGender(name string) string {
	low := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.HasPrefix(low, "women"):
		return "women"
	case strings.HasPrefix(low, "men"):
		return "men"
	case strings.HasPrefix(low, "mixed"):
		return "mixed"
	}
	return ""
}

// Normalize lowercases a name, strips the gender prefix, expands known
// distance and hill abbreviations, and removes all non-alphanumerics.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = genderPrefixRe.ReplaceAllString(n, "")
	n = strings.ReplaceAll(n, "kilometres", "km")
	n = strings.ReplaceAll(n, "kilometre", "km")
	n = strings.ReplaceAll(n, "metres", "m")
	n = strings.ReplaceAll(n, "metre", "m")
	n = normalHillRe.ReplaceAllString(n, "normal hill")
	n = largeHillRe.ReplaceAllString(n, "large hill")
	return nonAlnumRe.ReplaceAllString(n, "")
}

// typeKeyword strips digits from a normalized name, leaving the event type,
// e.g. "20kmskiathlon" -> "kmskiathlon".
func typeKeyword(normalized string) string {
	return digitRe.ReplaceAllString(normalized, "")
}
