package fetch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/medalpool/podium/internal/domain/medals"
)

const standingsMarker = `"medalStandings"`

// ExtractSnapshot locates the embedded medal standings JSON in the results
// page HTML and unmarshals it. The payload sits inline in a script block as
// `"medalStandings": {...}`, so the object is carved out by brace matching
// rather than parsing the whole document.
func ExtractSnapshot(html string) (*medals.Snapshot, error) {
	start := strings.Index(html, standingsMarker)
	if start < 0 {
		return nil, ErrNoData
	}

	rest := html[start+len(standingsMarker):]
	colon := strings.Index(rest, ":")
	if colon < 0 {
		return nil, ErrBadShape
	}
	braceStart := strings.Index(rest[colon:], "{")
	if braceStart < 0 {
		return nil, ErrBadShape
	}
	obj := rest[colon+braceStart:]

	end, ok := matchBraces(obj)
	if !ok {
		return nil, ErrBadShape
	}

	var snap medals.Snapshot
	if err := json.Unmarshal([]byte(obj[:end+1]), &snap); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadShape, err)
	}
	return &snap, nil
}

// matchBraces returns the index of the brace closing the object starting at
// s[0], honoring string literals and escapes.
func matchBraces(s string) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
