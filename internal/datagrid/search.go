package datagrid

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchMode selects how the search text is matched against the search column.
type SearchMode string

const (
	// SearchSubstring is a case-sensitive substring match.
	SearchSubstring SearchMode = "substring"
	// SearchFold is a case-insensitive substring match.
	SearchFold SearchMode = "fold"
	// SearchFuzzy matches the query characters in order, ignoring case and diacritics.
	SearchFuzzy SearchMode = "fuzzy"
)

// ParseSearchMode validates a user-supplied mode. Empty selects SearchSubstring.
func ParseSearchMode(value string) (SearchMode, error) {
	switch mode := SearchMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return SearchSubstring, nil
	case SearchSubstring, SearchFold, SearchFuzzy:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown search mode %q (want substring, fold or fuzzy)", value)
	}
}

func (m SearchMode) match(text, query string) bool {
	switch m {
	case SearchFold:
		return strings.Contains(strings.ToLower(text), strings.ToLower(query))
	case SearchFuzzy:
		return fuzzy.MatchNormalizedFold(query, text)
	default:
		return strings.Contains(text, query)
	}
}
