package history

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// searchSource adapts the item list for fuzzy matching. Each entry is the
// extracted title plus the code's first line, which is what the panel shows.
type searchSource []Item

func (s searchSource) Len() int { return len(s) }

func (s searchSource) String(i int) string {
	firstLine := strings.SplitN(strings.TrimSpace(s[i].Code), "\n", 2)[0]
	return ExtractCodeTitle(s[i].Code) + " " + firstLine + " " + s[i].Language
}

// Search returns items fuzzy-matching query, best matches first.
// An empty query returns everything in store order.
func (s *Store) Search(query string) []Item {
	if strings.TrimSpace(query) == "" {
		return s.All()
	}

	items := s.All()
	matches := fuzzy.FindFrom(query, searchSource(items))
	out := make([]Item, 0, len(matches))
	for _, m := range matches {
		out = append(out, items[m.Index])
	}
	return out
}
