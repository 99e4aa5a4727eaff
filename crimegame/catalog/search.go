package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// EntryKind classifies a search result.
type EntryKind string

const (
	KindAsset           EntryKind = "asset"
	KindCrime           EntryKind = "crime"
	KindUpgrade         EntryKind = "upgrade"
	KindPrestigeUpgrade EntryKind = "prestige_upgrade"
	KindStock           EntryKind = "stock"
)

// SearchEntry is one fuzzy-searchable catalog row.
type SearchEntry struct {
	Kind EntryKind
	ID   string
	Name string
}

// searchIndex implements fuzzy.Source over the combined registries.
type searchIndex []SearchEntry

func (s searchIndex) String(i int) string { return s[i].Name }
func (s searchIndex) Len() int            { return len(s) }

var index = buildIndex()

func buildIndex() searchIndex {
	var idx searchIndex
	for _, a := range Assets {
		idx = append(idx, SearchEntry{Kind: KindAsset, ID: a.ID, Name: a.Name})
	}
	for _, c := range Crimes {
		idx = append(idx, SearchEntry{Kind: KindCrime, ID: c.ID, Name: c.Name})
	}
	for _, u := range Upgrades {
		idx = append(idx, SearchEntry{Kind: KindUpgrade, ID: u.ID, Name: u.Name})
	}
	for _, u := range PrestigeUpgrades {
		idx = append(idx, SearchEntry{Kind: KindPrestigeUpgrade, ID: u.ID, Name: u.Name})
	}
	for _, s := range Stocks {
		idx = append(idx, SearchEntry{Kind: KindStock, ID: s.ID, Name: s.Name})
	}
	return idx
}

// Search fuzzy-matches query against every catalog entry name, most relevant
// first. Intended for presentation-layer autocompletion; an empty query
// returns nothing.
func Search(query string, limit int) []SearchEntry {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.FindFrom(query, index)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]SearchEntry, 0, len(matches))
	for _, m := range matches {
		results = append(results, index[m.Index])
	}
	return results
}
