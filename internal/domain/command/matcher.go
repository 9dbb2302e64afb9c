package command

import (
	"strings"

	"github.com/andikasp/atk-intel/internal/domain/entity"
)

// MatchResult links a parsed line item to a catalog entry. ItemID and
// MatchedName are empty when no catalog entry resolved; the parsed item is
// preserved verbatim either way for downstream reporting.
type MatchResult struct {
	ItemID      string
	MatchedName string
	Parsed      ParsedLineItem
}

// Matched reports whether a catalog entry was resolved.
func (m MatchResult) Matched() bool { return m.ItemID != "" }

// Match resolves each parsed item name against the catalog. Pure function;
// the result has the same length and order as items.
//
// Resolution per item, case-insensitive on trimmed names:
//  1. exact name equality
//  2. partial containment in either direction: every word of one name
//     appears in the other ("kertas a4" resolves "Kertas HVS A4"). First
//     catalog entry wins; catalog order is caller-controlled and must be
//     stable.
//  3. otherwise unmatched
func Match(items []ParsedLineItem, catalog []entity.Item) []MatchResult {
	results := make([]MatchResult, 0, len(items))
	for _, it := range items {
		results = append(results, matchOne(it, catalog))
	}
	return results
}

func matchOne(item ParsedLineItem, catalog []entity.Item) MatchResult {
	want := strings.ToLower(strings.TrimSpace(item.Name))

	for _, c := range catalog {
		if strings.ToLower(strings.TrimSpace(c.Name)) == want {
			return MatchResult{ItemID: c.ID, MatchedName: c.Name, Parsed: item}
		}
	}
	for _, c := range catalog {
		have := strings.ToLower(strings.TrimSpace(c.Name))
		if containsName(have, want) || containsName(want, have) {
			return MatchResult{ItemID: c.ID, MatchedName: c.Name, Parsed: item}
		}
	}
	return MatchResult{Parsed: item}
}

// containsName reports whether every word of needle occurs in haystack,
// so "kertas a4" still reaches "kertas hvs a4".
func containsName(haystack, needle string) bool {
	words := strings.Fields(needle)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(haystack, w) {
			return false
		}
	}
	return true
}
