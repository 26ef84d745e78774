package pantry

import (
	"sort"
	"strings"

	"github.com/pantrychef/v1/internal/domain/ingredient"
)

// MatchRank orders match quality: exact name, then containment, then
// shared significant words. Lower is better.
type MatchRank int

const (
	RankExact MatchRank = iota
	RankContains
	RankWordOverlap
)

// Candidate is a pantry item judged usable for a requirement.
type Candidate struct {
	Item *Item
	Rank MatchRank
}

// matcher stopwords: words too generic to count as significant overlap.
var insignificantWords = map[string]struct{}{
	"the": {}, "and": {}, "with": {}, "mix": {}, "style": {},
}

// Match ranks pantry items against a requirement. Ordering within a
// rank is FIFO-by-expiry: soonest expiration first, items without one
// last, then oldest CreatedAt. This ordering decides which physical
// stock is used first, so it must stay deterministic.
func Match(req ingredient.Requirement, items []*Item) []Candidate {
	var candidates []Candidate
	for _, item := range items {
		rank, ok := rank(req.Name, item.NormalizedName)
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{Item: item, Rank: rank})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if ca.Rank != cb.Rank {
			return ca.Rank < cb.Rank
		}
		ea, eb := ca.Item.ExpiresAt, cb.Item.ExpiresAt
		switch {
		case ea != nil && eb == nil:
			return true
		case ea == nil && eb != nil:
			return false
		case ea != nil && eb != nil && !ea.Equal(*eb):
			return ea.Before(*eb)
		}
		return ca.Item.CreatedAt.Before(cb.Item.CreatedAt)
	})

	return candidates
}

func rank(want, have string) (MatchRank, bool) {
	if want == "" || have == "" {
		return 0, false
	}
	if want == have {
		return RankExact, true
	}
	if strings.Contains(have, want) || strings.Contains(want, have) {
		return RankContains, true
	}
	if sharesSignificantWord(want, have) {
		return RankWordOverlap, true
	}
	return 0, false
}

func sharesSignificantWord(a, b string) bool {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(a) {
		if significant(w) {
			words[w] = struct{}{}
		}
	}
	for _, w := range strings.Fields(b) {
		if !significant(w) {
			continue
		}
		if _, ok := words[w]; ok {
			return true
		}
	}
	return false
}

func significant(w string) bool {
	if len(w) <= 2 {
		return false
	}
	_, stop := insignificantWords[w]
	return !stop
}
