package vendorai

import (
	"context"
	"sort"
	"strings"
)

// KeywordRecommender is the local fallback used when no remote flow is
// configured. It scores a fixed vendor directory by keyword overlap with
// the query and returns the matches ordered by score.
type KeywordRecommender struct {
	directory []vendorEntry
}

type vendorEntry struct {
	name     string
	keywords []string
}

func NewKeywordRecommender() *KeywordRecommender {
	return &KeywordRecommender{
		directory: []vendorEntry{
			{name: "Central Pet Shop", keywords: []string{"dog", "food", "collar", "leash", "treat"}},
			{name: "Animal World", keywords: []string{"cat", "toy", "litter", "scratcher", "feather"}},
			{name: "Leather Craft Pets", keywords: []string{"collar", "leather", "leash", "dog", "harness"}},
			{name: "Bird Paradise", keywords: []string{"bird", "cage", "seed", "parrot", "perch"}},
			{name: "Aqua Life", keywords: []string{"fish", "aquarium", "filter", "tank", "pump"}},
			{name: "Small Friends", keywords: []string{"hamster", "rodent", "rabbit", "bedding", "wheel"}},
		},
	}
}

func (r *KeywordRecommender) Recommend(ctx context.Context, query string) ([]string, error) {
	terms := strings.Fields(strings.ToLower(query))

	type scored struct {
		name  string
		score int
		order int
	}
	var matches []scored
	for i, entry := range r.directory {
		score := 0
		for _, term := range terms {
			for _, kw := range entry.keywords {
				if strings.Contains(kw, term) || strings.Contains(term, kw) {
					score++
				}
			}
			if strings.Contains(strings.ToLower(entry.name), term) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{name: entry.name, score: score, order: i})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].order < matches[j].order
	})

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.name)
	}
	return names, nil
}
