package domain

import (
	"cmp"
	"slices"
)

type FreetScore struct {
	FreetID string
	Score   int
}

// RankFreets scores every freet by the sum of its reactions' recommendations and
// orders them by score descending. Every freet starts at zero, so unreacted
// freets are ranked too. Ties keep the order of freetIDs. Reactions naming a
// freet outside freetIDs are ignored.
func RankFreets(freetIDs []string, reactions []Reaction) []FreetScore {
	scores := make(map[string]int, len(freetIDs))
	ranked := make([]FreetScore, 0, len(freetIDs))
	for _, id := range freetIDs {
		if _, seen := scores[id]; seen {
			continue
		}
		scores[id] = 0
		ranked = append(ranked, FreetScore{FreetID: id})
	}

	for _, r := range reactions {
		if _, ok := scores[r.FreetID]; !ok {
			continue
		}
		scores[r.FreetID] += r.Recommendation.Score()
	}

	for i := range ranked {
		ranked[i].Score = scores[ranked[i].FreetID]
	}

	slices.SortStableFunc(ranked, func(a, b FreetScore) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return ranked
}
