package pipeline

import (
	"sort"
	"strings"

	"pricecomp/internal"
	"pricecomp/internal/catalog"
	"pricecomp/internal/config"
	"pricecomp/internal/util"
)

// containmentScore is reserved for literal substring hits; the fuzzy
// metric never reaches it on its own unless the strings are equal.
const containmentScore = 100

type Ranker struct {
	threshold int
	topK      int
}

func NewRanker(cfg config.Config) *Ranker {
	threshold := cfg.MatchThreshold
	if threshold <= 0 {
		threshold = 65
	}
	topK := cfg.MatchTopK
	if topK <= 0 {
		topK = 10
	}
	return &Ranker{threshold: threshold, topK: topK}
}

// Rank scores the query against every product and returns at most topK
// candidates with score >= threshold, best first. Ties keep catalog
// order. A blank query matches nothing.
//
// Cost is one Levenshtein per non-containment product, O(n*L^2) for a
// catalog of n names of length L; fine for the few thousand rows a store
// export carries, worth rethinking before pointing this at more.
func (r *Ranker) Rank(query string, cat *catalog.Catalog) []internal.MatchCandidate {
	folded := util.Fold(query)
	if folded == "" || cat == nil {
		return nil
	}

	out := make([]internal.MatchCandidate, 0, r.topK)
	for _, product := range cat.Products() {
		name := util.Fold(product.Name)
		score := 0
		if strings.Contains(name, folded) {
			score = containmentScore
		} else {
			score = util.Ratio(folded, name)
		}
		if score >= r.threshold {
			out = append(out, internal.MatchCandidate{Product: product, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > r.topK {
		out = out[:r.topK]
	}
	return out
}
