package catalog

import (
	"fmt"
	"strings"
	"time"

	"pricecomp/internal"
)

type DedupePolicy string

const (
	// DedupeNamePrice keeps the first occurrence of every (name, price)
	// pair. Suits raw time-series exports where repeats are identical.
	DedupeNamePrice DedupePolicy = "name-price"
	// DedupeRecency keeps one row per name: the one with the newest
	// inserted_at stamp. Ties keep the first-seen row.
	DedupeRecency DedupePolicy = "recency"
)

func ParseDedupePolicy(s string) (DedupePolicy, error) {
	switch DedupePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case DedupeNamePrice:
		return DedupeNamePrice, nil
	case DedupeRecency:
		return DedupeRecency, nil
	default:
		return "", fmt.Errorf("unknown dedupe policy: %q", s)
	}
}

const insertedAtLayout = "2006-01-02 15:04:05"

// epochFallback stands in for missing timestamps so stamped rows always
// win against unstamped ones.
var epochFallback = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func parseInsertedAt(raw string) time.Time {
	parsed, err := time.Parse(insertedAtLayout, strings.TrimSpace(raw))
	if err != nil {
		return epochFallback
	}
	return parsed
}

// record is a normalized product plus the source row's timestamp, kept
// only long enough to drive recency dedup.
type record struct {
	product    internal.Product
	insertedAt time.Time
}

func dedupe(records []record, policy DedupePolicy) []internal.Product {
	if policy == DedupeRecency {
		return dedupeByRecency(records)
	}
	return dedupeByNamePrice(records)
}

func dedupeByNamePrice(records []record) []internal.Product {
	type identity struct {
		name  string
		price float64
	}
	seen := map[identity]struct{}{}
	out := make([]internal.Product, 0, len(records))
	for _, rec := range records {
		key := identity{name: rec.product.Name, price: rec.product.Price}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec.product)
	}
	return out
}

func dedupeByRecency(records []record) []internal.Product {
	position := map[string]int{}
	newest := map[string]time.Time{}
	out := make([]internal.Product, 0, len(records))
	for _, rec := range records {
		name := rec.product.Name
		at, seen := position[name]
		if !seen {
			position[name] = len(out)
			newest[name] = rec.insertedAt
			out = append(out, rec.product)
			continue
		}
		// Strictly newer replaces in place; the slot keeps first-seen
		// order so output stays deterministic for identical input order.
		if rec.insertedAt.After(newest[name]) {
			out[at] = rec.product
			newest[name] = rec.insertedAt
		}
	}
	return out
}
