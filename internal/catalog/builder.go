package catalog

import (
	"errors"

	"pricecomp/internal"
)

// ErrEmptyCatalog reports a store that yielded zero usable products.
// Whether that degrades the session or aborts it is the caller's call.
var ErrEmptyCatalog = errors.New("catalog has no usable products")

// Builder accumulates raw rows and freezes them into a Catalog. No
// partially built catalog is ever handed to matching.
type Builder struct {
	store      internal.Store
	normalizer Normalizer
	policy     DedupePolicy
	records    []record
	stats      internal.LoadStats
}

func NewBuilder(store internal.Store, policy DedupePolicy) *Builder {
	return &Builder{
		store:      store,
		normalizer: NormalizerFor(store),
		policy:     policy,
	}
}

// Add normalizes one raw row. Rows that produce no product are counted
// and skipped, never surfaced as errors.
func (b *Builder) Add(row internal.RawRow) {
	b.stats.Rows++
	product, ok := b.normalizer.Normalize(row)
	if !ok {
		b.stats.Skipped++
		return
	}
	b.stats.Loaded++
	b.records = append(b.records, record{
		product:    product,
		insertedAt: parseInsertedAt(row["inserted_at"]),
	})
}

func (b *Builder) AddAll(rows []internal.RawRow) {
	for _, row := range rows {
		b.Add(row)
	}
}

// Build deduplicates and freezes the catalog. The builder keeps no
// reference to the returned product slice.
func (b *Builder) Build() (*Catalog, internal.LoadStats, error) {
	products := dedupe(b.records, b.policy)
	stats := b.stats
	stats.Duplicates = stats.Loaded - len(products)
	b.records = nil

	if len(products) == 0 {
		return nil, stats, ErrEmptyCatalog
	}
	return &Catalog{store: b.store, products: products}, stats, nil
}

// Load is the one-shot path: rows in, frozen catalog out.
func Load(store internal.Store, rows []internal.RawRow, policy DedupePolicy) (*Catalog, internal.LoadStats, error) {
	b := NewBuilder(store, policy)
	b.AddAll(rows)
	return b.Build()
}
