package internal

import "fmt"

type Store string

const (
	StoreTraderJoes Store = "TJ"
	StoreWholeFoods Store = "WF"
)

func (s Store) FullName() string {
	switch s {
	case StoreTraderJoes:
		return "Trader Joe's"
	case StoreWholeFoods:
		return "Whole Foods"
	default:
		return string(s)
	}
}

// RawRow is one record from an ingestion source, keyed by field name.
// Values are raw strings exactly as they appeared in the feed.
type RawRow map[string]string

// Product is the canonical normalized record. Optional fields are empty
// strings when the source did not provide them. Values are never mutated
// after construction.
type Product struct {
	Name  string
	Price float64
	Store Store
	Size  string
	Unit  string
	Brand string
	SKU   string
}

// genericBrandTags are department labels the feeds put in the brand
// column; they carry no brand information and are suppressed in display.
var genericBrandTags = map[string]struct{}{
	"PRODUCE": {},
	"MEAT":    {},
	"SEAFOOD": {},
}

func (p Product) DisplayPrice() string {
	if p.Unit != "" {
		return fmt.Sprintf("$%.2f/%s", p.Price, p.Unit)
	}
	return fmt.Sprintf("$%.2f", p.Price)
}

func (p Product) DisplayName() string {
	out := ""
	if p.Brand != "" {
		if _, generic := genericBrandTags[p.Brand]; !generic {
			out = p.Brand + " "
		}
	}
	out += p.Name
	if p.Size != "" {
		out += " (" + p.Size + ")"
	}
	return out
}

// MatchCandidate pairs a catalog product with its similarity score for
// one query. Score is 0-100, with 100 reserved for literal containment.
type MatchCandidate struct {
	Product Product
	Score   int
}

// ComparisonItem is one compared query: the chosen product per store, or
// nil where the user skipped or nothing matched.
type ComparisonItem struct {
	Query      string
	TraderJoes *Product
	WholeFoods *Product
}

// Label returns the display name for the item row.
func (i ComparisonItem) Label() string {
	switch {
	case i.TraderJoes != nil:
		return i.TraderJoes.Name
	case i.WholeFoods != nil:
		return i.WholeFoods.Name
	case i.Query != "":
		return i.Query
	default:
		return "Unknown"
	}
}

// Comparable reports whether both sides were chosen. Per-item savings are
// only meaningful then; a missing side is never treated as a zero price.
func (i ComparisonItem) Comparable() bool {
	return i.TraderJoes != nil && i.WholeFoods != nil
}

type ComparisonResult struct {
	TraderJoesTotal float64
	WholeFoodsTotal float64
	Savings         float64
	CheaperStore    Store
	Items           []ComparisonItem
}

// LoadStats accounts for one catalog load.
type LoadStats struct {
	Rows       int
	Loaded     int
	Skipped    int
	Duplicates int
}
