package catalog

import (
	"strings"

	"pricecomp/internal"
	"pricecomp/internal/util"
)

// placeholderPrice is the sentinel both feeds use for "price unknown".
const placeholderPrice = 0.01

// placeholderAllowList holds staple-good keywords. Whole Foods rows priced
// at exactly the placeholder are kept only when the title names one of
// these; placeholder prices in that feed track a fixed department subset.
var placeholderAllowList = []string{
	"olive", "oil", "organic", "tuna", "virgin",
	"extra virgin", "white", "potato", "chips",
	"anchovy", "couscous", "rice", "garlic",
}

// Normalizer turns one raw feed row into a Product, or reports false for
// rows that carry no usable product. It never fails past the row
// boundary; skip accounting belongs to the caller.
type Normalizer interface {
	Normalize(row internal.RawRow) (internal.Product, bool)
}

// NormalizerFor selects the store's parsing strategy. The choice is made
// once per catalog load, not per row.
func NormalizerFor(store internal.Store) Normalizer {
	if store == internal.StoreWholeFoods {
		return wholeFoodsNormalizer{}
	}
	return traderJoesNormalizer{}
}

type traderJoesNormalizer struct{}

func (traderJoesNormalizer) Normalize(row internal.RawRow) (internal.Product, bool) {
	price, err := util.ParsePrice(row["retail_price"])
	if err != nil {
		return internal.Product{}, false
	}
	// The placeholder floor is exclusive: 0.01 itself is a sentinel.
	if price <= placeholderPrice {
		return internal.Product{}, false
	}

	name := strings.TrimSpace(row["item_title"])
	if name == "" {
		return internal.Product{}, false
	}

	return internal.Product{
		Name:  name,
		Price: price,
		Store: internal.StoreTraderJoes,
		SKU:   row["sku"],
	}, true
}

type wholeFoodsNormalizer struct{}

func (n wholeFoodsNormalizer) Normalize(row internal.RawRow) (internal.Product, bool) {
	if _, export := row["regularPrice"]; export {
		return n.normalizeExport(row)
	}
	if _, export := row["salePrice"]; export {
		return n.normalizeExport(row)
	}
	return n.normalizeScraped(row)
}

// normalizeExport handles the structured export shape. Price precedence:
// incremental sale, then sale, then regular; a zero selected price means
// the row carries no price at all.
func (wholeFoodsNormalizer) normalizeExport(row internal.RawRow) (internal.Product, bool) {
	regular, ok := optionalPrice(row, "regularPrice")
	if !ok {
		return internal.Product{}, false
	}
	sale, ok := optionalPrice(row, "salePrice")
	if !ok {
		return internal.Product{}, false
	}
	incremental, ok := optionalPrice(row, "incrementalSalePrice")
	if !ok {
		return internal.Product{}, false
	}

	price := incremental
	if price == 0 {
		price = sale
	}
	if price == 0 {
		price = regular
	}
	if price <= 0 {
		return internal.Product{}, false
	}

	name := strings.TrimSpace(row["name"])
	if name == "" {
		return internal.Product{}, false
	}

	return internal.Product{
		Name:  name,
		Price: price,
		Store: internal.StoreWholeFoods,
		Brand: strings.TrimSpace(row["brand"]),
		Unit:  strings.TrimSpace(row["uom"]),
	}, true
}

// normalizeScraped handles the scraped shape (retail_price/item_title).
func (wholeFoodsNormalizer) normalizeScraped(row internal.RawRow) (internal.Product, bool) {
	price, err := util.ParsePrice(row["retail_price"])
	if err != nil || price <= 0 {
		return internal.Product{}, false
	}

	name := strings.TrimSpace(row["item_title"])
	if brand, title := strings.TrimSpace(row["brand"]), strings.TrimSpace(row["name"]); brand != "" && title != "" {
		name = brand + " " + title
	}
	if name == "" {
		return internal.Product{}, false
	}

	if price == placeholderPrice && !staplePlaceholder(name) {
		return internal.Product{}, false
	}

	return internal.Product{
		Name:  name,
		Price: price,
		Store: internal.StoreWholeFoods,
		SKU:   row["sku"],
	}, true
}

func staplePlaceholder(title string) bool {
	folded := util.Fold(title)
	for _, keyword := range placeholderAllowList {
		if strings.Contains(folded, keyword) {
			return true
		}
	}
	return false
}

// optionalPrice reads a price field that may be absent (counts as zero)
// but, when present, must parse; a present-but-unparseable value poisons
// the whole row.
func optionalPrice(row internal.RawRow, field string) (float64, bool) {
	raw, present := row[field]
	if !present {
		return 0, true
	}
	price, err := util.ParsePrice(raw)
	if err != nil {
		return 0, false
	}
	return price, true
}
