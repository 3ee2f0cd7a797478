package catalog

import (
	"testing"

	"pricecomp/internal"
)

func TestTraderJoesNormalize(t *testing.T) {
	n := NormalizerFor(internal.StoreTraderJoes)

	cases := []struct {
		name string
		row  internal.RawRow
		ok   bool
	}{
		{name: "valid row", row: internal.RawRow{"sku": "123", "retail_price": "3.49", "item_title": "Organic Bananas"}, ok: true},
		{name: "placeholder price rejected", row: internal.RawRow{"retail_price": "0.01", "item_title": "Mystery Item"}, ok: false},
		{name: "below placeholder rejected", row: internal.RawRow{"retail_price": "0.005", "item_title": "Mystery Item"}, ok: false},
		{name: "zero rejected", row: internal.RawRow{"retail_price": "0", "item_title": "Mystery Item"}, ok: false},
		{name: "non-numeric price rejected", row: internal.RawRow{"retail_price": "n/a", "item_title": "Mystery Item"}, ok: false},
		{name: "missing price rejected", row: internal.RawRow{"item_title": "Mystery Item"}, ok: false},
		{name: "empty title rejected", row: internal.RawRow{"retail_price": "2.99", "item_title": "   "}, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := n.Normalize(tc.row)
			if ok != tc.ok {
				t.Fatalf("ok=%v want %v", ok, tc.ok)
			}
		})
	}

	product, ok := n.Normalize(internal.RawRow{"sku": "061-0001", "retail_price": "0.69", "item_title": " Organic Bananas "})
	if !ok {
		t.Fatal("expected product")
	}
	if product.Name != "Organic Bananas" || product.Price != 0.69 || product.Store != internal.StoreTraderJoes || product.SKU != "061-0001" {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestWholeFoodsNormalizeExport(t *testing.T) {
	n := NormalizerFor(internal.StoreWholeFoods)

	t.Run("price precedence", func(t *testing.T) {
		row := internal.RawRow{"name": "Whole Milk", "regularPrice": "4.99", "salePrice": "3.99", "incrementalSalePrice": "2.99", "brand": "365", "uom": "gal"}
		product, ok := n.Normalize(row)
		if !ok || product.Price != 2.99 {
			t.Fatalf("ok=%v product=%+v", ok, product)
		}
		if product.Brand != "365" || product.Unit != "gal" {
			t.Fatalf("brand/unit lost: %+v", product)
		}
	})

	t.Run("sale beats regular", func(t *testing.T) {
		row := internal.RawRow{"name": "Whole Milk", "regularPrice": "4.99", "salePrice": "3.99", "incrementalSalePrice": "0"}
		product, ok := n.Normalize(row)
		if !ok || product.Price != 3.99 {
			t.Fatalf("ok=%v product=%+v", ok, product)
		}
	})

	t.Run("regular as fallback", func(t *testing.T) {
		row := internal.RawRow{"name": "Whole Milk", "regularPrice": "4.99", "salePrice": "0", "incrementalSalePrice": "0"}
		product, ok := n.Normalize(row)
		if !ok || product.Price != 4.99 {
			t.Fatalf("ok=%v product=%+v", ok, product)
		}
	})

	t.Run("negative price rejected", func(t *testing.T) {
		row := internal.RawRow{"name": "Whole Milk", "regularPrice": "-3.99", "salePrice": "0", "incrementalSalePrice": "0"}
		if _, ok := n.Normalize(row); ok {
			t.Fatal("expected rejection")
		}
	})

	t.Run("all zero rejected", func(t *testing.T) {
		row := internal.RawRow{"name": "Whole Milk", "regularPrice": "0", "salePrice": "0", "incrementalSalePrice": "0"}
		if _, ok := n.Normalize(row); ok {
			t.Fatal("expected rejection")
		}
	})

	t.Run("malformed price poisons row", func(t *testing.T) {
		row := internal.RawRow{"name": "Whole Milk", "regularPrice": "abc", "salePrice": "3.99", "incrementalSalePrice": "0"}
		if _, ok := n.Normalize(row); ok {
			t.Fatal("expected rejection")
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		row := internal.RawRow{"name": "", "regularPrice": "4.99", "salePrice": "0", "incrementalSalePrice": "0"}
		if _, ok := n.Normalize(row); ok {
			t.Fatal("expected rejection")
		}
	})
}

func TestWholeFoodsNormalizeScraped(t *testing.T) {
	n := NormalizerFor(internal.StoreWholeFoods)

	t.Run("staple placeholder accepted", func(t *testing.T) {
		row := internal.RawRow{"retail_price": "0.01", "item_title": "Organic Extra Virgin Olive Oil"}
		product, ok := n.Normalize(row)
		if !ok || product.Price != 0.01 {
			t.Fatalf("ok=%v product=%+v", ok, product)
		}
	})

	t.Run("non-staple placeholder rejected", func(t *testing.T) {
		row := internal.RawRow{"retail_price": "0.01", "item_title": "Birthday Card"}
		if _, ok := n.Normalize(row); ok {
			t.Fatal("expected rejection")
		}
	})

	t.Run("zero rejected", func(t *testing.T) {
		row := internal.RawRow{"retail_price": "0", "item_title": "Sparkling Water"}
		if _, ok := n.Normalize(row); ok {
			t.Fatal("expected rejection")
		}
	})

	t.Run("brand and name combine", func(t *testing.T) {
		row := internal.RawRow{"retail_price": "5.49", "item_title": "ignored", "brand": "365 by Whole Foods Market", "name": "Creamy Peanut Butter"}
		product, ok := n.Normalize(row)
		if !ok || product.Name != "365 by Whole Foods Market Creamy Peanut Butter" {
			t.Fatalf("ok=%v name=%q", ok, product.Name)
		}
	})

	t.Run("title used when brand absent", func(t *testing.T) {
		row := internal.RawRow{"retail_price": "5.49", "item_title": "Creamy Peanut Butter", "sku": "WF365-00007"}
		product, ok := n.Normalize(row)
		if !ok || product.Name != "Creamy Peanut Butter" || product.SKU != "WF365-00007" {
			t.Fatalf("ok=%v product=%+v", ok, product)
		}
	})
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NormalizerFor(internal.StoreTraderJoes)
	row := internal.RawRow{"sku": "1", "retail_price": "2.99", "item_title": "Sea Salt Chips"}

	first, ok1 := n.Normalize(row)
	second, ok2 := n.Normalize(row)
	if !ok1 || !ok2 || first != second {
		t.Fatalf("not idempotent: %+v vs %+v", first, second)
	}
}
