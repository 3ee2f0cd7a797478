package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"pricecomp/internal"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadRows(t *testing.T) {
	path := writeFixture(t, "wf.csv",
		"name,regularPrice,salePrice,incrementalSalePrice,brand,uom\n"+
			"Whole Milk,4.99,0,0,365,gal\n"+
			"Sourdough Loaf,5.49,4.99,0,,\n")

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("len=%d", len(rows))
	}
	if rows[0]["name"] != "Whole Milk" || rows[0]["uom"] != "gal" {
		t.Fatalf("row0: %v", rows[0])
	}
	if rows[1]["salePrice"] != "4.99" {
		t.Fatalf("row1: %v", rows[1])
	}
}

func TestReadRowsSkipsRepeatedHeaders(t *testing.T) {
	path := writeFixture(t, "concat.csv",
		"sku,retail_price,item_title,inserted_at,store_code,availability\n"+
			"1,0.69,Organic Bananas,2024-01-01 08:00:00,061,1\n"+
			"sku,retail_price,item_title,inserted_at,store_code,availability\n"+
			"2,3.99,Whole Milk,2024-01-01 08:00:00,061,1\n")

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("len=%d: %v", len(rows), rows)
	}
}

func TestReadTraderJoesRows(t *testing.T) {
	t.Run("headerless", func(t *testing.T) {
		path := writeFixture(t, "tj.csv",
			"1,0.69,Organic Bananas,2024-01-01 08:00:00,061,1\n"+
				"2,3.99,Whole Milk,2024-01-01 08:00:00,061,1\n")

		rows, err := ReadTraderJoesRows(path)
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 2 {
			t.Fatalf("len=%d", len(rows))
		}
		if rows[0]["item_title"] != "Organic Bananas" || rows[0]["retail_price"] != "0.69" {
			t.Fatalf("row0: %v", rows[0])
		}
	})

	t.Run("with header", func(t *testing.T) {
		path := writeFixture(t, "tj.csv",
			"sku,retail_price,item_title,inserted_at,store_code,availability\n"+
				"1,0.69,Organic Bananas,2024-01-01 08:00:00,061,1\n")

		rows, err := ReadTraderJoesRows(path)
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 1 || rows[0]["sku"] != "1" {
			t.Fatalf("rows: %v", rows)
		}
	})

	t.Run("short record tolerated", func(t *testing.T) {
		path := writeFixture(t, "tj.csv",
			"1,0.69,Organic Bananas\n")

		rows, err := ReadTraderJoesRows(path)
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 1 || rows[0]["inserted_at"] != "" {
			t.Fatalf("rows: %v", rows)
		}
	})
}

func TestWriteRowsCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "feed.csv")
	rows := []internal.RawRow{
		{"sku": "1", "retail_price": "0.69", "item_title": "Organic Bananas"},
	}

	if err := WriteRowsCSV(path, FeedFields, rows); err != nil {
		t.Fatal(err)
	}
	back, err := ReadRows(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 1 || back[0]["item_title"] != "Organic Bananas" {
		t.Fatalf("back: %v", back)
	}
}
