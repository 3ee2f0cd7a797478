package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pricecomp/internal"
	"pricecomp/internal/util"
)

// The Whole Foods listing dump alternates product-name and price lines,
// interleaved with UI chrome that has to be thrown away.
var textDumpNoise = map[string]struct{}{
	"Add to list":               {},
	"365 by Whole Foods Market": {},
	"Opens in a new tab":        {},
}

var allDigits = regexp.MustCompile(`^\d+$`)

const (
	wholeFoodsStoreCode = "546"
	insertedAtLayout    = "2006-01-02 15:04:05"
)

// ConvertTextDump turns the raw two-line listing text into scraped-shape
// rows with synthetic SKUs. All rows share one load timestamp.
func ConvertTextDump(content string) []internal.RawRow {
	lines := strings.Split(content, "\n")
	stamp := time.Now().Format(insertedAtLayout)

	rows := []internal.RawRow{}
	skuCounter := 0
	for i := 0; i+1 < len(lines); i += 2 {
		name := strings.TrimSpace(lines[i])
		priceLine := strings.TrimSpace(lines[i+1])
		if name == "" || priceLine == "" {
			continue
		}
		if isNoiseLine(name) || isNoiseLine(priceLine) {
			continue
		}
		// Entries branded "365" are listed separately by the scraper.
		if strings.Contains(name, "365") {
			continue
		}

		price, ok := util.ExtractPrice(priceLine)
		if !ok || len(name) <= 3 || allDigits.MatchString(name) {
			continue
		}

		skuCounter++
		rows = append(rows, internal.RawRow{
			"sku":          fmt.Sprintf("WF%05d", skuCounter),
			"retail_price": strconv.FormatFloat(price, 'f', -1, 64),
			"item_title":   name,
			"inserted_at":  stamp,
			"store_code":   wholeFoodsStoreCode,
			"availability": "1",
		})
	}
	return rows
}

func isNoiseLine(line string) bool {
	_, noise := textDumpNoise[line]
	return noise
}
