package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"pricecomp/internal"
)

// ExportResultToXLSX writes the comparison to a spreadsheet: one row per
// compared item, then a totals row.
func ExportResultToXLSX(result internal.ComparisonResult, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"item", "tj_product", "tj_price", "wf_product", "wf_price",
		"savings", "cheaper_store",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, item := range result.Items {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, item.Label())
		if item.TraderJoes != nil {
			set(2, item.TraderJoes.DisplayName())
			set(3, item.TraderJoes.Price)
		} else {
			set(2, "Not found")
		}
		if item.WholeFoods != nil {
			set(4, item.WholeFoods.DisplayName())
			set(5, item.WholeFoods.Price)
		} else {
			set(4, "Not found")
		}
		if amount, cheaper, ok := ItemSavings(item); ok {
			set(6, amount)
			set(7, string(cheaper))
		} else {
			set(6, "N/A")
		}
	}

	totalRow := len(result.Items) + 2
	set := func(col int, value any) {
		cell, _ := excelize.CoordinatesToCellName(col, totalRow)
		_ = f.SetCellValue(sheet, cell, value)
	}
	set(1, "TOTAL")
	set(3, result.TraderJoesTotal)
	set(5, result.WholeFoodsTotal)
	set(6, result.Savings)
	set(7, fmt.Sprintf("%s is cheaper", result.CheaperStore.FullName()))

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
