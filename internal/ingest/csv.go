package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pricecomp/internal"
)

// FeedFields is the fixed column order shared by the Trader Joe's price
// dump and the scraped Whole Foods CSVs. The TJ dump sometimes arrives
// without a header row.
var FeedFields = []string{"sku", "retail_price", "item_title", "inserted_at", "store_code", "availability"}

// ReadRows reads a headered CSV into RawRow maps. Repeats of the header
// row (concatenated exports) are skipped.
func ReadRows(path string) ([]internal.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := newReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty file", path)
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return readInto(r, header)
}

// ReadTraderJoesRows reads the TJ dump whether or not it leads with a
// header row.
func ReadTraderJoesRows(path string) ([]internal.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := newReader(f)
	first, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty file", path)
	}
	if err != nil {
		return nil, err
	}

	rows, err := readInto(r, FeedFields)
	if err != nil {
		return nil, err
	}
	if !isHeaderRecord(first, FeedFields) {
		rows = append([]internal.RawRow{zip(FeedFields, first)}, rows...)
	}
	return rows, nil
}

// WriteRowsCSV writes rows under the given field order, header first.
func WriteRowsCSV(path string, fields []string, rows []internal.RawRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(fields); err != nil {
		return err
	}
	record := make([]string, len(fields))
	for _, row := range rows {
		for i, field := range fields {
			record[i] = row[field]
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func newReader(f *os.File) *csv.Reader {
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}

func readInto(r *csv.Reader, fields []string) ([]internal.RawRow, error) {
	rows := []internal.RawRow{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// One mangled record never aborts the load.
			continue
		}
		if isBlank(record) || isHeaderRecord(record, fields) {
			continue
		}
		rows = append(rows, zip(fields, record))
	}
	return rows, nil
}

func zip(fields, record []string) internal.RawRow {
	row := internal.RawRow{}
	for i, field := range fields {
		if i < len(record) {
			row[field] = record[i]
		}
	}
	return row
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func isHeaderRecord(record, fields []string) bool {
	if len(record) == 0 {
		return false
	}
	return strings.TrimSpace(record[0]) == fields[0]
}
