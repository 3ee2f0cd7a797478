package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"pricecomp/internal"
	"pricecomp/internal/catalog"
	"pricecomp/internal/config"
	"pricecomp/internal/display"
	"pricecomp/internal/ingest"
	"pricecomp/internal/pipeline"
	"pricecomp/internal/scrape"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "scrape:wholefoods":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", filepath.Join(cfg.OutputDir, "wholefoods_365.csv"), "output csv path")
		pages := fs.Int("pages", cfg.WFScrapeMaxPages, "max pages to scrape")
		_ = fs.Parse(os.Args[2:])
		must(cfg.Require("WF_SCRAPE_BASE_URL", cfg.WFScrapeBaseURL))
		client := scrape.NewClient(cfg)
		rows, err := client.ScrapeProducts(context.Background(), *pages)
		must(err)
		must(ingest.WriteRowsCSV(*out, ingest.FeedFields, rows))
		fmt.Printf("scraped %d products to %s\n", len(rows), *out)
	case "convert:textdump":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input text dump path")
		out := fs.String("out", filepath.Join(cfg.OutputDir, "wholefoods_textdump.csv"), "output csv path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		blob, err := os.ReadFile(*input)
		must(err)
		rows := ingest.ConvertTextDump(string(blob))
		must(ingest.WriteRowsCSV(*out, ingest.FeedFields, rows))
		fmt.Printf("converted %d products to %s\n", len(rows), *out)
	case "compare":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		tjPath := fs.String("tj", "", "Trader Joe's csv path")
		wfPath := fs.String("wf", "", "Whole Foods csv path")
		dedupe := fs.String("dedupe", cfg.DedupePolicy, "dedupe policy: name-price|recency")
		items := fs.String("items", "", "comma-separated items (skips interactive prompt)")
		export := fs.String("export", "", "optional xlsx output path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*tjPath) == "" || strings.TrimSpace(*wfPath) == "" {
			must(fmt.Errorf("--tj and --wf are required"))
		}
		policy, err := catalog.ParseDedupePolicy(*dedupe)
		must(err)
		runCompare(cfg, *tjPath, *wfPath, policy, *items, *export)
	default:
		usage()
		os.Exit(1)
	}
}

func runCompare(cfg config.Config, tjPath, wfPath string, policy catalog.DedupePolicy, items, export string) {
	console := display.NewConsole(os.Stdin, os.Stdout)

	catalogs := loadCatalogs(console, tjPath, wfPath, policy)
	tj, wf := catalogs[0], catalogs[1]
	if tj == nil && wf == nil {
		must(fmt.Errorf("no usable products in either store"))
	}

	ranker := pipeline.NewRanker(cfg)
	session := pipeline.NewSession()

	addItem := func(query string) {
		query = strings.TrimSpace(query)
		if query == "" {
			return
		}
		// The catalogs are frozen; ranking both is safely concurrent.
		var wfCandidates []internal.MatchCandidate
		done := make(chan struct{})
		go func() {
			wfCandidates = ranker.Rank(query, wf)
			close(done)
		}()
		tjCandidates := ranker.Rank(query, tj)
		<-done

		tjChoice := console.SelectCandidate(internal.StoreTraderJoes, query, tjCandidates)
		wfChoice := console.SelectCandidate(internal.StoreWholeFoods, query, wfCandidates)
		session.AddItem(query, tjChoice, wfChoice)
	}

	if strings.TrimSpace(items) != "" {
		for _, item := range strings.Split(items, ",") {
			addItem(item)
		}
	} else {
		for {
			item, more := console.PromptItem()
			if !more {
				break
			}
			addItem(item)
		}
	}

	result := session.Result()
	console.PrintResult(result)

	if strings.TrimSpace(export) != "" {
		must(pipeline.ExportResultToXLSX(result, export))
		fmt.Printf("exported %d items to %s\n", len(result.Items), export)
	}
}

// loadCatalogs reads and builds both store catalogs concurrently. An
// empty store degrades with a warning; the session can still run
// one-sided.
func loadCatalogs(console *display.Console, tjPath, wfPath string, policy catalog.DedupePolicy) [2]*catalog.Catalog {
	type loaded struct {
		cat   *catalog.Catalog
		stats internal.LoadStats
		err   error
	}

	load := func(store internal.Store, path string, slot *loaded) {
		var rows []internal.RawRow
		var err error
		if store == internal.StoreTraderJoes {
			rows, err = ingest.ReadTraderJoesRows(path)
		} else {
			rows, err = ingest.ReadRows(path)
		}
		if err != nil {
			slot.err = err
			return
		}
		slot.cat, slot.stats, slot.err = catalog.Load(store, rows, policy)
	}

	var tj, wf loaded
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); load(internal.StoreTraderJoes, tjPath, &tj) }()
	go func() { defer wg.Done(); load(internal.StoreWholeFoods, wfPath, &wf) }()
	wg.Wait()

	report := func(store internal.Store, l loaded) {
		switch {
		case errors.Is(l.err, catalog.ErrEmptyCatalog):
			console.Printf("Warning: %s produced no usable products, continuing without it\n", store.FullName())
		case l.err != nil:
			must(l.err)
		default:
			console.Printf("Loaded %d unique products from %s (%d rows, %d skipped, %d duplicates)\n",
				l.cat.Len(), store.FullName(), l.stats.Rows, l.stats.Skipped, l.stats.Duplicates)
		}
	}
	report(internal.StoreTraderJoes, tj)
	report(internal.StoreWholeFoods, wf)

	return [2]*catalog.Catalog{tj.cat, wf.cat}
}

func usage() {
	fmt.Println(`usage: pricecomp <command> [flags]

commands:
  scrape:wholefoods  [--out FILE] [--pages N]
  convert:textdump   --input FILE [--out FILE]
  compare            --tj FILE --wf FILE [--dedupe name-price|recency] [--items "a, b"] [--export FILE]`)
}

func must(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
