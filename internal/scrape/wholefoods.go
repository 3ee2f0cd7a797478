package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"pricecomp/internal"
	"pricecomp/internal/config"
	"pricecomp/internal/util"
)

const scrapedStoreCode = "365WF"

type Client struct {
	cfg        config.Config
	httpClient *http.Client
	limiter    *RateLimiter
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.WFScrapeTimeoutMs) * time.Millisecond},
		limiter:    NewRateLimiter(time.Duration(cfg.WFScrapeDelayMs) * time.Millisecond),
	}
}

// ScrapeProducts walks the 365 product-grid pages and returns scraped
// rows. An empty page ends the walk; a failed page ends it with whatever
// was gathered so far (single best-effort load, no retries).
func (c *Client) ScrapeProducts(ctx context.Context, maxPages int) ([]internal.RawRow, error) {
	if maxPages <= 0 {
		maxPages = c.cfg.WFScrapeMaxPages
	}

	rows := []internal.RawRow{}
	for page := 1; page <= maxPages; page++ {
		c.limiter.WaitTurn()
		pageRows, err := c.scrapePage(ctx, page)
		if err != nil {
			if len(rows) > 0 {
				return stampRows(rows), nil
			}
			return nil, err
		}
		if len(pageRows) == 0 {
			break
		}
		rows = append(rows, pageRows...)
	}
	return stampRows(rows), nil
}

// stampRows assigns sequential SKUs and one shared load timestamp. Every
// exit path goes through here so a partial scrape still writes complete
// feed rows.
func stampRows(rows []internal.RawRow) []internal.RawRow {
	stamp := time.Now().Format("2006-01-02 15:04:05")
	for i := range rows {
		rows[i]["sku"] = fmt.Sprintf("WF365-%05d", i+1)
		rows[i]["inserted_at"] = stamp
	}
	return rows
}

func (c *Client) scrapePage(ctx context.Context, page int) ([]internal.RawRow, error) {
	endpoint, err := url.Parse(c.cfg.WFScrapeBaseURL)
	if err != nil {
		return nil, err
	}
	query := endpoint.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("featured", "365-by-whole-foods-market")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page %d: unexpected status %d", page, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}
	return parseProductTiles(doc), nil
}

func parseProductTiles(doc *goquery.Document) []internal.RawRow {
	rows := []internal.RawRow{}
	doc.Find("div.w-pie--product-tile").Each(func(_ int, tile *goquery.Selection) {
		content := tile.Find("div.w-pie--product-tile__content").First()
		if content.Length() == 0 {
			return
		}

		brand := strings.TrimSpace(content.Find("span.w-cms--font-disclaimer").First().Text())
		name := strings.TrimSpace(content.Find("h2.w-cms--font-body__sans-bold").First().Text())
		priceText := content.Find(`span.text-left.bds--heading-5`).First().Text()

		price, err := util.ParsePrice(priceText)
		if err != nil || price <= 0 {
			return
		}

		title := name
		if brand != "" {
			title = brand + " " + name
		}
		rows = append(rows, internal.RawRow{
			"retail_price": strconv.FormatFloat(price, 'f', -1, 64),
			"item_title":   strings.TrimSpace(title),
			"store_code":   scrapedStoreCode,
			"availability": "1",
		})
	})
	return rows
}
