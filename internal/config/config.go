package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	OutputDir string

	MatchThreshold int
	MatchTopK      int
	DedupePolicy   string

	WFScrapeBaseURL   string
	WFScrapeMaxPages  int
	WFScrapeDelayMs   int
	WFScrapeTimeoutMs int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		MatchThreshold: getEnvInt("MATCH_THRESHOLD", 65),
		MatchTopK:      getEnvInt("MATCH_TOP_K", 10),
		DedupePolicy:   getEnv("DEDUPE_POLICY", "name-price"),

		WFScrapeBaseURL:   getEnv("WF_SCRAPE_BASE_URL", "https://www.wholefoodsmarket.com/products/all-products"),
		WFScrapeMaxPages:  getEnvInt("WF_SCRAPE_MAX_PAGES", 5),
		WFScrapeDelayMs:   getEnvInt("WF_SCRAPE_DELAY_MS", 1000),
		WFScrapeTimeoutMs: getEnvInt("WF_SCRAPE_TIMEOUT_MS", 30000),
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
