package util

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	unitSuffixPattern = regexp.MustCompile(`/.*$`)
	pricePattern      = regexp.MustCompile(`\$?(\d+(?:\.\d{1,2})?)`)
	noiseReplacer     = strings.NewReplacer("Add to list", "", "with Prime", "", "$", "", ",", "")
)

var ErrNoPrice = errors.New("no valid price in input")

// ParsePrice converts a raw price cell like "$4.99" or "2.49/lb" to its
// numeric value. The unit suffix is dropped here; unit capture is the
// normalizer's concern.
func ParsePrice(raw string) (float64, error) {
	cleaned := unitSuffixPattern.ReplaceAllString(noiseReplacer.Replace(strings.TrimSpace(raw)), "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, ErrNoPrice
	}
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrNoPrice
	}
	return price, nil
}

// ExtractPrice scans a free-form line (scraped text dumps mix prices with
// promo copy) and returns the first token that reads as a sane price.
func ExtractPrice(line string) (float64, bool) {
	cleaned := noiseReplacer.Replace(line)
	for _, match := range pricePattern.FindAllStringSubmatch(cleaned, -1) {
		price, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		if price > 0 && price < 1000 {
			return price, true
		}
	}
	return 0, false
}
