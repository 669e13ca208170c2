// Package format holds presentation helpers shared by the API and the CLI.
package format

import (
	"math"
	"net/url"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders whole US dollars with en-US digit grouping,
// e.g. "US$ 2,500,000".
func FormatPrice(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	return printer.Sprintf("US$ %d", int64(math.Round(value)))
}

// IsSafeURL accepts absolute http and https URLs only.
func IsSafeURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
