package prompt

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"CryptoBot/internal/model"
)

// FallbackContext replaces the price table when the market data source fails.
const FallbackContext = "Live Bitcoin price data is currently unavailable."

// FallbackSpot replaces the spot price sentence when the source fails.
const FallbackSpot = "Live Bitcoin price is currently unavailable."

// FormatPriceTable renders the price series as a two-column markdown table.
// An empty series yields the header rows only.
func FormatPriceTable(points []model.PricePoint) string {
	var b strings.Builder
	b.WriteString("| Date | Price (USD) |\n")
	b.WriteString("|------|--------------|\n")
	for _, p := range points {
		b.WriteString(fmt.Sprintf("| %s | $%s |\n", p.Date(), humanize.FormatFloat("#,###.##", p.Price)))
	}
	return b.String()
}

// FormatSpotSentence renders the single-value spot price context sentence.
func FormatSpotSentence(price float64) string {
	return fmt.Sprintf("The current price of Bitcoin is $%s USD.", humanize.FormatFloat("#,###.##", price))
}
