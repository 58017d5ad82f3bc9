package prompt

import (
	"strings"
	"testing"
	"time"

	"CryptoBot/internal/model"
)

func TestFormatPriceTable(t *testing.T) {
	points := []model.PricePoint{
		{Time: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Price: 61000.5},
		{Time: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Price: 1234567.891},
	}
	table := FormatPriceTable(points)

	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + separator + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "| Date | Price (USD) |" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[2] != "| 2024-03-01 | $61,000.50 |" {
		t.Errorf("unexpected first row: %q", lines[2])
	}
	if lines[3] != "| 2024-03-02 | $1,234,567.89 |" {
		t.Errorf("unexpected second row: %q", lines[3])
	}
}

func TestFormatPriceTable_Empty(t *testing.T) {
	table := FormatPriceTable(nil)
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header rows only, got %d lines", len(lines))
	}
	if lines[0] != "| Date | Price (USD) |" {
		t.Errorf("unexpected header: %q", lines[0])
	}
}

func TestFormatSpotSentence(t *testing.T) {
	got := FormatSpotSentence(42000)
	want := "The current price of Bitcoin is $42,000.00 USD."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
