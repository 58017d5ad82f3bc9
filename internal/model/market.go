package model

import "time"

// PricePoint is a single daily price sample for the tracked asset.
type PricePoint struct {
	Time  time.Time
	Price float64
}

// Date returns the calendar date of the sample in YYYY-MM-DD form.
func (p PricePoint) Date() string {
	return p.Time.Format("2006-01-02")
}
