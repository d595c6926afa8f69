package cli

import (
	"context"
	"fmt"
	"os"
	"time"
)

// AdSpend prompts for a date range and prints the ad-spend report for the
// linked account. Empty dates default to the last 90 days.
func (a *App) AdSpend(ctx context.Context) error {
	from, err := a.getDate("From date (YYYY-MM-DD, empty for 90 days ago)", time.Now().AddDate(0, 0, -90))
	if err != nil {
		return err
	}
	to, err := a.getDate("To date (YYYY-MM-DD, empty for today)", time.Now())
	if err != nil {
		return err
	}

	records, summary, err := a.spend.Report(ctx, from, to)
	if err != nil {
		printlnFn(fmt.Sprintf("Report failed: %s", err.Error()))
		return err
	}

	for _, r := range records {
		printlnFn(fmt.Sprintf("%s  ad %s  spend %.2f  clicks %d  conv %d  revenue %.2f",
			r.Date.Format("2006-01-02"), r.AdID, r.Spend, r.Clicks, r.Conversions, r.Revenue))
	}
	printlnFn(fmt.Sprintf("Total: spend %.2f, clicks %d, conversions %d, revenue %.2f",
		summary.Spend, summary.Clicks, summary.Conversions, summary.Revenue))
	printlnFn(fmt.Sprintf("CPC %.2f  CPA %.2f  ROAS %.2f  CR %.2f%%",
		summary.CPC, summary.CPA, summary.ROAS, summary.ConversionRate*100))
	return nil
}

// getDate reads a YYYY-MM-DD date, returning fallback on empty input.
func (a *App) getDate(prompt string, fallback time.Time) (time.Time, error) {
	s, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return time.Time{}, err
	}
	if s == "" {
		return fallback, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}
