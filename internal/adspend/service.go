// Package adspend reports ad-performance data for a linked ad account.
// Rendering (tables, charts) belongs to consumers; this package only fetches
// records through the link and aggregates them.
package adspend

import (
	"context"
	"time"

	"github.com/adcreativex/adcreativex/internal/adlink"
	"github.com/adcreativex/adcreativex/internal/common"
	"github.com/adcreativex/adcreativex/internal/logging"
	"github.com/adcreativex/adcreativex/internal/models"
)

// Provider fetches spend records for the ad account a link token grants
// access to, restricted to [from, to].
type Provider interface {
	Fetch(ctx context.Context, linkToken string, from, to time.Time) ([]models.AdSpendRecord, error)
}

// Summary aggregates a set of spend records.
type Summary struct {
	Records     int
	Spend       float64
	Clicks      int
	Conversions int
	Revenue     float64

	// Derived metrics; zero when the denominator is zero.
	CPC            float64 // spend per click
	CPA            float64 // spend per conversion
	ROAS           float64 // revenue per unit of spend
	ConversionRate float64 // conversions per click
}

// Summarize computes totals and derived metrics over records.
func Summarize(records []models.AdSpendRecord) Summary {
	var s Summary
	s.Records = len(records)
	for _, r := range records {
		s.Spend += r.Spend
		s.Clicks += r.Clicks
		s.Conversions += r.Conversions
		s.Revenue += r.Revenue
	}
	if s.Clicks > 0 {
		s.CPC = s.Spend / float64(s.Clicks)
		s.ConversionRate = float64(s.Conversions) / float64(s.Clicks)
	}
	if s.Conversions > 0 {
		s.CPA = s.Spend / float64(s.Conversions)
	}
	if s.Spend > 0 {
		s.ROAS = s.Revenue / s.Spend
	}
	return s
}

// Service produces ad-spend reports through an active ad-account link.
type Service struct {
	provider Provider
	link     *adlink.Machine
	log      logging.Logger
}

func NewService(provider Provider, link *adlink.Machine, log logging.Logger) *Service {
	return &Service{provider: provider, link: link, log: log}
}

// Report fetches the linked account's records for [from, to] and returns
// them with their summary. Fails with common.ErrNotConnected when no ad
// account is linked.
func (s *Service) Report(ctx context.Context, from, to time.Time) ([]models.AdSpendRecord, Summary, error) {
	if s.link.State() != adlink.StateConnected {
		return nil, Summary{}, common.ErrNotConnected
	}

	records, err := s.provider.Fetch(ctx, s.link.Token(), from, to)
	if err != nil {
		return nil, Summary{}, err
	}

	s.log.Debug(ctx, "ad spend fetched", "records", len(records))
	return records, Summarize(records), nil
}
