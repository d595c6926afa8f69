package adspend

import (
	"context"
	"time"

	"github.com/adcreativex/adcreativex/internal/adlink"
	"github.com/adcreativex/adcreativex/internal/models"
)

// StaticProvider serves a fixed record set, standing in for the ad platform's
// reporting API. It still verifies the link token and only returns records
// belonging to the account the token grants, so consumers exercise the same
// authorization path a networked provider would.
type StaticProvider struct {
	secret  []byte
	records []models.AdSpendRecord
}

func NewStaticProvider(secret []byte, records []models.AdSpendRecord) *StaticProvider {
	return &StaticProvider{secret: secret, records: records}
}

func (p *StaticProvider) Fetch(_ context.Context, linkToken string, from, to time.Time) ([]models.AdSpendRecord, error) {
	account, err := adlink.AccountFromLinkToken(linkToken, p.secret)
	if err != nil {
		return nil, err
	}

	var out []models.AdSpendRecord
	for _, r := range p.records {
		if r.AdAccountID != account {
			continue
		}
		if r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// DemoRecords returns four days of sample performance data for accountID.
func DemoRecords(accountID string) []models.AdSpendRecord {
	day := func(d int) time.Time {
		return time.Date(2025, time.April, d, 0, 0, 0, 0, time.UTC)
	}
	base := models.AdSpendRecord{
		PostingID:   "120223649391270531",
		AdAccountID: accountID,
		AdID:        "120223649391270531",
		CampaignID:  "120223649391200531",
		AdSetID:     "120223649391190531",
		CreativeID:  "1271391788200189",
		Permalink:   "https://www.instagram.com/p/DIKh7LDs87o/",
	}

	records := make([]models.AdSpendRecord, 4)
	for i, v := range []struct {
		d           int
		spend       float64
		clicks      int
		conversions int
		revenue     float64
	}{
		{8, 4.96, 1, 1, 0},
		{9, 8.2, 3, 1, 45},
		{10, 6.5, 2, 1, 0},
		{11, 7.1, 2, 1, 38},
	} {
		r := base
		r.Date = day(v.d)
		r.Spend = v.spend
		r.Clicks = v.clicks
		r.Conversions = v.conversions
		r.Revenue = v.revenue
		records[i] = r
	}
	return records
}
