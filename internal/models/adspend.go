package models

import "time"

// AdSpendRecord is one day of performance for a single ad, as returned by
// the ad-performance collaborator. Field names mirror its JSON payload.
type AdSpendRecord struct {
	PostingID   string    `json:"postingId"`
	Date        time.Time `json:"date"`
	AdAccountID string    `json:"metaAdAccountId"`
	AdID        string    `json:"metaAdId"`
	CampaignID  string    `json:"campaignId"`
	AdSetID     string    `json:"adSetId"`
	CreativeID  string    `json:"adCreativeId"`
	Spend       float64   `json:"spend"`
	Clicks      int       `json:"clicks"`
	Conversions int       `json:"conversions"`
	Revenue     float64   `json:"revenue"`
	Permalink   string    `json:"instagram_permalink,omitempty"`
}
