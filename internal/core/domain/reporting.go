package domain

import "github.com/shopspring/decimal"

// DefaulterRow is one tenant with outstanding rent.
type DefaulterRow struct {
	TenantID      string          `json:"tenantID"`
	TenantName    string          `json:"tenantName"`
	UnpaidPeriods []Period        `json:"unpaidPeriods"`
	ArrearsTotal  decimal.Decimal `json:"arrearsTotal"`
}

// CollectionRateRow is rent due vs rent collected for one period.
type CollectionRateRow struct {
	Period        Period          `json:"period"`
	RentDue       decimal.Decimal `json:"rentDue"`
	RentCollected decimal.Decimal `json:"rentCollected"`
	Rate          decimal.Decimal `json:"rate"` // collected/due, 0..1; zero when nothing due
}

// CollectionReport aggregates collection-rate rows over a month range.
type CollectionReport struct {
	Rows           []CollectionRateRow `json:"rows"`
	TotalDue       decimal.Decimal     `json:"totalDue"`
	TotalCollected decimal.Decimal     `json:"totalCollected"`
	OverallRate    decimal.Decimal     `json:"overallRate"`
}
