package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Finding is one anomaly flagged for human review. Which optional fields
// are set depends on Type.
type Finding struct {
	Type   AnomalyType      `json:"type"`
	Date   *time.Time       `json:"date,omitempty"`
	Value  *decimal.Decimal `json:"value,omitempty"`
	Median *decimal.Decimal `json:"median,omitempty"`
	Days   []int            `json:"days,omitempty"`
}

// ScanSummary carries the scan-wide figures.
type ScanSummary struct {
	MedianIncome decimal.Decimal `json:"median_income"`
	DaysCount    int             `json:"days_count"`
}

// ScanResult is the output of an anomaly scan over one outlet-month.
type ScanResult struct {
	Anomalies []Finding   `json:"anomalies"`
	Summary   ScanSummary `json:"summary"`
}
