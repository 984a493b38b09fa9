// Package models defines the shared data structures for the DART disclosure
// pipeline: the disclosure list metadata coming in, and the structured records
// the extractors produce. JSON field names are load-bearing: the briefing
// stage and any downstream consumer read them verbatim.
package models

// DisclosureItem is one row of the DART list.json response.
// rcept_no is the 14-digit receipt number that keys every later lookup.
type DisclosureItem struct {
	CorpCode       string `json:"corp_code"`
	CorpName       string `json:"corp_name"`
	ReportName     string `json:"report_nm"`
	ReceiptNo      string `json:"rcept_no"`
	ReceiptDate    string `json:"rcept_dt"`
	DisclosureType string `json:"pblntf_ty"`
}

// =============================================================================
// EARNINGS RECORD (분기보고서 / 반기보고서)
// =============================================================================

// EarningsRecord is the structured output for a periodic earnings report.
type EarningsRecord struct {
	ReportInfo         ReportInfo         `json:"report_info"`
	PerformanceSummary PerformanceSummary `json:"performance_summary"`
	Financials         Financials         `json:"financials"`
	BusinessSegments   []BusinessSegment  `json:"business_segments"`
	KeyFactors         KeyFactors         `json:"key_factors"`
}

// ReportInfo identifies the filing company and period.
type ReportInfo struct {
	CompanyName string `json:"company_name"`
	CompanyCode string `json:"company_code,omitempty"`
	ReportType  string `json:"report_type"`
	Period      string `json:"period,omitempty"`
}

// PerformanceSummary is the rule-based headline for the report.
// Sentiment is one of "positive", "neutral", "negative".
type PerformanceSummary struct {
	Sentiment    string `json:"sentiment"`
	SummaryTitle string `json:"summary_title"`
	KeyMessage   string `json:"key_message"`
}

// Financials wraps the consolidated income statement line items.
// Unit is the currency unit of every amount string (백만원 for DART filings).
type Financials struct {
	Unit                  string          `json:"unit"`
	ConsolidatedStatement []StatementItem `json:"consolidated_statement"`
}

// StatementItem is one extracted line item. Amounts are pre-formatted strings
// with thousands separators; the growth rate carries a trailing percent sign.
// PreviousPeriodAmount is an ESTIMATE derived from the current amount, not a
// real prior-period lookup (see earnings.baselineRatios).
type StatementItem struct {
	Item                 string `json:"item"`
	CurrentPeriodAmount  string `json:"current_period_amount"`
	PreviousPeriodAmount string `json:"previous_period_amount"`
	YoYGrowthRate        string `json:"yoy_growth_rate"`
}

// BusinessSegment is one business division's contribution breakdown.
type BusinessSegment struct {
	SegmentName      string `json:"segment_name"`
	Details          string `json:"details"`
	Revenue          string `json:"revenue"`
	OperatingProfit  string `json:"operating_profit"`
	ContributionToOP string `json:"contribution_to_op"`
}

// KeyFactors lists qualitative drivers behind the period's performance.
type KeyFactors struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// =============================================================================
// RIGHTS ISSUE RECORD (유상증자결정)
// =============================================================================

// RightsIssueRecord is the structured output for a rights-issue decision.
type RightsIssueRecord struct {
	ReportInfo      ReportInfo      `json:"report_info"`
	DecisionSummary DecisionSummary `json:"decision_summary"`
	PurposeOfFunds  PurposeOfFunds  `json:"purpose_of_funds"`
	Schedule        Schedule        `json:"schedule"`
}

// DecisionSummary holds the offering terms. NewSharesCount > 0 is the
// acceptance gate for the whole record.
type DecisionSummary struct {
	OfferingType        string `json:"offering_type"`
	NewSharesType       string `json:"new_shares_type"`
	NewSharesCount      int64  `json:"new_shares_count"`
	OfferingPrice       int64  `json:"offering_price"`
	TotalOfferingAmount int64  `json:"total_offering_amount"`
}

// PurposeOfFunds itemizes the planned use of proceeds.
// Total is always the sum of the breakdown amounts, never a document value.
type PurposeOfFunds struct {
	Total     int64         `json:"total"`
	Breakdown []PurposeItem `json:"breakdown"`
}

// PurposeItem is one stated purpose and its positive amount.
type PurposeItem struct {
	Purpose string `json:"purpose"`
	Amount  int64  `json:"amount"`
}

// Schedule carries the key offering dates, each "" or "YYYY-MM-DD".
type Schedule struct {
	RecordDate  string `json:"record_date"`
	ListingDate string `json:"listing_date"`
}
