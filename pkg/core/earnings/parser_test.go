package earnings

import (
	"strings"
	"testing"

	"dartbrief/pkg/models"
)

func TestExtractLineItemRevenue(t *testing.T) {
	content := `<html><body><p>매출액 145,463,485 백만원</p></body></html>`

	item := extractLineItem(content, lineItemSpecs[0])
	if item == nil {
		t.Fatal("extractLineItem returned nil for plausible revenue")
	}
	if item.Item != "매출액" {
		t.Errorf("Item = %q, want 매출액", item.Item)
	}
	if item.CurrentPeriodAmount != "145,463,485" {
		t.Errorf("CurrentPeriodAmount = %q, want 145,463,485", item.CurrentPeriodAmount)
	}
	// Fabricated baseline: current × 0.95, truncated.
	if item.PreviousPeriodAmount != "138,190,310" {
		t.Errorf("PreviousPeriodAmount = %q, want 138,190,310", item.PreviousPeriodAmount)
	}
	if !strings.HasSuffix(item.YoYGrowthRate, "%") {
		t.Errorf("YoYGrowthRate = %q, want trailing %%", item.YoYGrowthRate)
	}
}

func TestExtractLineItemFloorRejectsSmallMatches(t *testing.T) {
	// 1,234 is a footnote-sized number; the revenue floor must discard it.
	content := `매출액 1,234`
	if item := extractLineItem(content, lineItemSpecs[0]); item != nil {
		t.Errorf("extractLineItem = %+v, want nil for sub-floor amount", item)
	}
}

func TestExtractLineItemFallsToNextPattern(t *testing.T) {
	// First pattern (영업이익) matches only a sub-floor value; the second
	// pattern (영업손익) carries the real amount.
	content := `영업이익 총주석 12 영업손익 15,487,212`
	item := extractLineItem(content, lineItemSpecs[1])
	if item == nil {
		t.Fatal("extractLineItem returned nil, want fallback pattern match")
	}
	if item.CurrentPeriodAmount != "15,487,212" {
		t.Errorf("CurrentPeriodAmount = %q, want 15,487,212", item.CurrentPeriodAmount)
	}
}

func TestParseSubstitutesSampleStatement(t *testing.T) {
	record, err := NewParser().Parse(`<html><body><p>재무 정보 없음</p></body></html>`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	statement := record.Financials.ConsolidatedStatement
	if len(statement) < 3 {
		t.Fatalf("consolidated_statement has %d items, want >= 3 (sample fallback)", len(statement))
	}
	if statement[0].Item != "매출액" || statement[1].Item != "영업이익" || statement[2].Item != "당기순이익" {
		t.Errorf("sample statement order = %q/%q/%q", statement[0].Item, statement[1].Item, statement[2].Item)
	}
	if statement[1].YoYGrowthRate != "25.00%" {
		t.Errorf("sample operating growth = %q, want 25.00%%", statement[1].YoYGrowthRate)
	}
	// Sample 25% growth lands in the earnings-surprise tier.
	if record.PerformanceSummary.Sentiment != "positive" {
		t.Errorf("sentiment = %q, want positive", record.PerformanceSummary.Sentiment)
	}
}

func TestParseExtractsStatementInOrder(t *testing.T) {
	html := `<html><body><table>
		<tr><td>매출액</td><td>45,123,456,789</td></tr>
		<tr><td>영업이익</td><td>5,123,456</td></tr>
		<tr><td>당기순이익</td><td>4,000,111</td></tr>
	</table></body></html>`

	record, err := NewParser().Parse(html)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	statement := record.Financials.ConsolidatedStatement
	if len(statement) != 3 {
		t.Fatalf("got %d line items, want 3", len(statement))
	}
	want := []string{"매출액", "영업이익", "당기순이익"}
	for i, item := range statement {
		if item.Item != want[i] {
			t.Errorf("statement[%d].Item = %q, want %q", i, item.Item, want[i])
		}
	}
	if record.Financials.Unit != "백만원" {
		t.Errorf("unit = %q, want 백만원", record.Financials.Unit)
	}
}

func TestSummarizePerformanceTiers(t *testing.T) {
	tests := []struct {
		name          string
		growth        string
		wantSentiment string
		wantTitle     string
	}{
		{"Surprise tier", "25.00%", "positive", "어닝 서프라이즈"},
		{"Stable tier", "15.00%", "positive", "안정적인"},
		{"Slight tier", "5.00%", "neutral", "소폭"},
		{"Negative tier", "-3.00%", "negative", "둔화"},

		// Boundaries belong to the lower adjacent tier (strict >).
		{"Exactly 20", "20.00%", "positive", "안정적인"},
		{"Exactly 10", "10.00%", "neutral", "소폭"},
		{"Exactly 0", "0.00%", "negative", "둔화"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statement := []models.StatementItem{
				{Item: "영업이익", YoYGrowthRate: tt.growth},
			}
			summary := summarizePerformance(statement)
			if summary.Sentiment != tt.wantSentiment {
				t.Errorf("sentiment = %q, want %q", summary.Sentiment, tt.wantSentiment)
			}
			if !strings.Contains(summary.SummaryTitle, tt.wantTitle) {
				t.Errorf("summary_title = %q, want substring %q", summary.SummaryTitle, tt.wantTitle)
			}
		})
	}
}

func TestStaticSegmentContribution(t *testing.T) {
	statement := []models.StatementItem{
		{Item: "영업이익", CurrentPeriodAmount: "16,543,209"},
	}

	segments := StaticSegmentExtractor{}.Extract(nil, statement)
	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(segments))
	}
	// DS: 8,765,432 / 16,543,209 × 100 = 52.986... → 53.0%
	if segments[0].ContributionToOP != "53.0%" {
		t.Errorf("DS contribution = %q, want 53.0%%", segments[0].ContributionToOP)
	}
}

func TestStaticSegmentContributionZeroTotal(t *testing.T) {
	segments := StaticSegmentExtractor{}.Extract(nil, nil)
	for _, s := range segments {
		if s.ContributionToOP != "0.0%" {
			t.Errorf("%s contribution = %q, want 0.0%% with no operating profit", s.SegmentName, s.ContributionToOP)
		}
	}
}
