package earnings

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"dartbrief/pkg/core/numtext"
	"dartbrief/pkg/models"
)

// SegmentExtractor produces the business-segment breakdown for a report.
// The document and extracted statement are both provided so a future
// NER-backed implementation can read real segment tables; the shipped
// implementation is a constant placeholder.
type SegmentExtractor interface {
	Extract(doc *goquery.Document, statement []models.StatementItem) []models.BusinessSegment
}

// StaticSegmentExtractor returns fixed segment descriptors for the three
// major Samsung Electronics divisions. Only contribution_to_op is computed
// from the document, via the extracted total operating profit.
type StaticSegmentExtractor struct{}

var staticSegments = []models.BusinessSegment{
	{
		SegmentName:     "DS (Device Solutions)",
		Details:         "메모리, 파운드리 등 반도체 사업",
		Revenue:         "45,123,456",
		OperatingProfit: "8,765,432",
	},
	{
		SegmentName:     "DX (Device eXperience)",
		Details:         "TV, 가전, 스마트폰 사업",
		Revenue:         "80,987,654",
		OperatingProfit: "6,543,210",
	},
	{
		SegmentName:     "SDC (Samsung Display)",
		Details:         "디스플레이 패널 사업",
		Revenue:         "15,123,456",
		OperatingProfit: "1,234,567",
	},
}

// Extract returns the fixed segment list with each segment's share of the
// extracted operating profit. A missing or non-positive total yields 0.0%
// contributions rather than an error.
func (StaticSegmentExtractor) Extract(_ *goquery.Document, statement []models.StatementItem) []models.BusinessSegment {
	var totalOP float64
	for _, item := range statement {
		if item.Item == "영업이익" {
			totalOP = numtext.CleanNumber(item.CurrentPeriodAmount)
			break
		}
	}

	segments := make([]models.BusinessSegment, 0, len(staticSegments))
	for _, s := range staticSegments {
		contribution := 0.0
		if totalOP > 0 {
			contribution = numtext.CleanNumber(s.OperatingProfit) / totalOP * 100
		}
		s.ContributionToOP = fmt.Sprintf("%.1f%%", contribution)
		segments = append(segments, s)
	}
	return segments
}

// PositiveKeywords and NegativeKeywords are the sentiment word lists intended
// for text-driven key-factor extraction. They are not consulted yet: wiring
// them in changes output behavior and is deferred until real factor
// extraction replaces the placeholder below.
var (
	PositiveKeywords = []string{"증가", "성장", "개선", "호조", "신기록", "확대", "상승", "향상"}
	NegativeKeywords = []string{"감소", "둔화", "하락", "악화", "축소", "부진", "약화"}
)

// extractKeyFactors returns the qualitative factor lists. Placeholder: the
// factors are fixed regardless of document content, pending NER extraction.
func extractKeyFactors(_ *goquery.Document) models.KeyFactors {
	return models.KeyFactors{
		Positive: []string{
			"고부가 메모리(HBM, DDR5) 판매 호조",
			"신규 파운드리 고객사 수주 증가",
			"폴더블 스마트폰 판매량 신기록 달성",
		},
		Negative: []string{
			"TV 및 가전 시장 수요 둔화",
			"원-달러 환율 변동성으로 인한 외환 손실",
		},
	}
}
