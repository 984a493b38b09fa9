package earnings

import (
	"fmt"
	"strconv"
	"strings"

	"dartbrief/pkg/models"
)

// summarizePerformance derives the headline from the operating-profit growth
// rate. The tiers partition the real line with strict comparisons: growth of
// exactly 20, 10 or 0 falls into the lower tier.
func summarizePerformance(statement []models.StatementItem) models.PerformanceSummary {
	var growth float64
	for _, item := range statement {
		if item.Item == "영업이익" {
			raw := strings.TrimSuffix(item.YoYGrowthRate, "%")
			growth, _ = strconv.ParseFloat(raw, 64)
			break
		}
	}

	switch {
	case growth > 20:
		return models.PerformanceSummary{
			Sentiment:    "positive",
			SummaryTitle: "DS(반도체) 부문 실적 개선으로 어닝 서프라이즈 기록",
			KeyMessage:   fmt.Sprintf("전년 동기 대비 영업이익 %.1f%% 증가하며 시장 기대치 상회", growth),
		}
	case growth > 10:
		return models.PerformanceSummary{
			Sentiment:    "positive",
			SummaryTitle: "안정적인 실적 성장세 지속",
			KeyMessage:   fmt.Sprintf("영업이익 %.1f%% 증가로 견조한 성장세 유지", growth),
		}
	case growth > 0:
		return models.PerformanceSummary{
			Sentiment:    "neutral",
			SummaryTitle: "소폭 실적 개선",
			KeyMessage:   fmt.Sprintf("영업이익 %.1f%% 증가", growth),
		}
	default:
		return models.PerformanceSummary{
			Sentiment:    "negative",
			SummaryTitle: "실적 둔화 우려",
			KeyMessage:   fmt.Sprintf("영업이익 %.1f%% 감소", growth),
		}
	}
}
