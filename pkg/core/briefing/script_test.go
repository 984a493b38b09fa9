package briefing

import (
	"context"
	"strings"
	"testing"

	"dartbrief/pkg/core/llm"
	"dartbrief/pkg/models"
)

func testRecord() *models.EarningsRecord {
	return &models.EarningsRecord{
		ReportInfo: models.ReportInfo{
			CompanyName: "삼성전자주식회사",
			ReportType:  "반기보고서",
			Period:      "2025년 반기",
		},
		PerformanceSummary: models.PerformanceSummary{
			Sentiment:    "positive",
			SummaryTitle: "영업이익 대폭 개선",
			KeyMessage:   "영업이익 25.0% 증가",
		},
	}
}

func TestGenerateScriptCleansFences(t *testing.T) {
	provider := &llm.StubProvider{Response: "```markdown\n삼성전자가 호실적을 발표했습니다.\n```"}
	agent := NewScriptAgent(provider)

	script, err := agent.GenerateScript(context.Background(), testRecord())
	if err != nil {
		t.Fatalf("GenerateScript returned error: %v", err)
	}
	if strings.Contains(script, "```") {
		t.Errorf("fences not stripped: %q", script)
	}
	if script != "삼성전자가 호실적을 발표했습니다." {
		t.Errorf("script = %q", script)
	}
}

func TestGenerateScriptRejectsEmptyResponse(t *testing.T) {
	agent := NewScriptAgent(&llm.StubProvider{Response: "   "})

	if _, err := agent.GenerateScript(context.Background(), testRecord()); err == nil {
		t.Error("expected error for empty model output")
	}
}

func TestGenerateScenesParsesLenientJSON(t *testing.T) {
	// Fenced output with single quotes: the repair chain must recover it.
	provider := &llm.StubProvider{Response: "```json\n" +
		"[{'narration': '삼성전자 실적 발표', 'caption': '영업이익 +25%', 'duration_sec': 5}," +
		"{'narration': '부문별 실적', 'caption': 'DS 회복', 'duration_sec': 7}]\n```"}
	agent := NewScriptAgent(provider)

	scenes, err := agent.GenerateScenes(context.Background(), testRecord())
	if err != nil {
		t.Fatalf("GenerateScenes returned error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("got %d scenes, want 2", len(scenes))
	}
	if scenes[0].Narration != "삼성전자 실적 발표" {
		t.Errorf("scenes[0].Narration = %q", scenes[0].Narration)
	}
	if scenes[1].DurationSec != 7 {
		t.Errorf("scenes[1].DurationSec = %v, want 7", scenes[1].DurationSec)
	}
}

func TestGenerateScenesRejectsEmptyList(t *testing.T) {
	agent := NewScriptAgent(&llm.StubProvider{Response: "[]"})

	if _, err := agent.GenerateScenes(context.Background(), testRecord()); err == nil {
		t.Error("expected error for empty scene list")
	}
}

func TestBackgroundPrompt(t *testing.T) {
	prompt := BackgroundPrompt("반도체 실적 개선")
	if !strings.Contains(prompt, "반도체 실적 개선") {
		t.Errorf("prompt lost the headline: %q", prompt)
	}

	fallback := BackgroundPrompt("")
	if !strings.Contains(fallback, "stock market") {
		t.Errorf("empty headline should fall back: %q", fallback)
	}
}

func TestHeadlineOf(t *testing.T) {
	earnings := map[string]any{
		"performance_summary": map[string]any{"summary_title": "호실적"},
	}
	if got := headlineOf(earnings); got != "호실적" {
		t.Errorf("headlineOf(earnings) = %q", got)
	}

	rightsRecord := map[string]any{
		"decision_summary": map[string]any{"offering_type": "주주배정"},
	}
	if got := headlineOf(rightsRecord); got != "주주배정 유상증자" {
		t.Errorf("headlineOf(rights) = %q", got)
	}

	if got := headlineOf(map[string]any{}); got != "" {
		t.Errorf("headlineOf(empty) = %q, want empty", got)
	}
}
