package rights

import (
	"strings"
	"testing"
)

const decisionTableHTML = `<html>
<head><title>테스트기업주식회사 / 주요사항보고서</title></head>
<body>
<p>주주배정 방식의 유상증자를 결정하였습니다.</p>
<table>
	<tr><td>신주의 종류</td><td>기명식 보통주</td></tr>
	<tr><td>발행할 주식의 수</td><td>1,000</td></tr>
	<tr><td>발행가액</td><td>5,000</td></tr>
</table>
<p>자금 사용 목적</p>
<table>
	<tr><td>사용목적</td><td>금액</td></tr>
	<tr><td>운영자금</td><td>300</td></tr>
	<tr><td>시설자금</td><td>200</td></tr>
	<tr><td>합계</td><td>500</td></tr>
</table>
<table>
	<tr><td>신주배정 기준일</td><td>2025년 3월 15일</td></tr>
	<tr><td>신주의 상장 예정일</td><td>20250601</td></tr>
</table>
</body></html>`

func TestParseDecisionSummary(t *testing.T) {
	record, err := Parse(decisionTableHTML)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	ds := record.DecisionSummary
	if ds.OfferingType != "주주배정" {
		t.Errorf("offering_type = %q, want 주주배정", ds.OfferingType)
	}
	if ds.NewSharesType != "기명식 보통주" {
		t.Errorf("new_shares_type = %q, want 기명식 보통주", ds.NewSharesType)
	}
	if ds.NewSharesCount != 1000 {
		t.Errorf("new_shares_count = %d, want 1000", ds.NewSharesCount)
	}
	if ds.OfferingPrice != 5000 {
		t.Errorf("offering_price = %d, want 5000", ds.OfferingPrice)
	}
	// Absent total must be derived: 1000 × 5000.
	if ds.TotalOfferingAmount != 5000000 {
		t.Errorf("total_offering_amount = %d, want 5000000", ds.TotalOfferingAmount)
	}
}

func TestParseCompanyName(t *testing.T) {
	record, err := Parse(decisionTableHTML)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if record.ReportInfo.CompanyName != "테스트기업주식회사" {
		t.Errorf("company_name = %q, want 테스트기업주식회사", record.ReportInfo.CompanyName)
	}
	if record.ReportInfo.ReportType != ReportType {
		t.Errorf("report_type = %q, want %q", record.ReportInfo.ReportType, ReportType)
	}
}

func TestParsePurposeOfFunds(t *testing.T) {
	record, err := Parse(decisionTableHTML)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	purpose := record.PurposeOfFunds
	if len(purpose.Breakdown) != 2 {
		t.Fatalf("breakdown has %d rows, want 2 (header and 합계 rows excluded)", len(purpose.Breakdown))
	}
	if purpose.Breakdown[0].Purpose != "운영자금" || purpose.Breakdown[0].Amount != 300 {
		t.Errorf("breakdown[0] = %+v, want 운영자금/300", purpose.Breakdown[0])
	}
	if purpose.Total != 500 {
		t.Errorf("total = %d, want recomputed 500", purpose.Total)
	}
}

func TestParseGrandTotalRowExcluded(t *testing.T) {
	html := `<html><body>
	<table><tr><td>발행할 주식의 수</td><td>10</td></tr></table>
	<p>자금 사용 목적</p>
	<table>
		<tr><td>운영자금</td><td>300</td></tr>
		<tr><td>합계</td><td>300</td></tr>
	</table>
	</body></html>`

	record, err := Parse(html)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(record.PurposeOfFunds.Breakdown) != 1 {
		t.Fatalf("breakdown has %d rows, want 1", len(record.PurposeOfFunds.Breakdown))
	}
	if record.PurposeOfFunds.Total != 300 {
		t.Errorf("total = %d, want 300", record.PurposeOfFunds.Total)
	}
}

func TestParseSchedule(t *testing.T) {
	record, err := Parse(decisionTableHTML)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if record.Schedule.RecordDate != "2025-03-15" {
		t.Errorf("record_date = %q, want 2025-03-15", record.Schedule.RecordDate)
	}
	if record.Schedule.ListingDate != "2025-06-01" {
		t.Errorf("listing_date = %q, want 2025-06-01", record.Schedule.ListingDate)
	}
}

func TestParseRejectsZeroShareCount(t *testing.T) {
	html := `<html><body><p>유상증자 관련 안내문이지만 수치가 없습니다.</p></body></html>`
	if record, err := Parse(html); err == nil {
		t.Errorf("Parse = %+v, want rejection without share count", record)
	}
}

func TestParseKeywordFallbackForPurposes(t *testing.T) {
	// No 자금 사용 목적 label at all: the common-purpose keyword scan must
	// still find amounts in the keywords' own rows.
	html := `<html><body>
	<table><tr><td>증자 주식 수</td><td>500</td></tr></table>
	<table><tr><td>채무상환</td><td>1,200</td></tr></table>
	</body></html>`

	record, err := Parse(html)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	purpose := record.PurposeOfFunds
	if len(purpose.Breakdown) != 1 || purpose.Breakdown[0].Purpose != "채무상환" {
		t.Fatalf("breakdown = %+v, want single 채무상환 row", purpose.Breakdown)
	}
	if purpose.Total != 1200 {
		t.Errorf("total = %d, want 1200", purpose.Total)
	}
}

func TestParseDefaultShareType(t *testing.T) {
	html := `<html><body>
	<table><tr><td>신주의 수</td><td>100</td></tr></table>
	</body></html>`

	record, err := Parse(html)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if record.DecisionSummary.NewSharesType != "보통주" {
		t.Errorf("new_shares_type = %q, want default 보통주", record.DecisionSummary.NewSharesType)
	}
	if !strings.HasPrefix(record.ReportInfo.ReportType, "주요사항보고서") {
		t.Errorf("report_type = %q", record.ReportInfo.ReportType)
	}
}
