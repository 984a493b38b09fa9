package dart

import (
	"strings"
	"testing"

	"golang.org/x/text/encoding/korean"
)

func TestParseListResponseSuccess(t *testing.T) {
	body := []byte(`{
		"status": "000",
		"message": "정상",
		"list": [
			{
				"corp_code": "00126380",
				"corp_name": "삼성전자",
				"report_nm": "분기보고서 (2025.03)",
				"rcept_no": "20250515000123",
				"rcept_dt": "20250515"
			},
			{
				"corp_code": "00126380",
				"corp_name": "삼성전자",
				"report_nm": "주요사항보고서(유상증자결정)",
				"rcept_no": "20250601000456",
				"rcept_dt": "20250601"
			}
		]
	}`)

	items, err := parseListResponse(body)
	if err != nil {
		t.Fatalf("parseListResponse returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ReceiptNo != "20250515000123" {
		t.Errorf("items[0].ReceiptNo = %q", items[0].ReceiptNo)
	}
	if items[1].ReportName != "주요사항보고서(유상증자결정)" {
		t.Errorf("items[1].ReportName = %q", items[1].ReportName)
	}
}

func TestParseListResponseNoData(t *testing.T) {
	body := []byte(`{"status": "013", "message": "조회된 데이타가 없습니다."}`)

	items, err := parseListResponse(body)
	if err != nil {
		t.Fatalf("status 013 must not be an error, got: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestParseListResponseAPIError(t *testing.T) {
	body := []byte(`{"status": "010", "message": "등록되지 않은 키입니다."}`)

	if _, err := parseListResponse(body); err == nil {
		t.Fatal("expected error for status 010")
	} else if !strings.Contains(err.Error(), "010") {
		t.Errorf("error %q does not carry the status code", err)
	}
}

func TestDecodeKoreanUTF8(t *testing.T) {
	doc := "<html><body>매출액 145,463,485 영업이익 5,000</body></html>"

	if got := DecodeKorean([]byte(doc)); got != doc {
		t.Errorf("UTF-8 input changed by decode:\n got %q\nwant %q", got, doc)
	}
}

func TestDecodeKoreanEUCKR(t *testing.T) {
	doc := "<html><body>손익계산서: 영업이익 8,765,432</body></html>"
	encoded, err := korean.EUCKR.NewEncoder().Bytes([]byte(doc))
	if err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	if got := DecodeKorean(encoded); got != doc {
		t.Errorf("EUC-KR input not recovered:\n got %q\nwant %q", got, doc)
	}
}

func TestDecodeKoreanFallback(t *testing.T) {
	// No financial markers under any candidate encoding: the lossy UTF-8
	// fallback must still return a valid string.
	body := []byte{0xff, 0xfe, 'a', 'b', 0xc1}

	got := DecodeKorean(body)
	if !strings.Contains(got, "ab") {
		t.Errorf("fallback lost ASCII content: %q", got)
	}
}
