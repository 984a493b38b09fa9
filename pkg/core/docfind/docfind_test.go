package docfind

import (
	"regexp"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}
	return doc
}

func res(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		patterns = append(patterns, regexp.MustCompile(e))
	}
	return patterns
}

func TestFirstTextShortCircuitsPatternList(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<p>second label</p>
		<p>first label</p>
	</body></html>`)

	// "first" matches somewhere, so "second" must never be consulted even
	// though it appears earlier in the document.
	got := FirstText(doc, res(`first`, `second`))
	if !strings.Contains(got, "first label") {
		t.Errorf("FirstText = %q, want match on first pattern", got)
	}
}

func TestFirstTextFallsThroughToLaterPattern(t *testing.T) {
	doc := mustDoc(t, `<html><body><p>only the backup label</p></body></html>`)

	got := FirstText(doc, res(`missing`, `backup`))
	if !strings.Contains(got, "backup label") {
		t.Errorf("FirstText = %q, want fallback pattern match", got)
	}
}

func TestFirstTextDocumentOrderWithinPattern(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<div><span>label alpha</span></div>
		<p>label beta</p>
	</body></html>`)

	got := FirstText(doc, res(`label`))
	if !strings.Contains(got, "alpha") {
		t.Errorf("FirstText = %q, want earliest occurrence in document order", got)
	}
}

func TestRowValue(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		patterns []*regexp.Regexp
		expected string
	}{
		{
			name: "Second cell of labeled row",
			html: `<table><tr><td>신주의 수</td><td>1,000,000</td></tr></table>`,
			patterns: res(`신주.*수`),
			expected: "1,000,000",
		},
		{
			name: "Header cells count too",
			html: `<table><tr><th>발행가액</th><td>5,000</td><td>원</td></tr></table>`,
			patterns: res(`발행가액`),
			expected: "5,000",
		},
		{
			name: "Single-cell row fails silently",
			html: `<table><tr><td>발행가액</td></tr></table>`,
			patterns: res(`발행가액`),
			expected: "",
		},
		{
			name: "Label outside any row fails silently",
			html: `<p>발행가액 안내문</p>`,
			patterns: res(`발행가액`),
			expected: "",
		},
		{
			name: "Next pattern tried when first match has no usable row",
			html: `<p>발행가액 안내문</p><table><tr><td>모집가액</td><td>7,500</td></tr></table>`,
			patterns: res(`발행가액`, `모집가액`),
			expected: "7,500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustDoc(t, "<html><body>"+tt.html+"</body></html>")
			if got := RowValue(doc, tt.patterns); got != tt.expected {
				t.Errorf("RowValue = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTableAfterEnclosingTable(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<table><tr><td>자금 사용 목적</td><td>운영자금</td></tr></table>
	</body></html>`)

	table := TableAfter(doc, res(`자금.*사용.*목적`))
	if table == nil {
		t.Fatal("TableAfter returned nil, want enclosing table")
	}
	if !strings.Contains(table.Text(), "운영자금") {
		t.Errorf("TableAfter found wrong table: %q", table.Text())
	}
}

func TestTableAfterFollowingTable(t *testing.T) {
	doc := mustDoc(t, `<html><body>
		<p>자금 사용 목적</p>
		<div><table><tr><td>운영자금</td><td>300</td></tr></table></div>
	</body></html>`)

	table := TableAfter(doc, res(`자금.*사용.*목적`))
	if table == nil {
		t.Fatal("TableAfter returned nil, want following table")
	}
	if !strings.Contains(table.Text(), "운영자금") {
		t.Errorf("TableAfter found wrong table: %q", table.Text())
	}
}

func TestTableAfterNoMatch(t *testing.T) {
	doc := mustDoc(t, `<html><body><p>무관한 내용</p></body></html>`)
	if table := TableAfter(doc, res(`자금.*사용.*목적`)); table != nil {
		t.Errorf("TableAfter = %v, want nil", table)
	}
}
