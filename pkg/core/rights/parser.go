// Package rights parses rights-issue decision reports (유상증자결정) into
// structured records: offering terms, fund-use breakdown and key dates.
//
// All lookups are label-driven table-cell heuristics (see docfind); missing
// values degrade to zero/empty and the only hard requirement is a positive
// new-share count, without which the whole record is rejected.
package rights

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"dartbrief/pkg/core/docfind"
	"dartbrief/pkg/core/numtext"
	"dartbrief/pkg/models"
)

// ReportType is the fixed label carried in report_info for this parser.
const ReportType = "주요사항보고서(유상증자결정)"

var (
	companyLabelPattern  = regexp.MustCompile(`회사명|법인명`)
	legalEntityPattern   = regexp.MustCompile(`주식회사|㈜`)
	// \p{L}\p{N} rather than \w: company names are Korean word runs.
	companyNamePattern   = regexp.MustCompile(`([\p{L}\p{N}_()]+(?:주식회사|㈜)[\p{L}\p{N}_()]*)`)
	offeringTypeKeywords = []string{"주주배정", "제3자배정", "일반공모", "주주우선공모"}

	shareTypePatterns = []*regexp.Regexp{
		regexp.MustCompile(`신주.*종류|주식.*종류`),
	}
	shareCountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`신주.*수`),
		regexp.MustCompile(`발행.*주식.*수`),
		regexp.MustCompile(`증자.*주식.*수`),
	}
	pricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`발행가액|주당.*가액`),
		regexp.MustCompile(`청약가액`),
		regexp.MustCompile(`모집가액`),
	}
	totalAmountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`발행총액|납입.*총액`),
		regexp.MustCompile(`증자.*총액`),
		regexp.MustCompile(`모집.*총액`),
	}
	purposeLabelPatterns = []*regexp.Regexp{
		regexp.MustCompile(`자금.*사용.*목적`),
		regexp.MustCompile(`조달.*자금.*사용`),
		regexp.MustCompile(`증자.*목적`),
	}
	recordDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`기준일|신주배정.*기준일`),
		regexp.MustCompile(`주주명부.*폐쇄.*기준일`),
	}
	listingDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`상장예정일|신주.*상장.*예정일`),
		regexp.MustCompile(`재상장예정일`),
	}

	// commonPurposes is the fallback keyword set scanned when no fund-use
	// table can be located.
	commonPurposes = []string{"운영자금", "시설자금", "채무상환", "연구개발", "설비투자"}
)

// Parse converts rights-issue HTML into a structured record.
// Returns an error when the document yields no positive new-share count (the
// acceptance gate) or when an internal panic is recovered.
func Parse(htmlContent string) (record *models.RightsIssueRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Rights] recovered from parse panic: %v", r)
			record = nil
			err = fmt.Errorf("rights-issue parse failed: %v", r)
		}
	}()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	record = &models.RightsIssueRecord{
		ReportInfo: models.ReportInfo{
			CompanyName: extractCompanyName(doc),
			ReportType:  ReportType,
		},
		DecisionSummary: extractDecisionSummary(doc),
		PurposeOfFunds:  extractPurposeOfFunds(doc),
		Schedule:        extractSchedule(doc),
	}

	if record.DecisionSummary.NewSharesCount == 0 {
		return nil, fmt.Errorf("no new-share count found, rejecting record")
	}
	return record, nil
}

// extractCompanyName probes, in order, the document title, a company-name
// label text node, and a paragraph carrying a legal-entity marker, pulling
// the entity-suffixed run out of whichever matches first. Falls back to the
// first paragraph when it names a legal entity, else empty.
func extractCompanyName(doc *goquery.Document) string {
	candidates := []string{
		doc.Find("title").First().Text(),
		docfind.FirstText(doc, []*regexp.Regexp{companyLabelPattern}),
		firstParagraphMatching(doc, legalEntityPattern),
	}

	for _, text := range candidates {
		if text == "" {
			continue
		}
		if m := companyNamePattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	if text := strings.TrimSpace(doc.Find("p").First().Text()); text != "" {
		if legalEntityPattern.MatchString(text) {
			return text
		}
	}
	return ""
}

// firstParagraphMatching returns the text of the first <p> whose own text
// matches the pattern.
func firstParagraphMatching(doc *goquery.Document, pattern *regexp.Regexp) string {
	var found string
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := p.Text()
		if pattern.MatchString(text) {
			found = text
			return false
		}
		return true
	})
	return found
}

// extractDecisionSummary pulls the offering terms via tabular label lookups,
// deriving the total from count × price when the document omits it.
func extractDecisionSummary(doc *goquery.Document) models.DecisionSummary {
	summary := models.DecisionSummary{}

	fullText := doc.Text()
	for _, keyword := range offeringTypeKeywords {
		if strings.Contains(fullText, keyword) {
			summary.OfferingType = keyword
			break
		}
	}

	summary.NewSharesType = docfind.RowValue(doc, shareTypePatterns)
	if summary.NewSharesType == "" {
		summary.NewSharesType = "보통주"
	}

	summary.NewSharesCount = int64(numtext.CleanNumber(docfind.RowValue(doc, shareCountPatterns)))
	summary.OfferingPrice = int64(numtext.CleanNumber(docfind.RowValue(doc, pricePatterns)))
	summary.TotalOfferingAmount = int64(numtext.CleanNumber(docfind.RowValue(doc, totalAmountPatterns)))

	if summary.TotalOfferingAmount == 0 && summary.NewSharesCount > 0 && summary.OfferingPrice > 0 {
		summary.TotalOfferingAmount = summary.NewSharesCount * summary.OfferingPrice
	}

	return summary
}

// extractPurposeOfFunds parses the fund-use table when one can be located,
// else falls back to scanning for well-known purpose keywords. The total is
// always recomputed from the kept breakdown rows, never read from the
// document, so total == sum(breakdown) holds by construction.
func extractPurposeOfFunds(doc *goquery.Document) models.PurposeOfFunds {
	if table := docfind.TableAfter(doc, purposeLabelPatterns); table != nil {
		if purpose := parsePurposeTable(table); len(purpose.Breakdown) > 0 {
			return purpose
		}
	}
	return purposesByKeyword(doc)
}

// parsePurposeTable walks the table rows, skipping header and summary rows
// (empty label, 합계/총계 totals, the 사용목적 header itself) and keeping only
// positive amounts.
func parsePurposeTable(table *goquery.Selection) models.PurposeOfFunds {
	purpose := models.PurposeOfFunds{}

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}

		label := strings.TrimSpace(cells.Eq(0).Text())
		if label == "" || strings.Contains(label, "합계") || strings.Contains(label, "총계") || strings.Contains(label, "사용목적") {
			return
		}

		amount := int64(numtext.CleanNumber(strings.TrimSpace(cells.Eq(1).Text())))
		if amount > 0 {
			purpose.Breakdown = append(purpose.Breakdown, models.PurposeItem{
				Purpose: label,
				Amount:  amount,
			})
		}
	})

	for _, item := range purpose.Breakdown {
		purpose.Total += item.Amount
	}
	return purpose
}

// purposesByKeyword scans the document for common purpose keywords and takes
// the next cell in the keyword's row as the amount.
func purposesByKeyword(doc *goquery.Document) models.PurposeOfFunds {
	purpose := models.PurposeOfFunds{}

	for _, keyword := range commonPurposes {
		row := docfind.LabelRow(doc, []*regexp.Regexp{regexp.MustCompile(keyword)})
		if row == nil {
			continue
		}

		cells := row.Find("td, th")
		for i := 0; i < cells.Length(); i++ {
			if !strings.Contains(cells.Eq(i).Text(), keyword) {
				continue
			}
			if i+1 < cells.Length() {
				amount := int64(numtext.CleanNumber(strings.TrimSpace(cells.Eq(i + 1).Text())))
				if amount > 0 {
					purpose.Breakdown = append(purpose.Breakdown, models.PurposeItem{
						Purpose: keyword,
						Amount:  amount,
					})
				}
			}
			break
		}
	}

	for _, item := range purpose.Breakdown {
		purpose.Total += item.Amount
	}
	return purpose
}

// extractSchedule resolves the record and listing dates, normalized to
// YYYY-MM-DD or empty.
func extractSchedule(doc *goquery.Document) models.Schedule {
	return models.Schedule{
		RecordDate:  numtext.FormatDate(docfind.RowValue(doc, recordDatePatterns)),
		ListingDate: numtext.FormatDate(docfind.RowValue(doc, listingDatePatterns)),
	}
}
