// Package dart provides DART (Data Analysis, Retrieval and Transfer System)
// OpenAPI integration for listing and fetching Korean corporate disclosures.
// API Documentation: https://opendart.fss.or.kr/guide/main.do
package dart

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"dartbrief/pkg/models"
)

const (
	// DART OpenAPI endpoints
	ListURL     = "https://opendart.fss.or.kr/api/list.json"
	DocumentURL = "https://opendart.fss.or.kr/api/document.xml"

	// DART pages list results; 100 is the API maximum per page.
	DefaultPageCount = 100

	// StatusOK is the DART response code for a successful lookup.
	StatusOK = "000"
	// StatusNoData is returned when the query window holds no disclosures.
	StatusNoData = "013"
)

// listResponse is the top-level envelope of /api/list.json.
type listResponse struct {
	Status  string                  `json:"status"`
	Message string                  `json:"message"`
	List    []models.DisclosureItem `json:"list"`
}

// ListQuery holds the search window for a disclosure listing.
type ListQuery struct {
	CorpCode   string // 8-digit DART corporation code
	BeginDate  string // YYYYMMDD
	EndDate    string // YYYYMMDD
	ReportType string // pblntf_ty, e.g. "A" periodic / "B" major events
}

// Client handles DART OpenAPI requests.
type Client struct {
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a DART API client authenticated with the given key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListDisclosures retrieves the disclosure list for the query window.
//
// An empty result (DART status 013) is not an error; it returns an empty
// slice so callers can treat quiet windows uniformly.
func (c *Client) ListDisclosures(query ListQuery) ([]models.DisclosureItem, error) {
	params := url.Values{}
	params.Set("crtfc_key", c.apiKey)
	params.Set("corp_code", query.CorpCode)
	params.Set("bgn_de", query.BeginDate)
	params.Set("end_de", query.EndDate)
	if query.ReportType != "" {
		params.Set("pblntf_ty", query.ReportType)
	}
	params.Set("page_count", fmt.Sprintf("%d", DefaultPageCount))

	body, err := c.get(ListURL, params)
	if err != nil {
		return nil, fmt.Errorf("disclosure list request failed: %w", err)
	}

	return parseListResponse(body)
}

// parseListResponse decodes a /api/list.json body and maps DART status codes
// onto Go results.
func parseListResponse(body []byte) ([]models.DisclosureItem, error) {
	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse DART list response: %w", err)
	}

	switch resp.Status {
	case StatusOK:
		return resp.List, nil
	case StatusNoData:
		return nil, nil
	default:
		return nil, fmt.Errorf("DART API returned status %s: %s", resp.Status, resp.Message)
	}
}

// FetchDocument downloads the raw disclosure document for a receipt number
// and decodes it to UTF-8. DART serves documents in a mix of encodings
// (often EUC-KR), so the body goes through DecodeKorean before returning.
func (c *Client) FetchDocument(rceptNo string) (string, error) {
	params := url.Values{}
	params.Set("crtfc_key", c.apiKey)
	params.Set("rcept_no", rceptNo)

	body, err := c.get(DocumentURL, params)
	if err != nil {
		return "", fmt.Errorf("document fetch for %s failed: %w", rceptNo, err)
	}

	return DecodeKorean(body), nil
}

// get issues a GET with query params and returns the response body.
func (c *Client) get(endpoint string, params url.Values) ([]byte, error) {
	req, err := http.NewRequest("GET", endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("DART API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DART API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
