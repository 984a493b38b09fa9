// Package metrics computes quarterly margin trends from the GuruWhisper
// fundamentals API. Ratios are per quarter plus a trailing four-quarter
// moving average, so a single hot quarter can be judged against a year of
// baseline profitability.
package metrics

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"
)

// ExtractURL is the Korean fundamentals extraction endpoint.
const ExtractURL = "https://api.guruwhisper.com/api/v1/korfsextract"

// Quarter is one reported fiscal quarter as served by the API.
type Quarter struct {
	TargetDate      string  `json:"tgdate"`
	Revenue         float64 `json:"revenue"`
	OperatingIncome float64 `json:"operatingIncome"`
	NetIncome       float64 `json:"netIncome"`
}

// MarginPoint is a quarter enriched with profitability ratios.
// The Avg4 fields are trailing four-quarter means; with fewer than four
// quarters of history they average what exists.
type MarginPoint struct {
	TargetDate               string  `json:"tgdate"`
	Revenue                  float64 `json:"revenue"`
	OperatingIncome          float64 `json:"operatingIncome"`
	NetIncome                float64 `json:"netIncome"`
	OperatingIncomeRatio     float64 `json:"operatingIncomeRatio"`
	OperatingIncomeRatioAvg4 float64 `json:"operatingIncomeRatioAvg4"`
	NetIncomeRatio           float64 `json:"netIncomeRatio"`
	NetIncomeRatioAvg4       float64 `json:"netIncomeRatioAvg4"`
}

// extractResponse is the API envelope.
type extractResponse struct {
	Data []Quarter `json:"data"`
}

// Client fetches fundamentals from the GuruWhisper API.
type Client struct {
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a fundamentals API client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchQuarters retrieves the raw quarterly series for a stock code.
func (c *Client) FetchQuarters(stockCode string) ([]Quarter, error) {
	url := fmt.Sprintf("%s?code=%s&apikey=%s", ExtractURL, stockCode, c.apiKey)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fundamentals request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fundamentals API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var envelope extractResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse fundamentals response: %w", err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("fundamentals response carries no data field")
	}
	return envelope.Data, nil
}

// MarginTrend computes per-quarter margins and trailing four-quarter
// averages. Input order does not matter; quarters are sorted ascending by
// target date before computing, so averages always trail chronologically.
// Zero or negative revenue yields zero ratios for that quarter.
func MarginTrend(quarters []Quarter) []MarginPoint {
	sorted := make([]Quarter, len(quarters))
	copy(sorted, quarters)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TargetDate < sorted[j].TargetDate
	})

	points := make([]MarginPoint, 0, len(sorted))
	opRatios := make([]float64, 0, len(sorted))
	netRatios := make([]float64, 0, len(sorted))

	for _, q := range sorted {
		var opRatio, netRatio float64
		if q.Revenue > 0 {
			opRatio = q.OperatingIncome / q.Revenue * 100
			netRatio = q.NetIncome / q.Revenue * 100
		}
		opRatios = append(opRatios, opRatio)
		netRatios = append(netRatios, netRatio)

		points = append(points, MarginPoint{
			TargetDate:               q.TargetDate,
			Revenue:                  q.Revenue,
			OperatingIncome:          q.OperatingIncome,
			NetIncome:                q.NetIncome,
			OperatingIncomeRatio:     opRatio,
			OperatingIncomeRatioAvg4: trailingMean(opRatios, 4),
			NetIncomeRatio:           netRatio,
			NetIncomeRatioAvg4:       trailingMean(netRatios, 4),
		})
	}
	return points
}

// Latest returns the most recent margin point, or false for an empty trend.
func Latest(points []MarginPoint) (MarginPoint, bool) {
	if len(points) == 0 {
		return MarginPoint{}, false
	}
	return points[len(points)-1], true
}

// trailingMean averages the last n values (all of them when fewer exist).
func trailingMean(values []float64, n int) float64 {
	if len(values) == 0 {
		return 0
	}
	start := len(values) - n
	if start < 0 {
		start = 0
	}
	window := values[start:]

	var sum float64
	for _, v := range window {
		sum += v
	}
	return sum / float64(len(window))
}
