// Command margins prints the quarterly margin trend for a stock code, with
// trailing four-quarter averages as the profitability baseline.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"dartbrief/pkg/core/metrics"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	stockCode := flag.String("code", "005930", "6-digit stock code")
	tail := flag.Int("n", 5, "number of recent quarters to print")
	flag.Parse()

	apiKey := os.Getenv("GURU_API_KEY")
	if apiKey == "" {
		log.Fatal("Error: GURU_API_KEY is not set.")
	}

	client := metrics.NewClient(apiKey)
	quarters, err := client.FetchQuarters(*stockCode)
	if err != nil {
		log.Fatalf("Fetch failed: %v", err)
	}

	points := metrics.MarginTrend(quarters)
	fmt.Printf("[%s] %d quarters analyzed\n\n", *stockCode, len(points))
	fmt.Printf("%-12s | %15s | %9s | %9s | %9s\n", "기준일", "매출(원)", "영업이익률", "4분기평균", "순이익률")
	fmt.Println("--------------------------------------------------------------------")

	start := len(points) - *tail
	if start < 0 {
		start = 0
	}
	for _, p := range points[start:] {
		fmt.Printf("%-12s | %15.0f | %8.2f%% | %8.2f%% | %8.2f%%\n",
			p.TargetDate, p.Revenue, p.OperatingIncomeRatio, p.OperatingIncomeRatioAvg4, p.NetIncomeRatio)
	}

	if latest, ok := metrics.Latest(points); ok {
		fmt.Printf("\n[최신 분기 %s]\n", latest.TargetDate)
		fmt.Printf("▶ 영업이익률: %.2f%%\n", latest.OperatingIncomeRatio)
		fmt.Printf("▶ 최근 4분기 평균 영업이익률: %.2f%%\n", latest.OperatingIncomeRatioAvg4)
	}
}
