package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"StockSense/internal/analyzer"
	"StockSense/internal/config"
	"StockSense/internal/news"
	"StockSense/internal/portfolio"
	"StockSense/internal/quote"
	"StockSense/internal/render"
	"StockSense/internal/report"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	_ = godotenv.Load()

	symbol := flag.String("symbol", "", "stock symbol, e.g. AAPL")
	period := flag.String("period", quote.DefaultPeriod, "history period: 1d, 5d, 1mo, 3mo, 6mo, 1y, 5y, max")
	compare := flag.String("compare", "", "second symbol for a side-by-side comparison")
	saveReport := flag.Bool("report", false, "save a plain-text report file")
	flag.Parse()

	if *symbol == "" {
		fmt.Fprintln(os.Stderr, "Please provide a stock symbol with --symbol")
		flag.Usage()
		os.Exit(2)
	}

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	fetcher := quote.NewYahooFetcher(cfg.Proxy)
	var source news.Source
	if cfg.News.APIKey != "" {
		source = news.NewNewsAPISource(cfg.News.APIKey)
	} else {
		source = news.NewScrapeSource()
	}

	a := analyzer.New(fetcher, source)
	sym := portfolio.Normalize(*symbol)
	fmt.Printf("Fetching %s data for %s...\n\n", sym, *period)

	result, err := a.Analyze(sym, *period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not analyze %s (%s)\n", sym, *period)
		os.Exit(1)
	}

	fmt.Print(render.QuoteSummary(result.Quote))
	fmt.Println()
	fmt.Print(render.SeriesTail(result.History, result.Indicators, 5))
	fmt.Println()
	fmt.Println("Latest News:")
	fmt.Print(render.NewsList(result.News))

	if *compare != "" {
		other, err := fetcher.Quote(portfolio.Normalize(*compare))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not fetch comparison data for %s\n", portfolio.Normalize(*compare))
		} else {
			fmt.Println()
			fmt.Print(render.Comparison(result.Quote, other))
		}
	}

	if *saveReport {
		writer := report.NewFileWriter(cfg.Report.Dir)
		path, err := writer.Write(result.Quote)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not save report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nSaved to: %s\n", path)
	}
}
