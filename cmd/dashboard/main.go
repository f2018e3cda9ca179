package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"StockSense/internal/alert"
	"StockSense/internal/analyzer"
	"StockSense/internal/config"
	"StockSense/internal/news"
	"StockSense/internal/portfolio"
	"StockSense/internal/quote"
	"StockSense/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockSense dashboard starting...")
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	fetcher := quote.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] quote source: %s", fetcher.Name())

	var source news.Source
	if cfg.News.APIKey != "" {
		source = news.NewNewsAPISource(cfg.News.APIKey)
	} else {
		source = news.NewScrapeSource()
	}
	log.Printf("[INFO] news source: %s", source.Name())

	a := analyzer.New(fetcher, source)
	store := portfolio.NewStore()

	var watcher *alert.Watcher
	if cfg.EmailReady() {
		mailer := alert.NewSMTPMailer(cfg.Email.SMTPServer, cfg.Email.SMTPPort,
			cfg.Email.SMTPUser, cfg.Email.SMTPPass, cfg.Email.From)
		watcher = alert.NewWatcher(fetcher, mailer)
		if err := watcher.Register(cfg.Alert.CheckCron); err != nil {
			log.Fatalf("[FATAL] register alert sweep: %v", err)
		}
		watcher.Start()
		defer watcher.Stop()
	} else {
		log.Println("[WARN] SMTP not configured, email alerts disabled")
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.New(a, store, watcher).Handler(),
	}

	go func() {
		log.Printf("[INFO] dashboard listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
	log.Println("[INFO] StockSense dashboard stopped")
}
