package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/edgedeck/edgedeck/internal/account"
	"github.com/edgedeck/edgedeck/internal/config"
	"github.com/edgedeck/edgedeck/internal/history"
	"github.com/edgedeck/edgedeck/internal/server"
	"github.com/edgedeck/edgedeck/internal/storage"
	"github.com/edgedeck/edgedeck/internal/upstream"
	"github.com/edgedeck/edgedeck/internal/version"
)

func main() {
	configPath := flag.String("config", "edgedeck.yaml", "path to the yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Durable storage
	st, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	// Credential store: loaded once before first use. The identity client is
	// bound after the pipeline exists because the pipeline reads the active
	// credential back out of the store.
	accounts := account.NewStore(st)
	accounts.Load()

	client := upstream.NewClient(cfg.UpstreamBaseURL, cfg.RequestTimeout, accounts)
	accounts.BindIdentityClient(client)

	logger := history.New(st)
	logger.SetUserSource(func() string {
		if cur := accounts.Current(); cur != nil {
			return cur.Alias
		}
		return ""
	})

	r := server.New(accounts, client, logger)

	log.Printf("🚀 edgedeck %s starting on http://%s", version.Version, cfg.Addr())
	log.Printf("🔌 Provider gateway: %s", cfg.UpstreamBaseURL)

	if err := http.ListenAndServe(cfg.Addr(), r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
