package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"stubdns/internal/api"
	"stubdns/internal/api/handlers"
	"stubdns/internal/config"
	"stubdns/internal/database"
	"stubdns/internal/resolvers"
	"stubdns/internal/store"
)

// Runner orchestrates the DNS server startup, configuration, and shutdown.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a new server runner with the given logger.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run starts the DNS server with the given configuration and blocks until
// SIGINT or SIGTERM.
func (r *Runner) Run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return r.RunWithContext(ctx, cfg)
}

// RunWithContext starts the DNS server and blocks until ctx is canceled or
// a server error occurs.
//
// Server lifecycle:
//  1. Seed the record store (built-in table, database, static config)
//  2. Dial the upstream resolver (if configured)
//  3. Start the UDP server and optionally the management API
//  4. Wait for shutdown signal, then stop servers gracefully
func (r *Runner) RunWithContext(ctx context.Context, cfg *config.Config) error {
	var db *database.DB
	if cfg.Records.Database != "" {
		var err error
		db, err = database.Open(cfg.Records.Database)
		if err != nil {
			return fmt.Errorf("open record database: %w", err)
		}
		defer db.Close()
	}

	st, err := r.buildStore(cfg, db)
	if err != nil {
		return err
	}

	var upstream resolvers.Upstream
	if cfg.Upstream.Address != "" {
		client, err := resolvers.Dial(cfg.Upstream.Address, cfg.UpstreamTimeout())
		if err != nil {
			return fmt.Errorf("dial upstream %s: %w", cfg.Upstream.Address, err)
		}
		upstream = client
	}

	engine := resolvers.NewEngine(st, upstream, r.logger)
	defer engine.Close()

	stats := NewDNSStats()
	h := &QueryHandler{Logger: r.logger, Engine: engine, Stats: stats}
	udp := &UDPServer{Logger: r.logger, Handler: h}

	r.logger.Info("starting dns server",
		"addr", cfg.ListenAddr(),
		"upstream", cfg.Upstream.Address,
		"records", st.Len(),
		"api_enabled", cfg.API.Enabled,
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return udp.Run(ctx, cfg.ListenAddr())
	})

	if cfg.API.Enabled {
		apiHandler := handlers.New(st, db, r.logger)
		apiHandler.SetDNSStatsFunc(func() handlers.DNSStatsSnapshot {
			s := stats.Snapshot()
			return handlers.DNSStatsSnapshot{
				QueriesTotal: s.QueriesTotal,
				Answered:     s.Answered,
				Dropped:      s.Dropped,
				Failed:       s.Failed,
				Forwarded:    s.Forwarded,
				AvgLatencyMs: s.AvgLatencyMs,
			}
		})
		apiServer := api.New(cfg, apiHandler, r.logger)

		g.Go(func() error {
			r.logger.Info("starting management api", "addr", apiServer.Addr())
			if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("api server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return apiServer.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}

// buildStore seeds the record store. Precedence, lowest to highest:
// built-in seed table, database records, static config entries.
func (r *Runner) buildStore(cfg *config.Config, db *database.DB) (*store.RecordStore, error) {
	seed := store.DefaultSeed()

	if db != nil {
		stored, err := db.Records()
		if err != nil {
			return nil, fmt.Errorf("load database records: %w", err)
		}
		for _, rec := range stored {
			addr, err := store.ParseIPv4(rec.Address)
			if err != nil {
				r.logger.Warn("skipping database record", "domain", rec.Domain, "error", err)
				continue
			}
			seed[rec.Domain] = store.Record{TTL: rec.TTL, Addr: addr}
		}
	}

	for domain, rec := range cfg.Records.Static {
		addr, err := store.ParseIPv4(rec.Address)
		if err != nil {
			return nil, fmt.Errorf("static record %s: %w", domain, err)
		}
		seed[domain] = store.Record{TTL: rec.TTL, Addr: addr}
	}

	return store.New(seed), nil
}
