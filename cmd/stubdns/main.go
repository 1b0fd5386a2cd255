package main

import (
	"flag"
	"fmt"
	"os"

	"stubdns/internal/config"
	"stubdns/internal/logging"
	"stubdns/internal/server"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to JSON configuration file")
		host       = flag.String("host", "", "Override bind host")
		port       = flag.Int("port", 0, "Override bind port")
		resolver   = flag.String("resolver", "", "Upstream resolver HOST:PORT (overrides config)")
		dbPath     = flag.String("db", "", "SQLite record database path (overrides config)")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *resolver != "" {
		cfg.Upstream.Address = *resolver
	}
	if *dbPath != "" {
		cfg.Records.Database = *dbPath
	}
	if *jsonLogs {
		cfg.Logging.JSON = true
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Configure(logging.Config{
		Level:       cfg.Logging.Level,
		JSON:        cfg.Logging.JSON,
		IncludePID:  cfg.Logging.IncludePID,
		ExtraFields: cfg.Logging.ExtraFields,
	})

	runner := server.NewRunner(logger)
	if err := runner.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
		os.Exit(1)
	}
}
