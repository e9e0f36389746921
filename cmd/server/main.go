package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/goshopper/matchstick/pkg/api"
	"github.com/goshopper/matchstick/pkg/catalog"
	"github.com/goshopper/matchstick/pkg/chassis"
	"github.com/goshopper/matchstick/pkg/lexicon"
)

const version = "0.1.0"

type config struct {
	Addr        string `yaml:"addr"`
	LexiconsDir string `yaml:"lexicons_dir"`
	Lexicon     string `yaml:"lexicon"`
	CatalogDB   string `yaml:"catalog_db"`
	CertFile    string `yaml:"cert_file"`
	KeyFile     string `yaml:"key_file"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "import":
		cmdImport(os.Args[2:])
	case "call":
		cmdCall(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: matchstick <command>

Commands:
  serve    Start the API server (HTTP + MCP over QUIC)
  import   Import products into the catalog from a CSV file
  call     Call an MCP tool on a running server
`)
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := loadConfig(*cfgPath, logger)

	// Load lexicon sets.
	reg := lexicon.NewRegistry(cfg.LexiconsDir)
	if err := reg.Load(); err != nil {
		logger.Error("failed to load lexicons", "error", err)
		os.Exit(1)
	}
	logger.Info("lexicons loaded", "count", reg.Count())

	// Open the product catalog.
	store, err := catalog.Open(cfg.CatalogDB)
	if err != nil {
		logger.Error("failed to open catalog", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	products, err := store.Count()
	if err != nil {
		logger.Error("failed to count products", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog opened", "path", cfg.CatalogDB, "products", products)

	svc, err := api.NewService(reg, store, cfg.Lexicon)
	if err != nil {
		logger.Error("failed to build service", "error", err)
		os.Exit(1)
	}

	mcpSrv := server.NewMCPServer("matchstick", version)
	api.RegisterMCPTools(mcpSrv, svc)

	srv, err := chassis.New(chassis.Config{
		Addr:      cfg.Addr,
		CertFile:  cfg.CertFile,
		KeyFile:   cfg.KeyFile,
		Handler:   api.NewRouter(svc),
		MCPServer: mcpSrv,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("failed to build server", "error", err)
		os.Exit(1)
	}

	// SIGHUP: hot reload lexicons and rebuild the engine.
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading lexicons")
			if err := reg.Reload(); err != nil {
				logger.Error("reload failed", "error", err)
				continue
			}
			if err := svc.Rebuild(); err != nil {
				logger.Error("engine rebuild failed", "error", err)
				continue
			}
			logger.Info("lexicons reloaded", "count", reg.Count())
		}
	}()

	logger.Info("matchstick starting", "addr", cfg.Addr, "version", version)
	if err := srv.Start(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Stop(shutdownCtx)
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr:        ":8420",
		LexiconsDir: "lexicons",
		CatalogDB:   "catalog.db",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}
