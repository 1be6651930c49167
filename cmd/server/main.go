package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kervadec/gites-ledger/internal/api"
	"github.com/kervadec/gites-ledger/internal/archive"
	"github.com/kervadec/gites-ledger/internal/config"
	"github.com/kervadec/gites-ledger/internal/ledger"
	"github.com/kervadec/gites-ledger/internal/pkg/logger"
	"github.com/kervadec/gites-ledger/internal/sheets"
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from stale processes occupying the port.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v\n"+
			"  Hint: Run 'lsof -i :%d' to find the blocking process", port, addr, err, port)
	}
	ln.Close()
	return nil
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if len(cfg.Properties) == 0 {
		log.Fatalf("No properties configured: the ledger needs at least one gîte in %s", configPath)
	}
	if os.Getenv("DEBUG") != "" {
		logger.SetLevel(logger.DEBUG)
	}

	host := cfg.Server.GetHost()
	port := cfg.Server.Port
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}

	ctx := context.Background()

	liveSource, err := sheets.NewClient(ctx, cfg.Sheets)
	if err != nil {
		log.Fatalf("Failed to initialize Sheets client: %v", err)
	}

	archiveStore := archive.NewStore(cfg.Archive.Path)
	reconciler := ledger.NewReconciler(liveSource, archiveStore, cfg.Properties)

	server := api.NewServer(cfg.Server, cfg.CORS, reconciler)

	addr := fmt.Sprintf("%s:%d", host, port)
	go func() {
		logger.Info("server started", "addr", addr, "properties", len(cfg.Properties))
		if err := server.ListenAndServe(addr); err != nil {
			logger.Error("server stopped", "error", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("server shut down")
}
