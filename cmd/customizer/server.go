// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dbbuilder/ui-customizer/internal/config"
	"github.com/dbbuilder/ui-customizer/internal/db"
	"github.com/dbbuilder/ui-customizer/internal/handlers"
	"github.com/dbbuilder/ui-customizer/internal/server"
	"github.com/dbbuilder/ui-customizer/internal/themes"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the UI Customizer HTTP API",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := runServer(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runServer() error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	environment := config.GetString("server.environment")
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var opts []themes.Option
	cacheEnabled := config.GetBool("cache.enabled")
	if cacheEnabled {
		if err := db.InitDB(config.GetString("database.type"), config.GetString("database.path")); err != nil {
			return err
		}
		defer db.Close()
		cache := themes.NewDBCache(db.GetDB())
		opts = append(opts, themes.WithCache(cache))

		if ttl := config.GetDuration("cache.ttl"); ttl > 0 {
			interval := config.GetDuration("cache.prune_interval")
			if interval <= 0 {
				interval = time.Hour
			}
			pruner := themes.NewPruneScheduler(cache, logger, ttl, interval)
			pruner.Start()
			defer pruner.Stop()
		}
	}

	svc := themes.NewService(logger, opts...)
	h := handlers.New(svc, logger, handlers.Options{
		Version:      version,
		Environment:  environment,
		CacheEnabled: cacheEnabled,
	})

	var proxies []string
	if config.GetBool("server.behind_proxy") {
		proxies = config.GetStringSlice("server.trusted_proxies")
	}

	router := server.NewRouter(server.Config{
		AllowedHosts:   config.GetStringSlice("server.allowed_hosts"),
		CORSOrigins:    config.GetStringSlice("cors.allowed_origins"),
		BlockedCIDRs:   config.GetStringSlice("server.blocked_cidrs"),
		TrustedProxies: proxies,
		RateLimit:      config.GetInt("ratelimit.max_requests"),
		RateWindow:     config.GetDuration("ratelimit.window"),
		HSTS:           environment == "production",
	}, h, logger)
	defer router.Close()

	addr := net.JoinHostPort(config.GetString("server.host"), config.GetString("server.http_port"))
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Str("environment", environment).Msg("starting UI Customizer API")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down UI Customizer API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
