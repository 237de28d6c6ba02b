// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// common-followers-service serves common-follower queries over HTTP:
//
//	GET /api/v1/common-followers?first=A&second=B
//	GET /healthz
//
// Configuration comes from --config or COMMONFOLLOWERS_CONFIG. Use the
// redis cache backend to share ETags between replicas.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/commonfollowers/lib/bootstrap"
	"github.com/bureau-foundation/commonfollowers/lib/config"
	"github.com/bureau-foundation/commonfollowers/lib/followerapi"
	"github.com/bureau-foundation/commonfollowers/lib/process"
	"github.com/bureau-foundation/commonfollowers/lib/version"
)

const binaryName = "common-followers-service"

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

func run() error {
	var configPath string
	var listen string
	var showVersion bool

	flagSet := pflag.NewFlagSet(binaryName, pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config (default: $"+config.EnvConfigPath+")")
	flagSet.StringVar(&listen, "listen", "", "listen address (default: config server.listen)")
	flagSet.BoolVar(&showVersion, "version", false, "print version information and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if showVersion {
		version.Print(os.Stdout, binaryName)
		return nil
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if listen != "" {
		cfg.Server.Listen = listen
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runtime, err := bootstrap.Start(cfg, bootstrap.Options{Binary: binaryName, Logger: logger})
	if err != nil {
		return err
	}
	defer func() {
		if err := runtime.Close(); err != nil {
			logger.Error("closing etag cache failed", "error", err)
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	handler := followerapi.New(followerapi.Config{
		Fetcher: runtime.Fetcher,
		Version: version.Version,
		Logger:  logger,
	})

	server := followerapi.NewServer(followerapi.ServerConfig{
		Address: cfg.Server.Listen,
		Handler: handler.Routes(),
		Logger:  logger,
	})

	logger.Info("common followers service starting",
		"version", version.Info(),
		"listen", cfg.Server.Listen,
		"cache", string(cfg.Cache.Backend),
		"authenticated", cfg.GitHub.Token != "",
	)

	return server.Serve(ctx)
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `common-followers-service: HTTP API for common GitHub followers.

Usage:
  common-followers-service [flags]

Endpoints:
  GET /api/v1/common-followers?first=A&second=B
  GET /healthz

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
