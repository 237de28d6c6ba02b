// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followerapi

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/bureau-foundation/commonfollowers/lib/followers"
)

// Config configures a Handler.
type Config struct {
	// Fetcher retrieves follower lists. Required.
	Fetcher followers.Fetcher

	// Version is reported by /healthz.
	Version string

	// Logger receives the request log. Defaults to slog.Default().
	Logger *slog.Logger
}

// Handler holds the dependencies shared by all routes.
type Handler struct {
	fetcher followers.Fetcher
	version string
	logger  *slog.Logger
}

// New creates a Handler.
func New(config Config) *Handler {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		fetcher: config.Fetcher,
		version: config.Version,
		logger:  logger,
	}
}

// Routes builds the gin engine. The engine uses no gin default
// middleware; logging goes through the Handler's slog logger.
func (handler *Handler) Routes() *gin.Engine {
	router := gin.New()
	router.Use(requestID, handler.requestLog, gin.Recovery())

	router.GET("/healthz", handler.health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/common-followers", handler.commonFollowers)
	}

	return router
}
