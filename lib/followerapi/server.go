// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followerapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Server runs an http.Handler on a TCP listener until its context is
// cancelled, then drains in-flight requests.
type Server struct {
	address         string
	handler         http.Handler
	logger          *slog.Logger
	shutdownTimeout time.Duration
	writeTimeout    time.Duration

	// ready is closed once the listener is bound.
	ready chan struct{}

	// addr is the resolved listen address, valid after ready closes.
	addr net.Addr
}

// ServerConfig configures a Server.
type ServerConfig struct {
	// Address is the TCP listen address, e.g. ":8080". Required.
	Address string

	// Handler serves requests. Required. Usually Handler.Routes().
	Handler http.Handler

	// ShutdownTimeout bounds the drain after cancellation. Defaults
	// to 10 seconds.
	ShutdownTimeout time.Duration

	// WriteTimeout bounds a whole request. It must exceed the time to
	// page through two large follower lists. Defaults to 2 minutes.
	WriteTimeout time.Duration

	// Logger is required.
	Logger *slog.Logger
}

// NewServer creates a Server. Missing required fields are programmer
// errors and panic.
func NewServer(config ServerConfig) *Server {
	if config.Address == "" {
		panic("followerapi.Server: Address is required")
	}
	if config.Handler == nil {
		panic("followerapi.Server: Handler is required")
	}
	if config.Logger == nil {
		panic("followerapi.Server: Logger is required")
	}

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}
	writeTimeout := config.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = 2 * time.Minute
	}

	return &Server{
		address:         config.Address,
		handler:         config.Handler,
		logger:          config.Logger,
		shutdownTimeout: shutdownTimeout,
		writeTimeout:    writeTimeout,
		ready:           make(chan struct{}),
	}
}

// Ready is closed once the server is accepting connections.
func (server *Server) Ready() <-chan struct{} {
	return server.ready
}

// Addr returns the bound address. Only valid after Ready is closed;
// with port 0 it carries the port the kernel chose.
func (server *Server) Addr() net.Addr {
	return server.addr
}

// Serve binds the listener and serves until ctx is cancelled. A
// cancelled context with a clean drain returns nil.
func (server *Server) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", server.address)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", server.address, err)
	}
	server.addr = listener.Addr()
	close(server.ready)

	httpServer := &http.Server{
		Handler:           server.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      server.writeTimeout,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	server.logger.Info("http server listening", "address", server.addr.String())

	serveDone := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveDone <- err
		}
		close(serveDone)
	}()

	select {
	case <-ctx.Done():
		server.logger.Info("http server shutting down")
	case err := <-serveDone:
		return err
	}

	// Request contexts derive from ctx, so in-flight GitHub fetches are
	// already cancelled; Shutdown waits for their handlers to return.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	server.logger.Info("http server stopped")
	return nil
}
