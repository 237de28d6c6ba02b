// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followerapi

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"
)

func TestServerLifecycle(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := NewServer(ServerConfig{
		Address:         "127.0.0.1:0",
		Handler:         newTestHandler(testFetcher(), &bytes.Buffer{}).Routes(),
		ShutdownTimeout: 2 * time.Second,
		Logger:          logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- server.Serve(ctx)
	}()

	select {
	case <-server.Ready():
	case <-t.Context().Done():
		t.Fatal("server did not become ready before test deadline")
	}

	response, err := http.Get("http://" + server.Addr().String() + "/api/v1/common-followers?first=alice&second=bob")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", response.StatusCode)
	}
	if response.Header.Get(RequestIDHeader) == "" {
		t.Error("response missing X-Request-ID")
	}

	cancel()

	select {
	case err := <-serveDone:
		if err != nil {
			t.Errorf("Serve() = %v, want nil", err)
		}
	case <-t.Context().Done():
		t.Fatal("server did not shut down before test deadline")
	}
}

func TestServerListenError(t *testing.T) {
	server := NewServer(ServerConfig{
		Address: "256.0.0.1:99999",
		Handler: http.NotFoundHandler(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err := server.Serve(context.Background()); err == nil {
		t.Fatal("expected listen error for invalid address")
	}
}

func TestNewServerPanicsOnMissingConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := http.NotFoundHandler()

	tests := []struct {
		name   string
		config ServerConfig
	}{
		{"missing_address", ServerConfig{Handler: handler, Logger: logger}},
		{"missing_handler", ServerConfig{Address: ":0", Logger: logger}},
		{"missing_logger", ServerConfig{Address: ":0", Handler: handler}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("NewServer did not panic")
				}
			}()
			NewServer(tt.config)
		})
	}
}
