// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followerapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key holding the request ID.
const requestIDKey = "request_id"

// maxRequestIDLength bounds caller-supplied IDs so they cannot bloat
// logs. Longer values are replaced with a generated UUID.
const maxRequestIDLength = 128

func requestID(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if id == "" || len(id) > maxRequestIDLength {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

func (handler *Handler) requestLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	attributes := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
		"request_id", c.GetString(requestIDKey),
	}
	if len(c.Errors) > 0 {
		attributes = append(attributes, "error", c.Errors.String())
	}

	if c.Writer.Status() >= 500 {
		handler.logger.Error("request failed", attributes...)
		return
	}
	handler.logger.Info("request", attributes...)
}
