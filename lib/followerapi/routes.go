// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followerapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bureau-foundation/commonfollowers/lib/followers"
)

// CommonResponse is the body of a successful common-followers query.
type CommonResponse struct {
	First  string               `json:"first"`
	Second string               `json:"second"`
	Common []followers.Follower `json:"common"`
	Count  int                  `json:"count"`
}

// NewCommonResponse builds the response document for a Result. The
// CLI's --json mode emits the same document.
func NewCommonResponse(result followers.Result) CommonResponse {
	common := result.Common
	if common == nil {
		common = []followers.Follower{}
	}
	return CommonResponse{
		First:  result.First,
		Second: result.Second,
		Common: common,
		Count:  len(common),
	}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (handler *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: handler.version})
}

func (handler *Handler) commonFollowers(c *gin.Context) {
	first := strings.TrimSpace(c.Query("first"))
	second := strings.TrimSpace(c.Query("second"))

	var missing []string
	if first == "" {
		missing = append(missing, "first")
	}
	if second == "" {
		missing = append(missing, "second")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "missing query parameter: " + strings.Join(missing, ", "),
		})
		return
	}

	result, err := followers.Common(c.Request.Context(), handler.fetcher, first, second)
	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "request cancelled"})
		default:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: followers.NotFoundMessage})
		}
		return
	}

	c.JSON(http.StatusOK, NewCommonResponse(result))
}
