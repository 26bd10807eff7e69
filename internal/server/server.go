package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pfrederiksen/mba-calendar/internal/feed"
	"github.com/pfrederiksen/mba-calendar/internal/logger"
)

const (
	contentTypeCalendar = "text/calendar; charset=utf-8"
	contentTypeText     = "text/plain; charset=utf-8"
	shutdownTimeout     = 10 * time.Second
)

// Server serves calendar feeds for a feed.Service
type Server struct {
	svc    *feed.Service
	router *gin.Engine
}

// New creates a Server with its routes registered
func New(svc *feed.Service) *Server {
	s := &Server{svc: svc}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.GET("/", s.handleCalendar)
	r.GET("/healthz", handleHealth)
	r.GET("/metrics", handleMetrics)

	s.router = r
	return s
}

// Handler returns the HTTP handler for all routes
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", logger.Fields{"addr": addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listening on %s: %w", addr, err)
	case <-ctx.Done():
	}

	logger.Info("Server shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func (s *Server) handleCalendar(c *gin.Context) {
	leagueName := c.Query("league")
	if _, err := s.svc.Leagues().Resolve(leagueName); err != nil {
		s.fail(c, err)
		return
	}

	quoted := c.Query("team_name")
	if quoted == "" {
		logger.Warn("Missing team name", logger.Fields{"league": leagueName}, nil)
		plainText(c, http.StatusBadRequest, "Missing required query parameter `team_name`.")
		return
	}

	// Clients commonly encode the team name twice.
	team, err := url.PathUnescape(quoted)
	if err != nil {
		team = quoted
	}

	cal, err := s.svc.Calendar(c.Request.Context(), leagueName, team)
	if err != nil {
		s.fail(c, err)
		return
	}

	logger.IncrCounter("feed.served")
	logger.Info("Feed served", logger.Fields{
		"league": leagueName,
		"team":   team,
		"events": len(cal.Events),
	})
	c.Data(http.StatusOK, contentTypeCalendar, []byte(cal.Serialize()))
}

// fail writes the response for a pipeline error
func (s *Server) fail(c *gin.Context, err error) {
	kind := feed.Classify(err)
	logger.IncrCounter("feed." + kind.String())

	status, body := errorResponse(kind, err)
	if status >= http.StatusInternalServerError {
		logger.Error("Feed request failed", logger.Fields{"kind": kind.String()}, err)
	} else {
		logger.Warn("Feed request rejected", logger.Fields{"kind": kind.String()}, err)
	}
	plainText(c, status, body)
}

// plainText writes body verbatim; error text may contain '%' from URLs
func plainText(c *gin.Context, status int, body string) {
	c.Data(status, contentTypeText, []byte(body))
}

// errorResponse maps a failure kind to its status code and plain-text body
func errorResponse(kind feed.Kind, err error) (int, string) {
	switch kind {
	case feed.KindInvalidLeague:
		return http.StatusBadRequest, err.Error()
	case feed.KindNoGames:
		return http.StatusBadRequest, "No games found for the given team."
	case feed.KindStructure, feed.KindFormat:
		return http.StatusBadRequest, "Cannot parse MBA website."
	case feed.KindFetch:
		return http.StatusBadRequest, fmt.Sprintf("Failed to fetch MBA website: %v", err)
	default:
		return http.StatusInternalServerError, "Internal server error."
	}
}

func handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, logger.GetMetricsSnapshot())
}

// requestLogger logs and times every request
func requestLogger() gin.HandlerFunc {
	reqLog := logger.Default().With(logger.Fields{"component": "http"})

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		logger.RecordTiming("http.request", duration)
		logger.IncrCounter(fmt.Sprintf("http.status.%d", c.Writer.Status()))
		reqLog.With(logger.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Info("Request handled", logger.Fields{
			"status":      c.Writer.Status(),
			"duration_ms": duration.Milliseconds(),
		})
	}
}
