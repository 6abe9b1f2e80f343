package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/studentdeals/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Checker checks a single dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// ReadinessReport is the body of /ready
type ReadinessReport struct {
	Status       string            `json:"status"`
	Service      string            `json:"service"`
	Dependencies map[string]string `json:"dependencies"`
}

// Handler serves liveness and readiness endpoints
type Handler struct {
	serviceName string
	checkers    map[string]Checker
	timeout     time.Duration
	buildInfo   BuildInfo
}

// NewHandler creates a health handler checking the given dependencies on /ready
func NewHandler(serviceName string, checkers map[string]Checker) *Handler {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	info := BuildInfo{
		Version:     "development",
		GitCommit:   "unknown",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if v := os.Getenv("VERSION"); v != "" {
		info.Version = v
	}
	if c := os.Getenv("GIT_COMMIT"); c != "" {
		info.GitCommit = c
	}

	return &Handler{
		serviceName: serviceName,
		checkers:    checkers,
		timeout:     3 * time.Second,
		buildInfo:   info,
	}
}

// Register mounts /ping, /health and /ready on e
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/ping", h.Ping)
	e.GET("/health", h.Live)
	e.GET("/ready", h.Ready)
}

// Ping returns build information
func (h *Handler) Ping(c echo.Context) error {
	info := h.buildInfo
	info.ServerTime = time.Now()
	return c.JSON(http.StatusOK, info)
}

// Live reports that the process is up
func (h *Handler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.serviceName,
	})
}

// Ready checks every dependency concurrently and answers 503 if any is down
func (h *Handler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	report := h.check(ctx)
	if report.Status != "ready" {
		return c.JSON(http.StatusServiceUnavailable, report)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) check(ctx context.Context) ReadinessReport {
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	var mu sync.Mutex
	deps := make(map[string]string, len(names))
	healthy := true

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		name, checker := name, h.checkers[name]
		g.Go(func() error {
			status := "up"
			if err := checker.CheckHealth(gctx); err != nil {
				status = "down"
				logger.Warn("Dependency health check failed",
					logger.String("dependency", name),
					logger.Err(err))
			}

			mu.Lock()
			deps[name] = status
			if status != "up" {
				healthy = false
			}
			mu.Unlock()
			// keep checking the others so the report is complete
			return nil
		})
	}
	_ = g.Wait()

	status := "ready"
	if !healthy {
		status = "not ready"
	}
	return ReadinessReport{Status: status, Service: h.serviceName, Dependencies: deps}
}
