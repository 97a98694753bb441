package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/piresc/tumpangan/internal/pkg/database"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/nats"
)

// Status represents the health status of a component
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
)

// CheckResult contains the outcome of a single health check
type CheckResult struct {
	Name      string        `json:"name"`
	Status    Status        `json:"status"`
	Message   string        `json:"message,omitempty"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"timestamp"`
}

// Report aggregates the results of all registered checks
type Report struct {
	Status    Status                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Service   string                 `json:"service"`
	Checks    map[string]CheckResult `json:"checks"`
}

// Checker performs a health check against a single dependency
type Checker interface {
	Check(ctx context.Context) CheckResult
	Name() string
}

// RedisChecker verifies Redis connectivity
type RedisChecker struct {
	client *database.RedisClient
}

func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

func (r *RedisChecker) Name() string {
	return "redis"
}

func (r *RedisChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	result := CheckResult{
		Name:      r.Name(),
		Timestamp: start,
	}

	if r.client == nil {
		result.Status = StatusDegraded
		result.Message = "redis not configured"
		result.Duration = time.Since(start)
		return result
	}

	if err := r.client.GetClient().Ping(ctx).Err(); err != nil {
		result.Status = StatusUnhealthy
		result.Message = fmt.Sprintf("redis ping failed: %v", err)
	} else {
		result.Status = StatusHealthy
		result.Message = "redis connection healthy"
	}

	result.Duration = time.Since(start)
	return result
}

// NATSChecker verifies NATS connectivity
type NATSChecker struct {
	client *nats.Client
}

func NewNATSChecker(client *nats.Client) *NATSChecker {
	return &NATSChecker{client: client}
}

func (n *NATSChecker) Name() string {
	return "nats"
}

func (n *NATSChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	result := CheckResult{
		Name:      n.Name(),
		Timestamp: start,
	}

	if n.client == nil {
		result.Status = StatusDegraded
		result.Message = "nats not configured"
		result.Duration = time.Since(start)
		return result
	}

	if !n.client.IsConnected() {
		result.Status = StatusUnhealthy
		result.Message = "nats connection lost"
	} else {
		result.Status = StatusHealthy
		result.Message = "nats connection healthy"
	}

	result.Duration = time.Since(start)
	return result
}

// Service runs registered checkers and produces health reports
type Service struct {
	serviceName string
	checkers    []Checker
	logger      *logger.ZapLogger
	mu          sync.RWMutex
}

func NewService(serviceName string, zapLogger *logger.ZapLogger) *Service {
	return &Service{
		serviceName: serviceName,
		logger:      zapLogger,
	}
}

// AddChecker registers a health checker
func (s *Service) AddChecker(checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers = append(s.checkers, checker)
}

// CheckHealth runs all checkers concurrently and aggregates the results
func (s *Service) CheckHealth(ctx context.Context) Report {
	s.mu.RLock()
	checkers := make([]Checker, len(s.checkers))
	copy(checkers, s.checkers)
	s.mu.RUnlock()

	report := Report{
		Timestamp: time.Now(),
		Service:   s.serviceName,
		Checks:    make(map[string]CheckResult),
	}

	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, checker := range checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()

			checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			result := c.Check(checkCtx)

			mu.Lock()
			report.Checks[c.Name()] = result
			mu.Unlock()

			if result.Status == StatusUnhealthy && s.logger != nil {
				s.logger.Warn("Health check failed",
					zap.String("checker", c.Name()),
					zap.String("message", result.Message),
					zap.Duration("duration", result.Duration))
			}
		}(checker)
	}

	wg.Wait()

	report.Status = overallStatus(report.Checks)
	return report
}

func overallStatus(checks map[string]CheckResult) Status {
	if len(checks) == 0 {
		return StatusHealthy
	}

	status := StatusHealthy
	for _, check := range checks {
		switch check.Status {
		case StatusUnhealthy:
			return StatusUnhealthy
		case StatusDegraded:
			status = StatusDegraded
		}
	}
	return status
}

// RegisterEndpoints wires the health endpoints onto an Echo instance
func RegisterEndpoints(e *echo.Echo, service *Service) {
	e.GET("/health", func(c echo.Context) error {
		report := service.CheckHealth(c.Request().Context())

		code := http.StatusOK
		if report.Status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, report)
	})

	e.GET("/health/ready", func(c echo.Context) error {
		report := service.CheckHealth(c.Request().Context())

		if report.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
	})

	e.GET("/health/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "alive"})
	})
}
