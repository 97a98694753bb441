package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name   string
	status Status
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(ctx context.Context) CheckResult {
	return CheckResult{
		Name:      s.name,
		Status:    s.status,
		Timestamp: time.Now(),
	}
}

func TestCheckHealthAggregatesResults(t *testing.T) {
	svc := NewService("marketplace", nil)
	svc.AddChecker(&stubChecker{name: "redis", status: StatusHealthy})
	svc.AddChecker(&stubChecker{name: "nats", status: StatusHealthy})

	report := svc.CheckHealth(context.Background())

	assert.Equal(t, StatusHealthy, report.Status)
	assert.Equal(t, "marketplace", report.Service)
	assert.Len(t, report.Checks, 2)
}

func TestCheckHealthUnhealthyDominates(t *testing.T) {
	svc := NewService("marketplace", nil)
	svc.AddChecker(&stubChecker{name: "redis", status: StatusDegraded})
	svc.AddChecker(&stubChecker{name: "nats", status: StatusUnhealthy})

	report := svc.CheckHealth(context.Background())

	assert.Equal(t, StatusUnhealthy, report.Status)
}

func TestCheckHealthDegradedWithoutFailures(t *testing.T) {
	svc := NewService("marketplace", nil)
	svc.AddChecker(&stubChecker{name: "redis", status: StatusDegraded})
	svc.AddChecker(&stubChecker{name: "nats", status: StatusHealthy})

	report := svc.CheckHealth(context.Background())

	assert.Equal(t, StatusDegraded, report.Status)
}

func TestCheckHealthNoCheckers(t *testing.T) {
	svc := NewService("marketplace", nil)

	report := svc.CheckHealth(context.Background())

	assert.Equal(t, StatusHealthy, report.Status)
	assert.Empty(t, report.Checks)
}

func TestNilClientCheckersDegrade(t *testing.T) {
	redisResult := NewRedisChecker(nil).Check(context.Background())
	assert.Equal(t, StatusDegraded, redisResult.Status)

	natsResult := NewNATSChecker(nil).Check(context.Background())
	assert.Equal(t, StatusDegraded, natsResult.Status)
}

func TestHealthEndpoints(t *testing.T) {
	svc := NewService("marketplace", nil)
	svc.AddChecker(&stubChecker{name: "redis", status: StatusHealthy})

	e := echo.New()
	RegisterEndpoints(e, svc)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var report Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, StatusHealthy, report.Status)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyEndpointFailsWhenUnhealthy(t *testing.T) {
	svc := NewService("marketplace", nil)
	svc.AddChecker(&stubChecker{name: "nats", status: StatusUnhealthy})

	e := echo.New()
	RegisterEndpoints(e, svc)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
