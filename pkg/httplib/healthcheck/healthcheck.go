package healthcheck

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Path is the health check route.
const Path = "/health"

// Pinger is a dependency the health check probes, e.g. a store client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// Ping calls f(ctx).
func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// HealthCheck is the health check handler.
type HealthCheck struct {
	pingers []Pinger
	timeout time.Duration
}

// New creates a HealthCheck that reports unavailable when any pinger fails.
func New(timeout time.Duration, pingers ...Pinger) *HealthCheck {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthCheck{
		pingers: pingers,
		timeout: timeout,
	}
}

// Middleware answers GET /health before the request reaches any route.
func (hc *HealthCheck) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsHealthCheckRequest(c.Request) {
			c.Next()
			return
		}

		hc.Handle(c)
		c.Abort()
	}
}

// Handle writes "ok" when every dependency answers its ping.
func (hc *HealthCheck) Handle(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), hc.timeout)
	defer cancel()

	for _, p := range hc.pingers {
		if err := p.Ping(ctx); err != nil {
			c.String(http.StatusServiceUnavailable, "unavailable\n")
			return
		}
	}

	c.String(http.StatusOK, "ok\n")
}

// IsHealthCheckRequest is used to check if the request is a health check request
func IsHealthCheckRequest(r *http.Request) bool {
	return r.Method == http.MethodGet && r.URL.Path == Path
}
