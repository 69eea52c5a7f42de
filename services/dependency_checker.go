package services

import (
	"context"
	"time"

	"github.com/crystalpine/devops-lab/dto"
	"golang.org/x/sync/errgroup"
)

// Checker probes a single external dependency. Check returns a short
// human-readable detail on success.
type Checker interface {
	Name() string
	Check(ctx context.Context) (string, error)
}

// DatabaseProbe is implemented by database.Client
type DatabaseProbe interface {
	Ping(ctx context.Context) error
	ServerVersion(ctx context.Context) (string, error)
}

// ClusterProbe is implemented by kubernetes.Client
type ClusterProbe interface {
	ServerVersion(ctx context.Context) (string, error)
}

// DatabaseChecker reports whether the configured PostgreSQL server answers
type DatabaseChecker struct {
	probe DatabaseProbe
}

// NewDatabaseChecker creates a checker named "postgres"
func NewDatabaseChecker(probe DatabaseProbe) *DatabaseChecker {
	return &DatabaseChecker{probe: probe}
}

func (c *DatabaseChecker) Name() string { return "postgres" }

// Check pings the server and then reads its version string
func (c *DatabaseChecker) Check(ctx context.Context) (string, error) {
	if err := c.probe.Ping(ctx); err != nil {
		return "", err
	}
	return c.probe.ServerVersion(ctx)
}

// KubernetesChecker reports whether the Kubernetes API server answers
type KubernetesChecker struct {
	probe ClusterProbe
}

// NewKubernetesChecker creates a checker named "kubernetes"
func NewKubernetesChecker(probe ClusterProbe) *KubernetesChecker {
	return &KubernetesChecker{probe: probe}
}

func (c *KubernetesChecker) Name() string { return "kubernetes" }

func (c *KubernetesChecker) Check(ctx context.Context) (string, error) {
	return c.probe.ServerVersion(ctx)
}

// RunChecks runs every checker concurrently, each bounded by timeout and by
// ctx, and returns the results in the order the checkers were given. A failed
// check is recorded as down and does not cancel its siblings.
func RunChecks(ctx context.Context, timeout time.Duration, checkers []Checker) []dto.CheckResult {
	results := make([]dto.CheckResult, len(checkers))

	g, gctx := errgroup.WithContext(ctx)
	for i, checker := range checkers {
		g.Go(func() error {
			results[i] = runCheck(gctx, timeout, checker)
			return nil
		})
	}
	// Workers never return an error
	_ = g.Wait()

	return results
}

func runCheck(ctx context.Context, timeout time.Duration, checker Checker) dto.CheckResult {
	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	detail, err := checker.Check(checkCtx)
	result := dto.CheckResult{
		Name:      checker.Name(),
		Status:    dto.StatusOK,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		result.Status = dto.CheckDown
		result.Error = err.Error()
		return result
	}
	result.Detail = detail
	return result
}
