package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/crystalpine/devops-lab/dto"
)

// TimestampLayout renders UTC instants as ISO-8601 with microseconds and a
// trailing Z. Fixed width keeps sequential values ordered as strings too.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// StatusService aggregates version metadata with host identity, the current
// time and the outcome of any configured dependency checks
type StatusService struct {
	versions     *VersionService
	checkers     []Checker
	checkTimeout time.Duration

	hostname func() (string, error)
	now      func() time.Time
}

// NewStatusService creates a status service. With no checkers the reported
// status is always "ok".
func NewStatusService(versions *VersionService, checkTimeout time.Duration, checkers ...Checker) *StatusService {
	return &StatusService{
		versions:     versions,
		checkers:     checkers,
		checkTimeout: checkTimeout,
		hostname:     os.Hostname,
		now:          time.Now,
	}
}

// WithHostname replaces the host identity source
func (s *StatusService) WithHostname(fn func() (string, error)) *StatusService {
	s.hostname = fn
	return s
}

// WithClock replaces the time source
func (s *StatusService) WithClock(fn func() time.Time) *StatusService {
	s.now = fn
	return s
}

// GetStatus builds a fully populated status. A hostname lookup failure is
// returned as an error instead of a partial payload.
func (s *StatusService) GetStatus(ctx context.Context) (dto.Status, error) {
	hostname, err := s.hostname()
	if err != nil {
		return dto.Status{}, fmt.Errorf("failed to resolve hostname: %w", err)
	}

	ver := s.versions.GetVersion()
	status := dto.Status{
		Status:    dto.StatusOK,
		Version:   ver.Version,
		Commit:    ver.Commit,
		Env:       ver.Env,
		Hostname:  hostname,
		Timestamp: s.now().UTC().Format(TimestampLayout),
	}

	if len(s.checkers) == 0 {
		return status, nil
	}

	status.Checks = RunChecks(ctx, s.checkTimeout, s.checkers)
	for _, check := range status.Checks {
		if check.Status != dto.StatusOK {
			status.Status = dto.StatusDegraded
			break
		}
	}

	return status, nil
}
