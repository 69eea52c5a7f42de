package services

import (
	"github.com/crystalpine/devops-lab/config"
	"github.com/crystalpine/devops-lab/dto"
)

// VersionService reports build metadata from the process environment
type VersionService struct{}

// NewVersionService creates a new version service
func NewVersionService() *VersionService {
	return &VersionService{}
}

// GetVersion reads APP_VERSION, GIT_COMMIT and APP_ENV at call time.
// Values are returned verbatim, including empty strings.
func (s *VersionService) GetVersion() dto.Version {
	return dto.Version{
		Version: config.GetEnv("APP_VERSION", config.DefaultAppVersion),
		Commit:  config.LookupEnv("GIT_COMMIT"),
		Env:     config.GetEnv("APP_ENV", config.DefaultAppEnv),
	}
}
