package dto

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	CheckDown      = "down"
)

// CheckResult is the outcome of a single dependency check
type CheckResult struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	LatencyMs int64  `json:"latency_ms"`
	Detail    string `json:"detail,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Status aggregates version metadata, host identity and the current time.
// Checks is omitted when no dependency checks are configured.
type Status struct {
	Status    string        `json:"status"`
	Version   string        `json:"version"`
	Commit    *string       `json:"commit"`
	Env       string        `json:"env"`
	Hostname  string        `json:"hostname"`
	Timestamp string        `json:"timestamp"`
	Checks    []CheckResult `json:"checks,omitempty"`
}
