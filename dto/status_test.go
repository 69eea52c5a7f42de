package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckResult_JSON(t *testing.T) {
	up, err := json.Marshal(CheckResult{Name: "postgres", Status: StatusOK, LatencyMs: 3, Detail: "16.2"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"postgres","status":"ok","latency_ms":3,"detail":"16.2"}`, string(up))

	down, err := json.Marshal(CheckResult{Name: "postgres", Status: CheckDown, LatencyMs: 2000, Error: "context deadline exceeded"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"postgres","status":"down","latency_ms":2000,"error":"context deadline exceeded"}`, string(down))
}

func TestStatus_ChecksOmittedWhenUnconfigured(t *testing.T) {
	raw, err := json.Marshal(Status{Status: StatusOK, Version: "0.1.0", Env: "local", Hostname: "h1", Timestamp: "2024-01-01T00:00:00.000000Z"})
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.NotContains(t, body, "checks")
	assert.Contains(t, body, "commit")
	assert.Nil(t, body["commit"])
}
