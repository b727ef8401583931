package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedsim/config"
	"schedsim/internal/logging"
	"schedsim/internal/responses"
)

const scenarioJSON = `{"processes":[
	{"pid":1,"arrival_time":0,"burst_time":5,"priority":2},
	{"pid":2,"arrival_time":1,"burst_time":3,"priority":1},
	{"pid":3,"arrival_time":2,"burst_time":8,"priority":3}]`

func newTestApp() *fiber.App {
	cfg := &config.SchedulerConfig{
		Port:                             9095,
		RoundRobinTimeQuantum:            2,
		MultilevelQueueHighTimeQuantum:   2,
		MultilevelQueueLowTimeQuantum:    4,
		MultilevelQueuePriorityThreshold: 5,
	}
	return NewApp(cfg, logging.NewWithWriter(io.Discard, "schedsim", "error"))
}

func do(t *testing.T, app *fiber.App, path, contentType, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestFirstComeFirstServe(t *testing.T) {
	resp, body := do(t, newTestApp(), "/api/v1/fcfs", fiber.MIMEApplicationJSON, scenarioJSON+"}")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, "fcfs", response.Policy)
	assert.Equal(t, 16, response.TotalTime)
	assert.InDelta(t, 26.0/3, response.AverageTurnAroundTime, 1e-9)
	assert.Nil(t, response.Intervals)
	require.Len(t, response.Details, 3)
	assert.Equal(t, 8, response.Details[2].StartTime)
}

func TestRoundRobin_QuantumFromBodyOverridesConfig(t *testing.T) {
	resp, body := do(t, newTestApp(), "/api/v1/rr", fiber.MIMEApplicationJSON, scenarioJSON+`,"time_quantum":8}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &response))
	// a quantum covering every burst degenerates to FCFS
	require.Len(t, response.Intervals[3], 1)
	assert.Equal(t, 8, response.Intervals[3][0].Start)
}

func TestRoundRobin_ConfiguredQuantum(t *testing.T) {
	resp, body := do(t, newTestApp(), "/api/v1/rr", fiber.MIMEApplicationJSON, scenarioJSON+"}")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Len(t, response.Intervals[1], 3)
}

func TestInvalidQuantum(t *testing.T) {
	resp, body := do(t, newTestApp(), "/api/v1/rr", fiber.MIMEApplicationJSON, scenarioJSON+`,"time_quantum":0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "time_quantum")
}

func TestInvalidProcess(t *testing.T) {
	body := `{"processes":[{"pid":1,"arrival_time":0,"burst_time":0,"priority":1}]}`
	resp, _ := do(t, newTestApp(), "/api/v1/sjf", fiber.MIMEApplicationJSON, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMalformedBody(t *testing.T) {
	resp, body := do(t, newTestApp(), "/api/v1/priority", fiber.MIMEApplicationJSON, `{"processes":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "invalid request format")
}

func TestTextPlainBody(t *testing.T) {
	resp, body := do(t, newTestApp(), "/api/v1/mlq?high_quantum=2&low_quantum=4&priority_threshold=2",
		fiber.MIMETextPlain, "1,0,5,2\n2,1,3,1\n3,2,8,3\n")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, "mlq", response.Policy)
	assert.Equal(t, 1, response.Intervals[2][0].Start)
}

func TestTextPlainBody_FormatError(t *testing.T) {
	resp, body := do(t, newTestApp(), "/api/v1/fcfs", fiber.MIMETextPlain, "1,0,5,2\n2,1\n")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "line 2")
}

func TestTextPlainBody_BadQuery(t *testing.T) {
	resp, _ := do(t, newTestApp(), "/api/v1/rr?time_quantum=two", fiber.MIMETextPlain, "1,0,5,2\n")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAllAlgorithms(t *testing.T) {
	resp, body := do(t, newTestApp(), "/api/v1/all", fiber.MIMEApplicationJSON, scenarioJSON+"}")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var all []responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &all))
	require.Len(t, all, 5)
	policies := make([]string, 0, len(all))
	for _, r := range all {
		policies = append(policies, r.Policy)
		assert.Equal(t, 16, r.TotalTime)
	}
	assert.Equal(t, []string{"fcfs", "sjf", "rr", "priority", "mlq"}, policies)
}

func TestHealth(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
