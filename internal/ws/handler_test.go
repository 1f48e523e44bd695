package ws

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvekit/numerics/internal/infrastructure/monitoring"
	"github.com/solvekit/numerics/internal/linalg"
	linalgprovider "github.com/solvekit/numerics/internal/providers/linalg"
	"github.com/solvekit/numerics/internal/service"
)

func dialTestStream(t *testing.T) (*websocket.Conn, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	metrics := monitoring.NewMetrics()
	registry := service.NewRegistry()
	require.NoError(t, registry.Register(linalgprovider.NewProvider(linalg.NewDefault(), metrics)))

	r := gin.New()
	r.GET("/stream", NewHandler(registry, metrics).HandleConnection)
	srv := httptest.NewServer(r)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	var frame map[string]interface{}
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func TestStreamExecute(t *testing.T) {
	conn, cleanup := dialTestStream(t)
	defer cleanup()

	system := readFrame(t, conn)
	require.Equal(t, "system", system["type"])
	sessionID, _ := system["session_id"].(string)
	assert.True(t, strings.HasPrefix(sessionID, "sess_"), "got %q", sessionID)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":    "execute",
		"tool_id": "linalg.determinant",
		"params": map[string]interface{}{
			"matrix": [][]float64{{1, 2}, {3, 4}},
		},
	}))

	start := readFrame(t, conn)
	require.Equal(t, "start", start["type"])
	jobID, _ := start["job_id"].(string)
	assert.True(t, strings.HasPrefix(jobID, "job_"), "got %q", jobID)

	var steps int
	var sawResult bool
	for {
		frame := readFrame(t, conn)
		assert.Equal(t, jobID, frame["job_id"])

		switch frame["type"] {
		case "step":
			steps++
		case "result":
			sawResult = true
		case "complete":
			assert.Positive(t, steps)
			assert.True(t, sawResult)
			return
		case "error":
			t.Fatalf("unexpected error frame: %v", frame["message"])
		}
	}
}

func TestStreamJobsGetDistinctIDs(t *testing.T) {
	conn, cleanup := dialTestStream(t)
	defer cleanup()

	readFrame(t, conn) // system

	execute := map[string]interface{}{
		"type":    "execute",
		"tool_id": "linalg.add",
		"params": map[string]interface{}{
			"a": [][]float64{{1, 2}, {3, 4}},
			"b": [][]float64{{5, 6}, {7, 8}},
		},
	}

	jobs := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		require.NoError(t, conn.WriteJSON(execute))
		for {
			frame := readFrame(t, conn)
			if frame["type"] == "start" {
				jobID, _ := frame["job_id"].(string)
				jobs = append(jobs, jobID)
			}
			if frame["type"] == "complete" {
				break
			}
		}
	}

	require.Len(t, jobs, 2)
	assert.NotEqual(t, jobs[0], jobs[1])
}

func TestStreamInvalidToolID(t *testing.T) {
	conn, cleanup := dialTestStream(t)
	defer cleanup()

	readFrame(t, conn) // system

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":    "execute",
		"tool_id": "not a tool!",
	}))

	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame["type"])
	jobID, _ := frame["job_id"].(string)
	assert.True(t, strings.HasPrefix(jobID, "job_"))
}
