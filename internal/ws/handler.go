package ws

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/solvekit/numerics/internal/api/middleware"
	"github.com/solvekit/numerics/internal/infrastructure/monitoring"
	"github.com/solvekit/numerics/internal/service"
	"github.com/solvekit/numerics/internal/shared/id"
	"github.com/solvekit/numerics/internal/shared/types"
	"github.com/solvekit/numerics/internal/shared/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// Handler manages WebSocket connections
type Handler struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
}

// NewHandler creates a new WebSocket handler
func NewHandler(registry *service.Registry, metrics *monitoring.Metrics) *Handler {
	return &Handler{
		registry: registry,
		metrics:  metrics,
	}
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	h.metrics.StreamConnections.Inc()
	defer h.metrics.StreamConnections.Dec()

	reqCtx := c.Request.Context()
	requestID := middleware.GetRequestID(c)
	sessionID := string(id.NewSessionID())

	h.send(conn, map[string]interface{}{
		"type":       "system",
		"message":    "Connected to SolveKit Numerics (Go)",
		"session_id": sessionID,
	})

	for {
		var msg types.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("WebSocket read error: %v", err)
			break
		}

		switch msg.Type {
		case "execute":
			h.handleExecute(conn, msg, reqCtx, requestID, sessionID)
		case "ping":
			h.send(conn, map[string]interface{}{"type": "pong"})
		default:
			h.sendError(conn, "unknown message type")
		}
	}
}

// handleExecute runs a tool and streams the step trace before the final
// result, so a client can render progress for long computations. Every frame
// carries the job id, letting a client correlate interleaved jobs on one
// connection.
func (h *Handler) handleExecute(conn *websocket.Conn, msg types.WSMessage, reqCtx context.Context, requestID, sessionID string) {
	jobID := string(id.NewJobID())

	if err := utils.ValidateToolID(msg.ToolID, "tool_id", true); err != nil {
		h.sendJobError(conn, jobID, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(reqCtx, 2*time.Minute)
	defer cancel()

	appCtx := &types.Context{SessionID: &sessionID}
	if requestID != "" {
		appCtx.RequestID = &requestID
	}

	h.send(conn, map[string]interface{}{
		"type":    "start",
		"tool_id": msg.ToolID,
		"job_id":  jobID,
	})

	timer := monitoring.NewTimer(h.metrics, msg.ToolID)
	result, err := h.registry.Execute(ctx, msg.ToolID, msg.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		h.sendJobError(conn, jobID, err.Error())
		return
	}

	status := "success"
	if !result.Success {
		status = "failure"
	}
	timer.Stop(status)

	for _, step := range extractSteps(result) {
		h.send(conn, map[string]interface{}{
			"type":    "step",
			"content": step,
			"job_id":  jobID,
		})
	}

	h.send(conn, map[string]interface{}{
		"type":    "result",
		"tool_id": msg.ToolID,
		"job_id":  jobID,
		"result":  result,
	})

	h.send(conn, map[string]interface{}{
		"type":      "complete",
		"job_id":    jobID,
		"timestamp": time.Now().Unix(),
	})
}

// extractSteps pulls the step trace out of a result, if present.
func extractSteps(result *types.Result) []string {
	if result == nil || result.Data == nil {
		return nil
	}
	raw, ok := result.Data["steps"]
	if !ok {
		return nil
	}
	steps, ok := raw.([]string)
	if !ok {
		return nil
	}
	return steps
}

func (h *Handler) send(conn *websocket.Conn, data interface{}) error {
	return conn.WriteJSON(data)
}

func (h *Handler) sendError(conn *websocket.Conn, msg string) error {
	return h.send(conn, map[string]interface{}{
		"type":      "error",
		"message":   msg,
		"timestamp": time.Now().Unix(),
	})
}

func (h *Handler) sendJobError(conn *websocket.Conn, jobID, msg string) error {
	return h.send(conn, map[string]interface{}{
		"type":      "error",
		"job_id":    jobID,
		"message":   msg,
		"timestamp": time.Now().Unix(),
	})
}
