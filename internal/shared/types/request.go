package types

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID    string                 `json:"tool_id" binding:"required"`
	Params    map[string]interface{} `json:"params" binding:"required"`
	SessionID *string                `json:"session_id,omitempty"`
}

// DiscoverRequest represents a service discovery request
type DiscoverRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit,omitempty"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type   string                 `json:"type"`
	ToolID string                 `json:"tool_id,omitempty"`
	Params map[string]interface{} `json:"params,omitempty"`
}
