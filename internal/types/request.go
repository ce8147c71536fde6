package types

// ExecuteRequest represents a service tool execution request
type ExecuteRequest struct {
	ToolID  string                 `json:"tool_id" binding:"required"`
	Params  map[string]interface{} `json:"params"`
	Context *Context               `json:"context,omitempty"`
}

// DiscoverRequest represents a service discovery query
type DiscoverRequest struct {
	Query string `json:"query" binding:"required"`
}
