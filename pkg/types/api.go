package types

// LoadRequest selects the model to load. Exactly one of Model or Path should
// be provided; Model is resolved against the registry, Path is used verbatim.
type LoadRequest struct {
	// Registry model id to load.
	// example: tinyllama-q4
	Model string `json:"model,omitempty" example:"tinyllama-q4"`
	// Absolute path to a model file to load directly.
	// example: /home/user/models/TinyLlama.Q4_K_M.gguf
	Path string `json:"path,omitempty" example:"/home/user/models/TinyLlama.Q4_K_M.gguf"`
}

// LoadResponse is returned by POST /load on success.
type LoadResponse struct {
	// True once the model is loaded.
	Loaded bool `json:"loaded"`
	// Trailing path segment of the loaded model file.
	// example: TinyLlama.Q4_K_M.gguf
	Label string `json:"label"`
	// Full path of the loaded model file.
	Path string `json:"path"`
	// Identifier assigned to this load for log/event correlation.
	LoadID string `json:"load_id"`
}

// GenerateRequest is the payload for POST /generate.
type GenerateRequest struct {
	// Prompt text to respond to. May be empty.
	// example: Write a haiku about the ocean.
	Prompt string `json:"prompt" example:"Write a haiku about the ocean."`
	// Maximum number of new tokens to generate. Accepted but unused by the
	// offline stub; reserved for a real backend.
	// example: 128
	MaxTokens int `json:"max_tokens,omitempty" example:"128"`
	// Sampling temperature. Accepted but unused by the offline stub.
	// example: 0.7
	Temperature float32 `json:"temperature,omitempty" example:"0.7"`
}

// GenerateResponse is returned by POST /generate. The sentinel no-model text
// is a normal 200 outcome, not an error.
type GenerateResponse struct {
	// Generated (stub) text, or the sentinel when no model is loaded.
	Response string `json:"response"`
	// Whether a model was loaded when the request was served.
	Loaded bool `json:"loaded"`
	// Label of the model that served the request; empty when not loaded.
	Label string `json:"label,omitempty"`
}

// LoadedResponse is returned by GET /loaded.
type LoadedResponse struct {
	Loaded bool   `json:"loaded"`
	Label  string `json:"label,omitempty"`
	Path   string `json:"path,omitempty"`
}

// ModelsResponse wraps the list of models returned by GET /models.
type ModelsResponse struct {
	// List of models discovered in the models directory.
	Models []Model `json:"models"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: path is required
	Error string `json:"error" example:"path is required"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// MemoryStats summarizes system memory for /status.
type MemoryStats struct {
	// Total physical memory in MB.
	// example: 16384
	TotalMB uint64 `json:"total_mb" example:"16384"`
	// Available physical memory in MB.
	// example: 9216
	AvailableMB uint64 `json:"available_mb" example:"9216"`
	// Used memory percentage.
	// example: 43.7
	UsedPercent float64 `json:"used_percent" example:"43.7"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Session state: "loaded" or "unloaded".
	// example: loaded
	State string `json:"state" example:"loaded"`
	// Loaded model label; empty when unloaded.
	Label string `json:"label,omitempty"`
	// Loaded model path; empty when unloaded.
	Path string `json:"path,omitempty"`
	// Identifier of the current load; empty when unloaded.
	LoadID string `json:"load_id,omitempty"`
	// Last time the session served a load or generate (unix seconds, 0 if never).
	LastUsed int64 `json:"last_used_unix,omitempty"`
	// Total successful loads since start.
	LoadsTotal uint64 `json:"loads_total"`
	// Total unload calls since start.
	UnloadsTotal uint64 `json:"unloads_total"`
	// Total generate calls since start (including sentinel responses).
	GenerationsTotal uint64 `json:"generations_total"`
	// Uptime of the server in seconds.
	UptimeSeconds int64 `json:"uptime_seconds"`
	// Server time in unix seconds.
	ServerTimeUnix int64 `json:"server_time_unix"`
	// System memory snapshot; omitted when unavailable.
	Memory *MemoryStats `json:"memory,omitempty"`
}
