package api

// Common request/response structures

// GenerateRequest defines the payload for the artifact generation endpoint.
// Text may be blank (the core responds with a fixed prompt), but type must
// be present for routing. Count is optional; zero or absent means the
// service default.
type GenerateRequest struct {
	Text  string `json:"text"`
	Type  string `json:"type"  validate:"required"`
	Count int    `json:"count" validate:"omitempty,gt=0"`
}

// MessageResponse is the body of the greeting endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// DatabaseCheckResponse reports the outcome of the database availability
// probe. Degraded states are reported here rather than as HTTP errors.
type DatabaseCheckResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Tables           []string `json:"tables"`
}
