package models

// AuthResponse is returned by every endpoint that issues a bearer token.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UploadResponse is returned by POST /api/upload. Data holds the parsed rows
// in sheet order; Columns keeps the header order that a map cannot.
type UploadResponse struct {
	Message string              `json:"message"`
	File    History             `json:"file"`
	Columns []string            `json:"columns"`
	Data    []map[string]string `json:"data"`
}

// HistoryResponse wraps a single History record.
type HistoryResponse struct {
	Success bool    `json:"success"`
	History History `json:"history"`
}

// HistoryListResponse wraps a list of History records.
type HistoryListResponse struct {
	Success bool      `json:"success"`
	History []History `json:"history"`
}

// AnalysisResponse wraps a single Analysis record.
type AnalysisResponse struct {
	Analysis Analysis `json:"analysis"`
}

// AnalysisListResponse wraps a list of Analysis records.
type AnalysisListResponse struct {
	Analyses []Analysis `json:"analyses"`
}

// DatasetResponse is the chart-ready projection of a stored upload.
type DatasetResponse struct {
	Columns []string `json:"columns"`
	Dataset
}

// VersionResponse describes the running server build.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	BuildCommit string `json:"buildCommit"`
}

// UploadResult is what the upload service hands back to the transport layer.
type UploadResult struct {
	History History
	Table   Table
}

// Export is a rendered chart ready to be streamed.
type Export struct {
	FileName    string
	ContentType string
	Content     []byte
}
