package models

import (
	"io"
	"strings"
)

// RegisterRequest is the body of POST /api/auth/register. Either Name or
// Username may carry the display name.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DisplayName returns Name, falling back to Username.
func (r RegisterRequest) DisplayName() string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	return strings.TrimSpace(r.Username)
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest is the body of POST /api/auth/google. Token is the
// Google ID token obtained by the frontend.
type GoogleLoginRequest struct {
	Token string `json:"token"`
}

// GoogleIdentity is the verified identity extracted from a Google ID token.
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
}

// UploadRequest carries one uploaded spreadsheet through the service layer.
type UploadRequest struct {
	UserID   int64
	FileName string
	Size     int64
	Axes     Axes
	Content  io.Reader
}

// SaveHistoryRequest is the body of POST /api/history/save.
type SaveHistoryRequest struct {
	UserID    *int64    `json:"userId,omitempty"`
	FileName  string    `json:"fileName"`
	XAxis     string    `json:"xAxis"`
	YAxis     string    `json:"yAxis"`
	ChartType ChartType `json:"chartType"`
}

// SaveAnalysisRequest is the body of POST /api/analysis.
type SaveAnalysisRequest struct {
	UserID    int64      `json:"-"`
	HistoryID HistoryRef `json:"historyId"`
	Name      string     `json:"name"`
	XAxis     string     `json:"xAxis"`
	YAxis     string     `json:"yAxis"`
	ChartType ChartType  `json:"chartType"`
}

// RenameAnalysisRequest is the body of PATCH /api/analysis/{id}.
type RenameAnalysisRequest struct {
	Name string `json:"name"`
}

// ExportRequest identifies a saved analysis to render.
type ExportRequest struct {
	UserID     int64
	AnalysisID int64
	Format     ExportFormat
}

// DatasetRequest asks for the dataset of a stored upload.
type DatasetRequest struct {
	UserID    int64
	HistoryID int64
	XAxis     string
	YAxis     string
}
