// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sheetcharts/internal/config"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/models"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── Construction ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "https kept", raw: "https://charts.example.com/", want: "https://charts.example.com"},
		{name: "spaces trimmed", raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ann@example.com", req.Email)

		writeJSON(t, w, http.StatusOK, models.AuthResponse{
			Token: "tok-1",
			User:  &models.User{UserID: 7, Email: "ann@example.com", Role: models.RoleUser},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.Token)
	assert.Equal(t, int64(7), got.User.UserID)
	assert.Equal(t, "tok-1", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "invalid email or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid email or password")
	assert.Empty(t, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("email already registered"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "pw"})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "email already registered")
}

func TestRegister_MissingTokenIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AuthResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "pw"})

	assert.Error(t, err)
}

func TestProfile_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/me", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.User{UserID: 7, Name: "Ann"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok-1 ")

	got, err := a.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
}

// ── Upload / history ─────────────────────────────────────────────────────────

func TestUpload_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Month", r.FormValue("xAxis"))
		assert.Equal(t, "Revenue", r.FormValue("yAxis"))
		assert.Equal(t, "line", r.FormValue("chartType"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		content, _ := io.ReadAll(f)
		assert.Equal(t, "sales.xlsx", hdr.Filename)
		assert.Equal(t, "payload", string(content))

		writeJSON(t, w, http.StatusCreated, models.UploadResponse{
			Message: "File uploaded and parsed successfully",
			File:    models.History{ID: 3, FileName: "sales.xlsx", Rows: 2},
			Columns: []string{"Month", "Revenue"},
			Data:    []map[string]string{{"Month": "Jan", "Revenue": "1"}, {"Month": "Feb", "Revenue": "2"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	got, err := a.Upload(context.Background(), "sales.xlsx", bytes.NewReader([]byte("payload")),
		models.Axes{XAxis: "Month", YAxis: "Revenue", ChartType: models.ChartLine})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.File.ID)
	assert.Len(t, got.Data, 2)
	assert.Equal(t, []string{"Month", "Revenue"}, got.Columns)
}

func TestUpload_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.MessageResponse{Message: "Only .xls and .xlsx files are allowed"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Upload(context.Background(), "notes.txt", bytes.NewReader(nil), models.Axes{})

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestListHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/history", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.HistoryListResponse{
			Success: true,
			History: []models.History{{ID: 2, FileName: "b.xlsx"}, {ID: 1, FileName: "a.xls"}},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListHistory(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestDeleteHistory_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/history/42", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.MessageResponse{Message: "history not found"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteHistory(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDownloadFile_StreamsBodyAndName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/upload/download/5", r.URL.Path)
		w.Header().Set("Content-Disposition", `attachment; filename="sales report.xlsx"`)
		_, _ = w.Write([]byte("binary"))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	name, err := newTestAdapter(t, srv.URL).DownloadFile(context.Background(), 5, &buf)

	require.NoError(t, err)
	assert.Equal(t, "sales report.xlsx", name)
	assert.Equal(t, "binary", buf.String())
}

func TestDownloadFile_ErrorWritesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.MessageResponse{Message: "no stored file"})
	}))
	defer srv.Close()

	var buf bytes.Buffer
	_, err := newTestAdapter(t, srv.URL).DownloadFile(context.Background(), 5, &buf)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "no stored file")
	assert.Zero(t, buf.Len())
}

func TestDataset_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/history/9/dataset", r.URL.Path)
		assert.Equal(t, "Month", r.URL.Query().Get("xAxis"))
		assert.Equal(t, "Net Revenue", r.URL.Query().Get("yAxis"))
		writeJSON(t, w, http.StatusOK, models.DatasetResponse{
			Columns: []string{"Month", "Net Revenue"},
			Dataset: models.Dataset{Label: "Net Revenue vs Month", Labels: []string{"Jan"}, Values: []float64{1.5}},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Dataset(context.Background(), 9, "Month", "Net Revenue")

	require.NoError(t, err)
	assert.Equal(t, "Net Revenue vs Month", got.Label)
	assert.Equal(t, []float64{1.5}, got.Values)
}

// ── Analyses ─────────────────────────────────────────────────────────────────

func TestCreateAnalysis(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/analysis", r.URL.Path)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.EqualValues(t, 10, raw["historyId"])

		writeJSON(t, w, http.StatusOK, models.AnalysisResponse{Analysis: models.Analysis{ID: 1, Name: "Revenue vs Month"}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateAnalysis(context.Background(), models.SaveAnalysisRequest{
		HistoryID: models.HistoryRef{ID: 10}, XAxis: "Month", YAxis: "Revenue",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestListAnalyses_PopulatedRef(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"analyses":[
			{"id":1,"historyId":{"id":10,"fileName":"sales.xlsx","uploadDate":"2026-01-02T03:04:05Z"},"name":"a"},
			{"id":2,"historyId":11,"name":"b"}]}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListAnalyses(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].HistoryID.Populated())
	assert.Equal(t, "sales.xlsx", got[0].HistoryID.FileName)
	assert.False(t, got[1].HistoryID.Populated())
	assert.Equal(t, int64(11), got[1].HistoryID.ID)
}

func TestRenameAnalysis(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/analysis/4", r.URL.Path)

		var req models.RenameAnalysisRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(t, w, http.StatusOK, models.AnalysisResponse{Analysis: models.Analysis{ID: 4, Name: req.Name}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).RenameAnalysis(context.Background(), 4, "Q1")

	require.NoError(t, err)
	assert.Equal(t, "Q1", got.Name)
}

func TestDeleteAnalysis(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/analysis/4", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Success: true, Message: "Analysis deleted"})
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL).DeleteAnalysis(context.Background(), 4))
}

func TestExportAnalysis(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analysis/4/export", r.URL.Path)
		assert.Equal(t, "pdf", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="Q1.pdf"`)
		_, _ = w.Write([]byte("%PDF-1.3"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ExportAnalysis(context.Background(), 4, models.ExportPDF)

	require.NoError(t, err)
	assert.Equal(t, "Q1.pdf", got.FileName)
	assert.Equal(t, "application/pdf", got.ContentType)
	assert.Equal(t, "%PDF-1.3", string(got.Content))
}

// ── Misc ─────────────────────────────────────────────────────────────────────

func TestVersion_NoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.VersionResponse{Version: "1.2.3"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	got, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got.Version)
}

func TestMapStatus_UnknownStatus(t *testing.T) {
	err := mapStatus(http.StatusTeapot, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "418")
	assert.Contains(t, err.Error(), "I'm a teapot")
}
