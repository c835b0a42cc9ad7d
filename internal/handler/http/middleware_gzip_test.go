package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// echo returns the request body and the Content-Encoding the handler saw.
func echo(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.Header().Set("X-Seen-Encoding", r.Header.Get("Content-Encoding"))
	_, _ = w.Write(body)
}

func TestWithGZipRequests(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		encoding string
		wantCode int
		wantBody string
	}{
		{"gzip body is decompressed", gzipped(t, `{"name":"Q1"}`), "gzip", http.StatusOK, `{"name":"Q1"}`},
		{"plain body passes through", []byte(`{"name":"Q1"}`), "", http.StatusOK, `{"name":"Q1"}`},
		{"corrupt gzip is rejected", []byte("definitely not gzip"), "gzip", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/analysis", bytes.NewReader(tt.body))
			if tt.encoding != "" {
				req.Header.Set("Content-Encoding", tt.encoding)
			}
			rr := httptest.NewRecorder()

			withGZipRequests(http.HandlerFunc(echo)).ServeHTTP(rr, req)

			require.Equal(t, tt.wantCode, rr.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantBody, rr.Body.String())
				assert.Empty(t, rr.Header().Get("X-Seen-Encoding"))
			}
		})
	}
}

func TestWithGZipRequests_ReusesReaders(t *testing.T) {
	handler := withGZipRequests(http.HandlerFunc(echo))

	for i := 0; i < 20; i++ {
		payload := strings.Repeat("row,", i+1)
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipped(t, payload)))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, payload, rr.Body.String())
	}
}

func TestWrappedReadCloser_CloseOnce(t *testing.T) {
	calls := 0
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { calls++ }}

	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close())

	assert.Equal(t, 1, calls)
}
