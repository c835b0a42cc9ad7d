package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []int
		wantStatus int
	}{
		{"single call", []int{http.StatusCreated}, http.StatusCreated},
		{"second call ignored", []int{http.StatusNotFound, http.StatusOK}, http.StatusNotFound},
		{"5xx recorded", []int{http.StatusServiceUnavailable}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, s := range tt.statuses {
				w.WriteHeader(s)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, err := w.Write([]byte(`{"success":`))
	assert.NoError(t, err)
	_, err = w.Write([]byte(`true}`))
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status, "Write implies 200")
	assert.Equal(t, 16, w.size)
	assert.Equal(t, `{"success":true}`, rr.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
}
