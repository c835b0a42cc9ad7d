package utils

import (
	"encoding/json"
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WriteJSON(w, map[string]string{"message": "created"}, http.StatusCreated); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for unserializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WriteJSON(w, nil, http.StatusOK); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Body.String() != "null" {
		t.Errorf("expected body 'null', got '%s'", w.Body.String())
	}
}

func TestWriteAttachment(t *testing.T) {
	w := httptest.NewRecorder()
	payload := []byte("%PDF-1.3")

	n, err := WriteAttachment(w, "sales report.pdf", "application/pdf", payload)

	if err != nil || n != len(payload) {
		t.Fatalf("expected %d bytes, got %d, %v", len(payload), n, err)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("unexpected Content-Type %q", ct)
	}
	if cl := w.Header().Get("Content-Length"); cl != "8" {
		t.Errorf("unexpected Content-Length %q", cl)
	}

	disposition, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
	if err != nil {
		t.Fatalf("invalid Content-Disposition: %v", err)
	}
	if disposition != "attachment" || params["filename"] != "sales report.pdf" {
		t.Errorf("unexpected disposition %q %v", disposition, params)
	}
}

func TestSetAttachmentHeaders_Defaults(t *testing.T) {
	w := httptest.NewRecorder()

	SetAttachmentHeaders(w, "data.xlsx", "", 0)

	if ct := w.Header().Get("Content-Type"); ct != "application/octet-stream" {
		t.Errorf("unexpected Content-Type %q", ct)
	}
	if cl := w.Header().Get("Content-Length"); cl != "" {
		t.Errorf("expected no Content-Length, got %q", cl)
	}
}
