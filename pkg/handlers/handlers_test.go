package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/hero-catalog/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		data     any
		wantJSON string
	}{
		{"object", http.StatusOK, map[string]bool{"success": true}, `{"success":true}`},
		{"created", http.StatusCreated, map[string]string{"nickname": "Batman"}, `{"nickname":"Batman"}`},
		{"array", http.StatusOK, []int{1, 2}, `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handlers.RespondJSON(w, tt.status, tt.data)

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want %q", ct, "application/json")
			}

			body, _ := io.ReadAll(resp.Body)
			if got := strings.TrimSpace(string(body)); got != tt.wantJSON {
				t.Errorf("body = %s, want %s", got, tt.wantJSON)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		err         error
		wantMessage string
		wantLevel   string
	}{
		{"bad request", http.StatusBadRequest, errors.New("nickname is required"), "nickname is required", "WARN"},
		{"not found", http.StatusNotFound, errors.New("hero not found"), "hero not found", "WARN"},
		{"internal error hides detail", http.StatusInternalServerError, errors.New("dial tcp: refused"), "Internal Server Error", "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))
			w := httptest.NewRecorder()

			handlers.RespondError(w, logger, tt.status, tt.err)

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}

			var body handlers.ErrorBody
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", body.Message, tt.wantMessage)
			}

			if !strings.Contains(logs.String(), "level="+tt.wantLevel) {
				t.Errorf("log = %q, want level %s", logs.String(), tt.wantLevel)
			}
			if !strings.Contains(logs.String(), tt.err.Error()) {
				t.Errorf("log = %q, should contain the underlying error", logs.String())
			}
		})
	}
}
