package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/games-catalog-service/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/games/9", nil)
	logger, _ := testutil.NewBufferLogger()

	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	var body errorResponse
	testutil.DecodeJSON(t, rr, &body)
	if body.Error != "boom" || body.RequestID != "abc123" {
		t.Fatalf("unexpected error body %+v", body)
	}
}

func TestWriteFieldErrorListsFields(t *testing.T) {
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeFieldError(w, r, http.StatusUnprocessableEntity, "missing", []string{"genre"}, nil)
	}), http.MethodPost, "/games", nil)

	var body errorResponse
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Fields) != 1 || body.Fields[0] != "genre" {
		t.Fatalf("expected genre field, got %+v", body)
	}
	if body.RequestID != "" {
		t.Fatalf("expected no request id without header or context, got %s", body.RequestID)
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if !bytes.Contains(buf.Bytes(), []byte("failed to encode response")) {
		t.Fatalf("expected logger to record encode error")
	}
}

func TestLoggerFromContextFallback(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	if got := loggerFromContext(nil, logger); got != logger {
		t.Fatalf("expected fallback for nil request")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := loggerFromContext(req, logger); got != logger {
		t.Fatalf("expected fallback when context has no logger")
	}
}
