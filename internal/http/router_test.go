package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/games-catalog-service/internal/app/games"
	domaingames "github.com/preston-bernstein/games-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/games-catalog-service/internal/http/handlers"
	"github.com/preston-bernstein/games-catalog-service/internal/metrics"
	"github.com/preston-bernstein/games-catalog-service/internal/store"
	"github.com/preston-bernstein/games-catalog-service/internal/testutil"
)

func newSeededRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := games.NewService(store.NewMemoryStore(), metrics.NewRecorder())
	require.NoError(t, svc.Seed())
	logger, _ := testutil.NewBufferLogger()
	return NewRouter(handlers.NewHandler(svc, logger), RouterOptions{Logger: logger})
}

func jsonBody(s string) *strings.Reader { return strings.NewReader(s) }

func TestRouterRoot(t *testing.T) {
	rr := testutil.Serve(newSeededRouter(t), http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRouterListIncludesSeed(t *testing.T) {
	rr := testutil.Serve(newSeededRouter(t), http.MethodGet, "/games", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertJSON(t, rr)
	var list []domaingames.Game
	testutil.DecodeJSON(t, rr, &list)
	assert.Contains(t, list, domaingames.Game{ID: 1, Title: "Pacman", Genre: "Arcade", ReleaseYear: 1980})
}

func TestRouterGetByID(t *testing.T) {
	router := newSeededRouter(t)

	rr := testutil.Serve(router, http.MethodGet, "/games/1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var game domaingames.Game
	testutil.DecodeJSON(t, rr, &game)
	assert.Equal(t, domaingames.Game{ID: 1, Title: "Pacman", Genre: "Arcade", ReleaseYear: 1980}, game)

	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/games/3", nil), http.StatusNotFound)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/games/abc", nil), http.StatusNotFound)
}

func TestRouterCreateAndDuplicate(t *testing.T) {
	router := newSeededRouter(t)
	body := `{"title":"Super Mario Bros","genre":"Platformer","releaseYear":1985}`

	rr := testutil.Serve(router, http.MethodPost, "/games", jsonBody(body))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	testutil.AssertJSON(t, rr)
	var id int
	testutil.DecodeJSON(t, rr, &id)
	assert.Equal(t, 2, id)

	rr = testutil.Serve(router, http.MethodPost, "/games", jsonBody(body))
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterCreateMissingFields(t *testing.T) {
	router := newSeededRouter(t)

	cases := map[string]string{
		"title only":          `{"title":"Duck Hunt"}`,
		"duplicate but short": `{"title":"Pacman","genre":"Arcade"}`,
		"empty object":        `{}`,
		"empty body":          ``,
		"empty genre":         `{"title":"Tetris","genre":"","releaseYear":1984}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rr := testutil.Serve(router, http.MethodPost, "/games", jsonBody(body))
			testutil.AssertStatus(t, rr, http.StatusUnprocessableEntity)
		})
	}
}

func TestRouterCreateInvalidJSON(t *testing.T) {
	rr := testutil.Serve(newSeededRouter(t), http.MethodPost, "/games", jsonBody(`[1,2`))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestRouterDelete(t *testing.T) {
	router := newSeededRouter(t)

	rr := testutil.Serve(router, http.MethodDelete, "/games/1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var id int
	testutil.DecodeJSON(t, rr, &id)
	assert.Equal(t, 1, id)

	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/games/1", nil), http.StatusNotFound)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodDelete, "/games/111", nil), http.StatusNotFound)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodDelete, "/games/1", nil), http.StatusNotFound)
}

func TestRouterIDsNotReusedAfterDelete(t *testing.T) {
	router := newSeededRouter(t)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodDelete, "/games/1", nil), http.StatusOK)

	rr := testutil.Serve(router, http.MethodPost, "/games", jsonBody(`{"title":"Pacman","genre":"Arcade","releaseYear":1980}`))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var id int
	testutil.DecodeJSON(t, rr, &id)
	assert.Equal(t, 2, id)
}

func TestRouterUnknownRouteAndMethod(t *testing.T) {
	router := newSeededRouter(t)

	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/nope", nil), http.StatusNotFound)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodPut, "/games/1", nil), http.StatusMethodNotAllowed)
}

func TestRouterEchoesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/games/99", nil)
	req.Header.Set("X-Request-ID", "trace-1")
	rr := testutil.ServeRequest(newSeededRouter(t), req)

	testutil.AssertStatus(t, rr, http.StatusNotFound)
	assert.Equal(t, "trace-1", rr.Header().Get("X-Request-ID"))
	var body map[string]string
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&body))
	assert.Equal(t, "trace-1", body["requestId"])
}

func TestRouterCORSPreflight(t *testing.T) {
	svc := games.NewService(store.NewMemoryStore(), nil)
	router := NewRouter(handlers.NewHandler(svc, nil), RouterOptions{AllowedOrigins: []string{"https://example.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/games", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := testutil.ServeRequest(router, req)

	assert.Equal(t, "https://example.com", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestAllowedOriginsDefault(t *testing.T) {
	assert.Equal(t, []string{"*"}, allowedOrigins(nil))
	assert.Equal(t, []string{"a"}, allowedOrigins([]string{"a"}))
}
