package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/nudge/internal/config"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: srv.URL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL("https://nudge.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://nudge.example.com", got)

	_, err = normalizeBaseURL("  ")
	assert.Error(t, err)
}

func TestLogin_StoresToken(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)

		var body models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "demo@example.com", body.Email)
		assert.Equal(t, "demo1234", body.Password)

		w.Header().Set("Authorization", "Bearer signed.jwt.value")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"signed.jwt.value","expires_at":"2026-01-02T00:00:00Z"}`))
	}))

	token, err := a.Login(context.Background(), models.User{Email: "demo@example.com", Password: "demo1234"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.value", token.String())
	assert.Equal(t, "signed.jwt.value", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"wrong email or password"}`))
	}))

	_, err := a.Login(context.Background(), models.User{Email: "demo@example.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "wrong email or password")
	assert.Empty(t, a.Token())
}

func TestListActive_SendsTokenAndFilter(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		assert.Equal(t, "critical,safe", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Milk","expiry_date":"2026-01-02","user_id":1,"archived_at":null,
			"created_at":"2026-01-01T00:00:00Z","updated_at":"2026-01-01T00:00:00Z","status":"critical","days_until_expiry":1}]`))
	}))
	a.SetToken(" tkn ")

	items, err := a.ListActive(context.Background(), &models.FilterPreference{Critical: true, Safe: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.StatusCritical, items[0].Status)
	assert.Equal(t, "2026-01-02", items[0].ExpiryDate)
}

func TestListActive_AllHidden(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, r.URL.Query().Has("status"))
		assert.Empty(t, r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`[]`))
	}))
	a.SetToken("tkn")

	items, err := a.ListActive(context.Background(), &models.FilterPreference{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRequiresToken(t *testing.T) {
	a := newTestAdapter(t, http.NotFoundHandler())

	_, err := a.ListArchived(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
	assert.ErrorIs(t, a.DeleteItem(context.Background(), 1), ErrNoToken)
}

func TestItemMutations(t *testing.T) {
	var calls []string
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")

		switch r.Method + " " + r.URL.Path {
		case "PUT /api/items/7":
			_, _ = w.Write([]byte(`{"id":7,"name":"Milk","expiry_date":"2026-01-09","status":"critical","days_until_expiry":7}`))
		case "POST /api/items/7/archive":
			w.WriteHeader(http.StatusNoContent)
		case "POST /api/items/archive":
			_, _ = w.Write([]byte(`{"count":3}`))
		case "DELETE /api/items/8":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"item not found"}`))
		case "DELETE /api/items/archived":
			_, _ = w.Write([]byte(`{"count":2}`))
		}
	}))
	a.SetToken("tkn")
	ctx := context.Background()

	item, err := a.UpdateItem(ctx, 7, models.ItemInput{Name: "Milk", ExpiryDate: "2026-01-09"})
	require.NoError(t, err)
	assert.Equal(t, 7, item.DaysUntilExpiry)

	require.NoError(t, a.ArchiveItem(ctx, 7))

	n, err := a.ArchiveAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	assert.ErrorIs(t, a.DeleteItem(ctx, 8), ErrNotFound)

	n, err = a.DeleteAllArchived(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	assert.Equal(t, []string{
		"PUT /api/items/7",
		"POST /api/items/7/archive",
		"POST /api/items/archive",
		"DELETE /api/items/8",
		"DELETE /api/items/archived",
	}, calls)
}

func TestHealth_Degraded(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"error","timestamp":"2026-01-01T00:00:00Z","latency_ms":5}`))
	}))

	report, err := a.Health(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Healthy())
	assert.Equal(t, int64(5), report.LatencyMs)
}
