package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/nudge/internal/config"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/metrics"
	"github.com/MKhiriev/nudge/internal/mock"
	"github.com/MKhiriev/nudge/internal/service"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "valid-token"

type testDeps struct {
	auth   *mock.MockAuthService
	items  *mock.MockItemService
	health *mock.MockHealthService
	info   *mock.MockAppInfoService

	registry *prometheus.Registry
	router   http.Handler
}

func newTestDeps(t *testing.T, cfg config.Server) *testDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := &testDeps{
		auth:     mock.NewMockAuthService(ctrl),
		items:    mock.NewMockItemService(ctrl),
		health:   mock.NewMockHealthService(ctrl),
		info:     mock.NewMockAppInfoService(ctrl),
		registry: prometheus.NewRegistry(),
	}

	services := &service.Services{
		AuthService:    d.auth,
		ItemService:    d.items,
		HealthService:  d.health,
		AppInfoService: d.info,
	}
	h := NewHandler(services, cfg, metrics.NewCollector(d.registry), d.registry, logger.Nop())
	d.router = h.Init()
	return d
}

// expectAuth accepts testToken as user 7.
func (d *testDeps) expectAuth() {
	d.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{SignedString: testToken, UserID: 7}, nil).AnyTimes()
}

func (d *testDeps) do(method, target, body string, authorized bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rr := httptest.NewRecorder()
	d.router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func classified(id int64, name, date string, status models.Status, days int) models.ClassifiedItem {
	return models.ClassifiedItem{
		Item:            models.Item{ID: id, Name: name, ExpiryDate: date},
		Status:          status,
		DaysUntilExpiry: days,
	}
}

func TestRegister(t *testing.T) {
	t.Run("created with bearer header", func(t *testing.T) {
		d := newTestDeps(t, config.Server{})
		d.auth.EXPECT().RegisterUser(gomock.Any(), models.User{Email: "demo@example.com", Password: "demo1234"}).
			Return(models.User{UserID: 1, Email: "demo@example.com"}, nil)
		d.auth.EXPECT().CreateToken(gomock.Any(), models.User{UserID: 1, Email: "demo@example.com"}).
			Return(models.Token{SignedString: "jwt"}, nil)

		rr := d.do(http.MethodPost, "/api/user/register", `{"email":"demo@example.com","password":"demo1234"}`, false)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "Bearer jwt", rr.Header().Get("Authorization"))
		assert.Contains(t, rr.Body.String(), `"token":"jwt"`)
	})

	t.Run("email taken", func(t *testing.T) {
		d := newTestDeps(t, config.Server{})
		d.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
			Return(models.User{}, errors.Join(errors.New("user creation ended with error"), store.ErrEmailAlreadyExists))

		rr := d.do(http.MethodPost, "/api/user/register", `{"email":"demo@example.com","password":"demo1234"}`, false)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		d := newTestDeps(t, config.Server{})

		rr := d.do(http.MethodPost, "/api/user/register", `{"login":"demo"}`, false)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		loginErr   error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"unknown user", store.ErrNoUserWasFound, http.StatusUnauthorized},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"database down", store.ErrExecutingQuery, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t, config.Server{})
			user := models.User{UserID: 3, Email: "demo@example.com"}
			d.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(user, tt.loginErr)
			if tt.loginErr == nil {
				d.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "jwt"}, nil)
			}

			rr := d.do(http.MethodPost, "/api/user/login", `{"email":"demo@example.com","password":"demo1234"}`, false)
			assert.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "Bearer jwt", rr.Header().Get("Authorization"))
			}
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "invalid email/password", decodeError(t, rr))
			}
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, rr.Body.String(), "sql")
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	d := newTestDeps(t, config.Server{})

	rr := d.do(http.MethodGet, "/api/items", "", false)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Authorization", "Basic abc")
	rr = httptest.NewRecorder()
	d.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	d.auth.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
	req = httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rr = httptest.NewRecorder()
	d.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestListActive_StatusFilter(t *testing.T) {
	items := []models.ClassifiedItem{classified(1, "Milk", "2026-01-02", models.StatusCritical, 1)}

	tests := []struct {
		name       string
		query      string
		wantFilter *models.FilterPreference
		wantStatus int
	}{
		{"no filter", "", nil, http.StatusOK},
		{"two buckets", "?status=critical,approaching", &models.FilterPreference{Critical: true, Approaching: true}, http.StatusOK},
		{"case and spaces", "?status=%20Safe%20", &models.FilterPreference{Safe: true}, http.StatusOK},
		{"present but empty hides everything", "?status=", &models.FilterPreference{}, http.StatusOK},
		{"unknown bucket", "?status=expired", nil, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t, config.Server{})
			d.expectAuth()
			if tt.wantStatus == http.StatusOK {
				d.items.EXPECT().ListActive(gomock.Any(), int64(7), tt.wantFilter).Return(items, nil)
			}

			rr := d.do(http.MethodGet, "/api/items"+tt.query, "", true)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus == http.StatusOK {
				var got []models.ClassifiedItem
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, items, got)
			}
		})
	}
}

func TestItemMutations(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		d := newTestDeps(t, config.Server{})
		d.expectAuth()
		want := classified(10, "Passport", "2028-06-15", models.StatusSafe, 896)
		d.items.EXPECT().Create(gomock.Any(), int64(7), models.ItemInput{Name: "Passport", ExpiryDate: "2028-06-15"}).Return(want, nil)

		rr := d.do(http.MethodPost, "/api/items", `{"name":"Passport","expiry_date":"2028-06-15"}`, true)
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"safe"`)
		assert.Contains(t, rr.Body.String(), `"days_until_expiry":896`)
	})

	t.Run("create with invalid input", func(t *testing.T) {
		d := newTestDeps(t, config.Server{})
		d.expectAuth()
		d.items.EXPECT().Create(gomock.Any(), int64(7), gomock.Any()).Return(models.ClassifiedItem{}, service.ErrValidation)

		rr := d.do(http.MethodPost, "/api/items", `{"name":"","expiry_date":"2028-06-15"}`, true)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("update missing item", func(t *testing.T) {
		d := newTestDeps(t, config.Server{})
		d.expectAuth()
		d.items.EXPECT().Update(gomock.Any(), int64(7), int64(5), gomock.Any()).Return(models.ClassifiedItem{}, service.ErrItemNotFound)

		rr := d.do(http.MethodPut, "/api/items/5", `{"name":"Milk","expiry_date":"2026-01-02"}`, true)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		d := newTestDeps(t, config.Server{})
		d.expectAuth()

		rr := d.do(http.MethodDelete, "/api/items/abc", "", true)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("archive and delete", func(t *testing.T) {
		d := newTestDeps(t, config.Server{})
		d.expectAuth()
		d.items.EXPECT().Archive(gomock.Any(), int64(7), int64(4)).Return(nil)
		d.items.EXPECT().Delete(gomock.Any(), int64(7), int64(4)).Return(nil)

		assert.Equal(t, http.StatusNoContent, d.do(http.MethodPost, "/api/items/4/archive", "", true).Code)
		assert.Equal(t, http.StatusNoContent, d.do(http.MethodDelete, "/api/items/4", "", true).Code)
	})

	t.Run("bulk operations return counts", func(t *testing.T) {
		d := newTestDeps(t, config.Server{})
		d.expectAuth()
		d.items.EXPECT().ArchiveAll(gomock.Any(), int64(7)).Return(int64(3), nil)
		d.items.EXPECT().DeleteAllArchived(gomock.Any(), int64(7)).Return(int64(2), nil)
		d.items.EXPECT().ListArchived(gomock.Any(), int64(7)).Return([]models.ClassifiedItem{}, nil)

		rr := d.do(http.MethodPost, "/api/items/archive", "", true)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"count":3}`, rr.Body.String())

		rr = d.do(http.MethodDelete, "/api/items/archived", "", true)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"count":2}`, rr.Body.String())

		rr = d.do(http.MethodGet, "/api/items/archived", "", true)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}

func TestHealth(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	d := newTestDeps(t, config.Server{})
	d.health.EXPECT().Check(gomock.Any()).Return(models.HealthReport{Status: models.HealthOK, Timestamp: now, LatencyMs: 2})

	rr := d.do(http.MethodGet, "/api/health", "", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","timestamp":"2026-01-01T00:00:00Z","latency_ms":2}`, rr.Body.String())

	d.health.EXPECT().Check(gomock.Any()).Return(models.HealthReport{Status: models.HealthDegraded, Timestamp: now, Error: "database unreachable"})

	rr = d.do(http.MethodGet, "/api/health", "", false)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "database unreachable")
}

func TestVersionAndMetrics(t *testing.T) {
	d := newTestDeps(t, config.Server{})
	d.info.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := d.do(http.MethodGet, "/api/version", "", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())

	rr = d.do(http.MethodGet, "/metrics", "", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `nudge_http_requests_total{method="GET",route="/api/version",status="200"} 1`)
}

func TestUnknownMethodIsNotFound(t *testing.T) {
	d := newTestDeps(t, config.Server{})

	rr := d.do(http.MethodPatch, "/api/items/3", "", false)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = d.do(http.MethodGet, "/api/user/login", "", false)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRateLimit(t *testing.T) {
	d := newTestDeps(t, config.Server{RateLimit: 0.001, RateBurst: 2})
	d.expectAuth()
	d.items.EXPECT().ListArchived(gomock.Any(), int64(7)).Return(nil, nil).Times(2)

	assert.Equal(t, http.StatusOK, d.do(http.MethodGet, "/api/items/archived", "", true).Code)
	assert.Equal(t, http.StatusOK, d.do(http.MethodGet, "/api/items/archived", "", true).Code)

	rr := d.do(http.MethodGet, "/api/items/archived", "", true)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
}

func TestContextCarriesUserID(t *testing.T) {
	d := newTestDeps(t, config.Server{})
	d.expectAuth()
	d.items.EXPECT().ArchiveAll(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, userID int64) (int64, error) {
		assert.Equal(t, int64(7), userID)
		return 0, nil
	})

	assert.Equal(t, http.StatusOK, d.do(http.MethodPost, "/api/items/archive", "", true).Code)
}
