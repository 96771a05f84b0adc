package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/nudge/internal/config"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/utils"
	"github.com/MKhiriev/nudge/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a [ServerAdapter] for the server at
// cfg.HTTPAddress. A scheme-less address gets "http://".
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register posts the credentials to /api/user/register.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

// Login posts the credentials to /api/user/login.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	var token models.Token

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Email: user.Email, Password: user.Password}).
		SetResult(&token).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	bearer, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	token.SignedString = bearer
	h.SetToken(bearer)
	return token, nil
}

// ListActive fetches active items, optionally narrowed to the visible
// buckets of filter.
func (h *httpServerAdapter) ListActive(ctx context.Context, filter *models.FilterPreference) ([]models.ClassifiedItem, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	if filter != nil {
		req.SetQueryParam("status", statusQuery(*filter))
	}

	var items []models.ClassifiedItem
	resp, err := req.SetResult(&items).Get("/api/items")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *httpServerAdapter) ListArchived(ctx context.Context) ([]models.ClassifiedItem, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var items []models.ClassifiedItem
	resp, err := req.SetResult(&items).Get("/api/items/archived")
	if err != nil {
		return nil, fmt.Errorf("list archived items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, input models.ItemInput) (models.ClassifiedItem, error) {
	return h.writeItem(ctx, http.MethodPost, "/api/items", input)
}

func (h *httpServerAdapter) UpdateItem(ctx context.Context, itemID int64, input models.ItemInput) (models.ClassifiedItem, error) {
	return h.writeItem(ctx, http.MethodPut, itemPath(itemID), input)
}

func (h *httpServerAdapter) writeItem(ctx context.Context, method, path string, input models.ItemInput) (models.ClassifiedItem, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.ClassifiedItem{}, err
	}

	var item models.ClassifiedItem
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&item).
		Execute(method, path)
	if err != nil {
		return models.ClassifiedItem{}, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ClassifiedItem{}, err
	}
	return item, nil
}

func (h *httpServerAdapter) ArchiveItem(ctx context.Context, itemID int64) error {
	_, err := h.send(ctx, http.MethodPost, itemPath(itemID)+"/archive", nil)
	return err
}

func (h *httpServerAdapter) ArchiveAll(ctx context.Context) (int64, error) {
	var count models.CountResponse
	if _, err := h.send(ctx, http.MethodPost, "/api/items/archive", &count); err != nil {
		return 0, err
	}
	return count.Count, nil
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, itemID int64) error {
	_, err := h.send(ctx, http.MethodDelete, itemPath(itemID), nil)
	return err
}

func (h *httpServerAdapter) DeleteAllArchived(ctx context.Context) (int64, error) {
	var count models.CountResponse
	if _, err := h.send(ctx, http.MethodDelete, "/api/items/archived", &count); err != nil {
		return 0, err
	}
	return count.Count, nil
}

// Health reads /api/health. A 503 still carries a report.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthReport, error) {
	var report models.HealthReport

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&report).
		SetError(&report).
		Get("/api/health")
	if err != nil {
		return models.HealthReport{}, fmt.Errorf("health request: %w", err)
	}
	if resp.StatusCode() == http.StatusServiceUnavailable {
		return report, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthReport{}, err
	}
	return report, nil
}

func (h *httpServerAdapter) send(ctx context.Context, method, path string, result any) (*resty.Response, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	return resp, mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func itemPath(itemID int64) string {
	return "/api/items/" + strconv.FormatInt(itemID, 10)
}

// statusQuery lists the visible buckets as "critical,approaching,safe".
func statusQuery(filter models.FilterPreference) string {
	visible := make([]string, 0, len(models.Statuses))
	for _, status := range models.Statuses {
		if filter.Visible(status) {
			visible = append(visible, status.String())
		}
	}
	return strings.Join(visible, ",")
}
