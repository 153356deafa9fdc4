package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/mkosarev/keepsake/internal/config"
	"github.com/mkosarev/keepsake/internal/logger"
	"github.com/mkosarev/keepsake/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL, configures the underlying client with the resolved
// base URL and request timeout, and stores the identity-provider token from
// appCfg for the Authorization header.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(appCfg.Token)

	return a, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// PinStatus implements [ServerAdapter]. It GETs /api/vault/pin and reports
// whether a PIN is configured for the owner.
func (h *httpServerAdapter) PinStatus(ctx context.Context) (bool, error) {
	var status models.PinStatusResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&status).
		Get("/api/vault/pin")
	if err != nil {
		return false, fmt.Errorf("pin status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return status.HasPin, nil
}

// SetPin implements [ServerAdapter]. It POSTs the new PIN to
// POST /api/vault/pin, replacing any previously stored one.
func (h *httpServerAdapter) SetPin(ctx context.Context, pin string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PinRequest{Pin: pin}).
		Post("/api/vault/pin")
	if err != nil {
		return fmt.Errorf("set pin request: %w", err)
	}

	return mapHTTPError(resp)
}

// VerifyPin implements [ServerAdapter]. It PUTs the candidate PIN to
// PUT /api/vault/pin. A wrong PIN is a (false, nil) result, not an error;
// lockout surfaces as [ErrTooManyAttempts].
func (h *httpServerAdapter) VerifyPin(ctx context.Context, pin string) (bool, error) {
	var result models.PinVerifyResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PinRequest{Pin: pin}).
		SetResult(&result).
		Put("/api/vault/pin")
	if err != nil {
		return false, fmt.Errorf("verify pin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.Valid, nil
}

// ListItems implements [ServerAdapter]. It GETs /api/vault and returns the
// owner's items with encrypted payloads.
func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.VaultItem, error) {
	var items []models.VaultItem

	resp, err := h.authedRequest(ctx).
		SetResult(&items).
		Get("/api/vault")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

// CreateItem implements [ServerAdapter]. It POSTs the new item to
// POST /api/vault and returns the persisted record.
func (h *httpServerAdapter) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.VaultItem, error) {
	var item models.VaultItem

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&item).
		Post("/api/vault")
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultItem{}, err
	}

	return item, nil
}

// UpdateItem implements [ServerAdapter]. It PATCHes the partial update to
// PATCH /api/vault/{id} and returns the updated record.
func (h *httpServerAdapter) UpdateItem(ctx context.Context, id string, req models.UpdateItemRequest) (models.VaultItem, error) {
	var item models.VaultItem

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&item).
		Patch("/api/vault/" + url.PathEscape(id))
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("update item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultItem{}, err
	}

	return item, nil
}

// DeleteItem implements [ServerAdapter]. It sends DELETE /api/vault/{id}.
// Deleting an absent item succeeds.
func (h *httpServerAdapter) DeleteItem(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/vault/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

// DecryptItem implements [ServerAdapter]. It POSTs to
// POST /api/vault/{id}/decrypt and returns the plaintext payload. The result
// is handed to the caller without being retained by the adapter.
func (h *httpServerAdapter) DecryptItem(ctx context.Context, id string) (models.VaultData, error) {
	var data models.VaultData

	resp, err := h.authedRequest(ctx).
		SetResult(&data).
		Post("/api/vault/" + url.PathEscape(id) + "/decrypt")
	if err != nil {
		return models.VaultData{}, fmt.Errorf("decrypt item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultData{}, err
	}

	return data, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
