package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkosarev/keepsake/internal/service"
	"github.com/mkosarev/keepsake/internal/store"
	"github.com/mkosarev/keepsake/internal/validators"
	"github.com/mkosarev/keepsake/models"
)

// ─────────────────────────────────────────────
// GET /api/vault/pin
// ─────────────────────────────────────────────

func TestPinStatus_HasPin(t *testing.T) {
	pin := &mockPinService{
		statusFn: func(_ context.Context, ownerID string) (bool, error) {
			assert.Equal(t, testOwnerID, ownerID)
			return true, nil
		},
	}
	router := newTestRouter(t, &mockVaultService{}, pin)

	rec := doRequest(t, router, http.MethodGet, "/api/vault/pin", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PinStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.HasPin)
}

func TestPinStatus_NoPin(t *testing.T) {
	router := newTestRouter(t, &mockVaultService{}, &mockPinService{})

	rec := doRequest(t, router, http.MethodGet, "/api/vault/pin", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hasPin":false`)
}

// ─────────────────────────────────────────────
// POST /api/vault/pin
// ─────────────────────────────────────────────

func TestSetPin_Success(t *testing.T) {
	pin := &mockPinService{
		setFn: func(_ context.Context, ownerID, pinValue string) error {
			assert.Equal(t, testOwnerID, ownerID)
			assert.Equal(t, "4321", pinValue)
			return nil
		},
	}
	router := newTestRouter(t, &mockVaultService{}, pin)

	rec := doRequest(t, router, http.MethodPost, "/api/vault/pin", jsonBody(t, models.PinRequest{Pin: "4321"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestSetPin_TooShort(t *testing.T) {
	pin := &mockPinService{
		setFn: func(_ context.Context, _, _ string) error {
			return validators.ErrPinTooShort
		},
	}
	router := newTestRouter(t, &mockVaultService{}, pin)

	rec := doRequest(t, router, http.MethodPost, "/api/vault/pin", jsonBody(t, models.PinRequest{Pin: "123"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetPin_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, &mockVaultService{}, &mockPinService{})

	rec := doRequest(t, router, http.MethodPost, "/api/vault/pin", "{invalid json}")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestSetPin_StorageFailureIsNotHidden(t *testing.T) {
	pin := &mockPinService{
		setFn: func(_ context.Context, _, _ string) error {
			return store.ErrExecutingStatement
		},
	}
	router := newTestRouter(t, &mockVaultService{}, pin)

	rec := doRequest(t, router, http.MethodPost, "/api/vault/pin", jsonBody(t, models.PinRequest{Pin: "4321"}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"success"`)
}

// ─────────────────────────────────────────────
// PUT /api/vault/pin
// ─────────────────────────────────────────────

func TestVerifyPin_Valid(t *testing.T) {
	pin := &mockPinService{
		verifyFn: func(_ context.Context, _, pinValue string) (bool, error) {
			return pinValue == "4321", nil
		},
	}
	router := newTestRouter(t, &mockVaultService{}, pin)

	rec := doRequest(t, router, http.MethodPut, "/api/vault/pin", jsonBody(t, models.PinRequest{Pin: "4321"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":true`)
}

func TestVerifyPin_Invalid(t *testing.T) {
	pin := &mockPinService{
		verifyFn: func(_ context.Context, _, _ string) (bool, error) {
			return false, nil
		},
	}
	router := newTestRouter(t, &mockVaultService{}, pin)

	rec := doRequest(t, router, http.MethodPut, "/api/vault/pin", jsonBody(t, models.PinRequest{Pin: "9999"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":false`)
}

func TestVerifyPin_NoPinSet(t *testing.T) {
	pin := &mockPinService{
		verifyFn: func(_ context.Context, _, _ string) (bool, error) {
			return false, store.ErrPinNotFound
		},
	}
	router := newTestRouter(t, &mockVaultService{}, pin)

	rec := doRequest(t, router, http.MethodPut, "/api/vault/pin", jsonBody(t, models.PinRequest{Pin: "4321"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyPin_Lockout(t *testing.T) {
	pin := &mockPinService{
		verifyFn: func(_ context.Context, _, _ string) (bool, error) {
			return false, service.ErrTooManyAttempts
		},
	}
	router := newTestRouter(t, &mockVaultService{}, pin)

	rec := doRequest(t, router, http.MethodPut, "/api/vault/pin", jsonBody(t, models.PinRequest{Pin: "4321"}))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
