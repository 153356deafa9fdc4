package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkosarev/keepsake/internal/service"
	"github.com/mkosarev/keepsake/internal/store"
	"github.com/mkosarev/keepsake/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", validators.ErrEmptyLabel, http.StatusBadRequest},
		{"pin too short", validators.ErrPinTooShort, http.StatusBadRequest},
		{"item not found", store.ErrItemNotFound, http.StatusNotFound},
		{"pin not found", store.ErrPinNotFound, http.StatusNotFound},
		{"lockout", service.ErrTooManyAttempts, http.StatusTooManyRequests},
		{"token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"storage", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("context: %w", store.ErrItemNotFound), http.StatusNotFound},
		{"unknown", errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFromError(tc.err))
		})
	}
}
