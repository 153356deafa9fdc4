package tui

import (
	"errors"
	"strings"

	"github.com/mkosarev/keepsake/internal/adapter"
)

func humanizeServerError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session token rejected. Sign in again with a fresh token."
	case errors.Is(err, adapter.ErrTooManyAttempts):
		return "Too many wrong attempts. The PIN is locked for a while."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the vault server is unavailable"
	}

	return err.Error()
}
