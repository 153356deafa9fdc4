package server

import "errors"

var (
	errNoServerConfigured = errors.New("no server address configured")
)
