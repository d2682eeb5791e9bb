package apikey

import "errors"

// ErrEmptyKey is returned when provisioning an empty token
var ErrEmptyKey = errors.New("api key must not be empty")
