package config

import (
	"errors"
	"net/url"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidAppendixURL indicates the appendix_url is not an absolute http(s) URL.
	ErrInvalidAppendixURL = errors.New("appendix_url must be an absolute http(s) URL")

	// ErrInvalidRegistryEndpoint indicates the registry endpoint is malformed.
	ErrInvalidRegistryEndpoint = errors.New("registry.endpoint must be an absolute http(s) URL")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.AppendixURL != "" && !validHTTPURL(cfg.AppendixURL) {
		errs = append(errs, ErrInvalidAppendixURL)
	}

	// Registry settings are optional; only the registry commands need them.
	if cfg.Registry.Endpoint != "" && !validHTTPURL(cfg.Registry.Endpoint) {
		errs = append(errs, ErrInvalidRegistryEndpoint)
	}

	return errs
}

func validHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return strings.TrimSpace(u.Host) != ""
}
