package config

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr error
	}{
		{
			name: "valid defaults",
			cfg: &Config{
				Version:     1,
				DocsDir:     "docs",
				AppendixURL: DefaultAppendixURL,
			},
		},
		{
			name:    "version too low",
			cfg:     &Config{Version: 0},
			wantErr: ErrVersionTooLow,
		},
		{
			name: "relative appendix url",
			cfg: &Config{
				Version:     1,
				AppendixURL: "/framework/appendix.html",
			},
			wantErr: ErrInvalidAppendixURL,
		},
		{
			name: "non-http appendix url",
			cfg: &Config{
				Version:     1,
				AppendixURL: "ftp://example.com/appendix.html",
			},
			wantErr: ErrInvalidAppendixURL,
		},
		{
			name: "bad registry endpoint",
			cfg: &Config{
				Version:  1,
				Registry: RegistryConfig{Endpoint: "not a url"},
			},
			wantErr: ErrInvalidRegistryEndpoint,
		},
		{
			name: "valid registry endpoint",
			cfg: &Config{
				Version:  1,
				Registry: RegistryConfig{Endpoint: "https://registry.example.com"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.cfg)
			if tt.wantErr == nil {
				if len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}
			found := false
			for _, err := range errs {
				if errors.Is(err, tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() = %v, want error %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidate_NilConfig(t *testing.T) {
	if errs := Validate(nil); len(errs) != 1 {
		t.Errorf("Validate(nil) = %v, want exactly one error", errs)
	}
}
