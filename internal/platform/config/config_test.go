package config

import (
	"testing"
	"time"
)

func TestValidateRequiresDatabaseURL(t *testing.T) {
	cfg := Config{MaxBodyBytes: 2048, RateLimitPerMinute: 60}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestValidateProduction(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "complete production config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.JWTSecret = "" },
			wantErr: true,
		},
		{
			name:    "missing encryption key",
			mutate:  func(c *Config) { c.DataEncryptionKey = "" },
			wantErr: true,
		},
		{
			name:    "seed enabled without admin password",
			mutate:  func(c *Config) { c.SeedAdminPassword = "" },
			wantErr: true,
		},
		{
			name:    "email enabled without smtp host",
			mutate:  func(c *Config) { c.EmailEnabled = true },
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{
				DatabaseURL:         "postgres://localhost/osgb",
				JWTSecret:           "secret",
				DataEncryptionKey:   "key",
				Environment:         "production",
				RunSeed:             true,
				SeedAdminPassword:   "ChangeMe123",
				MaxBodyBytes:        1048576,
				RateLimitPerMinute:  60,
				ExpirySweepInterval: 24 * time.Hour,
			}
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
