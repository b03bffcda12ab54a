package collector

import (
	"testing"
	"time"
)

func TestDefaultCollectorConfig(t *testing.T) {
	cfg := DefaultCollectorConfig()

	if cfg.Timeout != 2*time.Second {
		t.Errorf("Expected Timeout 2s, got %v", cfg.Timeout)
	}
	if cfg.PollInterval != 2*time.Second {
		t.Errorf("Expected PollInterval 2s, got %v", cfg.PollInterval)
	}
	if cfg.Limit != 200 {
		t.Errorf("Expected Limit 200, got %d", cfg.Limit)
	}
}

func TestCollectorConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     CollectorConfig
		wantErr bool
	}{
		{
			name:    "valid default config",
			cfg:     DefaultCollectorConfig(),
			wantErr: false,
		},
		{
			name:    "invalid timeout",
			cfg:     DefaultCollectorConfig().WithTimeout(0),
			wantErr: true,
		},
		{
			name:    "invalid poll interval",
			cfg:     DefaultCollectorConfig().WithPollInterval(-time.Second),
			wantErr: true,
		},
		{
			name:    "invalid limit",
			cfg:     DefaultCollectorConfig().WithLimit(-1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWithMethods(t *testing.T) {
	cfg := DefaultCollectorConfig().
		WithTimeout(time.Second).
		WithPollInterval(5 * time.Second).
		WithLimit(10)

	if cfg.Timeout != time.Second {
		t.Errorf("Expected Timeout 1s, got %v", cfg.Timeout)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Errorf("Expected PollInterval 5s, got %v", cfg.PollInterval)
	}
	if cfg.Limit != 10 {
		t.Errorf("Expected Limit 10, got %d", cfg.Limit)
	}

	original := DefaultCollectorConfig()
	_ = original.WithLimit(1)
	if original.Limit != 200 {
		t.Error("Expected With* to leave the receiver unchanged")
	}
}
