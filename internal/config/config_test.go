package config

import (
	"os"
	"testing"
)

func TestLoad_DefaultsSourceCheck(t *testing.T) {
	os.Unsetenv(EnvDisableSourceCheck)
	defer os.Unsetenv(EnvDisableSourceCheck)

	Load()

	if got := os.Getenv(EnvDisableSourceCheck); got != "True" {
		t.Errorf("%s: got %q, want True", EnvDisableSourceCheck, got)
	}
}

func TestLoad_PreservesExplicitSourceCheck(t *testing.T) {
	os.Setenv(EnvDisableSourceCheck, "False")
	defer os.Unsetenv(EnvDisableSourceCheck)

	Load()

	if got := os.Getenv(EnvDisableSourceCheck); got != "False" {
		t.Errorf("%s: got %q, want False", EnvDisableSourceCheck, got)
	}
}

func TestLoad_DebugLogging(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"debug enabled", "debug", true},
		{"other value", "info", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value == "" {
				os.Unsetenv(EnvLogLevel)
			} else {
				os.Setenv(EnvLogLevel, tt.value)
			}
			defer os.Unsetenv(EnvLogLevel)

			cfg := Load()
			if cfg.DebugLogging != tt.want {
				t.Errorf("DebugLogging: got %v, want %v", cfg.DebugLogging, tt.want)
			}
		})
	}
}

func TestRequestGPU(t *testing.T) {
	os.Unsetenv(EnvVisibleDevices)
	defer os.Unsetenv(EnvVisibleDevices)

	RequestGPU()

	if got := os.Getenv(EnvVisibleDevices); got != "0" {
		t.Errorf("%s: got %q, want 0", EnvVisibleDevices, got)
	}
}

func TestRequestGPU_KeepsHostSelection(t *testing.T) {
	os.Setenv(EnvVisibleDevices, "1")
	defer os.Unsetenv(EnvVisibleDevices)

	RequestGPU()

	if got := os.Getenv(EnvVisibleDevices); got != "1" {
		t.Errorf("%s: got %q, want 1", EnvVisibleDevices, got)
	}
}

func TestForceCPU(t *testing.T) {
	os.Setenv(EnvVisibleDevices, "0")
	defer os.Unsetenv(EnvVisibleDevices)

	ForceCPU()

	if got := os.Getenv(EnvVisibleDevices); got != "" {
		t.Errorf("%s: got %q, want empty", EnvVisibleDevices, got)
	}
}
