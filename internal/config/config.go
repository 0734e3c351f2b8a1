package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables recognized by both entry points.
const (
	// EnvLogLevel enables debug logging when set to "debug".
	EnvLogLevel = "OCR_MCP_LOG_LEVEL"

	// EnvDisableSourceCheck disables the engine's startup connectivity
	// and model-source check. Defaulted to "True" at startup.
	EnvDisableSourceCheck = "DISABLE_MODEL_SOURCE_CHECK"

	// EnvVisibleDevices selects the visible GPU device index.
	// An empty value forces CPU inference.
	EnvVisibleDevices = "CUDA_VISIBLE_DEVICES"
)

// Config holds process-wide settings resolved from the environment.
type Config struct {
	DebugLogging bool
}

// Load reads a .env file if one is present, applies startup defaults,
// and returns the resolved configuration. A missing .env file is not
// an error.
func Load() *Config {
	godotenv.Load()

	if _, ok := os.LookupEnv(EnvDisableSourceCheck); !ok {
		os.Setenv(EnvDisableSourceCheck, "True")
	}

	return &Config{
		DebugLogging: os.Getenv(EnvLogLevel) == "debug",
	}
}

// RequestGPU exposes GPU device 0 to the engine unless the host has
// already pinned a device selection.
func RequestGPU() {
	if _, ok := os.LookupEnv(EnvVisibleDevices); !ok {
		os.Setenv(EnvVisibleDevices, "0")
	}
}

// ForceCPU hides all GPU devices from the engine.
func ForceCPU() {
	os.Setenv(EnvVisibleDevices, "")
}
