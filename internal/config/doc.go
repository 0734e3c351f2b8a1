// Package config resolves process-wide settings from the environment,
// loading a .env file when one is present. It owns the engine-facing
// variables: the model-source check is disabled by default at startup,
// and GPU visibility is toggled through CUDA_VISIBLE_DEVICES.
package config
