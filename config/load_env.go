package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

const ENV_DIR = "config/envs/.env."

// LoadEnv loads config/envs/.env.<env> into the process environment.
// Variables already set in the environment win over the file.
func LoadEnv(env string) {
	envFile := ENV_DIR + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Debug("No .env file found, using OS environment",
			slog.String("file", envFile))
	}
}
