package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	portEnvVar    = "PORT"
	appNameEnvVar = "APP_NAME"
	envEnvVar     = "ENV"
)

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameEnvVar, "Snaplet OAuth2")
}

func (EnvVars) GetEnv() string {
	return GetEnv(envEnvVar, "development")
}

// GetEnv returns the environment variable value or a fallback.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
