package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. The two
// signing secrets are expected to arrive this way in deployments.
//
// Recognized variables:
//
//	ADDRESS                 HTTP bind address
//	DATABASE_DSN            PostgreSQL DSN
//	ACCESS_TOKEN_SECRET     access-token HMAC secret
//	REFRESH_TOKEN_SECRET    refresh-token HMAC secret
//	ACCESS_TOKEN_VALIDITY   access token validity, minutes
//	REFRESH_TOKEN_VALIDITY  refresh token validity, minutes
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("ACCESS_TOKEN_SECRET"); v != "" {
		config.AccessTokenSecret = v
	}
	if v := os.Getenv("REFRESH_TOKEN_SECRET"); v != "" {
		config.RefreshTokenSecret = v
	}
	if v := os.Getenv("ACCESS_TOKEN_VALIDITY"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v := os.Getenv("REFRESH_TOKEN_VALIDITY"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.RefreshTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
}
