package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/feed-ranking/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// MustGetEnvAsStrings splits a comma-separated variable, trimming each entry.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	return splitList(MustGetEnvAsString(ctx, name))
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	return parseInt(ctx, name, MustGetEnvAsString(ctx, name))
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	return parseBoolean(ctx, name, MustGetEnvAsString(ctx, name))
}

func GetEnvAsStringOrDefault(name, fallback string) string {
	if s, exists := os.LookupEnv(name); exists && s != "" {
		return s
	}
	return fallback
}

func GetEnvAsStringsOrDefault(name string, fallback []string) []string {
	if s, exists := os.LookupEnv(name); exists && s != "" {
		return splitList(s)
	}
	return fallback
}

func GetEnvAsIntOrDefault(ctx context.Context, name string, fallback int) int {
	if s, exists := os.LookupEnv(name); exists && s != "" {
		return parseInt(ctx, name, s)
	}
	return fallback
}

func GetEnvAsDurationOrDefault(ctx context.Context, name string, fallback time.Duration) time.Duration {
	if s, exists := os.LookupEnv(name); exists && s != "" {
		return parseDuration(ctx, name, s)
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseInt(ctx context.Context, name, s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as integer",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as integer [%s]: %s", name, s))
	}

	return v
}

func parseBoolean(ctx context.Context, name, s string) bool {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	default:
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as boolean ('true'/'false')",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as boolean ('true'/'false') [%s]: %s", name, s))
	}
}

func parseDuration(ctx context.Context, name, s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as duration",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as duration [%s]: %s", name, s))
	}

	return duration
}
