package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the throttle policy for one endpoint.
type EndpointConfig struct {
	Path   string        // path or prefix (prefixes end with "/")
	Method string        // HTTP method
	Limit  int           // requests per window, <= 0 means unthrottled
	Window time.Duration // refill window
	Burst  int           // burst capacity, defaults to Limit when 0
}

// LoadConfig reads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(getEnvString("RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(getEnvString("RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the built-in endpoint policies. Generation
// endpoints are the tightest since each request may call an external model.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/api/ai/chat", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/api/ai/section", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/api/ai/ats", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/api/ai/detect-job", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},

		// Login and registration get a tight window to slow brute forcing.
		{Path: "/api/auth/register", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
		{Path: "/api/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		{Path: "/api/documents", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/documents/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/documents/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/documents/", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/labels", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/labels/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/labels/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},

		// Reads fall through to the default limit.
	}
}

func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
