package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Values below are defaults; Load overrides them from the environment.
var (
	// ServerPort is the port the HTTP server listens on.
	ServerPort = "8080"
	// ServerRateLimitMax is the number of requests allowed per client within
	// ServerRateLimitExp.
	ServerRateLimitMax = 100
	ServerRateLimitExp = time.Minute
	ServerReadTimeout  = 30 * time.Second
	ServerWriteTimeout = 30 * time.Second

	// StaticDir holds widgets.wasm and wasm_exec.js.
	StaticDir = "./static"

	// PageCacheTTL is how long a rendered page is served from cache.
	PageCacheTTL = time.Hour

	// AutocompleteDebounce delays suggestion filtering in the browser. Zero
	// filters on every keystroke.
	AutocompleteDebounce time.Duration

	LogLevel  = "info"
	LogFormat = "console"
)

// Third party assets.
const (
	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@2.0.4"
)

// Paths of the widget bundle below StaticDir.
const (
	WasmExecPath = "/wasm_exec.js"
	WidgetsPath  = "/widgets.wasm"
)

// Load reads a .env file, if there is one, and then the environment.
func Load() {
	_ = godotenv.Load()

	ServerPort = getEnv("PORT", ServerPort)
	ServerRateLimitMax = getInt("RATE_LIMIT_MAX", ServerRateLimitMax)
	ServerRateLimitExp = getDuration("RATE_LIMIT_EXP", ServerRateLimitExp)
	ServerReadTimeout = getDuration("READ_TIMEOUT", ServerReadTimeout)
	ServerWriteTimeout = getDuration("WRITE_TIMEOUT", ServerWriteTimeout)
	StaticDir = getEnv("STATIC_DIR", StaticDir)
	PageCacheTTL = getDuration("PAGE_CACHE_TTL", PageCacheTTL)
	AutocompleteDebounce = getDuration("AUTOCOMPLETE_DEBOUNCE", AutocompleteDebounce)
	LogLevel = getEnv("LOG_LEVEL", LogLevel)
	LogFormat = getEnv("LOG_FORMAT", LogFormat)
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
