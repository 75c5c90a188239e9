package settings

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/xerrors"

	"github.com/vuln-tools/euvd-mcp/utils"
)

const (
	defaultHost       = "127.0.0.1"
	defaultPort       = 8000
	defaultBaseURL    = "https://euvdservices.enisa.europa.eu"
	defaultTimeout    = 30
	defaultMaxRetries = 3
	defaultUserAgent  = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Settings holds server and EUVD client configuration, read from the
// environment with an optional .env file.
type Settings struct {
	Host       string
	Port       int
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	UserAgent  string
}

// Load reads settings from the environment. A missing .env file is not an
// error; a malformed numeric variable is.
func Load() (Settings, error) {
	_ = godotenv.Load()

	s := Settings{
		Host:      utils.LookupEnv("HOST", defaultHost),
		BaseURL:   utils.LookupEnv("EUVD_BASE_URL", defaultBaseURL),
		UserAgent: utils.LookupEnv("USER_AGENT", defaultUserAgent),
	}

	port, err := intEnv("PORT", defaultPort)
	if err != nil {
		return Settings{}, err
	}
	s.Port = port

	timeout, err := intEnv("EUVD_TIMEOUT", defaultTimeout)
	if err != nil {
		return Settings{}, err
	}
	s.Timeout = time.Duration(timeout) * time.Second

	retries, err := intEnv("EUVD_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		return Settings{}, err
	}
	s.MaxRetries = retries

	return s, nil
}

// Addr returns the host:port listen address for the HTTP transport.
func (s Settings) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

func intEnv(key string, defaultValue int) (int, error) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, xerrors.Errorf("invalid %s value %q: %w", key, val, err)
	}
	return n, nil
}
