package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Backend selects where transactions live.
type Backend string

const (
	BackendLocal  Backend = "local"
	BackendRemote Backend = "remote"
)

// AuthMode selects how the request principal is established.
type AuthMode string

const (
	// AuthNone serves a single shared user; every request uses the empty principal.
	AuthNone AuthMode = "none"
	// AuthJWT reads the principal from a bearer token.
	AuthJWT AuthMode = "jwt"
)

type Config struct {
	Port     string
	LogLevel string

	Backend Backend
	DataDir string

	Locale   string
	Currency string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	AuthMode  AuthMode
	JWTSecret string
}

// LoadDotEnv loads variables from a .env file if one exists. Variables already present in
// the environment win.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "9446",
		LogLevel:         "info",
		Backend:          BackendLocal,
		DataDir:          "./data",
		Locale:           "pt-BR",
		Currency:         "BRL",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		AuthMode:         AuthNone,
	}

	overrides := map[string]*string{
		"PORT":              &env.Port,
		"LOG_LEVEL":         &env.LogLevel,
		"DATA_DIR":          &env.DataDir,
		"LOCALE":            &env.Locale,
		"CURRENCY":          &env.Currency,
		"POSTGRES_ADDRESS":  &env.PostgresAddress,
		"POSTGRES_PORT":     &env.PostgresPort,
		"POSTGRES_DB":       &env.PostgresDB,
		"POSTGRES_USERNAME": &env.PostgresUsername,
		"POSTGRES_PASSWORD": &env.PostgresPassword,
		"JWT_SECRET":        &env.JWTSecret,
	}
	for key, target := range overrides {
		if value := os.Getenv(key); len(value) != 0 {
			*target = value
		}
	}

	if value := os.Getenv("LEDGER_BACKEND"); len(value) != 0 {
		env.Backend = Backend(value)
	}
	if value := os.Getenv("AUTH_MODE"); len(value) != 0 {
		env.AuthMode = AuthMode(value)
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %q: must be between 1 and 65535", c.Port))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}

	switch c.Backend {
	case BackendLocal:
		if c.DataDir == "" {
			errs = append(errs, errors.New("DATA_DIR is required for the local backend"))
		}
	case BackendRemote:
		if c.PostgresAddress == "" || c.PostgresDB == "" {
			errs = append(errs, errors.New("POSTGRES_ADDRESS and POSTGRES_DB are required for the remote backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid ledger backend %q: must be %q or %q", c.Backend, BackendLocal, BackendRemote))
	}

	switch c.AuthMode {
	case AuthNone:
	case AuthJWT:
		if c.Backend != BackendRemote {
			errs = append(errs, errors.New("AUTH_MODE=jwt requires the remote backend"))
		}
		if len(c.JWTSecret) < 16 {
			errs = append(errs, errors.New("JWT_SECRET must be at least 16 characters"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid auth mode %q", c.AuthMode))
	}

	return errors.Join(errs...)
}

// PostgresURL builds the connection string for lib/pq.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
