package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from files, environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	DBMaxConns         int
	ShutdownTimeout    time.Duration
	LogLevel           string
	PageSizeDefault    int
	PageSizeMax        int
	CORSAllowedOrigins []string
	Downstreams        Downstreams
	OrderStatuses      OrderStatuses
}

// Downstream configures one service called by the admin layer.
type Downstream struct {
	BaseURL     string        `mapstructure:"baseUrl"`
	Timeout     time.Duration `mapstructure:"timeout"`
	RetryPolicy RetryPolicy   `mapstructure:"retryPolicy"`
}

// RetryPolicy of a downstream. Calls are single-attempt, so only one attempt is accepted.
type RetryPolicy struct {
	MaxAttempts int `mapstructure:"maxAttempts"`
}

// Downstreams groups the services aggregated by the admin layer.
type Downstreams struct {
	Product Downstream `mapstructure:"product"`
	Order   Downstream `mapstructure:"order"`
	User    Downstream `mapstructure:"user"`
}

// OrderStatuses extends the order status vocabulary.
type OrderStatuses struct {
	Extra       []string            `mapstructure:"extra"`
	Terminal    []string            `mapstructure:"terminal"`
	Transitions map[string][]string `mapstructure:"transitions"`
}

type fileConfig struct {
	RunAddress         string        `mapstructure:"runAddress"`
	DatabaseURI        string        `mapstructure:"databaseUri"`
	DBMaxConns         int           `mapstructure:"dbMaxConns"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdownTimeout"`
	LogLevel           string        `mapstructure:"logLevel"`
	PageSizeDefault    int           `mapstructure:"pageSizeDefault"`
	PageSizeMax        int           `mapstructure:"pageSizeMax"`
	CORSAllowedOrigins []string      `mapstructure:"corsAllowedOrigins"`
	Downstreams        Downstreams   `mapstructure:"downstreams"`
	OrderStatuses      OrderStatuses `mapstructure:"orderStatuses"`
}

const (
	defaultRunAddress      = ":8080"
	defaultDBMaxConns      = 10
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultPageSize        = 10
	defaultMaxPageSize     = 100

	defaultProductServiceURL = "http://localhost:8095/api/v1/product-service/product"
	defaultOrderServiceURL   = "http://localhost:8090/api/v1/order-service/order"
	defaultUserServiceURL    = "http://localhost:8092/api/v1/user-service/users"
)

// DefaultDownstreamTimeout bounds a downstream call when no timeout is configured.
const DefaultDownstreamTimeout = 5 * time.Second

// ErrRetriesUnsupported is returned when a downstream asks for more than one attempt.
var ErrRetriesUnsupported = errors.New("downstream retries are not supported")

// Load parses configuration from flags, environment variables and optional files.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func defaults() *Config {
	downstream := func(url string) Downstream {
		return Downstream{BaseURL: url, Timeout: DefaultDownstreamTimeout, RetryPolicy: RetryPolicy{MaxAttempts: 1}}
	}
	return &Config{
		RunAddress:      defaultRunAddress,
		DBMaxConns:      defaultDBMaxConns,
		ShutdownTimeout: defaultShutdownTimeout,
		LogLevel:        defaultLogLevel,
		PageSizeDefault: defaultPageSize,
		PageSizeMax:     defaultMaxPageSize,
		Downstreams: Downstreams{
			Product: downstream(defaultProductServiceURL),
			Order:   downstream(defaultOrderServiceURL),
			User:    downstream(defaultUserServiceURL),
		},
	}
}

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := defaults()

	fs := flag.NewFlagSet("sneako", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		configFile      = fs.String("config", "", "Path to YAML configuration file")
		envFile         = fs.String("env-file", "", "Path to dotenv file")
		runAddress      = fs.String("a", "", "HTTP server listen address")
		databaseURI     = fs.String("d", "", "PostgreSQL DSN")
		shutdownTimeout = fs.String("shutdown-timeout", "", "Graceful shutdown timeout")
		logLevel        = fs.String("log-level", "", "Log level")
		productURL      = fs.String("product-url", "", "Product service base URL")
		orderURL        = fs.String("order-url", "", "Order service base URL")
		userURL         = fs.String("user-url", "", "User service base URL")
	)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if *configFile == "" {
		*configFile = getString(lookup, "CONFIG_FILE", "")
	}
	if *configFile != "" {
		if err := applyFile(cfg, *configFile); err != nil {
			return nil, err
		}
	}

	if *envFile == "" {
		*envFile = getString(lookup, "ENV_FILE", "")
	}
	if *envFile != "" {
		values, err := godotenv.Read(*envFile)
		if err != nil {
			return nil, fmt.Errorf("read env file: %w", err)
		}
		lookup = withFallback(lookup, values)
	}

	applyEnv(cfg, lookup)

	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.RunAddress = *runAddress
		case "d":
			cfg.DatabaseURI = *databaseURI
		case "log-level":
			cfg.LogLevel = *logLevel
		case "product-url":
			cfg.Downstreams.Product.BaseURL = *productURL
		case "order-url":
			cfg.Downstreams.Order.BaseURL = *orderURL
		case "user-url":
			cfg.Downstreams.User.BaseURL = *userURL
		case "shutdown-timeout":
			if cfg.ShutdownTimeout, err = time.ParseDuration(*shutdownTimeout); err != nil {
				err = fmt.Errorf("invalid shutdown timeout: %w", err)
			}
		}
	})
	if err != nil {
		return nil, err
	}

	if err := normalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var file fileConfig
	if err := v.Unmarshal(&file); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}

	setString(&cfg.RunAddress, file.RunAddress)
	setString(&cfg.DatabaseURI, file.DatabaseURI)
	setString(&cfg.LogLevel, file.LogLevel)
	setInt(&cfg.DBMaxConns, file.DBMaxConns)
	setInt(&cfg.PageSizeDefault, file.PageSizeDefault)
	setInt(&cfg.PageSizeMax, file.PageSizeMax)
	if file.ShutdownTimeout != 0 {
		cfg.ShutdownTimeout = file.ShutdownTimeout
	}
	if len(file.CORSAllowedOrigins) > 0 {
		cfg.CORSAllowedOrigins = file.CORSAllowedOrigins
	}
	mergeDownstream(&cfg.Downstreams.Product, file.Downstreams.Product)
	mergeDownstream(&cfg.Downstreams.Order, file.Downstreams.Order)
	mergeDownstream(&cfg.Downstreams.User, file.Downstreams.User)
	cfg.OrderStatuses = file.OrderStatuses
	return nil
}

func applyEnv(cfg *Config, lookup envLookup) {
	cfg.RunAddress = getString(lookup, "RUN_ADDRESS", cfg.RunAddress)
	cfg.DatabaseURI = getString(lookup, "DATABASE_URI", cfg.DatabaseURI)
	cfg.DBMaxConns = getInt(lookup, "DB_MAX_CONNS", cfg.DBMaxConns)
	cfg.ShutdownTimeout = getDuration(lookup, "SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.LogLevel = getString(lookup, "LOG_LEVEL", cfg.LogLevel)
	cfg.PageSizeDefault = getInt(lookup, "PAGE_SIZE_DEFAULT", cfg.PageSizeDefault)
	cfg.PageSizeMax = getInt(lookup, "PAGE_SIZE_MAX", cfg.PageSizeMax)
	if origins := getString(lookup, "CORS_ALLOWED_ORIGINS", ""); origins != "" {
		cfg.CORSAllowedOrigins = splitList(origins)
	}

	for prefix, d := range map[string]*Downstream{
		"PRODUCT_SERVICE": &cfg.Downstreams.Product,
		"ORDER_SERVICE":   &cfg.Downstreams.Order,
		"USER_SERVICE":    &cfg.Downstreams.User,
	} {
		d.BaseURL = getString(lookup, prefix+"_URL", d.BaseURL)
		d.Timeout = getDuration(lookup, prefix+"_TIMEOUT", d.Timeout)
		d.RetryPolicy.MaxAttempts = getInt(lookup, prefix+"_MAX_ATTEMPTS", d.RetryPolicy.MaxAttempts)
	}
}

func normalize(cfg *Config) error {
	if cfg.DBMaxConns <= 0 {
		cfg.DBMaxConns = defaultDBMaxConns
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.PageSizeMax <= 0 {
		cfg.PageSizeMax = defaultMaxPageSize
	}
	if cfg.PageSizeDefault <= 0 {
		cfg.PageSizeDefault = defaultPageSize
	}
	if cfg.PageSizeDefault > cfg.PageSizeMax {
		cfg.PageSizeDefault = cfg.PageSizeMax
	}

	for name, d := range map[string]*Downstream{
		"product": &cfg.Downstreams.Product,
		"order":   &cfg.Downstreams.Order,
		"user":    &cfg.Downstreams.User,
	} {
		if d.BaseURL == "" {
			return fmt.Errorf("%s service URL must be provided", name)
		}
		if d.Timeout <= 0 {
			d.Timeout = DefaultDownstreamTimeout
		}
		if d.RetryPolicy.MaxAttempts <= 0 {
			d.RetryPolicy.MaxAttempts = 1
		}
		if d.RetryPolicy.MaxAttempts > 1 {
			return fmt.Errorf("%s service: %w (max attempts %d)", name, ErrRetriesUnsupported, d.RetryPolicy.MaxAttempts)
		}
	}
	return nil
}

func mergeDownstream(dst *Downstream, src Downstream) {
	setString(&dst.BaseURL, src.BaseURL)
	if src.Timeout != 0 {
		dst.Timeout = src.Timeout
	}
	if src.RetryPolicy.MaxAttempts != 0 {
		dst.RetryPolicy.MaxAttempts = src.RetryPolicy.MaxAttempts
	}
}

func withFallback(primary envLookup, fallback map[string]string) envLookup {
	return func(key string) (string, bool) {
		if v, ok := primary(key); ok {
			return v, true
		}
		v, ok := fallback[key]
		return v, ok
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
