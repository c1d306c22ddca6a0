package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileEnvName = "STOREFRONT_CONFIG_FILE"
	envPrefix         = "STOREFRONT"
	dotEnvFile        = ".env"
)

type shopify struct {
	StoreDomain     string        `mapstructure:"store_domain"`
	APIVersion      string        `mapstructure:"api_version"`
	AccessToken     string        `mapstructure:"access_token"`
	CatalogCacheTTL time.Duration `mapstructure:"catalog_cache_ttl"`
}

type session struct {
	CookieName   string        `mapstructure:"cookie_name"`
	CookieMaxAge int           `mapstructure:"cookie_max_age"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
	IdleTTL      time.Duration `mapstructure:"idle_ttl"`
}

type tlsFiles struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

type consumers struct {
	SearchStatsGroup string `mapstructure:"search_stats_group"`
}

type topics struct {
	StorefrontEvents string `mapstructure:"storefront_events"`
}

type broker struct {
	SeedBrokers        []string  `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string  `mapstructure:"schema_registry_urls"`
	TLS                tlsFiles  `mapstructure:"tls"`
	User               string    `mapstructure:"user"`
	Pass               string    `mapstructure:"pass"`
	Topics             topics    `mapstructure:"topics"`
	Consumers          consumers `mapstructure:"consumers"`
}

// Enabled reports whether events publishing is configured.
func (b broker) Enabled() bool {
	return len(b.SeedBrokers) != 0
}

type Config struct {
	LogLevel       slog.Level    `mapstructure:"log_level"`
	HTTPServerAddr string        `mapstructure:"http_server_addr"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	Shopify        shopify       `mapstructure:"shopify"`
	SQLDB          string        `mapstructure:"sql_db"`
	Session        session       `mapstructure:"session"`
	Broker         broker        `mapstructure:"broker"`
}

func Load() Config {
	loadDotEnv()

	cfg, err := LoadFile(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

// LoadFile reads the YAML config at path. STOREFRONT_ prefixed
// environment variables override file values, e.g.
// STOREFRONT_SHOPIFY_ACCESS_TOKEN for shopify.access_token.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("http_server_addr", ":8080")
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("sql_db", "")

	v.SetDefault("shopify.store_domain", "")
	v.SetDefault("shopify.api_version", "2026-01")
	v.SetDefault("shopify.access_token", "")
	v.SetDefault("shopify.catalog_cache_ttl", time.Minute)

	v.SetDefault("session.cookie_name", "storefront_session")
	v.SetDefault("session.cookie_max_age", 30*24*60*60)
	v.SetDefault("session.cookie_secure", false)
	v.SetDefault("session.idle_ttl", 30*time.Minute)

	v.SetDefault("broker.seed_brokers", []string{})
	v.SetDefault("broker.schema_registry_urls", []string{})
	v.SetDefault("broker.user", "")
	v.SetDefault("broker.pass", "")
	v.SetDefault("broker.topics.storefront_events", "storefront-events")
	v.SetDefault("broker.consumers.search_stats_group", "search-stats")
}

func (c Config) validate() error {
	var errs []error
	if c.Shopify.StoreDomain == "" {
		errs = append(errs, errors.New("shopify.store_domain: required"))
	}
	if c.Shopify.AccessToken == "" {
		errs = append(errs, errors.New("shopify.access_token: required"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("request_timeout: must be positive"))
	}
	if c.Broker.Enabled() && len(c.Broker.SchemaRegistryURLs) == 0 {
		errs = append(errs, errors.New("broker.schema_registry_urls: required with seed_brokers"))
	}
	return errors.Join(errs...)
}

// loadDotEnv overlays a local .env file. Variables already set win.
func loadDotEnv() {
	err := godotenv.Load(dotEnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("failed to load %s: %v\n", dotEnvFile, err)
	}
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	RequestTimeout=%s
	SQLDB=%t

	Shopify:
	StoreDomain=%q
	APIVersion=%q
	AccessToken=%s
	CatalogCacheTTL=%s

	Session:
	CookieName=%q
	CookieMaxAge=%d
	IdleTTL=%s

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topics:
		StorefrontEvents=%q
	Consumers:
		SearchStatsGroup=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.RequestTimeout,
		c.SQLDB != "",
		c.Shopify.StoreDomain,
		c.Shopify.APIVersion,
		mask(c.Shopify.AccessToken),
		c.Shopify.CatalogCacheTTL,
		c.Session.CookieName,
		c.Session.CookieMaxAge,
		c.Session.IdleTTL,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.Topics.StorefrontEvents,
		c.Broker.Consumers.SearchStatsGroup,
	)
}

func mask(secret string) string {
	if secret == "" {
		return `""`
	}
	return "***"
}
