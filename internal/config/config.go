package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout           = 30
	defaultAddress           = ":9090"
	defaultCacheDB           = 0
	defaultBloomBitSize      = 10000000
	defaultBloomHashes       = 3
	defaultThreadCacheTTL    = 60
	defaultReconcileInterval = 300
	defaultLocation          = "Asia/Jakarta"
)

type Database struct {
	Host        string
	Port        string
	User        string
	Pass        string
	Name        string
	AutoMigrate bool
}

// DSN builds the mysql data source name. clientFoundRows makes an UPDATE
// report matched rows, so rewriting a row with the same values still counts.
func (d Database) DSN() string {
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", d.User, d.Pass, d.Host, d.Port, d.Name)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", defaultLocation)
	val.Add("clientFoundRows", "true")
	return fmt.Sprintf("%s?%s", connection, val.Encode())
}

type Cache struct {
	Host string
	Port string
	Pass string
	DB   int
}

func (c Cache) Addr() string {
	return c.Host + ":" + c.Port
}

type Config struct {
	Database Database
	Cache    Cache

	ServerAddress     string
	ContextTimeout    time.Duration
	AccessTokenKey    string
	BloomFilterSize   uint64
	BloomFilterHashes uint64
	ThreadCacheTTL    time.Duration
	ReconcileInterval time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads the .env file if there is one and then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Infof("no .env file loaded: %v", err)
	}
	return FromEnv()
}

func FromEnv() Config {
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}

	return Config{
		Database: Database{
			Host:        os.Getenv("DATABASE_HOST"),
			Port:        os.Getenv("DATABASE_PORT"),
			User:        os.Getenv("DATABASE_USER"),
			Pass:        os.Getenv("DATABASE_PASS"),
			Name:        os.Getenv("DATABASE_NAME"),
			AutoMigrate: strings.EqualFold(os.Getenv("DATABASE_AUTO_MIGRATE"), "true"),
		},
		Cache: Cache{
			Host: os.Getenv("CACHE_HOST"),
			Port: os.Getenv("CACHE_PORT"),
			Pass: os.Getenv("CACHE_PASS"),
			DB:   intEnv("CACHE_DB", defaultCacheDB),
		},
		ServerAddress:     address,
		ContextTimeout:    seconds("CONTEXT_TIMEOUT", defaultTimeout),
		AccessTokenKey:    os.Getenv("ACCESS_TOKEN_KEY"),
		BloomFilterSize:   uintEnv("BLOOM_FILTER_SIZE", defaultBloomBitSize),
		BloomFilterHashes: uintEnv("BLOOM_FILTER_HASHES", defaultBloomHashes),
		ThreadCacheTTL:    seconds("THREAD_CACHE_TTL", defaultThreadCacheTTL),
		ReconcileInterval: seconds("LIKE_RECONCILE_INTERVAL", defaultReconcileInterval),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		LogFormat:         os.Getenv("LOG_FORMAT"),
	}
}

// SetupLogger applies LOG_LEVEL and LOG_FORMAT to the standard logrus logger.
func (c Config) SetupLogger() {
	if c.LogLevel != "" {
		level, err := logrus.ParseLevel(c.LogLevel)
		if err != nil {
			logrus.Warnf("failed to parse log level %q, using info", c.LogLevel)
			level = logrus.InfoLevel
		}
		logrus.SetLevel(level)
	}
	if strings.EqualFold(c.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func intEnv(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logrus.Warnf("failed to parse %s, using default %d", key, def)
		return def
	}
	return v
}

func uintEnv(key string, def uint64) uint64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		logrus.Warnf("failed to parse %s, using default %d", key, def)
		return def
	}
	return v
}

func seconds(key string, def int) time.Duration {
	v := intEnv(key, def)
	if v <= 0 {
		logrus.Warnf("%s must be positive, using default %d", key, def)
		v = def
	}
	return time.Duration(v) * time.Second
}
