package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	AppPort  string
	LogLevel string

	DBDriver    string
	SQLitePath  string
	AutoMigrate bool

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	// Empty RedisAddr disables idempotency and the pet cache.
	RedisAddr string
	RedisDB   int

	IdempTTLSecs    int
	PetCacheTTLSecs int
	BcryptCost      int

	// Optional bootstrap admin and demo user for `seed`.
	AdminUsername    string
	AdminPassword    string
	SeedUserUsername string
	SeedUserPassword string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getenvBool(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return d
}

// Load reads the environment, after merging env files (existing variables win).
// With no files it tries ./.env and tolerates its absence; named files must load.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env: %w", err)
		}
	}

	return &Config{
		AppPort:  getenv("APP_PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		DBDriver:    strings.ToLower(getenv("DB_DRIVER", DriverMySQL)),
		SQLitePath:  getenv("SQLITE_PATH", "petadopt.db"),
		AutoMigrate: getenvBool("AUTO_MIGRATE", true),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "petadopt"),
		MySQLUser: getenv("MYSQL_USER", "petadopt"),
		MySQLPass: getenv("MYSQL_PASS", "petadopt"),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		IdempTTLSecs:    getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),
		PetCacheTTLSecs: getenvInt("PET_CACHE_TTL_SECONDS", 60),
		BcryptCost:      getenvInt("BCRYPT_COST", bcrypt.DefaultCost),

		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		SeedUserUsername: os.Getenv("SEED_USER_USERNAME"),
		SeedUserPassword: os.Getenv("SEED_USER_PASSWORD"),
	}, nil
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case DriverMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		// ensure port is valid
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want mysql or sqlite)", c.DBDriver)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be within [%d,%d]", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if (c.AdminUsername == "") != (c.AdminPassword == "") {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must be set together")
	}
	if (c.SeedUserUsername == "") != (c.SeedUserPassword == "") {
		return errors.New("SEED_USER_USERNAME and SEED_USER_PASSWORD must be set together")
	}
	return nil
}

func (c *Config) IdempotencyTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }

func (c *Config) PetCacheTTL() time.Duration { return time.Duration(c.PetCacheTTLSecs) * time.Second }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

func (c *Config) SQLiteDSN() string {
	return c.SQLitePath + "?_busy_timeout=5000"
}
