package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"halocat-queries/internal/app/ds"
	"halocat-queries/internal/app/query"
)

type Config struct {
	ServiceHost string `mapstructure:"service_host"`
	ServicePort int    `mapstructure:"service_port"`

	// Параметры разбиения и каталога
	LBox        float64 `mapstructure:"lbox"`
	NSub        int     `mapstructure:"nsub"`
	Snapnum     string  `mapstructure:"snapnum"`
	Table       string  `mapstructure:"table"`
	IDColumn    string  `mapstructure:"id_column"`
	FetchOutput string  `mapstructure:"fetch_output"`
	CountOutput string  `mapstructure:"count_output"`
	Format      string  `mapstructure:"format"`
	MaxCells    int     `mapstructure:"max_cells"`

	LogLevel string `mapstructure:"log_level"`

	// JWT Configuration
	JWTSecret       string        `mapstructure:"-"`
	JWTAccessExpire time.Duration `mapstructure:"-"`

	// Redis Configuration
	RedisHost     string        `mapstructure:"-"`
	RedisPort     string        `mapstructure:"-"`
	RedisPassword string        `mapstructure:"-"`
	RedisDB       int           `mapstructure:"-"`
	RedisCacheTTL time.Duration `mapstructure:"-"`

	// MinIO Configuration
	MinIOEndpoint  string `mapstructure:"-"`
	MinIOAccessKey string `mapstructure:"-"`
	MinIOSecretKey string `mapstructure:"-"`
	MinIOUseSSL    bool   `mapstructure:"-"`
	MinIOBucket    string `mapstructure:"-"`
}

const (
	DefaultLBox        = 400.0
	DefaultNSub        = 4
	DefaultSnapnum     = "48"
	DefaultTable       = "SMDPL.Rockstar"
	DefaultIDColumn    = "rockstarId"
	DefaultFetchOutput = "halocat_queries_list.txt"
	DefaultCountOutput = "count_queries_list.txt"
	DefaultFormat      = "fixed"
	DefaultBucket      = "halocat-queries"
)

func NewConfig() (*Config, error) {
	var err error

	// Загружаем .env файл
	_ = godotenv.Load()

	// Загружаем TOML конфигурацию
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	setDefaults(v)
	bindEnv(v)

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Debug("config file not found, using defaults")
	}

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// Загружаем JWT конфигурацию из .env
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "halocat-development-secret-change-in-production"
		log.Debug("Using default JWT secret - change in production!")
	}
	cfg.JWTSecret = jwtSecret

	accessExpire := 24 * time.Hour
	if exp := os.Getenv("JWT_ACCESS_EXPIRE"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpire = parsed
		}
	}
	cfg.JWTAccessExpire = accessExpire

	// Redis конфигурация из .env
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	cfg.RedisPort = getEnv("REDIS_PORT", "6379")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")

	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			redisDB = db
		}
	}
	cfg.RedisDB = redisDB

	cacheTTL := time.Hour
	if ttl := os.Getenv("REDIS_CACHE_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			cacheTTL = parsed
		}
	}
	cfg.RedisCacheTTL = cacheTTL

	// MinIO конфигурация из .env
	cfg.MinIOEndpoint = getEnv("MINIO_ENDPOINT", "")
	cfg.MinIOAccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	cfg.MinIOSecretKey = getEnv("MINIO_SECRET_KEY", "minio124")
	cfg.MinIOUseSSL = getEnv("MINIO_USE_SSL", "false") == "true"
	cfg.MinIOBucket = getEnv("MINIO_BUCKET", DefaultBucket)

	log.Debug("config parsed")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service_host", "localhost")
	v.SetDefault("service_port", 8080)
	v.SetDefault("lbox", DefaultLBox)
	v.SetDefault("nsub", DefaultNSub)
	v.SetDefault("snapnum", DefaultSnapnum)
	v.SetDefault("table", DefaultTable)
	v.SetDefault("id_column", DefaultIDColumn)
	v.SetDefault("fetch_output", DefaultFetchOutput)
	v.SetDefault("count_output", DefaultCountOutput)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("max_cells", ds.DefaultMaxCells)
	v.SetDefault("log_level", "info")
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("service_host", "SERVICE_HOST")
	_ = v.BindEnv("service_port", "SERVICE_PORT")
	_ = v.BindEnv("lbox", "HALOCAT_LBOX")
	_ = v.BindEnv("nsub", "HALOCAT_NSUB")
	_ = v.BindEnv("snapnum", "HALOCAT_SNAPNUM")
	_ = v.BindEnv("table", "HALOCAT_TABLE")
	_ = v.BindEnv("id_column", "HALOCAT_ID_COLUMN")
	_ = v.BindEnv("fetch_output", "HALOCAT_FETCH_OUTPUT")
	_ = v.BindEnv("count_output", "HALOCAT_COUNT_OUTPUT")
	_ = v.BindEnv("format", "HALOCAT_FORMAT")
	_ = v.BindEnv("max_cells", "HALOCAT_MAX_CELLS")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
}

// Box возвращает параметры куба
func (c *Config) Box() ds.BoxSpec {
	return ds.BoxSpec{SideLength: c.LBox, Subdivisions: c.NSub, MaxCells: c.MaxCells}
}

// QueryParams возвращает параметры каталога
func (c *Config) QueryParams() ds.QueryParams {
	return ds.QueryParams{Snapshot: c.Snapnum, Table: c.Table, IDColumn: c.IDColumn}
}

// Validate проверяет конфигурацию до того, как будет записан хоть один файл
func (c *Config) Validate() error {
	if err := c.Box().Validate(); err != nil {
		return err
	}
	if err := c.QueryParams().Validate(); err != nil {
		return err
	}
	if _, err := query.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.FetchOutput == "" || c.CountOutput == "" {
		return fmt.Errorf("%w: output paths must be set", ds.ErrInvalidConfiguration)
	}
	if c.FetchOutput == c.CountOutput {
		return fmt.Errorf("%w: fetch and count outputs point to the same file %q", ds.ErrInvalidConfiguration, c.FetchOutput)
	}
	return nil
}

// RedisEnabled сообщает, задан ли адрес Redis
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// MinIOEnabled сообщает, задан ли адрес MinIO
func (c *Config) MinIOEnabled() bool {
	return c.MinIOEndpoint != ""
}

// getEnv вспомогательная функция для получения environment variables
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
