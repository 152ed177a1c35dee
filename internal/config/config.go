package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `env:"ENV" env-required:"true"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Database   Database
	Limiter    Limiter
	Auth       AuthConfig
	SMTP       SMTPConfig
	Email      EmailConfig
	SMS        SMSConfig
	Cache      Cache
	Partner    PartnerConfig
	Search     SearchConfig
	Storage    StorageConfig
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"30s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
	MaxUploadSize  int64         `env:"HTTP_MAX_UPLOAD_SIZE" env-default:"5242880" env-description:"max document upload size in bytes"`
	AllowedOrigins []string      `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-required:"true"`
	DBName             string        `env:"DB_NAME" env-required:"true"`
	User               string        `env:"DB_USER" env-required:"true"`
	Password           string        `env:"DB_PASSWORD" env-required:"true"`
	TimeZone           string        `env:"DB_TIMEZONE"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type AuthConfig struct {
	JWT             JWTConfig
	PasswordCost    int           `env:"AUTH_PASSWORD_COST" env-default:"10" env-description:"bcrypt cost"`
	RegistrationTTL time.Duration `env:"AUTH_REGISTRATION_TTL" env-default:"10m" env-description:"lifetime of a pending registration"`
}

type JWTConfig struct {
	AccessTokenTTL  time.Duration `env:"JWT_ACCESS_TOKEN_TTL" env-default:"15m"`
	RefreshTokenTTL time.Duration `env:"JWT_REFRESH_TOKEN_TTL" env-default:"240h"`
	SigningKey      string        `env:"JWT_SIGNING_KEY" env-required:"true"`
}

type SMTPConfig struct {
	Host string `env:"SMTP_HOST"`
	Port int    `env:"SMTP_PORT" env-default:"587"`
	From string `env:"SMTP_FROM"`
	Pass string `env:"SMTP_PASS"`
}

type EmailConfig struct {
	Enabled   bool `env:"EMAIL_ENABLED" env-default:"false"`
	Templates EmailTemplates
}

type EmailTemplates struct {
	Welcome string `env:"EMAIL_TEMPLATE_WELCOME" env-default:"welcome.html"`
}

type SMSConfig struct {
	BaseURL string        `env:"SMS_BASE_URL" env-default:"https://api.kavenegar.com/v1"`
	APIKey  string        `env:"SMS_API_KEY" env-required:"true"`
	Sender  string        `env:"SMS_SENDER" env-default:""`
	Timeout time.Duration `env:"SMS_TIMEOUT" env-default:"10s"`
}

type Cache struct {
	Type  string `env:"REDIS_TYPE" env-required:"true" env-description:"specifies provider, one of redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes: ['172.27.29.90:7000','172.27.29.91:7001'', '172.27.29.92:7002'']"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
}

type PartnerConfig struct {
	AvailabilityURL string        `env:"PARTNER_AVAILABILITY_URL" env-default:"http://zv.nirasoftware.com:882/AvailabilityJS.jsp"`
	Timeout         time.Duration `env:"PARTNER_TIMEOUT" env-default:"8s" env-description:"per airline request timeout"`
	Concurrency     int           `env:"PARTNER_CONCURRENCY" env-default:"4"`
	Breaker         BreakerConfig
}

type BreakerConfig struct {
	MaxFailures uint32        `env:"PARTNER_BREAKER_MAX_FAILURES" env-default:"5"`
	Interval    time.Duration `env:"PARTNER_BREAKER_INTERVAL" env-default:"60s"`
	Timeout     time.Duration `env:"PARTNER_BREAKER_TIMEOUT" env-default:"30s"`
}

type SearchConfig struct {
	CacheTTL time.Duration `env:"SEARCH_CACHE_TTL" env-default:"60s" env-description:"0 disables search result caching"`
}

type StorageConfig struct {
	Region    string `env:"S3_REGION" env-default:"us-east-1"`
	Bucket    string `env:"S3_BUCKET" env-required:"true"`
	Endpoint  string `env:"S3_ENDPOINT" env-default:"" env-description:"custom endpoint, e.g. minio"`
	AccessKey string `env:"S3_ACCESS_KEY" env-default:""`
	SecretKey string `env:"S3_SECRET_KEY" env-default:""`
	PublicURL string `env:"S3_PUBLIC_URL" env-default:"" env-description:"base url used to build document links"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return &cfg
}
