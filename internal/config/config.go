package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"      validate:"required"`
	Logger      LoggerConfig      `yaml:"logger"      validate:"required"`
	Gin         GinConfig         `yaml:"gin"         validate:"required"`
	Postgres    PostgresConfig    `yaml:"postgres"    validate:"required"`
	Redis       RedisConfig       `yaml:"redis"       validate:"required"`
	Auth        AuthConfig        `yaml:"auth"        validate:"required"`
	Calendar    CalendarConfig    `yaml:"calendar"    validate:"required"`
	Credentials CredentialsConfig `yaml:"credentials" validate:"required"`
	Telegram    TelegramConfig    `yaml:"telegram"`
	Tracing     TracingConfig     `yaml:"tracing"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"bewell"       validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379" validate:"required"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"              validate:"min=0"`
}

type AuthConfig struct {
	// HS256 secret shared with the session service.
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" validate:"required,min=16"`
}

type CalendarConfig struct {
	ClientID           string        `yaml:"client_id"            env:"GOOGLE_CLIENT_ID"            validate:"required"`
	ClientSecret       string        `yaml:"client_secret"        env:"GOOGLE_CLIENT_SECRET"        validate:"required"`
	RedirectURL        string        `yaml:"redirect_url"         env:"GOOGLE_REDIRECT_URL"         validate:"required,url"`
	SuccessRedirectURL string        `yaml:"success_redirect_url" env:"CALENDAR_SUCCESS_REDIRECT_URL" env-default:""`
	CalendarID         string        `yaml:"calendar_id"          env:"CALENDAR_ID"                 env-default:"primary"      validate:"required"`
	TimeZone           string        `yaml:"time_zone"            env:"CALENDAR_TIME_ZONE"          env-default:"Europe/London" validate:"required"`
	Timeout            time.Duration `yaml:"timeout"              env:"CALENDAR_TIMEOUT"            env-default:"3s"           validate:"gt=0"`
	MirrorTimeout      time.Duration `yaml:"mirror_timeout"       env:"CALENDAR_MIRROR_TIMEOUT"     env-default:"5s"           validate:"gt=0"`
	StateTTL           time.Duration `yaml:"state_ttl"            env:"CALENDAR_OAUTH_STATE_TTL"    env-default:"10m"          validate:"gt=0"`
}

type CredentialsConfig struct {
	// AGE-SECRET-KEY-1... identity, see cmd/credkey.
	AgeIdentity string `yaml:"age_identity" env:"CREDENTIALS_AGE_IDENTITY" validate:"required"`
}

type TelegramConfig struct {
	BotToken       string `yaml:"bot_token"        env:"TELEGRAM_BOT_TOKEN"        env-default:""`
	OperatorChatID int64  `yaml:"operator_chat_id" env:"TELEGRAM_OPERATOR_CHAT_ID" env-default:"0"`
}

type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"     env:"TRACING_ENABLED"             env-default:"false"`
	Endpoint    string `yaml:"endpoint"    env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"otel-collector:4317"`
	Insecure    bool   `yaml:"insecure"    env:"OTEL_EXPORTER_OTLP_INSECURE" env-default:"true"`
	Environment string `yaml:"environment" env:"ENV"                         env-default:"dev"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return &cfg
}

// Validate checks constraints that span sections. Calendar mirroring runs
// inside the booking request, so it must finish before the server gives up
// on the response.
func (c *Config) Validate() error {
	if c.Calendar.Timeout > c.Calendar.MirrorTimeout {
		return fmt.Errorf("calendar timeout %s exceeds mirror timeout %s",
			c.Calendar.Timeout, c.Calendar.MirrorTimeout)
	}
	if c.Calendar.MirrorTimeout >= c.Server.WriteTimeout {
		return fmt.Errorf("calendar mirror timeout %s must be below server write timeout %s",
			c.Calendar.MirrorTimeout, c.Server.WriteTimeout)
	}
	return nil
}
