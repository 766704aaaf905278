package config

import (
	"fmt"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/shopspring/decimal"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Redis     RedisConfig     `yaml:"redis"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Pricing   PricingConfig   `yaml:"pricing"   validate:"required"`
	Loyalty   LoyaltyConfig   `yaml:"loyalty"   validate:"required"`
	Discount  DiscountConfig  `yaml:"discount"  validate:"required"`
	Lifecycle LifecycleConfig `yaml:"lifecycle"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

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

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"     validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"          validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"      validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"      validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"hotel_billing" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"       validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"            validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"             validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"            validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// RedisConfig enables the shared reservation lock. With an empty Addr the
// service falls back to an in-process lock.
type RedisConfig struct {
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"      env-default:""`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"  env-default:""`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"   validate:"min=0"`
	LockTTL  time.Duration `yaml:"lock_ttl"  env:"REDIS_LOCK_TTL"  env-default:"30s" validate:"gt=0"`
	LockWait time.Duration `yaml:"lock_wait" env:"LOCK_WAIT"       env-default:"5s"  validate:"gt=0"`
}

type RabbitMQConfig struct {
	URL          string        `yaml:"url"           env:"RABBITMQ_URL"           env-default:""`
	Exchange     string        `yaml:"exchange"      env:"RABBITMQ_EXCHANGE"      env-default:"billing_events" validate:"required"`
	DialAttempts int           `yaml:"dial_attempts" env:"RABBITMQ_DIAL_ATTEMPTS" env-default:"5"              validate:"min=1"`
	DialDelay    time.Duration `yaml:"dial_delay"    env:"RABBITMQ_DIAL_DELAY"    env-default:"2s"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1h" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

// PricingConfig keeps rates as strings so they reach decimal without float rounding.
type PricingConfig struct {
	WeekdayMultiplier string            `yaml:"weekday_multiplier" env:"PRICING_WEEKDAY_MULTIPLIER" env-default:"1.0"  validate:"required"`
	WeekendMultiplier string            `yaml:"weekend_multiplier" env:"PRICING_WEEKEND_MULTIPLIER" env-default:"1.2"  validate:"required"`
	PeakMultiplier    string            `yaml:"peak_multiplier"    env:"PRICING_PEAK_MULTIPLIER"    env-default:"1.5"  validate:"required"`
	TaxRate           string            `yaml:"tax_rate"           env:"PRICING_TAX_RATE"           env-default:"0.13" validate:"required"`
	PeakMonths        []int             `yaml:"peak_months"        env:"PRICING_PEAK_MONTHS"        env-default:"6,7,8" validate:"dive,min=1,max=12"`
	AddOns            map[string]string `yaml:"add_ons"            env:"PRICING_ADD_ONS"            env-default:"breakfast:15,parking:10,spa:40"`
	UnknownAddOn      string            `yaml:"unknown_add_on"     env:"PRICING_UNKNOWN_ADD_ON"     env-default:"reject" validate:"required,oneof=reject skip"`
}

type LoyaltyConfig struct {
	EarnRate      string `yaml:"earn_rate"       env:"LOYALTY_EARN_RATE"       env-default:"1"     validate:"required"`
	RedeemCap     int64  `yaml:"redeem_cap"      env:"LOYALTY_REDEEM_CAP"      env-default:"10000" validate:"min=0"`
	PointsPerUnit int64  `yaml:"points_per_unit" env:"LOYALTY_POINTS_PER_UNIT" env-default:"100"   validate:"min=1"`
}

type DiscountConfig struct {
	StaffCap   string `yaml:"staff_cap"   env:"DISCOUNT_STAFF_CAP"   env-default:"15" validate:"required"`
	ManagerCap string `yaml:"manager_cap" env:"DISCOUNT_MANAGER_CAP" env-default:"30" validate:"required"`
}

type LifecycleConfig struct {
	RequireFeedback bool `yaml:"require_feedback" env:"LIFECYCLE_REQUIRE_FEEDBACK" env-default:"true"`
}

// PricingConfig converts and validates the pricing section.
func (c *Config) PricingConfig() (domain.PricingConfig, error) {
	p := c.Pricing
	out := domain.PricingConfig{
		PeakMonths:    make(map[time.Month]bool, len(p.PeakMonths)),
		AddOnPrices:   make(map[string]decimal.Decimal, len(p.AddOns)),
		UnknownAddOns: domain.UnknownAddOnPolicy(p.UnknownAddOn),
	}

	var err error
	if out.WeekdayMultiplier, err = parseDecimal("weekday_multiplier", p.WeekdayMultiplier); err != nil {
		return domain.PricingConfig{}, err
	}
	if out.WeekendMultiplier, err = parseDecimal("weekend_multiplier", p.WeekendMultiplier); err != nil {
		return domain.PricingConfig{}, err
	}
	if out.PeakMultiplier, err = parseDecimal("peak_multiplier", p.PeakMultiplier); err != nil {
		return domain.PricingConfig{}, err
	}
	if out.TaxRate, err = parseDecimal("tax_rate", p.TaxRate); err != nil {
		return domain.PricingConfig{}, err
	}

	for _, m := range p.PeakMonths {
		if m < 1 || m > 12 {
			return domain.PricingConfig{}, fmt.Errorf("%w: peak month %d", domain.ErrInvalidPricingConfig, m)
		}
		out.PeakMonths[time.Month(m)] = true
	}
	for name, raw := range p.AddOns {
		price, err := parseDecimal("add-on "+name, raw)
		if err != nil {
			return domain.PricingConfig{}, err
		}
		out.AddOnPrices[name] = price
	}

	if err = out.Validate(); err != nil {
		return domain.PricingConfig{}, err
	}
	return out, nil
}

func (c *Config) LoyaltyConfig() (domain.LoyaltyConfig, error) {
	rate, err := decimal.NewFromString(c.Loyalty.EarnRate)
	if err != nil {
		return domain.LoyaltyConfig{}, fmt.Errorf("%w: earn_rate %q", domain.ErrInvalidLoyaltyConfig, c.Loyalty.EarnRate)
	}

	out := domain.LoyaltyConfig{
		EarnRate:      rate,
		RedeemCap:     c.Loyalty.RedeemCap,
		PointsPerUnit: c.Loyalty.PointsPerUnit,
	}
	if err = out.Validate(); err != nil {
		return domain.LoyaltyConfig{}, err
	}
	return out, nil
}

func (c *Config) DiscountCaps() (map[domain.Role]decimal.Decimal, error) {
	staff, err := parseDecimal("staff_cap", c.Discount.StaffCap)
	if err != nil {
		return nil, err
	}
	manager, err := parseDecimal("manager_cap", c.Discount.ManagerCap)
	if err != nil {
		return nil, err
	}

	hundred := decimal.NewFromInt(100)
	for _, v := range []decimal.Decimal{staff, manager} {
		if v.IsNegative() || v.GreaterThan(hundred) {
			return nil, fmt.Errorf("%w: discount cap %s", domain.ErrPercentOutOfRange, v)
		}
	}

	return map[domain.Role]decimal.Decimal{
		domain.RoleStaff:   staff,
		domain.RoleManager: manager,
	}, nil
}

func parseDecimal(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q is not a number", domain.ErrInvalidPricingConfig, field, raw)
	}
	return d, nil
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
