package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

var (
	// ErrMissingSecret возвращается, если не задан обязательный секрет
	ErrMissingSecret = errors.New("config: required secret is empty")

	// ErrInvalidValue возвращается при некорректном значении параметра
	ErrInvalidValue = errors.New("config: invalid value")
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Redis         RedisConfig         `toml:"redis"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Booking       BookingConfig       `toml:"booking"`
	OTP           OTPConfig           `toml:"otp"`
	Auth          AuthConfig          `toml:"auth"`
	Mail          MailConfig          `toml:"mail"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
	// Публичный адрес API для ссылок в письмах, например https://courts.mietjammu.in
	PublicURL string `toml:"public_url"`
	// Адреса или CIDR прокси, которым доверяем X-Forwarded-For и X-Real-IP
	TrustedProxies []string `toml:"trusted_proxies"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig параметры Redis (хранилище кодов и очередь уведомлений)
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	OTPDB    int    `toml:"otp_db"`
	QueueDB  int    `toml:"queue_db"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig бизнес-параметры бронирования
type BookingConfig struct {
	Timezone           string `toml:"timezone"`
	AllowedEmailDomain string `toml:"allowed_email_domain"`
	SameDayLeadMinutes int    `toml:"same_day_lead_minutes"`
	AllowPastDates     bool   `toml:"allow_past_dates"`
	NotifyTimeout      int    `toml:"notify_timeout"`
}

// Location загружает часовой пояс сервера
func (c BookingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// SameDayLeadTime минимальный запас времени для бронирования на сегодня
func (c BookingConfig) SameDayLeadTime() time.Duration {
	return time.Duration(c.SameDayLeadMinutes) * time.Minute
}

// OTPConfig параметры одноразовых кодов (в секундах)
type OTPConfig struct {
	Secret          string `toml:"secret"`
	CooldownSeconds int    `toml:"cooldown_seconds"`
	TTLSeconds      int    `toml:"ttl_seconds"`
	SweepGrace      int    `toml:"sweep_grace_seconds"`
	RatePerMinute   int    `toml:"rate_per_minute"`
	RateBurst       int    `toml:"rate_burst"`
}

// AuthConfig параметры токенов
type AuthConfig struct {
	JWTSecret                string `toml:"jwt_secret"`
	Issuer                   string `toml:"issuer"`
	VerificationTokenMinutes int    `toml:"verification_token_minutes"`
	AdminTokenHours          int    `toml:"admin_token_hours"`
	ActionLinkHours          int    `toml:"action_link_hours"`
}

// MailConfig параметры SMTP
type MailConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	FromName string `toml:"from_name"`
	Timeout  int    `toml:"timeout"`
}

// NotificationsConfig параметры рассылки уведомлений
type NotificationsConfig struct {
	AdminEmail  string `toml:"admin_email"`
	Queue       string `toml:"queue"`
	MaxRetry    int    `toml:"max_retry"`
	Concurrency int    `toml:"concurrency"`
	MetricsPort int    `toml:"metrics_port"`
}

// Load читает TOML-файл, применяет значения по умолчанию и переопределения из окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// .env необязателен: секреты могут прийти из окружения напрямую
	_ = godotenv.Load()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret (JWT_SECRET)", ErrMissingSecret)
	}
	if c.OTP.Secret == "" {
		return fmt.Errorf("%w: otp.secret (OTP_SECRET)", ErrMissingSecret)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone %q: %v", ErrInvalidValue, c.Booking.Timezone, err)
	}
	if c.Booking.SameDayLeadMinutes < 0 {
		return fmt.Errorf("%w: booking.same_day_lead_minutes must be >= 0", ErrInvalidValue)
	}
	if _, err := ParseTrustedProxies(c.Server.TrustedProxies); err != nil {
		return fmt.Errorf("%w: server.trusted_proxies: %v", ErrInvalidValue, err)
	}
	if c.OTP.CooldownSeconds <= 0 || c.OTP.TTLSeconds <= 0 {
		return fmt.Errorf("%w: otp cooldown and ttl must be positive", ErrInvalidValue)
	}
	return nil
}

// ParseTrustedProxies разбирает список адресов и CIDR доверенных прокси
// Одиночный адрес превращается в сеть /32 или /128
func ParseTrustedProxies(entries []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if strings.Contains(entry, "/") {
			_, ipNet, err := net.ParseCIDR(entry)
			if err != nil {
				return nil, err
			}
			nets = append(nets, ipNet)
			continue
		}
		ip := net.ParseIP(entry)
		if ip == nil {
			return nil, fmt.Errorf("invalid address %q", entry)
		}
		bits := 8 * net.IPv6len
		if v4 := ip.To4(); v4 != nil {
			ip, bits = v4, 8*net.IPv4len
		}
		nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}
	return nets, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			AutoMigrate:     true,
		},
		Redis: RedisConfig{
			Addr:    "localhost:6379",
			OTPDB:   0,
			QueueDB: 1,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "court-booking-service",
		},
		Booking: BookingConfig{
			Timezone:           "Local",
			AllowedEmailDomain: domain.DefaultAllowedEmailDomain,
			SameDayLeadMinutes: int(domain.DefaultSameDayLeadTime / time.Minute),
			NotifyTimeout:      5,
		},
		OTP: OTPConfig{
			CooldownSeconds: int(domain.DefaultOTPCooldown / time.Second),
			TTLSeconds:      int(domain.DefaultOTPTTL / time.Second),
			SweepGrace:      60,
			RatePerMinute:   20,
			RateBurst:       5,
		},
		Auth: AuthConfig{
			Issuer:                   "court-booking-service",
			VerificationTokenMinutes: int(domain.DefaultVerificationTokenTTL / time.Minute),
			AdminTokenHours:          int(domain.DefaultAdminTokenTTL / time.Hour),
			ActionLinkHours:          int(domain.DefaultActionLinkTTL / time.Hour),
		},
		Mail: MailConfig{
			Port:     465,
			FromName: "Sports Team",
			Timeout:  10,
		},
		Notifications: NotificationsConfig{
			Queue:       "notifications",
			MaxRetry:    5,
			Concurrency: 5,
			MetricsPort: 9091,
		},
	}
}

// applyEnv переопределяет секреты значениями из окружения
func applyEnv(cfg *Config) {
	override(&cfg.Auth.JWTSecret, "JWT_SECRET")
	override(&cfg.OTP.Secret, "OTP_SECRET")
	override(&cfg.Database.Password, "DB_PASSWORD")
	override(&cfg.Redis.Password, "REDIS_PASSWORD")
	override(&cfg.Mail.Password, "SMTP_PASSWORD")
	override(&cfg.Notifications.AdminEmail, "ADMIN_EMAIL")

	// При отсутствии отдельного секрета кодов используется JWT секрет
	if cfg.OTP.Secret == "" {
		cfg.OTP.Secret = cfg.Auth.JWTSecret
	}
}

func override(dst *string, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}
