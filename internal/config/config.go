// Package config загружает настройки сервиса: значения по умолчанию,
// необязательный YAML-файл и переменные окружения GLUTIVIA_*.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "GLUTIVIA"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	Session  SessionConfig  `mapstructure:"session"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Swagger         bool          `mapstructure:"swagger"`
}

type StorageConfig struct {
	Backend   string `mapstructure:"backend"`
	BoltPath  string `mapstructure:"bolt_path"`
	RedisURL  string `mapstructure:"redis_url"`
	RedisDB   int    `mapstructure:"redis_db"`
	Namespace string `mapstructure:"namespace"`
}

type LoggerConfig struct {
	Mode       string `mapstructure:"mode"`
	FileEnable bool   `mapstructure:"file_enable"`
	Filename   string `mapstructure:"filename"`
}

type GeminiConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	TextModel  string        `mapstructure:"text_model"`
	ImageModel string        `mapstructure:"image_model"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// AdminConfig учётные данные администратора; значения по умолчанию только для разработки
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type CheckoutConfig struct {
	CardDelay  time.Duration `mapstructure:"card_delay"`
	CODDelay   time.Duration `mapstructure:"cod_delay"`
	PlanDelay  time.Duration `mapstructure:"plan_delay"`
	LoginDelay time.Duration `mapstructure:"login_delay"`
}

type SessionConfig struct {
	CookieName   string        `mapstructure:"cookie_name"`
	AdminSecret  string        `mapstructure:"admin_secret"`
	AdminMaxAge  time.Duration `mapstructure:"admin_max_age"`
	SecureCookie bool          `mapstructure:"secure_cookie"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.swagger", true)

	v.SetDefault("storage.backend", "bolt")
	v.SetDefault("storage.bolt_path", "glutivia.db")
	v.SetDefault("storage.redis_url", "redis://localhost:6379/0")
	v.SetDefault("storage.redis_db", 0)
	v.SetDefault("storage.namespace", "glutivia")

	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.file_enable", false)
	v.SetDefault("logger.filename", "logs/glutivia.log")

	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.text_model", "gemini-3-flash-preview")
	v.SetDefault("gemini.image_model", "gemini-2.5-flash-image")
	v.SetDefault("gemini.timeout", 60*time.Second)

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "rootadmin")

	v.SetDefault("checkout.card_delay", 2*time.Second)
	v.SetDefault("checkout.cod_delay", 1500*time.Millisecond)
	v.SetDefault("checkout.plan_delay", 2500*time.Millisecond)
	v.SetDefault("checkout.login_delay", time.Second)

	v.SetDefault("session.cookie_name", "glutivia_session")
	v.SetDefault("session.admin_secret", "change-me-glutivia-admin-secret")
	v.SetDefault("session.admin_max_age", 12*time.Hour)
	v.SetDefault("session.secure_cookie", false)
}

// Load собирает конфигурацию. Пустой path — только умолчания и окружение.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case "memory", "bolt", "redis":
	default:
		return fmt.Errorf("storage.backend: unknown backend %q", c.Storage.Backend)
	}
	if c.Admin.Username == "" || c.Admin.Password == "" {
		return fmt.Errorf("admin credentials must not be empty")
	}
	if len(c.Session.AdminSecret) < 16 {
		return fmt.Errorf("session.admin_secret must be at least 16 bytes")
	}
	return nil
}
