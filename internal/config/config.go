package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Cache    CacheConfig    `yaml:"cache"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

type PostgresConfig struct {
	Port    string `yaml:"port"`
	Host    string `yaml:"host"`
	DbName  string `yaml:"db_name"`
	User    string `yaml:"user"`
	Pwd     string `yaml:"password"`
	SslMode string `yaml:"sslmode"`
}

type KafkaConfig struct {
	BrokerList        []string      `yaml:"broker_list"`
	OrderEventTopic   string        `yaml:"order_event_topic" env-default:"orders"`
	PaymentEventTopic string        `yaml:"payment_event_topic" env-default:"payments"`
	DeadLetterTopic   string        `yaml:"dead_letter_topic" env-default:"dead-letter"`
	PaymentGroup      string        `yaml:"payment_group" env-default:"payment-group"`
	NotificationGroup string        `yaml:"notification_group" env-default:"notification-group"`
	MaxAttempts       int           `yaml:"max_attempts" env-default:"5"`
	RetryBackoff      time.Duration `yaml:"retry_backoff" env-default:"2s"`
	OutboxInterval    time.Duration `yaml:"outbox_interval" env-default:"5s"`
}

// CacheConfig sizes the payment read cache.
type CacheConfig struct {
	PaymentSize int           `yaml:"payment_size" env-default:"128"`
	PaymentTTL  time.Duration `yaml:"payment_ttl" env-default:"10m"`
}

// DefaultsConfig makes the placeholder values of the derivation rules
// explicit so tests and deployments can override them.
type DefaultsConfig struct {
	PaymentMethod string `yaml:"payment_method" env-default:"CREDIT_CARD"`
	FallbackEmail string `yaml:"fallback_email" env-default:"customer@example.com"`
}

func InitConfig() Config {
	configPath := getConfigPath()

	if configPath == "" {
		panic("config path is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}

	return cfg
}

func getConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
