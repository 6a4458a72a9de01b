package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type LedgerConfig struct {
	Env           string `yaml:"env" env-default:"local"`
	HTTPServer    `yaml:"http_server"`
	LedgerDB      `yaml:"ledger_db"`
	LogConfig     `yaml:"log_config"`
	KafkaService  `yaml:"kafka-service"`
	MetricsServer `yaml:"metrics_server"`
	Rebate        `yaml:"rebate"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type LedgerDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"text"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"pool-ledger-events"`
}

type MetricsServer struct {
	Port string `yaml:"port" env-default:"9090"`
}

type Rebate struct {
	// DefaultPercent is the flat loss-rebate fallback applied to any
	// losing member at week close, topped up above promo awards.
	DefaultPercent int64 `yaml:"default_percent" env-default:"30"`
}

func MustLoad() *LedgerConfig {

	// Processing env config variable and file
	configPath := os.Getenv("LEDGER_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("LEDGER_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg LedgerConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
