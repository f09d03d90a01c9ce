package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Feed       Feed       `yaml:"feed"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Render     Render     `yaml:"render"`
}

type Feed struct {
	URL     string        `yaml:"url" env:"FEED_URL" env-required:"true"`
	Refresh string        `yaml:"refresh" env:"FEED_REFRESH" env-default:"@every 15m"`
	Timeout time.Duration `yaml:"timeout" env:"FEED_TIMEOUT" env-default:"15s"`

	// ExcludeCancelledFromNext drops cancelled talks from the "next in
	// room" query. The published schedule keeps cancelled slots, so the
	// default is to show them.
	ExcludeCancelledFromNext bool `yaml:"exclude_cancelled_from_next" env:"FEED_EXCLUDE_CANCELLED_FROM_NEXT" env-default:"false"`
}

type Database struct {
	Enabled  bool   `yaml:"enabled" env:"DB_ENABLED" env-default:"false"`
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-default:""`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"confsched"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Render struct {
	TemplatePath string `yaml:"template_path" env:"RENDER_TEMPLATE_PATH" env-default:"./templates/room.tmpl"`
	OutputDir    string `yaml:"output_dir" env:"RENDER_OUTPUT_DIR" env-default:"./out"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
