package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port      string `yaml:"port"`
		Host      string `yaml:"host"`       // public base URL prefixed to uploaded image paths
		StaticDir string `yaml:"static_dir"` // on-disk directory served under /static
	} `yaml:"server"`
	Database struct {
		URL  string `yaml:"url"`
		Name string `yaml:"name"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`
	Bootstrap struct {
		Email    string `yaml:"email"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"bootstrap"`
	Notifications struct {
		Enabled          bool   `yaml:"enabled"`
		TelegramBotToken string `yaml:"telegram_bot_token"`
		TelegramChatID   int64  `yaml:"telegram_chat_id"`
	} `yaml:"notifications"`
}

// LoadConfig reads configuration from the specified YAML file, then
// applies environment-variable overrides and defaults. A missing file
// is not an error: an env-only deployment starts from a zero config.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err == nil {
		defer file.Close()
		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	config.applyEnv()
	config.applyDefaults()

	return config, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = firstNonEmpty(os.Getenv("PORT"), c.Server.Port)
	c.Server.Host = firstNonEmpty(os.Getenv("HOST"), c.Server.Host)
	c.Server.StaticDir = firstNonEmpty(os.Getenv("STATIC_DIR"), c.Server.StaticDir)
	c.Database.URL = firstNonEmpty(os.Getenv("MONGO_URL"), c.Database.URL)
	c.Database.Name = firstNonEmpty(os.Getenv("MONGO_DB_NAME"), c.Database.Name)
	c.Auth.JWTSecret = firstNonEmpty(os.Getenv("JWT_SECRET"), c.Auth.JWTSecret)
	c.Bootstrap.Email = firstNonEmpty(os.Getenv("INIT_EMAIL"), c.Bootstrap.Email)
	c.Bootstrap.Username = firstNonEmpty(os.Getenv("INIT_USERNAME"), c.Bootstrap.Username)
	c.Bootstrap.Password = firstNonEmpty(os.Getenv("INIT_PASSWORD"), c.Bootstrap.Password)
	c.Notifications.TelegramBotToken = firstNonEmpty(os.Getenv("TELEGRAM_BOT_TOKEN"), c.Notifications.TelegramBotToken)
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Notifications.TelegramChatID = id
		}
	}
}

func (c *Config) applyDefaults() {
	c.Server.Port = firstNonEmpty(c.Server.Port, "8080")
	c.Server.Host = firstNonEmpty(c.Server.Host, "http://localhost:8080")
	c.Server.StaticDir = firstNonEmpty(c.Server.StaticDir, "./static")
	c.Database.URL = firstNonEmpty(c.Database.URL, "mongodb://localhost:27017")
	c.Database.Name = firstNonEmpty(c.Database.Name, "blog")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
