package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string `mapstructure:"PORT"`
	DatabaseType                  string `mapstructure:"DATABASE_TYPE"`
	DatabaseDSN                   string `mapstructure:"DATABASE_DSN"`
	AdminPassword                 string `mapstructure:"ADMIN_PASSWORD"`
	JWTSecret                     string `mapstructure:"JWT_SECRET"`
	BaseURL                       string `mapstructure:"BASE_URL"`
	WeddingDate                   string `mapstructure:"WEDDING_DATE"`
	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	LogLevel                      string `mapstructure:"LOG_LEVEL"`
	LogOutput                     string `mapstructure:"LOG_OUTPUT"`
	LogFilePath                   string `mapstructure:"LOG_FILE_PATH"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_TYPE", "sqlite")
	viper.SetDefault("DATABASE_DSN", "wedding.db")
	viper.SetDefault("BASE_URL", "http://127.0.0.1:3000")
	viper.SetDefault("WEDDING_DATE", "2026-03-07T16:00:00-05:00")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_OUTPUT", "stdout")
	viper.SetDefault("LOG_FILE_PATH", "wedding-api.log")

	viper.BindEnv("ADMIN_PASSWORD")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("BASE_URL")
	viper.BindEnv("WEDDING_DATE")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("LOG_LEVEL")
	viper.BindEnv("LOG_OUTPUT")
	viper.BindEnv("LOG_FILE_PATH")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
