package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Reloadly ReloadlyConfig
	Checkin  CheckinConfig
	Log      LogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// ReloadlyConfig holds airtime provider configuration
type ReloadlyConfig struct {
	BaseURL      string
	AuthURL      string
	ClientID     string
	ClientSecret string
	MockAPI      bool
}

// CheckinConfig holds the daily check-in rules
type CheckinConfig struct {
	ButtonsPerDay   int
	CooldownSeconds int
	StreakMilestone int
	RewardAmount    int
	ReferralAmount  int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
	Path  string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine, environment variables take over
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"http://localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "boomquotes")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("Reloadly.BaseURL", "https://topups.reloadly.com")
	viper.SetDefault("Reloadly.AuthURL", "https://auth.reloadly.com/oauth/token")
	viper.SetDefault("Reloadly.MockAPI", true)
	viper.SetDefault("Checkin.ButtonsPerDay", 10)
	viper.SetDefault("Checkin.CooldownSeconds", 60)
	viper.SetDefault("Checkin.StreakMilestone", 30)
	viper.SetDefault("Checkin.RewardAmount", 500)
	viper.SetDefault("Checkin.ReferralAmount", 100)
	viper.SetDefault("Log.Level", "info")
	viper.SetDefault("Log.Path", "")
}
