package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Fixed deployment identifiers. One deployment serves exactly one guild,
// one review channel and one pair of outcome roles.
const (
	guildID         = "1359567770827751584"
	reviewChannelID = "1361817608646562153"
	approvedRoleID  = "1361817240512758000"
	rejectedRoleID  = "1361817341935222845"
)

// Config holds everything the service needs at runtime. It is built once in
// main and passed explicitly to every constructor; nothing reads it from
// package globals.
type Config struct {
	Token  string `mapstructure:"TOKEN"`
	APIKey string `mapstructure:"API_KEY"`
	Port   int    `mapstructure:"PORT"`

	GuildID         string
	ReviewChannelID string
	ApprovedRoleID  string
	RejectedRoleID  string
}

// Load reads config.yaml from the working directory and the process
// environment. The config file is optional; TOKEN and API_KEY are not.
func Load() (Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 10000)
	for _, key := range []string{"TOKEN", "API_KEY", "PORT"} {
		if err := viper.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	cfg.GuildID = guildID
	cfg.ReviewChannelID = reviewChannelID
	cfg.ApprovedRoleID = approvedRoleID
	cfg.RejectedRoleID = rejectedRoleID

	if cfg.Token == "" {
		return Config{}, errors.New("TOKEN is not configured")
	}
	if cfg.APIKey == "" {
		return Config{}, errors.New("API_KEY is not configured")
	}

	return cfg, nil
}

// Addr returns the HTTP listen address for the configured port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
