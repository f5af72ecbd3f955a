package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct{}

func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if errors.As(err, &typeErr) {
			// defaults only, every key has one
			return &Config{}, nil
		}

		return nil, err
	}

	config := &Config{}
	return config, nil
}
