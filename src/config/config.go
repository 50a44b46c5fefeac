package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Databases DatabasesConfig `mapstructure:"databases"`
	Security  SecurityConfig  `mapstructure:"security"`
	Brokers   BrokersConfig   `mapstructure:"brokers"`
}

type ServiceConfig struct {
	Port string `mapstructure:"port"`
}

type DatabasesConfig struct {
	SQL SQLConfig `mapstructure:"sql"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type SecurityConfig struct {
	// EncryptionKey is the base64 vault key; normally supplied through the
	// ENCRYPTION_KEY environment variable rather than the settings file.
	EncryptionKey string `mapstructure:"encryptionKey"`
}

type BrokersConfig struct {
	Zerodha BrokerEndpointConfig `mapstructure:"zerodha"`
}

type BrokerEndpointConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")

	_ = viper.BindEnv("security.encryptionKey", "ENCRYPTION_KEY")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
