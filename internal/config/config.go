package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	OutputDir string

	CatalogPath string

	Host    string
	Port    int
	BaseURL string
}

func SetDefaults() {
	viper.SetDefault("download.directory", ".")
	viper.SetDefault("catalog.path", "data/catalog.db")
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.base_url", "http://localhost:8080")
}

func GetConfig() Config {
	return Config{
		OutputDir: viper.GetString("download.directory"),

		CatalogPath: viper.GetString("catalog.path"),

		Host:    viper.GetString("server.host"),
		Port:    viper.GetInt("server.port"),
		BaseURL: viper.GetString("server.base_url"),
	}
}
