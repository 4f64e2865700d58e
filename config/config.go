package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port      string `mapstructure:"port"`
		StaticDir string `mapstructure:"static_dir"`
	} `mapstructure:"server"`
	Store struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"store"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.static_dir", "static")
	viper.SetDefault("store.path", "bank_data.json")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
