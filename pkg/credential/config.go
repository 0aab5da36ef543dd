package credential

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config locates the credential slot and the API server.
type Config interface {
	BasePath() string
	Server() string
}

// LoadConfig reads the .vita config file and VITA_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.vita.db")
	viper.SetDefault("server", "")
	viper.SetConfigName(".vita") // .yaml is implicit
	viper.SetEnvPrefix("VITA")
	viper.AutomaticEnv()

	if override := os.Getenv("VITA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{Path: viper.GetString("path"), ServerURL: viper.GetString("server")}, nil
}

type fileConfig struct {
	Path      string `json:"path"`
	ServerURL string `json:"server"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Server() string {
	return f.ServerURL
}
