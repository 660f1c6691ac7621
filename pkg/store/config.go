package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where tracker state lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig reads the optional .lifetrack config file and LIFETRACK_*
// environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.lifetrack.db")
	viper.SetConfigName(".lifetrack") // .yaml is implicit
	viper.SetEnvPrefix("LIFETRACK")
	viper.AutomaticEnv()

	if override := os.Getenv("LIFETRACK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// PathConfig is a fixed-path Config, handy for tests.
type PathConfig string

func (p PathConfig) BasePath() string { return string(p) }
