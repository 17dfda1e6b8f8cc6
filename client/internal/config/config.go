package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const Path = ".zaazu.yml"

type (
	DriveConfig struct {
		ClientID     string `yaml:"clientId"`
		ClientSecret string `yaml:"clientSecret"`
		RedirectURI  string `yaml:"redirectUri"`
		RefreshToken string `yaml:"refreshToken"`
	}

	Config struct {
		Host      string      `yaml:"host"`
		AccessKey string      `yaml:"accessKey"`
		Drive     DriveConfig `yaml:"drive"`
	}
)

func Parse() (Config, error) {
	c := Config{}
	fi, err := os.Open(Path)
	if err != nil {
		return c, err
	}
	defer fi.Close()

	value, err := io.ReadAll(fi)
	if err != nil {
		return c, err
	}

	if err = yaml.Unmarshal(value, &c); err != nil {
		return c, err
	}
	return c, nil
}
