package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tiffin-finder/storefront/internal/discovery"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	APIURL       string        `mapstructure:"api_url"`
	DataFile     string        `mapstructure:"data_file"`
	LogLevel     string        `mapstructure:"log_level"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Latitude     float64       `mapstructure:"latitude"`
	Longitude    float64       `mapstructure:"longitude"`
	Radius       float64       `mapstructure:"radius"`
	DemoFallback bool          `mapstructure:"demo_fallback"`
}

// SetDefaults registers the default value of every setting on v.
func SetDefaults(v *viper.Viper) {
	dataFile := "tiffin.db"
	if home, err := os.UserHomeDir(); err == nil {
		dataFile = filepath.Join(home, ".tiffin.db")
	}

	v.SetDefault("api_url", "http://localhost:8080")
	v.SetDefault("data_file", dataFile)
	v.SetDefault("log_level", "warn")
	v.SetDefault("timeout", "15s")
	v.SetDefault("latitude", discovery.DefaultOrigin.Lat)
	v.SetDefault("longitude", discovery.DefaultOrigin.Lng)
	v.SetDefault("radius", discovery.DefaultRadius)
	v.SetDefault("demo_fallback", true)
}

// ReadConfig reads cfgFile, or $HOME/.tiffin.yaml when it is empty, and
// overlays TIFFIN_* environment variables. A missing default file is not
// an error.
func ReadConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".tiffin")
	}

	v.SetEnvPrefix("tiffin")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func LoadConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := v.Unmarshal(&cfg, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Radius <= 0 {
		cfg.Radius = discovery.DefaultRadius
	}
	return &cfg, nil
}
