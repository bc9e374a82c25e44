package config

import (
	"strings"

	"dod-quiz/pkg/validator"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix       = "DOD_APP"
	playerEnvPrefix = "DOD_PLAYER"

	defaultImageURL = "https://maps.googleapis.com/maps/api/streetview?size=600x300&location=%s&heading=151.78&pitch=-0.76"
)

type Config struct {
	Env    string            `mapstructure:"env" validate:"oneof=development production"`
	Server ServerConfig      `mapstructure:"server"`
	CORS   CORSConfig        `mapstructure:"cors"`
	Quiz   QuizConfig        `mapstructure:"quiz"`
	Decks  map[string]string `mapstructure:"decks" validate:"min=2,dive,keys,required,endkeys,required"`
	Stats  StatsConfig       `mapstructure:"stats"`

	// FileUsed is empty when no config file was found.
	FileUsed string `mapstructure:"-"`
}

type ServerConfig struct {
	Port       string `mapstructure:"port" validate:"required,startswith=:"`
	ForceHTTPS bool   `mapstructure:"force_https"`
	AssetsDir  string `mapstructure:"assets_dir"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"dive,required"`
}

type QuizConfig struct {
	Secret   string `mapstructure:"secret"`
	ImageURL string `mapstructure:"image_url" validate:"required,contains=%s"`
}

type StatsConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type PlayerConfig struct {
	Env            string `mapstructure:"env" validate:"oneof=development production"`
	Server         string `mapstructure:"server" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout" validate:"min=1"`
	Manual         bool   `mapstructure:"manual"`
	Debug          bool   `mapstructure:"debug"`
}

func newViper(prefix string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads config.yaml from configDir (and the working directory), then
// environment variables prefixed with DOD_APP_, then the given flags.
func Load(configDir string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper(envPrefix)

	v.SetDefault("env", "production")
	v.SetDefault("server.port", ":5555")
	v.SetDefault("server.force_https", false)
	v.SetDefault("server.assets_dir", "./site/assets")
	v.SetDefault("quiz.image_url", defaultImageURL)
	v.SetDefault("decks", map[string]string{
		"dutch":   "./data/dutch.txt",
		"deutsch": "./data/deutsch.txt",
	})
	v.SetDefault("stats.path", "./data/stats.json")

	if flags != nil {
		if f := flags.Lookup("port"); f != nil {
			if err := v.BindPFlag("server.port", f); err != nil {
				return nil, errors.Wrap(err, "bind port flag")
			}
		}
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config file")
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	cfg.FileUsed = v.ConfigFileUsed()

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadPlayer resolves the player settings from flags and DOD_PLAYER_ variables.
func LoadPlayer(flags *pflag.FlagSet) (*PlayerConfig, error) {
	v := newViper(playerEnvPrefix)

	v.SetDefault("env", "production")
	v.SetDefault("server", "http://localhost:5555")
	v.SetDefault("timeout", 10)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "bind flags")
		}
	}

	cfg := PlayerConfig{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal player config")
	}
	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
