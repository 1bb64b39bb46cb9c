package config

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvPrefix = "AWARDLOG"

	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyBacktrace = "diagnostics.backtrace"

	DefaultLevel  = "info"
	DefaultFormat = "console"

	configFileName = ".awardlog"
)

// Config only carries diagnostics. Nothing here changes report contents.
type Config struct {
	Log         LogConfig   `mapstructure:"log"`
	Diagnostics Diagnostics `mapstructure:"diagnostics"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=console json"`
}

// Diagnostics controls how a failed run is reported.
type Diagnostics struct {
	Backtrace bool `mapstructure:"backtrace"`
}

// SetDefaults sets default values if not provided
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, DefaultLevel)
	v.SetDefault(KeyLogFormat, DefaultFormat)
	v.SetDefault(KeyBacktrace, false)
}

// New returns a viper instance wired for AWARDLOG_* environment variables and
// an optional .awardlog.yaml in the given directories.
func New(searchPaths ...string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, path := range searchPaths {
		v.AddConfigPath(path)
	}
	v.SetConfigType("yaml")
	v.SetConfigName(configFileName)

	return v
}

// Load reads the optional config file and validates the result. A missing
// file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, eris.Wrap(err, "config: read config file")
		}
	}
	return loadAndValidateFromViper(v)
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, eris.Wrap(err, "config: validation failed")
	}

	return &cfg, nil
}

// InitLogger builds the global zap logger. Logs go to stderr so report
// files and stdout stay clean.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.DisableStacktrace = true
	}
	zapCfg.OutputPaths = []string{"stderr"}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
