package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/ChizhovVadim/VariantGo/pkg/engine"
)

type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Log    LogConfig    `mapstructure:"log"`
	Game   GameConfig   `mapstructure:"game"`
}

type EngineConfig struct {
	Threads          int   `mapstructure:"threads"`
	MaxNodes         int64 `mapstructure:"max_nodes"`
	MaxDepth         int   `mapstructure:"max_depth"`
	QuiescenceFactor int   `mapstructure:"quiescence_factor"`
	DeltaPruning     bool  `mapstructure:"delta_pruning"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type GameConfig struct {
	Variant string `mapstructure:"variant"`
	FEN     string `mapstructure:"fen"`
}

// Load reads variantgo.yaml from the working directory (or the file given)
// and VARIANTGO_* environment variables on top of the defaults.
func Load(configFile string) (*Config, error) {
	var v = viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("variantgo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("VARIANTGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("engine.threads", runtime.NumCPU())
	v.SetDefault("engine.max_nodes", 0)
	v.SetDefault("engine.max_depth", 0)
	v.SetDefault("engine.quiescence_factor", 2)
	v.SetDefault("engine.delta_pruning", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("game.variant", "classical")
	v.SetDefault("game.fen", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Engine.Threads <= 0 {
		return nil, fmt.Errorf("engine.threads must be positive, got %d", cfg.Engine.Threads)
	}
	if cfg.Engine.QuiescenceFactor <= 0 {
		return nil, fmt.Errorf("engine.quiescence_factor must be positive, got %d", cfg.Engine.QuiescenceFactor)
	}
	return &cfg, nil
}

func (c *Config) LogLevel() zerolog.Level {
	var level, err = zerolog.ParseLevel(c.Log.Level)
	if err != nil || c.Log.Level == "" {
		return zerolog.InfoLevel
	}
	return level
}

func (c *Config) EngineOptions(logger zerolog.Logger) engine.Options {
	var opts = engine.NewOptions()
	opts.Threads = c.Engine.Threads
	opts.MaxNodes = c.Engine.MaxNodes
	opts.MaxDepth = c.Engine.MaxDepth
	opts.QuiescenceFactor = c.Engine.QuiescenceFactor
	opts.DeltaPruning = c.Engine.DeltaPruning
	opts.Logger = logger
	return opts
}
