package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"tabpager/internal/paging"
)

// Config holds application configuration.
type Config struct {
	Pager     PagerConfig
	Theme     ThemeConfig
	Animation AnimationConfig
	Log       LogConfig
	Metrics   MetricsConfig
}

// PagerConfig holds coordinator settings.
type PagerConfig struct {
	InitialIndex              int  `mapstructure:"initial_index"`
	HandlesViewportExternally bool `mapstructure:"handles_viewport_externally"`
}

// ThemeConfig is forwarded to the renderer as paging.Theme.
type ThemeConfig struct {
	Bold              bool
	TextColor         string `mapstructure:"text_color"`
	SelectedTextColor string `mapstructure:"selected_text_color"`
	IndicatorColor    string `mapstructure:"indicator_color"`
	BackgroundColor   string `mapstructure:"background_color"`
	IndicatorHeight   int    `mapstructure:"indicator_height"`
	TotalHeight       int    `mapstructure:"total_height"`
}

// AnimationConfig tunes the terminal renderer's spring and settle timing.
type AnimationConfig struct {
	FPS         int
	Frequency   float64
	Damping     float64
	SettleDelay time.Duration `mapstructure:"settle_delay"`
}

// LogConfig holds logging settings. An empty File discards logs.
type LogConfig struct {
	Level  string
	Pretty bool
	File   string
}

// MetricsConfig holds the Prometheus listener address; empty disables it.
type MetricsConfig struct {
	Addr string
}

// SetDefaults installs default values on v.
func SetDefaults(v *viper.Viper) {
	def := paging.DefaultTheme()
	v.SetDefault("pager.initial_index", 0)
	v.SetDefault("pager.handles_viewport_externally", true)
	v.SetDefault("theme.bold", def.Bold)
	v.SetDefault("theme.text_color", def.TextColor)
	v.SetDefault("theme.selected_text_color", def.SelectedTextColor)
	v.SetDefault("theme.indicator_color", def.IndicatorColor)
	v.SetDefault("theme.background_color", def.BackgroundColor)
	v.SetDefault("theme.indicator_height", def.IndicatorHeight)
	v.SetDefault("theme.total_height", def.TotalHeight)
	v.SetDefault("animation.fps", 60)
	v.SetDefault("animation.frequency", 7.0)
	v.SetDefault("animation.damping", 1.0)
	v.SetDefault("animation.settle_delay", 250*time.Millisecond)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("log.file", "")
	v.SetDefault("metrics.addr", "")
}

// New returns a viper instance with defaults, config file lookup and env overrides
// (prefix TABPAGER_). cfgPath overrides $TABPAGER_CONFIG and the default location.
func New(cfgPath string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("toml")

	if cfgPath == "" {
		cfgPath = os.Getenv("TABPAGER_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tabpager"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TABPAGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file if present and unmarshals v.
// A missing default file is fine; an explicit file that is missing or malformed is not.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Animation.FPS <= 0 {
		return fmt.Errorf("animation.fps must be positive, got %d", c.Animation.FPS)
	}
	if c.Animation.Frequency <= 0 {
		return fmt.Errorf("animation.frequency must be positive, got %v", c.Animation.Frequency)
	}
	if c.Animation.SettleDelay < 0 {
		return fmt.Errorf("animation.settle_delay must not be negative, got %v", c.Animation.SettleDelay)
	}
	return nil
}

// PagingTheme converts the theme section to the coordinator's pass-through theme.
func (c Config) PagingTheme() paging.Theme {
	return paging.Theme{
		Bold:              c.Theme.Bold,
		TextColor:         c.Theme.TextColor,
		SelectedTextColor: c.Theme.SelectedTextColor,
		IndicatorColor:    c.Theme.IndicatorColor,
		BackgroundColor:   c.Theme.BackgroundColor,
		IndicatorHeight:   c.Theme.IndicatorHeight,
		TotalHeight:       c.Theme.TotalHeight,
	}
}

// PagingConfig builds the coordinator configuration.
func (c Config) PagingConfig() paging.Config {
	return paging.Config{
		HandlesViewportExternally: c.Pager.HandlesViewportExternally,
		Theme:                     c.PagingTheme(),
	}
}
