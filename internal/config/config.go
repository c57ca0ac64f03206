package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/CiaranMcAleer/postcard/internal/postcard"
	"github.com/spf13/viper"
)

type Config struct {
	// Template is the preview page template: a name of an embedded
	// template ("default", "minimal") or a path to an .html file.
	Template string `mapstructure:"template"`
	// SizeThreshold is the compressed page size, in bytes, above which a
	// warning is logged.
	SizeThreshold int         `mapstructure:"sizeThreshold"`
	Theme         ThemeConfig `mapstructure:"theme"`
}

type ThemeConfig struct {
	SpacingUnit int            `mapstructure:"spacingUnit"`
	Secondary   string         `mapstructure:"secondary"`
	Breakpoints map[string]int `mapstructure:"breakpoints"`
}

// Parse reads the configuration from file (or ./postcard.yaml when file is
// empty) and POSTCARD_* environment variables. A missing default config
// file is not an error.
func Parse(file string) (*Config, error) {
	v := viper.New()

	def := postcard.DefaultTheme()
	breakpoints := map[string]int{}
	for _, bp := range def.Breakpoints {
		breakpoints[bp.Key] = bp.Width
	}

	v.SetDefault("template", "default")
	v.SetDefault("sizeThreshold", 14*1024)
	v.SetDefault("theme.spacingUnit", def.SpacingUnit)
	v.SetDefault("theme.secondary", def.Secondary)
	v.SetDefault("theme.breakpoints", breakpoints)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("postcard")
	}

	v.SetEnvPrefix("POSTCARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) validate() error {
	if c.Theme.SpacingUnit <= 0 {
		return errors.New("theme.spacingUnit must be positive")
	}
	if c.SizeThreshold < 0 {
		return errors.New("sizeThreshold must not be negative")
	}
	return nil
}

// CardTheme converts the theme section into a postcard.Theme, with
// breakpoints ordered by width.
func (c *Config) CardTheme() postcard.Theme {
	theme := postcard.Theme{
		SpacingUnit: c.Theme.SpacingUnit,
		Secondary:   c.Theme.Secondary,
	}
	for key, width := range c.Theme.Breakpoints {
		theme.Breakpoints = append(theme.Breakpoints, postcard.Breakpoint{Key: key, Width: width})
	}
	sort.Slice(theme.Breakpoints, func(i, j int) bool {
		return theme.Breakpoints[i].Width < theme.Breakpoints[j].Width
	})
	return theme
}
