package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"supercli/pkg/keymaps"
)

// AppName names the configuration directory and the environment prefix
const AppName = "supercli"

// Config holds the application configuration
type Config struct {
	DataDir       string            `mapstructure:"data_dir" yaml:"data_dir"`
	LogFile       string            `mapstructure:"log_file" yaml:"log_file"`
	Verbose       bool              `mapstructure:"verbose" yaml:"verbose"`
	ProgressDelay time.Duration     `mapstructure:"progress_delay" yaml:"progress_delay"`
	KeyMap        map[string]string `mapstructure:"keymap" yaml:"keymap"`
	Styles        Styles            `mapstructure:"styles" yaml:"styles"`

	// File is the configuration file that was read, empty when none was used
	File string `mapstructure:"-" yaml:"-"`
}

// Styles holds the application colors and styling information
type Styles struct {
	// UI element colors
	BorderColor string `mapstructure:"border_color" yaml:"border_color"`
	AccentColor string `mapstructure:"accent_color" yaml:"accent_color"`

	// Text colors
	NormalTextColor   string `mapstructure:"normal_text_color" yaml:"normal_text_color"`
	SelectedTextColor string `mapstructure:"selected_text_color" yaml:"selected_text_color"`
	MutedTextColor    string `mapstructure:"muted_text_color" yaml:"muted_text_color"`
	ErrorColor        string `mapstructure:"error_color" yaml:"error_color"`
	WarningColor      string `mapstructure:"warning_color" yaml:"warning_color"`
	SuccessColor      string `mapstructure:"success_color" yaml:"success_color"`

	// Record colors
	HighPriorityColor   string `mapstructure:"high_priority_color" yaml:"high_priority_color"`
	MediumPriorityColor string `mapstructure:"medium_priority_color" yaml:"medium_priority_color"`
	LowPriorityColor    string `mapstructure:"low_priority_color" yaml:"low_priority_color"`
	DueDateColor        string `mapstructure:"due_date_color" yaml:"due_date_color"`
	CategoryColor       string `mapstructure:"category_color" yaml:"category_color"`
}

// DefaultStyles returns the built-in color scheme
func DefaultStyles() Styles {
	return Styles{
		BorderColor:         "240",
		AccentColor:         "205",
		NormalTextColor:     "252",
		SelectedTextColor:   "229",
		MutedTextColor:      "245",
		ErrorColor:          "9",
		WarningColor:        "11",
		SuccessColor:        "10",
		HighPriorityColor:   "9",
		MediumPriorityColor: "11",
		LowPriorityColor:    "10",
		DueDateColor:        "12",
		CategoryColor:       "14",
	}
}

// Default returns the configuration used when no file overrides it
func Default() Config {
	return Config{
		DataDir:       "data",
		ProgressDelay: 500 * time.Millisecond,
		KeyMap:        keymaps.GetDefaultKeyMappings(),
		Styles:        DefaultStyles(),
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.DataDir, validation.Required),
		validation.Field(&c.ProgressDelay, validation.Min(time.Duration(0)), validation.Max(10*time.Second)),
	); err != nil {
		return err
	}
	return c.Styles.Validate()
}

// Validate requires every color to be set
func (s *Styles) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.BorderColor, validation.Required),
		validation.Field(&s.AccentColor, validation.Required),
		validation.Field(&s.NormalTextColor, validation.Required),
		validation.Field(&s.SelectedTextColor, validation.Required),
		validation.Field(&s.MutedTextColor, validation.Required),
		validation.Field(&s.ErrorColor, validation.Required),
		validation.Field(&s.WarningColor, validation.Required),
		validation.Field(&s.SuccessColor, validation.Required),
		validation.Field(&s.HighPriorityColor, validation.Required),
		validation.Field(&s.MediumPriorityColor, validation.Required),
		validation.Field(&s.LowPriorityColor, validation.Required),
		validation.Field(&s.DueDateColor, validation.Required),
		validation.Field(&s.CategoryColor, validation.Required),
	)
}

// DefaultDir returns ~/.config/supercli
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", AppName), nil
}

// Load loads the application configuration. With an empty configPath the file
// ~/.config/supercli/config.json is used and created with default values if missing.
// SUPERCLI_* environment variables override file values.
func Load(configPath string) (Config, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", configPath, err)
		}
	} else {
		configDir, err := DefaultDir()
		if err != nil {
			return Config{}, err
		}
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath(configDir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
			// Config file not found, create default config
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return Config{}, fmt.Errorf("creating config directory: %w", err)
			}
			if err := v.WriteConfigAs(filepath.Join(configDir, "config.json")); err != nil {
				return Config{}, fmt.Errorf("writing default config: %w", err)
			}
		}
	}

	cfg := Default()
	// keymap comes back from viper with lowercased keys; start empty so defaults are not duplicated
	cfg.KeyMap = nil
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	def := Default()

	v := viper.New()
	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("verbose", def.Verbose)
	v.SetDefault("progress_delay", def.ProgressDelay.String())
	v.SetDefault("keymap", def.KeyMap)
	v.SetDefault("styles.border_color", def.Styles.BorderColor)
	v.SetDefault("styles.accent_color", def.Styles.AccentColor)
	v.SetDefault("styles.normal_text_color", def.Styles.NormalTextColor)
	v.SetDefault("styles.selected_text_color", def.Styles.SelectedTextColor)
	v.SetDefault("styles.muted_text_color", def.Styles.MutedTextColor)
	v.SetDefault("styles.error_color", def.Styles.ErrorColor)
	v.SetDefault("styles.warning_color", def.Styles.WarningColor)
	v.SetDefault("styles.success_color", def.Styles.SuccessColor)
	v.SetDefault("styles.high_priority_color", def.Styles.HighPriorityColor)
	v.SetDefault("styles.medium_priority_color", def.Styles.MediumPriorityColor)
	v.SetDefault("styles.low_priority_color", def.Styles.LowPriorityColor)
	v.SetDefault("styles.due_date_color", def.Styles.DueDateColor)
	v.SetDefault("styles.category_color", def.Styles.CategoryColor)
	return v
}

// ResolveDataDir expands a leading ~ and makes the data directory absolute.
// It is called once at startup so the stores never depend on the working directory afterwards.
func (c *Config) ResolveDataDir() error {
	dir := c.DataDir
	if strings.HasPrefix(dir, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = homeDir + dir[1:]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving data dir %s: %w", c.DataDir, err)
	}
	c.DataDir = abs
	return nil
}

// TodosPath returns the todo store file
func (c Config) TodosPath() string {
	return filepath.Join(c.DataDir, "todos.json")
}

// NotesPath returns the notes store file
func (c Config) NotesPath() string {
	return filepath.Join(c.DataDir, "notes.json")
}
