package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyDocument = "config"
	KeyMode     = "mode"
	KeyColor    = "color"
	KeyLogLevel = "log-level"
	KeyFormat   = "format"
	KeyVerbose  = "verbose"

	envPrefix = "THEMEKIT"
)

// Settings are the run options of the CLI.
type Settings struct {
	DocumentPath string `yaml:"config"`
	Mode         string `yaml:"mode" validate:"oneof=light dark"`
	Color        string `yaml:"color" validate:"oneof=auto ascii ansi ansi256 truecolor"`
	LogLevel     string `yaml:"log-level" validate:"oneof=trace debug info warn error disabled"`
	Format       string `yaml:"format" validate:"oneof=text json yaml"`
	Verbose      bool   `yaml:"verbose"`
}

type settingsOptions struct {
	settingsFile string
	flags        *pflag.FlagSet
}

// SettingsOption configures LoadSettings.
type SettingsOption func(*settingsOptions)

// WithSettingsFile reads settings from path instead of the user config directory.
func WithSettingsFile(path string) SettingsOption {
	return func(o *settingsOptions) {
		o.settingsFile = path
	}
}

// WithFlags binds command-line flags; flags that were set take precedence.
func WithFlags(flags *pflag.FlagSet) SettingsOption {
	return func(o *settingsOptions) {
		o.flags = flags
	}
}

// LoadSettings resolves settings with the precedence:
// defaults < settings file < THEMEKIT_* environment < flags.
func LoadSettings(opts ...SettingsOption) (Settings, error) {
	options := settingsOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	path := strings.TrimSpace(options.settingsFile)
	if path == "" {
		path = defaultSettingsPath()
	}
	if err := mergeSettingsFile(v, path); err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}

	if options.flags != nil {
		if err := v.BindPFlags(options.flags); err != nil {
			return Settings{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	settings := Settings{
		DocumentPath: v.GetString(KeyDocument),
		Mode:         strings.ToLower(v.GetString(KeyMode)),
		Color:        strings.ToLower(v.GetString(KeyColor)),
		LogLevel:     strings.ToLower(v.GetString(KeyLogLevel)),
		Format:       strings.ToLower(v.GetString(KeyFormat)),
		Verbose:      v.GetBool(KeyVerbose),
	}
	if err := validatorInstance().Struct(settings); err != nil {
		return Settings{}, convertValidationError(err)
	}
	return settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDocument, "")
	v.SetDefault(KeyMode, "light")
	v.SetDefault(KeyColor, "auto")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyFormat, "text")
	v.SetDefault(KeyVerbose, false)
}

func mergeSettingsFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("settings path %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "themekit", "settings.yaml")
}
