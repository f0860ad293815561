// Package configuration establishes the application [Settings] from
// Unix-type configuration files, with the process environment taking
// precedence over the files.
package configuration

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/desertwitch/pathshim/internal/commands"
	"github.com/desertwitch/pathshim/internal/reporting"
)

const (
	// EnvConfigFile names the configuration file to read, if set.
	EnvConfigFile = "PATHSHIM_CONFIG"

	SettingManifest    = "PATHSHIM_MANIFEST"
	SettingInitCommand = "PATHSHIM_INIT_COMMAND"
	SettingColor       = "PATHSHIM_COLOR"
	SettingLogLevel    = "PATHSHIM_LOG_LEVEL"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Settings is the principal structure holding the application configuration.
type Settings struct {
	Manifest    string
	InitCommand string
	Color       reporting.ColorMode
	LogLevel    slog.Level
}

// Defaults returns the [Settings] used for anything that is not configured.
func Defaults() *Settings {
	return &Settings{
		Manifest:    commands.DefaultManifest,
		InitCommand: commands.DefaultInitCommand,
		Color:       reporting.ColorAuto,
		LogLevel:    slog.LevelWarn,
	}
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	genericHandler genericConfigProvider
	lookupEnv      func(key string) (string, bool)
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		genericHandler: genericHandler,
		lookupEnv:      os.LookupEnv,
	}
}

// ReadGeneric reads the given configuration files into a map.
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.genericHandler.Read(filenames...)
}

// MapKeyToString returns the value for key, with the environment taking
// precedence over envMap. A missing key is an empty string.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := c.lookupEnv(key); exists && value != "" {
		return value
	}

	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// Establish returns the [Settings] read from filenames. Without any filenames
// only the environment and the defaults are used.
func (c *Handler) Establish(filenames ...string) (*Settings, error) {
	envMap := map[string]string{}

	if len(filenames) > 0 {
		data, err := c.ReadGeneric(filenames...)
		if err != nil {
			return nil, fmt.Errorf("(config) failed to read: %w", err)
		}
		envMap = data
	}

	settings := Defaults()

	if v := c.MapKeyToString(envMap, SettingManifest); v != "" {
		settings.Manifest = v
	}

	if v := c.MapKeyToString(envMap, SettingInitCommand); v != "" {
		settings.InitCommand = v
	}

	color, err := reporting.ParseColorMode(c.MapKeyToString(envMap, SettingColor))
	if err != nil {
		return nil, fmt.Errorf("(config) %w: %s: %w", ErrInvalidSetting, SettingColor, err)
	}
	settings.Color = color

	if v := c.MapKeyToString(envMap, SettingLogLevel); v != "" {
		if err := settings.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("(config) %w: %s: %w", ErrInvalidSetting, SettingLogLevel, err)
		}
	}

	return settings, nil
}
