// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/evandropoa/magnum/pkg/vk"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "magnum"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "magnum"
)

// The recognized override keys. Flag names use the same spelling.
const (
	KeyEnableInstanceLayers     = "enable-instance-layers"
	KeyEnableInstanceExtensions = "enable-instance-extensions"
	KeyDisableLayers            = "disable-layers"
	KeyDisableExtensions        = "disable-extensions"
	KeyLog                      = "log"
)

// configDirOverride lets tests redirect the config directory.
var configDirOverride string

// SetConfigDirOverride redirects ConfigDir. Intended for tests; pass "" to
// restore the default behavior.
func SetConfigDirOverride(dir string) { configDirOverride = dir }

// ConfigDir returns the magnum configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// RegisterFlags adds the override flags to the given flag set. Values are
// space-separated name lists, matching the wire format of the environment
// variables.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeyEnableInstanceLayers, "", "space-separated instance layers to enable")
	flags.String(KeyEnableInstanceExtensions, "", "space-separated instance extensions to enable")
	flags.String(KeyDisableLayers, "", "space-separated layers to filter out of every request")
	flags.String(KeyDisableExtensions, "", "space-separated extensions to filter out of every request")
	flags.String(KeyLog, "", "set to \"verbose\" to list the final selection at instance creation")
}

// LoadOverrides merges the override surface from the config file,
// environment and the given flags into a vk.Overrides. A missing config
// file is not an error; a malformed one is.
func LoadOverrides(flags *pflag.FlagSet) (*vk.Overrides, error) {
	v := viper.New()

	v.SetEnvPrefix("MAGNUM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{
			KeyEnableInstanceLayers,
			KeyEnableInstanceExtensions,
			KeyDisableLayers,
			KeyDisableExtensions,
			KeyLog,
		} {
			if flag := flags.Lookup(key); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", key, err)
				}
			}
		}
	}

	if dir, err := ConfigDir(); err == nil {
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	return &vk.Overrides{
		EnabledLayers:      strings.Fields(v.GetString(KeyEnableInstanceLayers)),
		EnabledExtensions:  strings.Fields(v.GetString(KeyEnableInstanceExtensions)),
		DisabledLayers:     strings.Fields(v.GetString(KeyDisableLayers)),
		DisabledExtensions: strings.Fields(v.GetString(KeyDisableExtensions)),
		VerboseLog:         v.GetString(KeyLog) == "verbose",
	}, nil
}
