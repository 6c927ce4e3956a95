package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/create-mcp-server/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the generator front-end.
const (
	KeyDirectory      = "directory"
	KeyPackageManager = "package_manager"
	KeyAtomic         = "atomic"
	KeyVerbose        = "verbose"
	KeySDKVersion     = "sdk_version"
	KeyZodVersion     = "zod_version"
)

// EnvKeys lists every key, in help order. Each can be set through the
// environment as the branded prefix plus the upper-cased key.
var EnvKeys = []string{
	KeyDirectory,
	KeyPackageManager,
	KeyAtomic,
	KeyVerbose,
	KeySDKVersion,
	KeyZodVersion,
}

// Defaults applied when neither the config file, the environment, nor a flag
// provides a value.
const (
	DefaultDirectory      = "."
	DefaultPackageManager = "yarn"
	DefaultSDKVersion     = "^1.2.0"
	DefaultZodVersion     = "^3.22.4"
)

// flagKeys maps flag names to config keys where the two differ.
var flagKeys = map[string]string{
	"directory":       KeyDirectory,
	"package-manager": KeyPackageManager,
	"atomic":          KeyAtomic,
	"verbose":         KeyVerbose,
}

// Dir returns the path to the config directory (~/.create-mcp-server/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the default config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
// An empty path selects the default file, which may be absent. An explicit
// path must exist.
func Load(path string) error {
	viper.SetDefault(KeyDirectory, DefaultDirectory)
	viper.SetDefault(KeyPackageManager, DefaultPackageManager)
	viper.SetDefault(KeyAtomic, false)
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeySDKVersion, DefaultSDKVersion)
	viper.SetDefault(KeyZodVersion, DefaultZodVersion)

	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = FilePath()
	}
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)

	if err := viper.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

// BindFlags binds the known flags in fs so that an explicitly set flag
// overrides the file and environment.
func BindFlags(fs *pflag.FlagSet) error {
	for flagName, key := range flagKeys {
		f := fs.Lookup(flagName)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", flagName, err)
		}
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value by key.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
