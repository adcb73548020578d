package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/cerealstore/internal/ledger"
	"github.com/mesh-intelligence/cerealstore/internal/paths"
	"github.com/mesh-intelligence/cerealstore/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "CEREALSTORE"

	cfgKeyContainerCapacity = "container_capacity"
	cfgKeyStorageCapacity   = "storage_capacity"
	cfgKeyLogLevel          = "log_level"
	cfgKeyLogEnv            = "log_env"

	defaultContainerCapacity = "10"
	defaultStorageCapacity   = "100"
	defaultLogLevel          = "info"
	defaultLogEnv            = "production"
)

// defaultConfigYAML is the content written to config.yaml by init.
const defaultConfigYAML = `# Cerealstore configuration

# Capacity of a single container and of the whole storage.
container_capacity: 10
storage_capacity: 100

# Logging: level is trace|debug|info|warn|error, env is development|production.
log_level: info
log_env: production
`

// settings is the effective configuration of one invocation.
type settings struct {
	configDir  string
	configFile string // empty when no config.yaml was read
	storage    types.Config
	logLevel   string
	logEnv     string
}

// loadSettings merges defaults, config.yaml, CEREALSTORE_* environment
// variables and flags, in increasing order of precedence.
// A missing config.yaml is not an error.
func (a *app) loadSettings(cmd *cobra.Command) (settings, error) {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return settings{}, sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	v := viper.New()
	v.SetDefault(cfgKeyContainerCapacity, defaultContainerCapacity)
	v.SetDefault(cfgKeyStorageCapacity, defaultStorageCapacity)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogEnv, defaultLogEnv)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	flagKeys := map[string]string{
		cfgKeyContainerCapacity: "container-capacity",
		cfgKeyStorageCapacity:   "storage-capacity",
		cfgKeyLogLevel:          "log-level",
	}
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return settings{}, sysError(fmt.Errorf("bind flag %s: %w", name, err))
			}
		}
	}

	s := settings{configDir: configDir}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, userError(fmt.Errorf("read config: %w", err))
		}
	} else {
		s.configFile = v.ConfigFileUsed()
	}

	containerCapacity, err := parseCapacity(v, cfgKeyContainerCapacity)
	if err != nil {
		return settings{}, err
	}
	storageCapacity, err := parseCapacity(v, cfgKeyStorageCapacity)
	if err != nil {
		return settings{}, err
	}

	s.storage = types.Config{
		ContainerCapacity: containerCapacity,
		StorageCapacity:   storageCapacity,
	}
	s.logLevel = v.GetString(cfgKeyLogLevel)
	s.logEnv = v.GetString(cfgKeyLogEnv)
	return s, nil
}

func parseCapacity(v *viper.Viper, key string) (decimal.Decimal, error) {
	raw := v.GetString(key)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, userError(fmt.Errorf("%w: %s %q is not a number",
			types.ErrInvalidConfiguration, key, raw))
	}
	return d, nil
}

// effectiveConfig is the JSON shape printed by the config command.
type effectiveConfig struct {
	ConfigDir         string `json:"config_dir"`
	ConfigFile        string `json:"config_file,omitempty"`
	ContainerCapacity string `json:"container_capacity"`
	StorageCapacity   string `json:"storage_capacity"`
	LogLevel          string `json:"log_level"`
	LogEnv            string `json:"log_env"`
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  "Print the configuration after merging config.yaml, CEREALSTORE_* environment variables and flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.settings
			if err := s.storage.Validate(); err != nil {
				return userError(err)
			}

			ec := effectiveConfig{
				ConfigDir:         s.configDir,
				ConfigFile:        s.configFile,
				ContainerCapacity: ledger.FormatAmount(s.storage.ContainerCapacity),
				StorageCapacity:   ledger.FormatAmount(s.storage.StorageCapacity),
				LogLevel:          s.logLevel,
				LogEnv:            s.logEnv,
			}
			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				data, err := json.MarshalIndent(ec, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal config: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			configFile := ec.ConfigFile
			if configFile == "" {
				configFile = "(none)"
			}
			fmt.Fprintf(out, "config_dir: %s\n", ec.ConfigDir)
			fmt.Fprintf(out, "config_file: %s\n", configFile)
			fmt.Fprintf(out, "container_capacity: %s\n", ec.ContainerCapacity)
			fmt.Fprintf(out, "storage_capacity: %s\n", ec.StorageCapacity)
			fmt.Fprintf(out, "log_level: %s\n", ec.LogLevel)
			fmt.Fprintf(out, "log_env: %s\n", ec.LogEnv)
			return nil
		},
	}
}
