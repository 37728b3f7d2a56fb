package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"
)

const envPrefix = "POWLEDGER"

var (
	ErrConfigFailedToSetDefaults = errors.New("error occurred while setting defaults")
	ErrConfigPath                = errors.New("config path error")
	ErrConfigDump                = errors.New("failed to dump config")
)

func Load(configFileDirs ...string) (*NodeConfig, error) {
	nodeConfig := getDefaultNodeConfig()

	err := setDefaults(nodeConfig)
	if err != nil {
		return nil, err
	}

	err = overrideWithFiles(configFileDirs...)
	if err != nil {
		return nil, err
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err = viper.Unmarshal(nodeConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if nodeConfig.Tracing != nil && len(nodeConfig.Tracing.Attributes) > 0 {
		keys := make([]string, 0, len(nodeConfig.Tracing.Attributes))
		for key := range nodeConfig.Tracing.Attributes {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		tracingAttributes := make([]attribute.KeyValue, 0, len(keys))
		for _, key := range keys {
			tracingAttributes = append(tracingAttributes, attribute.String(key, nodeConfig.Tracing.Attributes[key]))
		}

		nodeConfig.Tracing.KeyValueAttributes = tracingAttributes
	}

	return nodeConfig, nil
}

// DumpConfig writes the effective settings to configFile as YAML.
func DumpConfig(configFile string) error {
	out, err := yaml.Marshal(viper.AllSettings())
	if err != nil {
		return errors.Join(ErrConfigDump, err)
	}

	err = os.WriteFile(configFile, out, 0o600)
	if err != nil {
		return errors.Join(ErrConfigDump, err)
	}

	return nil
}

func setDefaults(defaultConfig *NodeConfig) error {
	defaultsMap := make(map[string]interface{})

	if err := mapstructure.Decode(defaultConfig, &defaultsMap); err != nil {
		err = errors.Join(ErrConfigFailedToSetDefaults, err)
		return err
	}

	for key, value := range defaultsMap {
		viper.SetDefault(key, value)
	}

	return nil
}

func overrideWithFiles(configFileDirs ...string) error {
	if len(configFileDirs) == 0 || configFileDirs[0] == "" {
		return nil
	}

	for _, path := range configFileDirs {
		stat, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return errors.Join(ErrConfigPath, fmt.Errorf("path: %s does not exist", path))
			}
			return err
		}
		if !stat.IsDir() {
			return errors.Join(ErrConfigPath, fmt.Errorf("path: %s should be a directory", path))
		}

		viper.AddConfigPath(path)
	}

	err := viper.ReadInConfig()
	if err != nil {
		return err
	}

	return nil
}
