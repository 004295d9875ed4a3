package go_nano

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

type ConfigProperty int

const (
	CONFIG_PROP_ADDRESS_PREFIX ConfigProperty = iota
	CONFIG_PROP_WORK_THRESHOLD
	CONFIG_PROP_WORK_WORKERS

	NR_OF_CONFIG_PROPERTIES
)

var configOptions = [NR_OF_CONFIG_PROPERTIES]string{
	"nano.addressPrefix",
	"nano.workThreshold",
	"nano.workWorkers",
}

// Config carries the parameters that vary between networks and hosts:
// the address prefix to render, the work threshold and how many workers
// ComputeWork starts. Properties are stored as strings, as they appear in
// config files.
type Config struct {
	properties [NR_OF_CONFIG_PROPERTIES]string
}

// DefaultConfig returns the live-network defaults: "nano_" addresses,
// threshold ffffffc000000000 and one worker per CPU.
func DefaultConfig() *Config {
	workers := runtime.NumCPU()
	if workers > MAX_WORK_WORKERS {
		workers = MAX_WORK_WORKERS
	}
	config := &Config{}
	config.SetProperty(CONFIG_PROP_ADDRESS_PREFIX, ADDRESS_PREFIX_NANO)
	config.SetProperty(CONFIG_PROP_WORK_THRESHOLD, FormatWorkThreshold(WORK_THRESHOLD_DEFAULT))
	config.SetProperty(CONFIG_PROP_WORK_WORKERS, fmt.Sprint(workers))
	return config
}

// LoadConfigFile returns DefaultConfig overridden by the properties in
// path, then validates the result.
func LoadConfigFile(path string) (*Config, error) {
	config := DefaultConfig()
	err := ParseConfig(path, func(name, value string) {
		if prop := PropertyFromString(name); prop >= 0 {
			config.SetProperty(prop, value)
			return
		}
		Warning("Ignoring unknown config property '%s' in %s", name, path)
	})
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("error in config file %s: %w", path, err)
	}
	return config, nil
}

// LoadUserConfig loads ~/.nano.conf if it exists, otherwise the defaults.
func LoadUserConfig() (*Config, error) {
	home := os.Getenv("HOME")
	if len(home) == 0 {
		return DefaultConfig(), nil
	}

	path := home + "/.nano.conf"
	if _, err := os.Stat(path); err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFile(path)
}

// PropertyName returns the config-file name of prop.
func PropertyName(prop ConfigProperty) string {
	if prop < 0 || prop >= NR_OF_CONFIG_PROPERTIES {
		return ""
	}
	return configOptions[prop]
}

// PropertyFromString returns the property named name, or -1.
func PropertyFromString(name string) ConfigProperty {
	for i := 0; ConfigProperty(i) < NR_OF_CONFIG_PROPERTIES; i++ {
		if configOptions[i] == name {
			return ConfigProperty(i)
		}
	}
	return ConfigProperty(-1)
}

func (config *Config) SetProperty(prop ConfigProperty, value string) {
	config.properties[prop] = strings.TrimSpace(value)
}

func (config *Config) GetProperty(prop ConfigProperty) string {
	return config.properties[prop]
}

// Validate checks every property.
func (config *Config) Validate() error {
	switch config.GetProperty(CONFIG_PROP_ADDRESS_PREFIX) {
	case ADDRESS_PREFIX_NANO, ADDRESS_PREFIX_XRB:
	default:
		return fmt.Errorf("%s %q: %w", configOptions[CONFIG_PROP_ADDRESS_PREFIX],
			config.GetProperty(CONFIG_PROP_ADDRESS_PREFIX), ErrInvalidConfiguration)
	}

	if _, err := ParseWorkThreshold(config.GetProperty(CONFIG_PROP_WORK_THRESHOLD)); err != nil {
		return fmt.Errorf("%s: %w: %v", configOptions[CONFIG_PROP_WORK_THRESHOLD], ErrInvalidConfiguration, err)
	}

	if workers := parseUintWithDefault(config.GetProperty(CONFIG_PROP_WORK_WORKERS), 0); workers == 0 || workers > MAX_WORK_WORKERS {
		return fmt.Errorf("%s %q: %w", configOptions[CONFIG_PROP_WORK_WORKERS],
			config.GetProperty(CONFIG_PROP_WORK_WORKERS), ErrInvalidConfiguration)
	}
	return nil
}

// AddressPrefix returns the configured prefix, defaulting to "nano_".
func (config *Config) AddressPrefix() string {
	if p := config.GetProperty(CONFIG_PROP_ADDRESS_PREFIX); p != "" {
		return p
	}
	return ADDRESS_PREFIX_NANO
}

// WorkThreshold returns the configured threshold, defaulting to
// WORK_THRESHOLD_DEFAULT if the property is unset or malformed.
func (config *Config) WorkThreshold() uint64 {
	threshold, err := ParseWorkThreshold(config.GetProperty(CONFIG_PROP_WORK_THRESHOLD))
	if err != nil {
		return WORK_THRESHOLD_DEFAULT
	}
	return threshold
}

// WorkWorkers returns the configured worker count, defaulting to 1.
func (config *Config) WorkWorkers() uint64 {
	return parseUintWithDefault(config.GetProperty(CONFIG_PROP_WORK_WORKERS), 1)
}
