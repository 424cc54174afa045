package config

import (
	yamlLib "gopkg.in/yaml.v3"
)

// defaultConfig is not a constant because the generate-config command lets
// callers layer their own config string on top of it.
var defaultConfig = `
path: ""
table: false
pretty: false
verbose: false
lenient: false
debug: false
configPath: "."
`

func GetDefaultConfig() string {
	return defaultConfig
}

func SetDefaultConfig(configStr string) {
	defaultConfig = configStr
}

// New returns a Config populated from the default config string.
func New() *Config {
	cfg := &Config{}
	// the default config string is under our control, the unmarshalling
	// can only fail if it is edited into invalid yaml
	err := yamlLib.Unmarshal([]byte(defaultConfig), cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
