// Package config provides configuration structures for the application.
package config

type Config struct {
	Path       string `json:"path" yaml:"path" mapstructure:"path"`
	Table      bool   `json:"table" yaml:"table" mapstructure:"table"`
	Pretty     bool   `json:"pretty" yaml:"pretty" mapstructure:"pretty"`
	Verbose    bool   `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
	Lenient    bool   `json:"lenient" yaml:"lenient" mapstructure:"lenient"`
	Debug      bool   `json:"debug" yaml:"debug" mapstructure:"debug"`
	ConfigPath string `json:"configPath" yaml:"configPath" mapstructure:"configPath"`
}
