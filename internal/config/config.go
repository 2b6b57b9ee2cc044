// Package config handles posetool configuration loading and management.
package config

import "fmt"

// Direction transform modes for baked normals, tangents and bitangents.
const (
	NormalsCorrected = "corrected" // inverse-transpose of the linear part
	NormalsLinear    = "linear"    // plain linear part
)

// Config holds all posetool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Bake    BakeConfig    `yaml:"bake"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// BakeConfig controls how vertex streams are baked through a transform.
type BakeConfig struct {
	Normals  string `yaml:"normals"`   // NormalsCorrected or NormalsLinear
	CenterXZ bool   `yaml:"center_xz"` // Recenter baked positions on X/Z
}

// OutputConfig controls what posetool prints.
type OutputConfig struct {
	NodeID uint32 `yaml:"node_id"` // Node ID written into encoded packets
	Dump   bool   `yaml:"dump"`    // Dump decoded structures with spew
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Bake: BakeConfig{
			Normals:  NormalsCorrected,
			CenterXZ: false,
		},
		Output: OutputConfig{
			NodeID: 0,
			Dump:   false,
		},
	}
}

// Validate checks values that have a fixed set of choices.
func (c *Config) Validate() error {
	switch c.Bake.Normals {
	case NormalsCorrected, NormalsLinear:
	default:
		return fmt.Errorf("bake.normals: unknown mode %q", c.Bake.Normals)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	return nil
}
