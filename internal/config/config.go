// Package config loads the demo CLI's configuration. It is not used by
// pkg/dcql, which takes no configuration of its own.
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config holds dcqlcheck's tunables. Everything has a zero-config
// default; a YAML file only needs to override what differs.
type Config struct {
	LogLevel      string `yaml:"log_level" default:"info" validate:"oneof=info debug trace"`
	Production    bool   `yaml:"production" default:"false"`
	MaxDocuments  int    `yaml:"max_documents" default:"1000" validate:"gt=0"`
}

type envVars struct {
	ConfigYAML string `envconfig:"DCQL_CONFIG_YAML"`
}

// Load builds a Config from defaults, then overlays a YAML file named
// by the DCQL_CONFIG_YAML environment variable when it is set.
func Load() (*Config, error) {
	env := envVars{}
	if err := envconfig.Process("", &env); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, err
	}

	if env.ConfigYAML != "" {
		if err := overlayYAML(cfg, env.ConfigYAML); err != nil {
			return nil, err
		}
	}

	if err := Check(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func overlayYAML(cfg *Config, path string) error {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, cfg)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check validates cfg's struct tags, mirroring CheckSimple elsewhere in
// this codebase family.
func Check(cfg *Config) error {
	return newValidator().Struct(cfg)
}
