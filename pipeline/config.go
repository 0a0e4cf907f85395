// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: YAML configuration of a dynamic network and of the pipeline knobs,
// with struct-tag validation.

package pipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gten/flow"
	"github.com/katalvlaran/gten/network"
)

// ErrInvalidConfig wraps every struct-tag validation failure.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

// Defaults applied by LoadConfig to empty fields.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = LogFormatJSON
)

var validate = validator.New()

// ArcConfig is one network arc. Capacity accepts YAML's .inf.
type ArcConfig struct {
	Tail        string   `yaml:"tail" validate:"required"`
	Head        string   `yaml:"head" validate:"required,nefield=Tail"`
	Capacity    *float64 `yaml:"capacity" validate:"required,gte=0"`
	TransitTime *float64 `yaml:"transit" validate:"required,gte=0"`
}

// Config describes one pipeline run.
type Config struct {
	Horizon int         `yaml:"horizon" validate:"required,gt=0"`
	Sources []string    `yaml:"sources" validate:"required,min=1,dive,required"`
	Sinks   []string    `yaml:"sinks" validate:"required,min=1,dive,required"`
	Arcs    []ArcConfig `yaml:"arcs" validate:"required,min=1,dive"`

	// Workers bounds concurrent oracle calls and window evaluations.
	Workers int `yaml:"workers" validate:"gte=0"`

	// MaxWindowLength limits GTEN window passes; 0 runs them all.
	MaxWindowLength int `yaml:"max_window_length" validate:"gte=0"`

	Algorithm string `yaml:"algorithm" validate:"omitempty,oneof=dinic edmonds-karp"`
	LogLevel  string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"omitempty,oneof=json text"`
}

// LoadConfig decodes YAML from r, rejects unknown fields, fills defaults
// and validates the result.
func LoadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("pipeline: decode config: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = string(flow.AlgorithmDinic)
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
}

// Validate checks the struct tags, then the network and terminal partition
// the config describes.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	net, terms, err := c.Network()
	if err != nil {
		return err
	}
	return network.Validate(net, terms)
}

// Network builds the dynamic network and terminal partition of c.
func (c *Config) Network() (*network.Network, network.Terminals, error) {
	net := network.New()
	for _, a := range c.Arcs {
		if a.Capacity == nil || a.TransitTime == nil {
			return nil, network.Terminals{}, &network.InputError{
				Op:     "Config",
				Arc:    network.Arc{Tail: a.Tail, Head: a.Head},
				Reason: "capacity and transit are required",
			}
		}
		if err := net.AddArc(a.Tail, a.Head, *a.Capacity, *a.TransitTime); err != nil {
			return nil, network.Terminals{}, err
		}
	}
	terms := network.Terminals{
		Sources: append([]string(nil), c.Sources...),
		Sinks:   append([]string(nil), c.Sinks...),
	}
	return net, terms, nil
}

// formatValidationError reports the first failed field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	e := verrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%w: %s: field is required", ErrInvalidConfig, e.Namespace())
	case "oneof":
		return fmt.Errorf("%w: %s: must be one of [%s]", ErrInvalidConfig, e.Namespace(), e.Param())
	default:
		return fmt.Errorf("%w: %s: failed %s%s", ErrInvalidConfig, e.Namespace(), e.Tag(), param(e.Param()))
	}
}

func param(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}
