// Package optimization defines the optimizer, learning-rate, and warmup
// configuration consumed by the trainer. Each of the three blocks follows the
// one-of convention used across the config tree: a `type` discriminator plus
// one always-allocated payload per known variant. Downstream code may read a
// payload regardless of the discriminator, so payloads are never pointers.
package optimization

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Config is the full optimization block of a trainer configuration.
type Config struct {
	Optimizer    Optimizer    `yaml:"optimizer" json:"optimizer" mapstructure:"optimizer"`
	LearningRate LearningRate `yaml:"learning_rate" json:"learning_rate" mapstructure:"learning_rate"`
	Warmup       Warmup       `yaml:"warmup" json:"warmup" mapstructure:"warmup"`
}

// Optimizer selects one optimizer variant by name.
type Optimizer struct {
	Type string `yaml:"type" json:"type" mapstructure:"type"`
	SGD  SGD    `yaml:"sgd" json:"sgd" mapstructure:"sgd"`
	Adam Adam   `yaml:"adam" json:"adam" mapstructure:"adam"`
}

// SGD holds stochastic-gradient-descent parameters.
type SGD struct {
	Momentum float64 `yaml:"momentum" json:"momentum" mapstructure:"momentum"`
	Nesterov bool    `yaml:"nesterov" json:"nesterov" mapstructure:"nesterov"`
}

// Adam holds Adam optimizer parameters.
type Adam struct {
	Beta1   float64 `yaml:"beta_1" json:"beta_1" mapstructure:"beta_1"`
	Beta2   float64 `yaml:"beta_2" json:"beta_2" mapstructure:"beta_2"`
	Epsilon float64 `yaml:"epsilon" json:"epsilon" mapstructure:"epsilon"`
}

// LearningRate selects one learning-rate schedule variant by name.
type LearningRate struct {
	Type        string      `yaml:"type" json:"type" mapstructure:"type"`
	Stepwise    Stepwise    `yaml:"stepwise" json:"stepwise" mapstructure:"stepwise"`
	Exponential Exponential `yaml:"exponential" json:"exponential" mapstructure:"exponential"`
	Constant    Constant    `yaml:"constant" json:"constant" mapstructure:"constant"`
}

// Stepwise is a piecewise-constant schedule. Boundaries are global step
// numbers; values has one more entry than boundaries.
type Stepwise struct {
	Boundaries []int     `yaml:"boundaries" json:"boundaries" mapstructure:"boundaries"`
	Values     []float64 `yaml:"values" json:"values" mapstructure:"values"`
}

// Exponential is an exponential decay schedule.
type Exponential struct {
	InitialLearningRate float64 `yaml:"initial_learning_rate" json:"initial_learning_rate" mapstructure:"initial_learning_rate"`
	DecaySteps          int     `yaml:"decay_steps" json:"decay_steps" mapstructure:"decay_steps"`
	DecayRate           float64 `yaml:"decay_rate" json:"decay_rate" mapstructure:"decay_rate"`
}

// Constant is a flat learning rate.
type Constant struct {
	Value float64 `yaml:"value" json:"value" mapstructure:"value"`
}

// Warmup selects one warmup variant by name.
type Warmup struct {
	Type   string `yaml:"type" json:"type" mapstructure:"type"`
	Linear Linear `yaml:"linear" json:"linear" mapstructure:"linear"`
}

// Linear ramps the learning rate linearly over the first warmup steps.
type Linear struct {
	WarmupSteps        int     `yaml:"warmup_steps" json:"warmup_steps" mapstructure:"warmup_steps"`
	WarmupLearningRate float64 `yaml:"warmup_learning_rate" json:"warmup_learning_rate" mapstructure:"warmup_learning_rate"`
}

// DefaultConfig returns a Config with every variant payload allocated and no
// variant selected.
func DefaultConfig() Config {
	return Config{
		Optimizer: Optimizer{
			Adam: Adam{Beta1: 0.9, Beta2: 0.999, Epsilon: 1e-7},
		},
	}
}

// NewConfig builds a Config from a generic keyed mapping, the shape in which
// experiment factories assemble their optimization settings. Unspecified
// fields keep their defaults; unknown keys are an error.
func NewConfig(params map[string]any) (Config, error) {
	cfg := DefaultConfig()

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("building optimization decoder: %w", err)
	}
	if err := dec.Decode(params); err != nil {
		return Config{}, fmt.Errorf("decoding optimization config: %w", err)
	}
	return cfg, nil
}

// MustNewConfig is NewConfig for statically-known mappings; it panics on error.
// Experiment factories use it at registration time, where a malformed mapping
// is a programming error.
func MustNewConfig(params map[string]any) Config {
	cfg, err := NewConfig(params)
	if err != nil {
		panic(err)
	}
	return cfg
}
