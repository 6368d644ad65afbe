// Package core defines the base experiment configuration records shared by
// every task family: the experiment envelope, runtime and trainer settings,
// and the input-pipeline fields common to all data configs. Task-specific
// packages (e.g. configs/ssd) compose these records and register factories
// with the experiment registry.
package core

// SchemaVersion is the version written into exported experiment documents
// and accepted (same major, not newer) by the validator.
const SchemaVersion = "1.0.0"

// Task is implemented by every task-level configuration.
type Task interface {
	// TaskName returns the task family name, e.g. "ssd".
	TaskName() string
}

// ExperimentConfig is the top-level record an experiment factory returns:
// one task plus the runtime and trainer settings to run it under.
type ExperimentConfig struct {
	Runtime RuntimeConfig `yaml:"runtime" json:"runtime"`
	Task    Task          `yaml:"task" json:"task"`
	Trainer TrainerConfig `yaml:"trainer" json:"trainer"`

	// Restrictions are declarative predicates of the form
	// "<dotted.path> != None", checked against the marshaled document by
	// the experiment validator before the config is handed to a trainer.
	Restrictions []string `yaml:"restrictions,omitempty" json:"restrictions,omitempty"`
}

// RuntimeConfig holds execution-environment settings.
type RuntimeConfig struct {
	DistributionStrategy string `yaml:"distribution_strategy" json:"distribution_strategy"`
	MixedPrecisionDType  string `yaml:"mixed_precision_dtype,omitempty" json:"mixed_precision_dtype,omitempty"`
	EnableXLA            bool   `yaml:"enable_xla" json:"enable_xla"`
	NumGPUs              int    `yaml:"num_gpus" json:"num_gpus"`
}

// DefaultRuntime returns the default runtime settings.
func DefaultRuntime() RuntimeConfig {
	return RuntimeConfig{
		DistributionStrategy: "mirrored",
	}
}
