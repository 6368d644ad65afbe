package core

import "github.com/visionforge-labs/visionforge/internal/optimization"

// TrainerConfig holds training-loop settings. Step counts are global steps;
// intervals are expressed in steps as well.
type TrainerConfig struct {
	TrainSteps           int                 `yaml:"train_steps" json:"train_steps"`
	ValidationSteps      int                 `yaml:"validation_steps" json:"validation_steps"`
	ValidationInterval   int                 `yaml:"validation_interval" json:"validation_interval"`
	StepsPerLoop         int                 `yaml:"steps_per_loop" json:"steps_per_loop"`
	SummaryInterval      int                 `yaml:"summary_interval" json:"summary_interval"`
	CheckpointInterval   int                 `yaml:"checkpoint_interval" json:"checkpoint_interval"`
	MaxToKeep            int                 `yaml:"max_to_keep" json:"max_to_keep"`
	BestCheckpointMetric string              `yaml:"best_checkpoint_eval_metric,omitempty" json:"best_checkpoint_eval_metric,omitempty"`
	OptimizerConfig      optimization.Config `yaml:"optimizer_config" json:"optimizer_config"`
}

// DefaultTrainer returns the default trainer settings. Factories override the
// step counts; the loop intervals are sensible for most experiments.
func DefaultTrainer() TrainerConfig {
	return TrainerConfig{
		ValidationInterval: 1000,
		StepsPerLoop:       1000,
		SummaryInterval:    1000,
		CheckpointInterval: 1000,
		MaxToKeep:          5,
		OptimizerConfig:    optimization.DefaultConfig(),
	}
}
