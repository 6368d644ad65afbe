package ssd

import (
	"path"

	"github.com/visionforge-labs/visionforge/internal/configs/core"
	"github.com/visionforge-labs/visionforge/internal/experiment"
	"github.com/visionforge-labs/visionforge/internal/optimization"
)

const (
	cocoInputPathBase = "coco"
	cocoTrainExamples = 118287
	cocoValExamples   = 5000
)

func init() {
	experiment.MustRegister("ssd", baseExperiment)
	experiment.MustRegister("ssd_mobiledet_coco", mobileDetCOCOExperiment)
}

// baseExperiment returns the general SSD config with every field at its
// default.
func baseExperiment() *core.ExperimentConfig {
	return &core.ExperimentConfig{
		Runtime: core.DefaultRuntime(),
		Task:    DefaultTask(),
		Trainer: core.DefaultTrainer(),
		Restrictions: []string{
			"task.train_data.is_training != None",
			"task.validation_data.is_training != None",
		},
	}
}

// mobileDetCOCOExperiment returns the COCO object-detection training recipe.
func mobileDetCOCOExperiment() *core.ExperimentConfig {
	const (
		trainBatchSize = 256
		evalBatchSize  = 8
	)
	stepsPerEpoch := cocoTrainExamples / trainBatchSize

	task := DefaultTask()
	task.InitCheckpoint = "gs://cloud-tpu-checkpoints/vision-2.0/resnet50_imagenet/ckpt-28080"
	task.InitCheckpointModules = "backbone"
	task.AnnotationFile = path.Join(cocoInputPathBase, "instances_val2017.json")
	task.Model.NumClasses = 91
	task.Model.InputSize = []int{640, 640, 3}
	task.Model.MinLevel = 4
	task.Model.NumLayers = 6
	task.Losses.L2WeightDecay = 1e-4
	task.TrainData.InputPath = path.Join(cocoInputPathBase, "train*")
	task.TrainData.GlobalBatchSize = trainBatchSize
	task.TrainData.Parser.AugRandHFlip = true
	task.TrainData.Parser.AugScaleMin = 0.5
	task.TrainData.Parser.AugScaleMax = 2.0
	task.ValidationData.InputPath = path.Join(cocoInputPathBase, "val*")
	task.ValidationData.GlobalBatchSize = evalBatchSize

	runtime := core.DefaultRuntime()
	runtime.MixedPrecisionDType = "bfloat16"

	trainer := core.DefaultTrainer()
	trainer.TrainSteps = 72 * stepsPerEpoch
	trainer.ValidationSteps = cocoValExamples / evalBatchSize
	trainer.ValidationInterval = stepsPerEpoch
	trainer.StepsPerLoop = stepsPerEpoch
	trainer.SummaryInterval = stepsPerEpoch
	trainer.CheckpointInterval = stepsPerEpoch
	trainer.OptimizerConfig = optimization.MustNewConfig(map[string]any{
		"optimizer": map[string]any{
			"type": "sgd",
			"sgd": map[string]any{
				"momentum": 0.9,
			},
		},
		"learning_rate": map[string]any{
			"type": "stepwise",
			"stepwise": map[string]any{
				"boundaries": []int{
					57 * stepsPerEpoch, 67 * stepsPerEpoch,
				},
				"values": []float64{
					0.32 * trainBatchSize / 256.0,
					0.032 * trainBatchSize / 256.0,
					0.0032 * trainBatchSize / 256.0,
				},
			},
		},
		"warmup": map[string]any{
			"type": "linear",
			"linear": map[string]any{
				"warmup_steps":         500,
				"warmup_learning_rate": 0.0067,
			},
		},
	})

	return &core.ExperimentConfig{
		Runtime: runtime,
		Task:    task,
		Trainer: trainer,
		Restrictions: []string{
			"task.train_data.is_training != None",
			"task.validation_data.is_training != None",
		},
	}
}
