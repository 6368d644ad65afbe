// Package ssd defines the configuration schema for the single-shot detector
// task family and registers its experiment presets.
//
// Every record has a Default constructor that takes no arguments and returns
// a fully-populated value; overrides are plain field assignment on the copy.
// List-valued defaults are allocated fresh on every call so sibling instances
// never share backing arrays.
package ssd

import (
	"github.com/visionforge-labs/visionforge/internal/configs/backbones"
	"github.com/visionforge-labs/visionforge/internal/configs/common"
	"github.com/visionforge-labs/visionforge/internal/configs/core"
	"github.com/visionforge-labs/visionforge/internal/configs/decoders"
)

// TfExampleDecoder configures the plain tf.Example record decoder.
type TfExampleDecoder struct {
	RegenerateSourceID bool `yaml:"regenerate_source_id" json:"regenerate_source_id"`
}

// TfExampleDecoderLabelMap configures the label-map-aware record decoder.
type TfExampleDecoderLabelMap struct {
	RegenerateSourceID bool   `yaml:"regenerate_source_id" json:"regenerate_source_id"`
	LabelMap           string `yaml:"label_map" json:"label_map"`
}

// DataDecoder selects one record-decoder variant by name. Both payloads are
// always allocated; Type names the one the pipeline consumes.
type DataDecoder struct {
	Type            string                   `yaml:"type" json:"type"`
	SimpleDecoder   TfExampleDecoder         `yaml:"simple_decoder" json:"simple_decoder"`
	LabelMapDecoder TfExampleDecoderLabelMap `yaml:"label_map_decoder" json:"label_map_decoder"`
}

// DefaultDataDecoder returns a DataDecoder with the simple decoder selected.
func DefaultDataDecoder() DataDecoder {
	return DataDecoder{Type: "simple_decoder"}
}

// Parser holds augmentation and anchor-matching settings for the input parser.
type Parser struct {
	MatchThreshold          float64 `yaml:"match_threshold" json:"match_threshold"`
	UnmatchedThreshold      float64 `yaml:"unmatched_threshold" json:"unmatched_threshold"`
	AugRandHFlip            bool    `yaml:"aug_rand_hflip" json:"aug_rand_hflip"`
	AugScaleMin             float64 `yaml:"aug_scale_min" json:"aug_scale_min"`
	AugScaleMax             float64 `yaml:"aug_scale_max" json:"aug_scale_max"`
	SkipCrowdDuringTraining bool    `yaml:"skip_crowd_during_training" json:"skip_crowd_during_training"`
	MaxNumInstances         int     `yaml:"max_num_instances" json:"max_num_instances"`
}

// DefaultParser returns the default parser settings.
func DefaultParser() Parser {
	return Parser{
		MatchThreshold:          0.5,
		UnmatchedThreshold:      0.5,
		AugScaleMin:             1.0,
		AugScaleMax:             1.0,
		SkipCrowdDuringTraining: true,
		MaxNumInstances:         100,
	}
}

// DataConfig holds one data split's pipeline settings.
type DataConfig struct {
	core.DataConfig `yaml:",inline" json:",inline"`

	InputPath         string      `yaml:"input_path" json:"input_path"`
	GlobalBatchSize   int         `yaml:"global_batch_size" json:"global_batch_size"`
	IsTraining        bool        `yaml:"is_training" json:"is_training"`
	DType             string      `yaml:"dtype" json:"dtype"`
	Decoder           DataDecoder `yaml:"decoder" json:"decoder"`
	Parser            Parser      `yaml:"parser" json:"parser"`
	ShuffleBufferSize int         `yaml:"shuffle_buffer_size" json:"shuffle_buffer_size"`
	FileType          string      `yaml:"file_type" json:"file_type"`
}

// DefaultDataConfig returns the default settings for one data split.
func DefaultDataConfig() DataConfig {
	return DataConfig{
		DataConfig:        core.DefaultData(),
		DType:             "bfloat16",
		Decoder:           DefaultDataDecoder(),
		Parser:            DefaultParser(),
		ShuffleBufferSize: 10000,
		FileType:          "tfrecord",
	}
}

// Anchor holds anchor-box generation parameters. A nil Scales means scales
// are derived from MinScale/MaxScale across levels.
type Anchor struct {
	MinScale                     float64   `yaml:"min_scale" json:"min_scale"`
	MaxScale                     float64   `yaml:"max_scale" json:"max_scale"`
	Scales                       []float64 `yaml:"scales" json:"scales"`
	AspectRatios                 []float64 `yaml:"aspect_ratios" json:"aspect_ratios"`
	InterpolatedScaleAspectRatio float64   `yaml:"interpolated_scale_aspect_ratio" json:"interpolated_scale_aspect_ratio"`
	AnchorSize                   float64   `yaml:"anchor_size" json:"anchor_size"`
}

// DefaultAnchor returns the default anchor settings.
func DefaultAnchor() Anchor {
	return Anchor{
		MinScale:                     0.2,
		MaxScale:                     0.95,
		AspectRatios:                 []float64{1.0, 2.0, 3.0, 1.0 / 2, 1.0 / 3},
		InterpolatedScaleAspectRatio: 1.0,
		AnchorSize:                   4.0,
	}
}

// Losses holds the loss-term weights.
type Losses struct {
	FocalLossAlpha float64 `yaml:"focal_loss_alpha" json:"focal_loss_alpha"`
	FocalLossGamma float64 `yaml:"focal_loss_gamma" json:"focal_loss_gamma"`
	HuberLossDelta float64 `yaml:"huber_loss_delta" json:"huber_loss_delta"`
	BoxLossWeight  int     `yaml:"box_loss_weight" json:"box_loss_weight"`
	L2WeightDecay  float64 `yaml:"l2_weight_decay" json:"l2_weight_decay"`
}

// DefaultLosses returns the default loss weights.
func DefaultLosses() Losses {
	return Losses{
		FocalLossAlpha: 0.25,
		FocalLossGamma: 1.5,
		HuberLossDelta: 0.1,
		BoxLossWeight:  50,
	}
}

// Head holds the detection-head architecture settings.
type Head struct {
	KernelSize              int     `yaml:"kernel_size" json:"kernel_size"`
	UseDepthwise            bool    `yaml:"use_depthwise" json:"use_depthwise"`
	Activation              string  `yaml:"activation" json:"activation"`
	UseSyncBN               bool    `yaml:"use_sync_bn" json:"use_sync_bn"`
	FreezeNorm              bool    `yaml:"freeze_norm" json:"freeze_norm"`
	AddBackgroundClass      bool    `yaml:"add_background_class" json:"add_background_class"`
	ClassPredictionBiasInit float64 `yaml:"class_prediction_bias_init" json:"class_prediction_bias_init"`
}

// DefaultHead returns the default head settings.
func DefaultHead() Head {
	return Head{
		KernelSize:              3,
		UseDepthwise:            true,
		Activation:              "relu6",
		AddBackgroundClass:      true,
		ClassPredictionBiasInit: -4.6,
	}
}

// DetectionGenerator holds the post-processing (NMS) parameters.
type DetectionGenerator struct {
	PreNMSTopK           int     `yaml:"pre_nms_top_k" json:"pre_nms_top_k"`
	PreNMSScoreThreshold float64 `yaml:"pre_nms_score_threshold" json:"pre_nms_score_threshold"`
	NMSIoUThreshold      float64 `yaml:"nms_iou_threshold" json:"nms_iou_threshold"`
	MaxNumDetections     int     `yaml:"max_num_detections" json:"max_num_detections"`
	UseBatchedNMS        bool    `yaml:"use_batched_nms" json:"use_batched_nms"`
}

// DefaultDetectionGenerator returns the default post-processing settings.
func DefaultDetectionGenerator() DetectionGenerator {
	return DetectionGenerator{
		PreNMSTopK:           5000,
		PreNMSScoreThreshold: 0.05,
		NMSIoUThreshold:      0.5,
		MaxNumDetections:     100,
	}
}

// Model composes the full SSD architecture.
type Model struct {
	NumClasses         int                   `yaml:"num_classes" json:"num_classes"`
	InputSize          []int                 `yaml:"input_size" json:"input_size"`
	MinLevel           int                   `yaml:"min_level" json:"min_level"`
	NumLayers          int                   `yaml:"num_layers" json:"num_layers"`
	Anchor             Anchor                `yaml:"anchor" json:"anchor"`
	Backbone           backbones.Backbone    `yaml:"backbone" json:"backbone"`
	Decoder            decoders.Decoder      `yaml:"decoder" json:"decoder"`
	Head               Head                  `yaml:"head" json:"head"`
	DetectionGenerator DetectionGenerator    `yaml:"detection_generator" json:"detection_generator"`
	NormActivation     common.NormActivation `yaml:"norm_activation" json:"norm_activation"`
}

// DefaultModel returns the default SSD architecture: a MobileDet backbone
// feeding a multi-resolution feature-map decoder over six layers.
func DefaultModel() Model {
	model := Model{
		InputSize:          []int{},
		MinLevel:           4,
		NumLayers:          6,
		Anchor:             DefaultAnchor(),
		Backbone:           backbones.DefaultBackbone(),
		Decoder:            decoders.DefaultDecoder(),
		Head:               DefaultHead(),
		DetectionGenerator: DefaultDetectionGenerator(),
		NormActivation:     common.DefaultNormActivation(),
	}
	model.Backbone.Type = "mobiledet"
	model.Decoder.Type = "mrfm"
	model.Decoder.MRFM = decoders.MRFM{
		FMLFromLayer:  []string{"4", "5", "", "", "", ""},
		FMLLayerDepth: []int{-1, -1, 512, 256, 256, 128},
	}
	return model
}

// Task is the full SSD experiment task: model, data splits, losses, and
// checkpoint initialization.
type Task struct {
	Model                 Model      `yaml:"model" json:"model"`
	TrainData             DataConfig `yaml:"train_data" json:"train_data"`
	ValidationData        DataConfig `yaml:"validation_data" json:"validation_data"`
	Losses                Losses     `yaml:"losses" json:"losses"`
	InitCheckpoint        string     `yaml:"init_checkpoint,omitempty" json:"init_checkpoint,omitempty"`
	InitCheckpointModules string     `yaml:"init_checkpoint_modules" json:"init_checkpoint_modules"`
	AnnotationFile        string     `yaml:"annotation_file,omitempty" json:"annotation_file,omitempty"`
	PerCategoryMetrics    bool       `yaml:"per_category_metrics" json:"per_category_metrics"`
}

// TaskName implements core.Task.
func (Task) TaskName() string { return "ssd" }

// DefaultTask returns the default SSD task, with the training split flagged
// for training and the validation split not.
func DefaultTask() Task {
	trainData := DefaultDataConfig()
	trainData.IsTraining = true

	return Task{
		Model:                 DefaultModel(),
		TrainData:             trainData,
		ValidationData:        DefaultDataConfig(),
		Losses:                DefaultLosses(),
		InitCheckpointModules: "all",
	}
}
