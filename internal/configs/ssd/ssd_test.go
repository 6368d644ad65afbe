package ssd

import (
	"reflect"
	"testing"
)

func TestDefaultDataDecoder(t *testing.T) {
	d := DefaultDataDecoder()

	if d.Type != "simple_decoder" {
		t.Errorf("Type = %q, want %q", d.Type, "simple_decoder")
	}
	// Both variant payloads are allocated regardless of the discriminator.
	if d.SimpleDecoder.RegenerateSourceID {
		t.Error("SimpleDecoder.RegenerateSourceID = true, want false")
	}
	if d.LabelMapDecoder.RegenerateSourceID || d.LabelMapDecoder.LabelMap != "" {
		t.Errorf("LabelMapDecoder = %+v, want zero defaults", d.LabelMapDecoder)
	}
}

func TestDefaultParser(t *testing.T) {
	p := DefaultParser()

	want := Parser{
		MatchThreshold:          0.5,
		UnmatchedThreshold:      0.5,
		AugRandHFlip:            false,
		AugScaleMin:             1.0,
		AugScaleMax:             1.0,
		SkipCrowdDuringTraining: true,
		MaxNumInstances:         100,
	}
	if p != want {
		t.Errorf("DefaultParser() = %+v, want %+v", p, want)
	}
}

func TestDefaultDataConfig(t *testing.T) {
	d := DefaultDataConfig()

	if d.InputPath != "" {
		t.Errorf("InputPath = %q, want empty", d.InputPath)
	}
	if d.GlobalBatchSize != 0 {
		t.Errorf("GlobalBatchSize = %d, want 0", d.GlobalBatchSize)
	}
	if d.IsTraining {
		t.Error("IsTraining = true, want false")
	}
	if d.DType != "bfloat16" {
		t.Errorf("DType = %q, want %q", d.DType, "bfloat16")
	}
	if d.ShuffleBufferSize != 10000 {
		t.Errorf("ShuffleBufferSize = %d, want 10000", d.ShuffleBufferSize)
	}
	if d.FileType != "tfrecord" {
		t.Errorf("FileType = %q, want %q", d.FileType, "tfrecord")
	}
	if !d.DropRemainder {
		t.Error("DropRemainder = false, want true")
	}
	if !d.Sharding {
		t.Error("Sharding = false, want true")
	}
	if d.BlockLength != 1 {
		t.Errorf("BlockLength = %d, want 1", d.BlockLength)
	}
}

func TestDefaultAnchor(t *testing.T) {
	a := DefaultAnchor()

	if a.MinScale != 0.2 || a.MaxScale != 0.95 {
		t.Errorf("scale range = [%v, %v], want [0.2, 0.95]", a.MinScale, a.MaxScale)
	}
	if a.Scales != nil {
		t.Errorf("Scales = %v, want nil", a.Scales)
	}
	wantRatios := []float64{1.0, 2.0, 3.0, 1.0 / 2, 1.0 / 3}
	if !reflect.DeepEqual(a.AspectRatios, wantRatios) {
		t.Errorf("AspectRatios = %v, want %v", a.AspectRatios, wantRatios)
	}
	if a.InterpolatedScaleAspectRatio != 1.0 {
		t.Errorf("InterpolatedScaleAspectRatio = %v, want 1.0", a.InterpolatedScaleAspectRatio)
	}
	if a.AnchorSize != 4.0 {
		t.Errorf("AnchorSize = %v, want 4.0", a.AnchorSize)
	}
}

func TestDefaultAnchor_NoSharedSlices(t *testing.T) {
	a := DefaultAnchor()
	b := DefaultAnchor()

	a.AspectRatios[0] = 99.0
	if b.AspectRatios[0] != 1.0 {
		t.Errorf("mutating one anchor's AspectRatios changed another's: got %v", b.AspectRatios[0])
	}
}

func TestDefaultLosses(t *testing.T) {
	l := DefaultLosses()

	want := Losses{
		FocalLossAlpha: 0.25,
		FocalLossGamma: 1.5,
		HuberLossDelta: 0.1,
		BoxLossWeight:  50,
		L2WeightDecay:  0,
	}
	if l != want {
		t.Errorf("DefaultLosses() = %+v, want %+v", l, want)
	}
}

func TestDefaultHead(t *testing.T) {
	h := DefaultHead()

	want := Head{
		KernelSize:              3,
		UseDepthwise:            true,
		Activation:              "relu6",
		UseSyncBN:               false,
		FreezeNorm:              false,
		AddBackgroundClass:      true,
		ClassPredictionBiasInit: -4.6,
	}
	if h != want {
		t.Errorf("DefaultHead() = %+v, want %+v", h, want)
	}
}

func TestDefaultDetectionGenerator(t *testing.T) {
	g := DefaultDetectionGenerator()

	want := DetectionGenerator{
		PreNMSTopK:           5000,
		PreNMSScoreThreshold: 0.05,
		NMSIoUThreshold:      0.5,
		MaxNumDetections:     100,
		UseBatchedNMS:        false,
	}
	if g != want {
		t.Errorf("DefaultDetectionGenerator() = %+v, want %+v", g, want)
	}
}

func TestDefaultModel(t *testing.T) {
	m := DefaultModel()

	if m.NumClasses != 0 {
		t.Errorf("NumClasses = %d, want 0", m.NumClasses)
	}
	if len(m.InputSize) != 0 {
		t.Errorf("InputSize = %v, want empty", m.InputSize)
	}
	if m.MinLevel != 4 || m.NumLayers != 6 {
		t.Errorf("MinLevel/NumLayers = %d/%d, want 4/6", m.MinLevel, m.NumLayers)
	}
	if m.Backbone.Type != "mobiledet" {
		t.Errorf("Backbone.Type = %q, want %q", m.Backbone.Type, "mobiledet")
	}
	if m.Backbone.MobileDet.ModelID != "MobileDetCPU" {
		t.Errorf("Backbone.MobileDet.ModelID = %q, want %q", m.Backbone.MobileDet.ModelID, "MobileDetCPU")
	}
	if m.Decoder.Type != "mrfm" {
		t.Errorf("Decoder.Type = %q, want %q", m.Decoder.Type, "mrfm")
	}
	wantFrom := []string{"4", "5", "", "", "", ""}
	if !reflect.DeepEqual(m.Decoder.MRFM.FMLFromLayer, wantFrom) {
		t.Errorf("MRFM.FMLFromLayer = %v, want %v", m.Decoder.MRFM.FMLFromLayer, wantFrom)
	}
	wantDepth := []int{-1, -1, 512, 256, 256, 128}
	if !reflect.DeepEqual(m.Decoder.MRFM.FMLLayerDepth, wantDepth) {
		t.Errorf("MRFM.FMLLayerDepth = %v, want %v", m.Decoder.MRFM.FMLLayerDepth, wantDepth)
	}
	if m.NormActivation.Activation != "relu" || m.NormActivation.NormMomentum != 0.99 {
		t.Errorf("NormActivation = %+v, want relu/0.99 defaults", m.NormActivation)
	}
}

func TestDefaultModel_NoSharedSlices(t *testing.T) {
	a := DefaultModel()
	b := DefaultModel()

	a.Decoder.MRFM.FMLLayerDepth[2] = 0
	if b.Decoder.MRFM.FMLLayerDepth[2] != 512 {
		t.Errorf("mutating one model's FMLLayerDepth changed another's: got %d", b.Decoder.MRFM.FMLLayerDepth[2])
	}
	a.Anchor.AspectRatios[1] = 0
	if b.Anchor.AspectRatios[1] != 2.0 {
		t.Errorf("mutating one model's AspectRatios changed another's: got %v", b.Anchor.AspectRatios[1])
	}
}

func TestDefaultTask(t *testing.T) {
	task := DefaultTask()

	if task.TaskName() != "ssd" {
		t.Errorf("TaskName() = %q, want %q", task.TaskName(), "ssd")
	}
	if !task.TrainData.IsTraining {
		t.Error("TrainData.IsTraining = false, want true")
	}
	if task.ValidationData.IsTraining {
		t.Error("ValidationData.IsTraining = true, want false")
	}
	if task.InitCheckpoint != "" {
		t.Errorf("InitCheckpoint = %q, want empty", task.InitCheckpoint)
	}
	if task.InitCheckpointModules != "all" {
		t.Errorf("InitCheckpointModules = %q, want %q", task.InitCheckpointModules, "all")
	}
	if task.AnnotationFile != "" {
		t.Errorf("AnnotationFile = %q, want empty", task.AnnotationFile)
	}
	if task.PerCategoryMetrics {
		t.Error("PerCategoryMetrics = true, want false")
	}
}
