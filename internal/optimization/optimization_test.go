package optimization

import (
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Optimizer.Type != "" {
		t.Errorf("Optimizer.Type = %q, want empty", cfg.Optimizer.Type)
	}
	want := Adam{Beta1: 0.9, Beta2: 0.999, Epsilon: 1e-7}
	if cfg.Optimizer.Adam != want {
		t.Errorf("Optimizer.Adam = %+v, want %+v", cfg.Optimizer.Adam, want)
	}
	if cfg.LearningRate.Type != "" || cfg.Warmup.Type != "" {
		t.Errorf("LearningRate.Type/Warmup.Type = %q/%q, want empty",
			cfg.LearningRate.Type, cfg.Warmup.Type)
	}
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(map[string]any{
		"optimizer": map[string]any{
			"type": "sgd",
			"sgd": map[string]any{
				"momentum": 0.9,
			},
		},
		"learning_rate": map[string]any{
			"type": "stepwise",
			"stepwise": map[string]any{
				"boundaries": []int{26277, 30887},
				"values":     []float64{0.32, 0.032, 0.0032},
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
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.Optimizer.Type != "sgd" {
		t.Errorf("Optimizer.Type = %q, want %q", cfg.Optimizer.Type, "sgd")
	}
	if cfg.Optimizer.SGD.Momentum != 0.9 {
		t.Errorf("SGD.Momentum = %v, want 0.9", cfg.Optimizer.SGD.Momentum)
	}
	if !reflect.DeepEqual(cfg.LearningRate.Stepwise.Boundaries, []int{26277, 30887}) {
		t.Errorf("Stepwise.Boundaries = %v", cfg.LearningRate.Stepwise.Boundaries)
	}
	if !reflect.DeepEqual(cfg.LearningRate.Stepwise.Values, []float64{0.32, 0.032, 0.0032}) {
		t.Errorf("Stepwise.Values = %v", cfg.LearningRate.Stepwise.Values)
	}
	if cfg.Warmup.Linear.WarmupSteps != 500 {
		t.Errorf("Linear.WarmupSteps = %d, want 500", cfg.Warmup.Linear.WarmupSteps)
	}

	// Untouched payloads keep their defaults.
	if cfg.Optimizer.Adam.Beta1 != 0.9 {
		t.Errorf("Optimizer.Adam.Beta1 = %v, want default 0.9", cfg.Optimizer.Adam.Beta1)
	}
}

func TestNewConfig_PartialMapping(t *testing.T) {
	cfg, err := NewConfig(map[string]any{
		"optimizer": map[string]any{
			"type": "adam",
		},
	})
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Optimizer.Type != "adam" {
		t.Errorf("Optimizer.Type = %q, want %q", cfg.Optimizer.Type, "adam")
	}
	if cfg.Optimizer.Adam.Epsilon != 1e-7 {
		t.Errorf("Adam.Epsilon = %v, want default 1e-7", cfg.Optimizer.Adam.Epsilon)
	}
}

func TestNewConfig_UnknownKey(t *testing.T) {
	_, err := NewConfig(map[string]any{
		"optimiser": map[string]any{
			"type": "sgd",
		},
	})
	if err == nil {
		t.Fatal("NewConfig with unknown key succeeded, want error")
	}
}

func TestMustNewConfig_PanicsOnUnknownKey(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewConfig with unknown key did not panic")
		}
	}()
	MustNewConfig(map[string]any{"bogus": true})
}
