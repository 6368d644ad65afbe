package experiment

import (
	"reflect"
	"testing"

	"github.com/visionforge-labs/visionforge/internal/configs/core"
)

type stubTask struct {
	Name string `yaml:"name"`
}

func (s stubTask) TaskName() string { return "stub" }

func stubFactory() *core.ExperimentConfig {
	return &core.ExperimentConfig{
		Runtime: core.DefaultRuntime(),
		Task:    stubTask{Name: "stub"},
		Trainer: core.DefaultTrainer(),
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := New()

	if err := r.Register("stub", stubFactory); err != nil {
		t.Fatalf("Register: %v", err)
	}

	factory, ok := r.Lookup("stub")
	if !ok {
		t.Fatal("Lookup returned false for registered name")
	}
	cfg := factory()
	if cfg.Task.TaskName() != "stub" {
		t.Errorf("TaskName() = %q, want %q", cfg.Task.TaskName(), "stub")
	}

	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup returned true for unregistered name")
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := New()

	if err := r.Register("stub", stubFactory); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := r.Register("stub", stubFactory); err == nil {
		t.Error("second Register of same name succeeded, want error")
	}
}

func TestRegistry_RejectsBadInput(t *testing.T) {
	r := New()

	if err := r.Register("", stubFactory); err == nil {
		t.Error("Register with empty name succeeded, want error")
	}
	if err := r.Register("stub", nil); err == nil {
		t.Error("Register with nil factory succeeded, want error")
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := New()
	for _, name := range []string{"zebra", "alpha", "middle"} {
		if err := r.Register(name, stubFactory); err != nil {
			t.Fatalf("Register(%q): %v", name, err)
		}
	}

	want := []string{"alpha", "middle", "zebra"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	r := New()
	r.MustRegister("stub", stubFactory)

	defer func() {
		if recover() == nil {
			t.Error("MustRegister on duplicate did not panic")
		}
	}()
	r.MustRegister("stub", stubFactory)
}

func TestDefaultRegistry_Delegates(t *testing.T) {
	const name = "registry-test-delegate"

	if err := Register(name, stubFactory); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, ok := Lookup(name); !ok {
		t.Error("Lookup on default registry returned false")
	}

	found := false
	for _, n := range Names() {
		if n == name {
			found = true
		}
	}
	if !found {
		t.Errorf("Names() does not contain %q", name)
	}
}
