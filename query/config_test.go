package query

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/alkit/core"
	"github.com/rushteam/alkit/utility"
)

func testFactory() *utility.MeasureFactory {
	f := utility.NewMeasureFactory()
	f.Register("uncertainty", func(*utility.MeasureFactory, map[string]any) (utility.Measure, error) {
		return utility.Uncertainty{}, nil
	})
	return f
}

func TestParseYAML_BuildStrategy(t *testing.T) {
	cfg, err := ParseYAML([]byte(`
strategy:
  name: most_uncertain
  measure:
    type: uncertainty
  n_instances: 3
  shuffle_ties: true
  seed: 42
  options:
    entropy_base: 2
`))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	s, err := cfg.BuildStrategy(testFactory())
	if err != nil {
		t.Fatalf("BuildStrategy() error = %v", err)
	}
	if s.Name != "most_uncertain" || s.N != 3 || s.Options.EntropyBase != 2 {
		t.Errorf("strategy = %+v", s)
	}
	if s.Rand == nil {
		t.Errorf("shuffle_ties should set a random source")
	}
	if s.Measure.Name() != "uncertainty" {
		t.Errorf("measure = %s", s.Measure.Name())
	}
}

func TestBuildStrategy_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no measure", "strategy:\n  name: x\n"},
		{"unknown measure", "strategy:\n  measure:\n    type: margin\n"},
		{"negative n", "strategy:\n  measure:\n    type: uncertainty\n  n_instances: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseYAML([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParseYAML() error = %v", err)
			}
			if _, err := cfg.BuildStrategy(testFactory()); !core.IsConfigurationError(err) {
				t.Errorf("BuildStrategy() err = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadFromJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strategy.json")
	data := `{"strategy": {"name": "j", "measure": {"type": "uncertainty"}, "n_instances": 2}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromJSON(path)
	if err != nil {
		t.Fatalf("LoadFromJSON() error = %v", err)
	}
	if cfg.Strategy.Name != "j" || cfg.Strategy.NInstances != 2 || cfg.Strategy.Measure.Type != "uncertainty" {
		t.Errorf("config = %+v", cfg.Strategy)
	}
	if _, err := LoadFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("LoadFromYAML() expected error for missing file")
	}
}
