package conv

import (
	"reflect"
	"testing"
)

func TestSliceAnyToFloat64(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   []float64
		wantOK bool
	}{
		{"yaml mixed numbers", []any{1, 0.5, int64(-2)}, []float64{1, 0.5, -2}, true},
		{"float slice", []float64{0.1, 0.2}, []float64{0.1, 0.2}, true},
		{"string element", []any{1, "heavy"}, nil, false},
		{"not a slice", "1,2", nil, false},
		{"nil", nil, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SliceAnyToFloat64(tt.input)
			if ok != tt.wantOK || !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SliceAnyToFloat64(%v) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestConfigGet(t *testing.T) {
	cfg := map[string]any{"expr": "margin", "weight": 2}
	if got := ConfigGet(cfg, "expr", ""); got != "margin" {
		t.Errorf("ConfigGet(expr) = %q", got)
	}
	if got := ConfigGet(cfg, "weight", "none"); got != "none" {
		t.Errorf("ConfigGet(weight) with wrong type = %q, want default", got)
	}
}
