package matio

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	m, err := ReadCSV(strings.NewReader("# x0, x1\n1, 2.5\n-3,4e-1\n"))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if r, c := m.Dims(); r != 2 || c != 2 {
		t.Fatalf("Dims() = %d x %d, want 2 x 2", r, c)
	}
	if m.At(0, 1) != 2.5 || m.At(1, 0) != -3 || m.At(1, 1) != 0.4 {
		t.Errorf("unexpected values: %v %v %v", m.At(0, 1), m.At(1, 0), m.At(1, 1))
	}
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"only comments", "# nothing\n"},
		{"ragged", "1,2\n3\n"},
		{"not a number", "1,abc\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tt.input)); err == nil {
				t.Errorf("ReadCSV(%q) expected error", tt.input)
			}
		})
	}
}

func TestWriteColumn(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteColumn(&buf, []float64{0.3, 1, -2.5e-7}); err != nil {
		t.Fatalf("WriteColumn() error = %v", err)
	}
	if got := buf.String(); got != "0.3\n1\n-2.5e-07\n" {
		t.Errorf("WriteColumn() = %q", got)
	}
}
