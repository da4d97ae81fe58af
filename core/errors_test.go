package core

import (
	"fmt"
	"testing"
)

func TestDomainError_Checks(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"configuration", ConfigurationError(ModuleUtility, "got %d measures", 2), IsConfigurationError, true},
		{"contract", ContractViolationError(ModuleUtility, "bad length"), IsContractViolation, true},
		{"numeric", NumericDomainError(ModuleUtility, "negative base"), IsNumericDomain, true},
		{"wrapped configuration", fmt.Errorf("build: %w", ConfigurationError(ModuleConfig, "x")), IsConfigurationError, true},
		{"wrong code", ContractViolationError(ModuleUtility, "x"), IsConfigurationError, false},
		{"plain error", fmt.Errorf("boom"), IsNumericDomain, false},
		{"nil", nil, IsContractViolation, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("check(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestDomainError_Message(t *testing.T) {
	err := ConfigurationError(ModuleUtility, "got %d measures but %d weights", 2, 1)
	if err.Error() != "utility: got 2 measures but 1 weights" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Module != ModuleUtility || err.Code != ErrorCodeInvalidConfig {
		t.Errorf("unexpected module/code: %s/%s", err.Module, err.Code)
	}
	if GetDomainError(fmt.Errorf("wrap: %w", err)) != err {
		t.Errorf("GetDomainError did not unwrap")
	}
}
