package core

import (
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "Round down", value: 1.234, expected: 1.23},
		{name: "Round up", value: 1.235, expected: 1.24},
		{name: "Half away from zero", value: 2.675, expected: 2.68},
		{name: "Negative half away from zero", value: -2.675, expected: -2.68},
		{name: "Already two places", value: 10.10, expected: 10.1},
		{name: "Zero", value: 0, expected: 0.0},
		{name: "Float drift collapses", value: 0.1 + 0.2, expected: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check.Equal(t, tt.expected, round2(tt.value))
		})
	}
}
