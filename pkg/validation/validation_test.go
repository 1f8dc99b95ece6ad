package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCityName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"simple", "Curitiba", true},
		{"with spaces", "Rio de Janeiro", true},
		{"accented", "São Paulo", true},
		{"surrounding whitespace", "  Salvador  ", true},
		{"empty", "", false},
		{"blank", "   ", false},
		{"control character", "Rio\nde Janeiro", false},
		{"too long", strings.Repeat("a", MaxCityNameLength+1), false},
		{"max length", strings.Repeat("ã", MaxCityNameLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidCityName(tt.input))
		})
	}
}

func TestTrimAndValidate(t *testing.T) {
	trimmed, ok := TrimAndValidate("  Belo Horizonte ")
	assert.True(t, ok)
	assert.Equal(t, "Belo Horizonte", trimmed)

	_, ok = TrimAndValidate("\t")
	assert.False(t, ok)
	assert.False(t, IsNotEmpty(" "))
}
