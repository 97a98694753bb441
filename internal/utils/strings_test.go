package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple word",
			input:    "budi",
			expected: "Budi",
		},
		{
			name:     "multiple words",
			input:    "budi santoso",
			expected: "Budi Santoso",
		},
		{
			name:     "mixed case collapses",
			input:    "  bUdI   sanTOSO ",
			expected: "Budi Santoso",
		},
		{
			name:     "empty",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TitleCase(tt.input))
		})
	}
}

func TestNormalizePlate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{
			name:     "already formatted",
			input:    "1-ABC-123",
			expected: "1-ABC-123",
			ok:       true,
		},
		{
			name:     "compact lowercase",
			input:    "1abc123",
			expected: "1-ABC-123",
			ok:       true,
		},
		{
			name:     "spaces and dots",
			input:    " 7 xyz . 987 ",
			expected: "7-XYZ-987",
			ok:       true,
		},
		{
			name:  "letters in wrong slot",
			input: "a-bcd-123",
			ok:    false,
		},
		{
			name:  "too many digits",
			input: "12-ABC-123",
			ok:    false,
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePlate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestValidTimeOfDay(t *testing.T) {
	assert.True(t, ValidTimeOfDay("00:00"))
	assert.True(t, ValidTimeOfDay("08:30"))
	assert.True(t, ValidTimeOfDay("23:59"))

	assert.False(t, ValidTimeOfDay("24:00"))
	assert.False(t, ValidTimeOfDay("8:30"))
	assert.False(t, ValidTimeOfDay("12:60"))
	assert.False(t, ValidTimeOfDay("noon"))
	assert.False(t, ValidTimeOfDay(""))
}
