package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{name: "Already E.164", input: "+2348012345678", expected: "+2348012345678"},
		{name: "National format", input: "08012345678", expected: "+2348012345678"},
		{name: "Country code without plus", input: "2348012345678", expected: "+2348012345678"},
		{name: "International prefix", input: "002348012345678", expected: "+2348012345678"},
		{name: "With separators", input: "+234 801-234 (5678)", expected: "+2348012345678"},
		{name: "Other country", input: "+6281234567890", expected: "+6281234567890"},
		{name: "Letters", input: "+234abc12345", expectError: true},
		{name: "Too short", input: "+2341", expectError: true},
		{name: "Too long", input: "+2348012345678901234", expectError: true},
		{name: "Empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizePhone(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "*********5678", MaskPhoneNumber("+2348012345678"))
	assert.Equal(t, "123", MaskPhoneNumber("123"))
}
