package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "round number", input: 750000, expected: "US$ 750,000"},
		{name: "zero", input: 0, expected: "US$ 0"},
		{name: "rounds decimals", input: 123456.78, expected: "US$ 123,457"},
		{name: "millions", input: 2500000, expected: "US$ 2,500,000"},
		{name: "small", input: 999, expected: "US$ 999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPrice(tt.input))
		})
	}
}

func TestIsSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "https://example.com", expected: true},
		{input: "http://example.com/photo.jpg", expected: true},
		{input: "javascript:alert(1)", expected: false},
		{input: "data:text/html,<h1>hi</h1>", expected: false},
		{input: "not-a-url", expected: false},
		{input: "", expected: false},
		{input: "ftp://example.com/file", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSafeURL(tt.input))
		})
	}
}
