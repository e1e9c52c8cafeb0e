package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Laser Hair Removal", "laser-hair-removal"},
		{"Botox & Fillers", "botox-fillers"},
		{"  CoolSculpting  ", "coolsculpting"},
		{"IPL -- Photofacial", "ipl-photofacial"},
		{"100% Chemical Peel", "100-chemical-peel"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slugify(tt.input), "input %q", tt.input)
	}
}

func TestFormatQuoteReference(t *testing.T) {
	assert.Equal(t, "QT-000001", FormatQuoteReference(1))
	assert.Equal(t, "QT-000042", FormatQuoteReference(42))
	assert.Equal(t, "QT-1000000", FormatQuoteReference(1000000))
}
