package svgunit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2.5", 240},
		{"2.5cm", 94},
		{"2.5mm", 9},
		{"2 4/8in", 240},
		{"2 4/16in", 216},
		{"1", 96},
		{"5/10", 48},
		{"27in", 2592},
		{"1 1/2in", 144},
		{"5/8in", 60},
		{"1.544in", 148},
		{"300px", 300},
		{"210mm", 794},
	}
	for _, tt := range tests {
		got, err := ParseLength(tt.in, 96)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseLengthInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "12pt", "1.5px", "1 half", "1/0", "mmmm"} {
		_, err := ParseLength(in, 96)
		assert.ErrorIs(t, err, ErrLength, in)
	}
}

func TestConversions(t *testing.T) {
	assert.Equal(t, 96, InchesToPixels(1, 96))
	assert.Equal(t, 38, CmToPixels(1, 96))
	assert.Equal(t, 4, MmToPixels(1, 96))
	assert.InDelta(t, 1, CmToInches(2.54), 1e-12)
	assert.InDelta(t, 1, MmToInches(25.4), 1e-12)
	assert.InDelta(t, 25.4, InchesToMm(1), 1e-12)
	assert.InDelta(t, 2.54, InchesToCm(1), 1e-12)
	assert.InDelta(t, 25.4, PixelsToMm(96, 96), 1e-12)
	assert.InDelta(t, 2.54, PixelsToCm(96, 96), 1e-12)
	assert.InDelta(t, 0.5, PixelsToInches(48, 96), 1e-12)
}

func TestPxToLength(t *testing.T) {
	assert.Equal(t, "25.40mm", PxToLength(96, "mm", 96))
	assert.Equal(t, "2.54cm", PxToLength(96, "cm", 96))
	assert.Equal(t, "0.50in", PxToLength(48, "in", 96))
	assert.Equal(t, "48px", PxToLength(48, "px", 96))
	assert.Equal(t, "0.50in", PxToLength(48, "furlong", 96))
}

func TestExtractUnit(t *testing.T) {
	assert.Equal(t, "mm", ExtractUnit("12mm"))
	assert.Equal(t, "in", ExtractUnit("2 4/8in"))
	assert.Equal(t, "", ExtractUnit("12"))
	assert.Equal(t, "", ExtractUnit("5/10"))
	assert.Equal(t, "", ExtractUnit("mm"))
	assert.Equal(t, "", ExtractUnit("1m"))
}

func TestParseAngle(t *testing.T) {
	rad, err := ParseAngle("90")
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, rad, 1e-12)
	assert.InDelta(t, Deg90, rad, 1e-12)

	rad, err = ParseAngle("360")
	require.NoError(t, err)
	assert.InDelta(t, Deg360, rad, 1e-12)

	_, err = ParseAngle("361")
	assert.ErrorIs(t, err, ErrAngleOutOfRange)
	_, err = ParseAngle("-1")
	assert.ErrorIs(t, err, ErrAngleOutOfRange)
	_, err = ParseAngle("right")
	assert.Error(t, err)
}

func TestParseColour(t *testing.T) {
	r, g, b, a, err := ParseColour("#0c0c0c")
	require.NoError(t, err)
	assert.Equal(t, 0.047058823529411764, r)
	assert.Equal(t, 0.047058823529411764, g)
	assert.Equal(t, 0.047058823529411764, b)
	assert.Equal(t, 1.0, a)

	r, g, b, a, err = ParseColour("#FF00AA33")
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)
	assert.Equal(t, 0.0, g)
	assert.Equal(t, 0.6666666666666666, b)
	assert.Equal(t, 0.2, a)

	_, _, _, _, err = ParseColour("00ff00")
	assert.NoError(t, err)

	for _, in := range []string{"invalid", "i", "#i", "#12345", "#gg0000"} {
		_, _, _, _, err := ParseColour(in)
		assert.ErrorIs(t, err, ErrColour, in)
	}
}
