package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geosvg/svg"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want svg.Color
	}{
		{"red", svg.Named("red")},
		{"  CornflowerBlue ", svg.Named("CornflowerBlue")},
		{"rgb(1, 2, 3)", svg.RGB{R: 1, G: 2, B: 3}},
		{"RGB(255,255,0)", svg.RGB{R: 255, G: 255}},
		{"hsl(400, 50%, 25%)", svg.HSL{H: 400, S: 50, L: 25}},
		{"#ff8000", svg.Hex(0xFF8000)},
		{"#0f0", svg.Hex(0x00FF00)},
		{"0xABCDEF", svg.Hex(0xABCDEF)},
		{"0x1", svg.Hex(1)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorRoundTripsRenderedForm(t *testing.T) {
	for _, c := range []svg.Color{svg.Named("teal"), svg.RGB{R: 9, G: 8, B: 7}, svg.Hex(0x123456), svg.HSL{H: 200, S: 40, L: 60}} {
		got, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestParseColorErrors(t *testing.T) {
	tests := map[string]string{
		"":                "empty color",
		"rgb(1,2)":        "three components",
		"rgb(1,2,300)":    "bad color component",
		"rgb(a,b,c)":      "bad color component",
		"hsl(1,2%,101x%)": "bad color component",
		"#12":             "bad hex color",
		"#gggggg":         "bad hex color",
		"0xZZ":            "bad hex color",
		"light blue":      "bad color name",
		"url(#gradient)":  "bad color name",
	}
	for in, want := range tests {
		_, err := ParseColor(in)
		if assert.Error(t, err, in) {
			assert.Contains(t, err.Error(), want, in)
		}
	}
}

func TestTerminalHex(t *testing.T) {
	tests := []struct {
		in   svg.Color
		want string
		ok   bool
	}{
		{svg.RGB{R: 255, G: 128}, "#ff8000", true},
		{svg.Hex(0x00FF00), "#00ff00", true},
		{svg.HSL{H: 360, S: 100, L: 50}, "#ff0000", true},
		{svg.Named("red"), "", false},
		{nil, "", false},
	}
	for _, tt := range tests {
		got, ok := TerminalHex(tt.in)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.want, got)
	}
}
