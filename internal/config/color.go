package config

import (
	"errors"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"geosvg/svg"
)

// ParseColor reads the textual forms svg.Color renders back into a
// value: rgb(r,g,b), hsl(h,s%,l%), #rgb, #rrggbb, 0xRRGGBB, or a bare
// name.
func ParseColor(s string) (svg.Color, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case s == "":
		return nil, errors.New("empty color")
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		v, err := channels(s[4:len(s)-1], 255, 255, 255)
		if err != nil {
			return nil, err
		}
		return svg.RGB{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2])}, nil
	case strings.HasPrefix(lower, "hsl(") && strings.HasSuffix(lower, ")"):
		v, err := channels(strings.ReplaceAll(s[4:len(s)-1], "%", ""), 65535, 255, 255)
		if err != nil {
			return nil, err
		}
		return svg.HSL{H: uint16(v[0]), S: uint8(v[1]), L: uint8(v[2])}, nil
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, errors.New("bad hex color " + strconv.Quote(s))
		}
		r, g, b := c.RGB255()
		return svg.Hex(uint32(r)<<16 | uint32(g)<<8 | uint32(b)), nil
	case strings.HasPrefix(lower, "0x"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return nil, errors.New("bad hex color " + strconv.Quote(s))
		}
		return svg.Hex(v), nil
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return nil, errors.New("bad color name " + strconv.Quote(s))
		}
	}
	return svg.Named(s), nil
}

// channels parses three comma-separated integers bounded by limits.
func channels(s string, limits ...int) ([3]int, error) {
	var out [3]int
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, errors.New("color needs three components, got " + strconv.Itoa(len(parts)))
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > limits[i] {
			return out, errors.New("bad color component " + strconv.Quote(strings.TrimSpace(p)))
		}
		out[i] = v
	}
	return out, nil
}

// TerminalHex converts c to a "#rrggbb" string a terminal can display.
// Named colors have no table here, so ok is false for them.
func TerminalHex(c svg.Color) (hex string, ok bool) {
	switch c := c.(type) {
	case svg.RGB:
		return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex(), true
	case svg.Hex:
		return colorful.Color{
			R: float64(c>>16&0xff) / 255,
			G: float64(c>>8&0xff) / 255,
			B: float64(c&0xff) / 255,
		}.Hex(), true
	case svg.HSL:
		return colorful.Hsl(float64(c.H%360), float64(min(c.S, 100))/100, float64(min(c.L, 100))/100).Clamped().Hex(), true
	}
	return "", false
}
