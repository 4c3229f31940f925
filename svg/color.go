package svg

import (
	"fmt"
	"strconv"
)

// Color is a paint value usable for fill and stroke. The set of
// implementations is closed: Named, RGB, Hex and HSL.
type Color interface {
	fmt.Stringer
	color()
}

// Named is a CSS color keyword such as "red". It is emitted verbatim.
type Named string

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Hex is a packed 0xRRGGBB color.
type Hex uint32

// HSL is hue in degrees and saturation/lightness in percent.
type HSL struct {
	H    uint16
	S, L uint8
}

func (Named) color() {}
func (RGB) color()   {}
func (Hex) color()   {}
func (HSL) color()   {}

func (c Named) String() string { return string(c) }

func (c RGB) String() string {
	return "rgb(" + strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," + strconv.Itoa(int(c.B)) + ")"
}

func (c Hex) String() string { return fmt.Sprintf("0x%X", uint32(c)) }

// String wraps the hue into [0, 360) and clamps saturation and lightness
// to 100.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d,%d%%,%d%%)", c.H%360, min(c.S, 100), min(c.L, 100))
}
