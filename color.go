package mtext

import (
	"errors"
	"fmt"
)

// ErrColorRange reports an ACI value outside [0, 256].
var ErrColorRange = errors.New("aci color out of range")

const (
	// ACIByBlock is the ByBlock color index.
	ACIByBlock = 0
	// ACIByLayer is the ByLayer color index and the default.
	ACIByLayer = 256
	maxACI     = 256
)

// RGB is an explicit true color.
type RGB struct {
	R, G, B uint8
}

// RGB2Int packs c with R in the low byte, the order MText \c values use.
func RGB2Int(c RGB) int {
	return int(c.R) | int(c.G)<<8 | int(c.B)<<16
}

// Int2RGB unpacks a value produced by RGB2Int. Bits above 24 are ignored.
func Int2RGB(v int) RGB {
	return RGB{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16)}
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color is either an ACI index or an RGB value, never both.
type Color struct {
	aci   int
	rgb   RGB
	isRGB bool
}

// ACIColor returns an indexed color.
func ACIColor(aci int) (Color, error) {
	if aci < 0 || aci > maxACI {
		return Color{}, fmt.Errorf("%w: %d", ErrColorRange, aci)
	}
	return Color{aci: aci}, nil
}

// TrueColor returns an RGB color.
func TrueColor(rgb RGB) Color {
	return Color{rgb: rgb, isRGB: true}
}

// ACI returns the color index; ok is false for RGB colors.
func (c Color) ACI() (aci int, ok bool) {
	if c.isRGB {
		return 0, false
	}
	return c.aci, true
}

// RGB returns the true color; ok is false for indexed colors.
func (c Color) RGB() (rgb RGB, ok bool) {
	if !c.isRGB {
		return RGB{}, false
	}
	return c.rgb, true
}

// Equal reports whether both colors select the same value.
func (c Color) Equal(o Color) bool {
	if c.isRGB != o.isRGB {
		return false
	}
	if c.isRGB {
		return c.rgb == o.rgb
	}
	return c.aci == o.aci
}

func (c Color) String() string {
	if c.isRGB {
		return c.rgb.String()
	}
	switch c.aci {
	case ACIByBlock:
		return "ByBlock"
	case ACIByLayer:
		return "ByLayer"
	}
	return fmt.Sprintf("aci(%d)", c.aci)
}
