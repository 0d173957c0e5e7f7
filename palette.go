package mtext

import "math"

var aciBase = [10]RGB{
	{0, 0, 0},
	{255, 0, 0},
	{255, 255, 0},
	{0, 255, 0},
	{0, 255, 255},
	{0, 0, 255},
	{255, 0, 255},
	{255, 255, 255},
	{128, 128, 128},
	{192, 192, 192},
}

var aciGrays = [6]uint8{51, 80, 105, 130, 190, 255}

// aciValues are the brightness steps of each hue column 10..249.
var aciValues = [5]float64{255, 189, 129, 104, 79}

// ACIToRGB returns the standard palette color of an ACI index. ByBlock,
// ByLayer and out of range indices have no fixed color.
func ACIToRGB(aci int) (RGB, bool) {
	switch {
	case aci <= ACIByBlock || aci >= ACIByLayer:
		return RGB{}, false
	case aci < 10:
		return aciBase[aci], true
	case aci >= 250:
		g := aciGrays[aci-250]
		return RGB{g, g, g}, true
	}
	hue := float64(aci/10-1) * 15
	step := aci % 10
	sat := 1.0
	if step%2 == 1 {
		sat = 1.0 / 3
	}
	return hsv(hue, sat, aciValues[step/2]), true
}

func hsv(hue, sat, val float64) RGB {
	c := val * sat
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := val - c
	var r, g, b float64
	switch {
	case hue < 60:
		r, g = c, x
	case hue < 120:
		r, g = x, c
	case hue < 180:
		g, b = c, x
	case hue < 240:
		g, b = x, c
	case hue < 300:
		r, b = x, c
	default:
		r, b = c, x
	}
	ch := func(v float64) uint8 { return uint8(math.Round(v + m)) }
	return RGB{ch(r), ch(g), ch(b)}
}
