package render

import (
	"image/color"

	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/utils/floatutils"
)

// viridis holds RGB anchor points of the viridis colormap, low value
// to high value.
var viridis = [][3]float64{
	{0.267, 0.005, 0.329},
	{0.283, 0.141, 0.458},
	{0.254, 0.265, 0.530},
	{0.207, 0.372, 0.553},
	{0.164, 0.471, 0.558},
	{0.128, 0.567, 0.551},
	{0.135, 0.659, 0.518},
	{0.267, 0.749, 0.441},
	{0.478, 0.821, 0.318},
	{0.741, 0.873, 0.150},
	{0.993, 0.906, 0.144},
}

// heatColour maps a value within [lo, hi] onto the viridis ramp by
// linear interpolation between the two nearest anchors.
func heatColour(v, lo, hi float64) color.Color {
	t := 0.5
	if hi > lo {
		t = floatutils.Clip((v-lo)/(hi-lo), 0, 1)
	}

	pos := t * float64(len(viridis)-1)
	i := int(pos)
	if i >= len(viridis)-1 {
		i = len(viridis) - 2
	}
	frac := pos - float64(i)

	a, b := viridis[i], viridis[i+1]
	return color.RGBA{
		R: uint8(255 * (a[0] + (b[0]-a[0])*frac)),
		G: uint8(255 * (a[1] + (b[1]-a[1])*frac)),
		B: uint8(255 * (a[2] + (b[2]-a[2])*frac)),
		A: 0xff,
	}
}
