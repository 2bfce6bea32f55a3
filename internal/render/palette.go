package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot/palette"
)

// DefaultShades is the number of colours sampled from continuous gradients.
const DefaultShades = 256

// Colors is a fixed list of colours, one per category.
type Colors []color.Color

func (c Colors) Colors() []color.Color {
	return c
}

// Discrete creates a categorical palette.
func Discrete(cc ...color.Color) Colors {
	return Colors(cc)
}

// Jet returns n colours of the jet colour map,
// dark blue over the hues of the rainbow to dark red.
func Jet(n int) Colors {
	if n < 2 {
		n = 2
	}
	cc := make(Colors, n)
	for i := range cc {
		x := float64(i) / float64(n-1)
		cc[i] = color.NRGBAModel.Convert(palette.HSVA{H: hue(x), S: 1, V: shade(x), A: 1})
	}
	return cc
}

// hue runs from blue to red over the inner three quarters.
func hue(x float64) float64 {
	t := math.Min(math.Max((x-1.0/8)/(6.0/8), 0), 1)
	return float64(palette.Blue) * (1 - t)
}

// shade darkens the outer eighths down to half value.
func shade(x float64) float64 {
	switch {
	case x < 1.0/8:
		return 0.5 + 4*x
	case x > 7.0/8:
		return 0.5 + 4*(1-x)
	}
	return 1
}

// NewPalette creates a palette by name or from an explicit colour list.
// Named palettes are continuous and sampled with n colours, DefaultShades if n is 0.
func NewPalette(name string, colors []string, n int) (palette.Palette, error) {
	if n <= 0 {
		n = DefaultShades
	}
	switch strings.ToLower(name) {
	case "jet":
		return Jet(n), nil
	case "":
		if len(colors) == 0 {
			return nil, fmt.Errorf("palette without name or colours: %w", StyleErr)
		}
		cc, err := ParseColors(colors)
		if err != nil {
			return nil, err
		}
		return Discrete(cc...), nil
	default:
		return nil, fmt.Errorf("unknown palette '%s': %w", name, StyleErr)
	}
}
