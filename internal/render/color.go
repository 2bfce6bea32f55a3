package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var StyleErr = errors.New("invalid style")

// single letter colour codes as used in the demo reports
var codes = map[string]color.Color{
	"w": color.White,
	"k": color.Black,
	"r": colornames.Red,
	"g": colornames.Green,
	"b": colornames.Blue,
	"y": colornames.Yellow,
	"c": colornames.Cyan,
	"m": colornames.Magenta,
}

// ParseColor parses a '#rrggbb', '#rrggbbaa', a single letter code or an svg colour name.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if c, ok := codes[s]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown colour '%s': %w", s, StyleErr)
}

// ParseColors parses all given colours.
func ParseColors(ss []string) ([]color.Color, error) {
	cc := make([]color.Color, len(ss))
	for i, s := range ss {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		cc[i] = c
	}
	return cc, nil
}

func parseHex(h string) (color.Color, error) {
	if len(h) != 6 && len(h) != 8 {
		return nil, fmt.Errorf("hex colour '#%s' needs 6 or 8 digits: %w", h, StyleErr)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("hex colour '#%s': %s: %w", h, err.Error(), StyleErr)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
