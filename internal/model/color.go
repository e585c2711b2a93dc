package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB fill color with each component normalized to [0, 1].
// The zero value is black, which is also the default redaction fill.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Black is the default redaction fill color.
var Black = Color{R: 0, G: 0, B: 0}

// Valid reports whether every component is within [0, 1].
func (c Color) Valid() bool {
	for _, v := range []float64{c.R, c.G, c.B} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// String returns the color in "r,g,b" form, suitable for round-tripping
// through ParseColor.
func (c Color) String() string {
	return fmt.Sprintf("%g,%g,%g", c.R, c.G, c.B)
}

// ParseColor parses a color from "r,g,b" form with each component a decimal
// number in [0, 1]. Surrounding whitespace around components is ignored.
// An empty string yields Black, so an unset flag or config value falls
// through to the default.
func ParseColor(s string) (Color, error) {
	if strings.TrimSpace(s) == "" {
		return Black, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("invalid color %q: expected three comma-separated components", s)
	}

	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color component %q: %w", p, err)
		}
		vals[i] = v
	}

	c := Color{R: vals[0], G: vals[1], B: vals[2]}
	if !c.Valid() {
		return Color{}, fmt.Errorf("invalid color %q: components must be in [0, 1]", s)
	}
	return c, nil
}
