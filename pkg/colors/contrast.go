package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Luminance returns the WCAG relative luminance of a hex colour, 0 (black)
// to 1 (white). Invalid colours count as black.
func Luminance(hexColor string) float64 {
	r, g, b, ok := parseHex(hexColor)
	if !ok {
		return 0
	}
	return 0.2126*linear(r) + 0.7152*linear(g) + 0.0722*linear(b)
}

func linear(c int64) float64 {
	v := float64(c) / 255.0
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two colours,
// from 1 (none) to 21.
func ContrastRatio(fg, bg string) float64 {
	l1, l2 := Luminance(fg), Luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// IsLight reports whether the colour is closer to white than black.
func IsLight(hexColor string) bool {
	return Luminance(hexColor) > 0.5
}

// TextOn picks white or black text for a background, preferring white
// whenever it reaches the 3:1 large-text ratio.
func TextOn(bg string) string {
	if ContrastRatio("#ffffff", bg) >= 3.0 {
		return "#ffffff"
	}
	if ContrastRatio("#000000", bg) >= 3.0 || IsLight(bg) {
		return "#000000"
	}
	return "#ffffff"
}

// EnsureContrast nudges fg away from bg until minRatio is met (4.5 for
// WCAG AA), falling back to black or white.
func EnsureContrast(fg, bg string, minRatio float64) string {
	if ContrastRatio(fg, bg) >= minRatio {
		return fg
	}
	lighten := Luminance(fg) > Luminance(bg)
	for step := 0.1; step <= 1.0; step += 0.1 {
		adjusted := Darken(fg, step)
		if lighten {
			adjusted = Lighten(fg, step)
		}
		if ContrastRatio(adjusted, bg) >= minRatio {
			return adjusted
		}
	}
	if Luminance(bg) > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}

// Lighten moves a colour towards white by amount (0 to 1).
func Lighten(hexColor string, amount float64) string {
	r, g, b, ok := parseHex(hexColor)
	if !ok {
		return hexColor
	}
	up := func(c int64) int64 { return c + int64(float64(255-c)*amount) }
	return formatHex(up(r), up(g), up(b))
}

// Darken moves a colour towards black by amount (0 to 1).
func Darken(hexColor string, amount float64) string {
	r, g, b, ok := parseHex(hexColor)
	if !ok {
		return hexColor
	}
	down := func(c int64) int64 { return int64(float64(c) * (1 - amount)) }
	return formatHex(down(r), down(g), down(b))
}

func parseHex(hexColor string) (r, g, b int64, ok bool) {
	hex := strings.TrimPrefix(hexColor, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	var errR, errG, errB error
	r, errR = strconv.ParseInt(hex[0:2], 16, 64)
	g, errG = strconv.ParseInt(hex[2:4], 16, 64)
	b, errB = strconv.ParseInt(hex[4:6], 16, 64)
	if errR != nil || errG != nil || errB != nil {
		return 0, 0, 0, false
	}
	return r, g, b, true
}

func formatHex(r, g, b int64) string {
	clamp := func(v int64) int64 { return max(0, min(255, v)) }
	return fmt.Sprintf("#%02x%02x%02x", clamp(r), clamp(g), clamp(b))
}
