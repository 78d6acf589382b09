package core

// Color identifies a foreground color for a screen cell.
// The low values are named colors; values from shadeBase up are tile
// shade buckets that the active theme resolves to a concrete hue.
type Color uint8

// Predefined colors for chrome elements (borders, HUD, overlays).
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// ShadeCount is the number of tile shade buckets. Bucket 0 is the
// lightest (a freshly spawned 2), bucket ShadeCount-1 the most saturated
// (the win tile and anything beyond).
const ShadeCount = 11

const shadeBase Color = 32

// Shade returns the color for shade bucket n, clamped to the valid range.
func Shade(n int) Color {
	if n < 0 {
		n = 0
	}
	if n >= ShadeCount {
		n = ShadeCount - 1
	}
	return shadeBase + Color(n)
}

// ShadeIndex extracts the bucket index from a shade color.
// The second result is false for named colors.
func ShadeIndex(c Color) (int, bool) {
	if c < shadeBase || c >= shadeBase+ShadeCount {
		return 0, false
	}
	return int(c - shadeBase), true
}

// ShadeForValue maps a tile value to its shade bucket color. The bucket
// grows with log2 of the value: 2 maps to bucket 0, 4 to bucket 1, and
// 2048 and above saturate at the last bucket.
func ShadeForValue(value int) Color {
	n := 0
	for v := value; v > 2; v >>= 1 {
		n++
	}
	return Shade(n)
}
