package raycast

// PackRGB combines channels into the 0xRRGGBB form used by pixel sinks.
func PackRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackRGB splits a packed color into its channels.
func UnpackRGB(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// flatPalette is the debug color per wall face, indexed by Direction.
var flatPalette = [4]uint32{
	North: 0xFF0000,
	South: 0x00FF00,
	West:  0xFFFF00,
	East:  0x0000FF,
}

// FlatColor returns the debug color for a wall face.
func FlatColor(d Direction) uint32 {
	if d < North || d > East {
		return FallbackColor
	}
	return flatPalette[d]
}
