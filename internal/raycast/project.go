package raycast

// Projection is the vertical extent of one wall slice on screen.
type Projection struct {
	DrawStart int
	DrawEnd   int
	// LineHeight is unclamped and may exceed the screen height. Texture
	// stepping uses it so clipped walls keep their aspect ratio.
	LineHeight int
}

// Project converts a ray result into screen rows using the pinhole model:
// slice height is inversely proportional to perpendicular distance.
func Project(res RayResult, screenHeight int) Projection {
	dist := res.Distance
	if dist < MinWallDistance {
		dist = MinWallDistance
	}
	lineHeight := int(float64(screenHeight) / dist)
	start := (screenHeight - lineHeight) / 2
	end := start + lineHeight - 1
	return Projection{
		DrawStart:  clampInt(start, 0, screenHeight-1),
		DrawEnd:    clampInt(end, 0, screenHeight-1),
		LineHeight: lineHeight,
	}
}

// unclampedStart is the row where the wall slice would begin without
// clipping. It is negative for walls taller than the screen.
func (p Projection) unclampedStart(screenHeight int) int {
	return (screenHeight - p.LineHeight) / 2
}
