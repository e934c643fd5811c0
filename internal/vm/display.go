package vm

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// FrameBuffer is the monochrome display, stored row-major with the pixel at
// column x and row y at index y*DisplayWidth + x.
type FrameBuffer [DisplayWidth * DisplayHeight]bool

// Pixel returns whether the pixel at column x and row y is set. Coordinates
// outside of the display are reported as unset.
func (f FrameBuffer) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return f[y*DisplayWidth+x]
}

// Clear unsets all pixels.
func (f *FrameBuffer) Clear() {
	*f = FrameBuffer{}
}

// Lit returns the number of set pixels.
func (f FrameBuffer) Lit() int {
	var n int
	for _, on := range f {
		if on {
			n++
		}
	}
	return n
}

// flip toggles the pixel at the given coordinates, wrapping them around
// the display edges.
func (f *FrameBuffer) flip(x, y int) {
	x %= DisplayWidth
	y %= DisplayHeight
	index := y*DisplayWidth + x
	f[index] = !f[index]
}
