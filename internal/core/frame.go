package core

// TextColumns is the width of the frame's text grid in characters and
// TextLines its height in lines. Each text cell covers an 8x8 pixel band,
// so a 128x64 frame carries 16 columns by 8 lines.
const (
	TextColumns = 16
	TextLines   = 8
	textCell    = 8
)

// Frame is a monochrome 1-bit framebuffer games render into. It decouples
// game rendering from the terminal: games plot pixels and 8x8 sprites while
// the platform decides how to put the bits on an actual display.
//
// A frame also carries a line-based text overlay mirroring the fixed 16x8
// character grid of the display it models; text is drawn over the pixel
// content at flush time.
type Frame struct {
	width  int
	height int
	pixels []bool
	lines  [TextLines]string
}

// NewFrame creates a frame buffer with the given pixel dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Clear switches every pixel off and removes all text lines.
func (f *Frame) Clear() {
	for i := range f.pixels {
		f.pixels[i] = false
	}
	for i := range f.lines {
		f.lines[i] = ""
	}
}

// SetPixel switches the pixel at (x, y) on.
// Out-of-range coordinates are silently discarded.
func (f *Frame) SetPixel(x, y int) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pixels[y*f.width+x] = true
}

// Pixel reports whether the pixel at (x, y) is on.
// Out-of-range coordinates read as off.
func (f *Frame) Pixel(x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	return f.pixels[y*f.width+x]
}

// DrawSprite plots an 8x8 bitmap with its top-left corner at (x, y).
// Bitmaps are encoded horizontal-first: byte j is pixel row j, and bit i
// of that byte is the pixel at column i. Off bits leave the frame alone,
// so overlapping sprites merge rather than erase each other.
func (f *Frame) DrawSprite(bitmap [8]byte, x, y int) {
	for j := 0; j < 8; j++ {
		row := bitmap[j]
		for i := 0; i < 8; i++ {
			if row&(1<<i) != 0 {
				f.SetPixel(x+i, y+j)
			}
		}
	}
}

// PrintLine places text on the overlay grid at the given line (0-based).
// Text longer than TextColumns characters or a line outside [0, TextLines)
// is silently discarded rather than clipped, matching the display the
// frame models. The text replaces whatever pixel content sits in the
// 8-pixel band the line covers.
func (f *Frame) PrintLine(text string, line int) {
	if line < 0 || line >= TextLines || len(text) > TextColumns {
		return
	}
	f.lines[line] = text
}

// Line returns the overlay text at the given line, empty if unset or out
// of range.
func (f *Frame) Line(line int) string {
	if line < 0 || line >= TextLines {
		return ""
	}
	return f.lines[line]
}

// LineBand returns the pixel rows [top, bottom) covered by a text line.
func LineBand(line int) (top, bottom int) {
	return line * textCell, (line + 1) * textCell
}
