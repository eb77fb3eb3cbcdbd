package components

import "image"

// SheetLayout describes a sprite sheet cut into equal frames, row-major
type SheetLayout struct {
	FrameWidth, FrameHeight int
	Columns, Rows           int
}

// NewSheetLayout derives the grid for an image of the given pixel size
func NewSheetLayout(imageWidth, imageHeight, frameWidth, frameHeight int) SheetLayout {
	l := SheetLayout{FrameWidth: frameWidth, FrameHeight: frameHeight}
	if frameWidth > 0 && frameHeight > 0 {
		l.Columns = imageWidth / frameWidth
		l.Rows = imageHeight / frameHeight
	}
	return l
}

// FrameCount returns the number of whole frames in the sheet
func (l SheetLayout) FrameCount() int {
	return l.Columns * l.Rows
}

// FrameRect returns the source rectangle of a frame and false when the
// index lies outside the sheet
func (l SheetLayout) FrameRect(index int) (image.Rectangle, bool) {
	if index < 0 || index >= l.FrameCount() {
		return image.Rectangle{}, false
	}
	x := (index % l.Columns) * l.FrameWidth
	y := (index / l.Columns) * l.FrameHeight
	return image.Rect(x, y, x+l.FrameWidth, y+l.FrameHeight), true
}
