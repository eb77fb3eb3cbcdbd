package render

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"my-game/components"
)

// SpriteSheet is a loaded image cut into equal frames
type SpriteSheet struct {
	Image  *ebiten.Image
	Layout components.SheetLayout
}

// LoadSpriteSheet loads a sheet from a PNG file
func LoadSpriteSheet(filename string, frameWidth, frameHeight int) (*SpriteSheet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite sheet %s: %w", filename, err)
	}

	return NewSpriteSheet(ebiten.NewImageFromImage(img), frameWidth, frameHeight), nil
}

// NewSpriteSheet wraps an image already in memory
func NewSpriteSheet(img *ebiten.Image, frameWidth, frameHeight int) *SpriteSheet {
	bounds := img.Bounds()
	return &SpriteSheet{
		Image:  img,
		Layout: components.NewSheetLayout(bounds.Dx(), bounds.Dy(), frameWidth, frameHeight),
	}
}

// Frame returns the sub-image for a frame index, or nil when out of range
func (s *SpriteSheet) Frame(index int) *ebiten.Image {
	rect, ok := s.Layout.FrameRect(index)
	if !ok {
		return nil
	}
	return s.Image.SubImage(rect).(*ebiten.Image)
}

// DrawFrame draws a frame centered on (x, y) in screen pixels, scaled by scale
func (s *SpriteSheet) DrawFrame(target *ebiten.Image, index int, x, y, scale float64) bool {
	frame := s.Frame(index)
	if frame == nil {
		return false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(s.Layout.FrameWidth)/2, -float64(s.Layout.FrameHeight)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest
	target.DrawImage(frame, op)
	return true
}
