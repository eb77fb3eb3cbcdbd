// Package placeholders draws stand-in sprite sheets so the game runs without art.
package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"my-game/components"
	"my-game/config"
)

var directionColors = map[components.Direction]color.RGBA{
	components.South: {70, 130, 220, 255},
	components.North: {80, 180, 100, 255},
	components.East:  {220, 160, 60, 255},
	components.West:  {190, 80, 160, 255},
}

// PlayerSheet draws a sheet covering every frame the animation table uses.
// Frames of a walking range bob up and down; idle frames pulse slightly.
// columns below 1 are treated as 1.
func PlayerSheet(cfg *config.AnimationConfig, columns int) *image.RGBA {
	columns = max(columns, 1)
	fw, fh := cfg.FrameWidth, cfg.FrameHeight
	frames := cfg.MaxFrame() + 1
	rows := (frames + columns - 1) / columns

	sheet := image.NewRGBA(image.Rect(0, 0, columns*fw, rows*fh))
	draw.Draw(sheet, sheet.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	set := cfg.Set()
	for _, d := range components.Directions {
		for _, m := range []components.Motion{components.Idle, components.Walking} {
			r := set.For(d, m)
			length := r.Last - r.First + 1
			for i := r.First; i <= r.Last; i++ {
				phase := float64(i-r.First) / float64(length)
				frame := playerFrame(fw, fh, d, m, phase)
				x := (i % columns) * fw
				y := (i / columns) * fh
				draw.Draw(sheet, image.Rect(x, y, x+fw, y+fh), frame, image.Point{}, draw.Over)
			}
		}
	}
	return sheet
}

func playerFrame(fw, fh int, d components.Direction, m components.Motion, phase float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fw, fh))
	fill := directionColors[d]
	outline := Darken(fill, 0.5)

	radius := float64(min(fw, fh))/2 - 6
	cx, cy := float64(fw)/2, float64(fh)/2
	if m == components.Walking {
		cy += math.Sin(phase*2*math.Pi) * 3
	} else {
		radius += math.Sin(phase*2*math.Pi) * 1.5
	}

	for y := 0; y < fh; y++ {
		for x := 0; x < fw; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			dist := math.Hypot(dx, dy)
			switch {
			case dist <= radius:
				img.Set(x, y, fill)
			case dist <= radius+1.5:
				img.Set(x, y, outline)
			}
		}
	}

	// facing marker, screen space is y-down
	ddx, ddy := d.Delta()
	mx := int(cx + ddx*radius*0.6)
	my := int(cy - ddy*radius*0.6)
	marker := Lighten(fill, 0.7)
	for y := my - 3; y <= my+3; y++ {
		for x := mx - 3; x <= mx+3; x++ {
			img.Set(x, y, marker)
		}
	}
	return img
}

// SavePNG saves an image to a PNG file, creating parent directories
func SavePNG(img image.Image, path string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
