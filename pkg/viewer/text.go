package viewer

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const labelSize = 13

var (
	regularOnce sync.Once
	regularFont *truetype.Font
	regularErr  error
)

// loadFont parses the embedded Go Regular font once
func loadFont() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regularFont, regularErr = truetype.Parse(goregular.TTF)
	})
	return regularFont, regularErr
}

// newLabelFace returns a face for labels, or nil if the font is unusable
func newLabelFace(size float64) font.Face {
	f, err := loadFont()
	if err != nil {
		return nil
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// drawText draws text with its baseline starting at (x, y)
func drawText(img *image.RGBA, face font.Face, x, y int, text string, col color.RGBA) {
	if face == nil || text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// textWidth measures text in pixels
func textWidth(face font.Face, text string) int {
	if face == nil {
		return 0
	}
	return font.MeasureString(face, text).Ceil()
}
