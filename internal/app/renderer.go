package app

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// textureSurface uploads engine frames into a GPU texture
type textureSurface struct {
	texture rl.Texture2D
	pixels  []color.RGBA
	width   int
	height  int
	loaded  bool
}

func newTextureSurface(width, height int) *textureSurface {
	s := &textureSurface{}
	s.resize(width, height)
	return s
}

// resize recreates the texture when the size changed
func (s *textureSurface) resize(width, height int) {
	if s.loaded && s.width == width && s.height == height {
		return
	}
	s.unload()

	img := rl.GenImageColor(width, height, rl.Black)
	s.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	s.pixels = make([]color.RGBA, width*height)
	s.width = width
	s.height = height
	s.loaded = true
}

// Present implements engine.Surface
func (s *textureSurface) Present(frame *image.RGBA) {
	size := frame.Rect.Size()
	if size.X != s.width || size.Y != s.height {
		s.resize(size.X, size.Y)
	}

	for y := 0; y < s.height; y++ {
		row := frame.Pix[y*frame.Stride:]
		for x := 0; x < s.width; x++ {
			i := x * 4
			s.pixels[y*s.width+x] = color.RGBA{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
		}
	}
	rl.UpdateTexture(s.texture, s.pixels)
}

func (s *textureSurface) draw() {
	if s.loaded {
		rl.DrawTexture(s.texture, 0, 0, rl.White)
	}
}

func (s *textureSurface) unload() {
	if s.loaded {
		rl.UnloadTexture(s.texture)
		s.loaded = false
	}
}
