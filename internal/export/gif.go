package export

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/san-kum/orbital/internal/gravity"
	"github.com/san-kum/orbital/internal/viz"
)

const gifScale = 4 // screen pixels per braille sub-pixel

// AnimateGIF replays the system's iteration pathway and writes one GIF
// frame per simulation frame. The whole run is drained up front to fix
// the world window before any frame is rasterized.
func AnimateGIF(sys *gravity.System, path string, frameDelay int) error {
	if frameDelay <= 0 {
		frameDelay = 4 // hundredths of a second
	}

	canvas := viz.NewCanvas(80, 24)
	frames := make([]gravity.Frame, 0, sys.Limit())

	it := sys.Frames()
	for it.Next() {
		f := it.Current()
		canvas.FitFrame(f)
		frames = append(frames, f)
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	if len(frames) == 0 {
		return fmt.Errorf("nothing to animate: limit is zero")
	}

	anim := &gif.GIF{}
	for _, f := range frames {
		canvas.DrawFrame(f)
		anim.Image = append(anim.Image, rasterize(canvas))
		anim.Delay = append(anim.Delay, frameDelay)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	return gif.EncodeAll(out, anim)
}

var gifPalette = color.Palette{
	color.RGBA{0x0a, 0x0a, 0x0a, 0xff},
	color.RGBA{0x00, 0xff, 0x88, 0xff},
}

// rasterize expands each braille sub-pixel of the canvas into a square
// of screen pixels.
func rasterize(c *viz.Canvas) *image.Paletted {
	w := c.Width * 2 * gifScale
	h := c.Height * 4 * gifScale
	img := image.NewPaletted(image.Rect(0, 0, w, h), gifPalette)

	dotBits := [4][2]rune{
		{0x1, 0x8},
		{0x2, 0x10},
		{0x4, 0x20},
		{0x40, 0x80},
	}

	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := c.Grid[row][col] - 0x2800
			if pattern <= 0 {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dotBits[dy][dx] == 0 {
						continue
					}
					baseX := (col*2 + dx) * gifScale
					baseY := (row*4 + dy) * gifScale
					for py := 0; py < gifScale; py++ {
						for px := 0; px < gifScale; px++ {
							img.SetColorIndex(baseX+px, baseY+py, 1)
						}
					}
				}
			}
		}
	}
	return img
}
