package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
)

// framePalette covers the renderer's output: a gray ramp for the shaded
// dots plus the white background and the accent marker.
func framePalette() color.Palette {
	pal := make(color.Palette, 0, 34)
	for i := 0; i < 32; i++ {
		v := uint8(i * 255 / 31)
		pal = append(pal, color.RGBA{v, v, v, 0xff})
	}
	pal = append(pal, color.RGBA{0xc8, 0x28, 0x28, 0xff})
	pal = append(pal, color.RGBA{0xff, 0xff, 0xff, 0xff})
	return pal
}

// Palettize converts a rendered frame to the GIF palette.
func Palettize(img image.Image) *image.Paletted {
	p := image.NewPaletted(img.Bounds(), framePalette())
	draw.Draw(p, p.Bounds(), img, img.Bounds().Min, draw.Src)
	return p
}

// EncodeGIF writes the frames as a looping animation. delay is in
// hundredths of a second per frame.
func EncodeGIF(w io.Writer, frames []*image.Paletted, delay int) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}
