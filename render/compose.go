package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	headerHeight = 28
	legendWidth  = 130
)

// canvas 把多个面板拼到一张图上
type canvas struct {
	rgba *image.RGBA
}

func newCanvas(w, h int) *canvas {
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return &canvas{rgba: rgba}
}

// paste 左上角对齐到 at
func (c *canvas) paste(img image.Image, at image.Point) {
	b := img.Bounds()
	draw.Draw(c.rgba, image.Rectangle{Min: at, Max: at.Add(b.Size())}, img, b.Min, draw.Over)
}

// header 在顶部居中写标题
func (c *canvas) header(text string) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: c.rgba, Src: image.NewUniform(colorText), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := (c.rgba.Bounds().Dx() - tw) / 2
	if x < 4 {
		x = 4
	}
	y := (headerHeight + face.Metrics().Ascent.Ceil()) / 2
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
}

// legend 右上角的图例，每项一个色块加文字
func (c *canvas) legend(title string, labels []string, colors []drawing.Color) {
	if len(labels) == 0 {
		return
	}
	face := basicfont.Face7x13
	lineH := face.Metrics().Height.Ceil() + 6
	x := c.rgba.Bounds().Dx() - legendWidth + 10
	y := headerHeight + 10

	dr := &font.Drawer{Dst: c.rgba, Src: image.NewUniform(colorText), Face: face}
	if title != "" {
		dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + face.Metrics().Ascent.Ceil())}
		dr.DrawString(title)
		y += lineH
	}
	for i, l := range labels {
		swatch := image.Rect(x, y+2, x+12, y+12)
		draw.Draw(c.rgba, swatch, image.NewUniform(colors[i%len(colors)]), image.Point{}, draw.Src)
		dr.Dot = fixed.Point26_6{X: fixed.I(x + 18), Y: fixed.I(y + face.Metrics().Ascent.Ceil())}
		dr.DrawString(l)
		y += lineH
	}
}

func (c *canvas) image() *image.RGBA {
	return c.rgba
}
