package render

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// deep 调色板前几种颜色
var deep = []drawing.Color{
	drawing.ColorFromHex("4C72B0"),
	drawing.ColorFromHex("DD8452"),
	drawing.ColorFromHex("55A868"),
	drawing.ColorFromHex("C44E52"),
	drawing.ColorFromHex("8172B3"),
	drawing.ColorFromHex("937860"),
	drawing.ColorFromHex("DA8BC3"),
	drawing.ColorFromHex("8C8C8C"),
	drawing.ColorFromHex("CCB974"),
	drawing.ColorFromHex("64B5CD"),
}

var (
	colorWhite    = drawing.ColorWhite
	colorText     = drawing.ColorFromHex("262626")
	colorDarkGray = drawing.ColorFromHex("3D3D3D")
)

// paletteColor 超出调色板长度时循环
func paletteColor(i int) drawing.Color {
	return deep[i%len(deep)]
}

// mix 线性混合，t=0 为 a，t=1 为 b
func mix(a, b drawing.Color, t float64) drawing.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return drawing.Color{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// lightRamp 从接近白色到 base 的渐变，用于六边形计数着色
func lightRamp(base drawing.Color, t float64) drawing.Color {
	light := mix(colorWhite, base, 0.12)
	return mix(light, base, t)
}
