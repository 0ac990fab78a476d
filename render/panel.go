package render

import (
	"bytes"
	"image"
	"image/png"
	"math"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
)

// bounds 数据范围
type bounds struct {
	min float64
	max float64
}

// padded 两端各留 frac 的空白
func (b bounds) padded(frac float64) bounds {
	span := b.max - b.min
	if span == 0 || math.IsNaN(span) {
		span = math.Max(math.Abs(b.min), 1)
	}
	return bounds{min: b.min - span*frac, max: b.max + span*frac}
}

// union 合并范围
func (b bounds) union(o bounds) bounds {
	return bounds{min: math.Min(b.min, o.min), max: math.Max(b.max, o.max)}
}

func (b bounds) chartRange() *chart.ContinuousRange {
	return &chart.ContinuousRange{Min: b.min, Max: b.max}
}

// boundsOf 忽略NaN
func boundsOf(vs ...[]float64) bounds {
	b := bounds{min: math.Inf(1), max: math.Inf(-1)}
	for _, v := range vs {
		for _, x := range v {
			if math.IsNaN(x) {
				continue
			}
			b.min = math.Min(b.min, x)
			b.max = math.Max(b.max, x)
		}
	}
	if math.IsInf(b.min, 1) {
		return bounds{min: 0, max: 1}
	}
	return b
}

// countBounds 计数/密度轴，从0开始
func countBounds(max float64) bounds {
	if max <= 0 || math.IsNaN(max) {
		max = 1
	}
	return bounds{min: 0, max: max * 1.05}
}

// newChart 固定范围的图表，范围不交给 go-chart 自动推断
func (r *Renderer) newChart(w, h int, x, y bounds) chart.Chart {
	return chart.Chart{
		Width:      w,
		Height:     h,
		DPI:        r.cfg.DPI,
		Background: chart.Style{Padding: chart.Box{Top: 12, Left: 12, Right: 12, Bottom: 12}},
		XAxis:      chart.XAxis{Range: x.chartRange()},
		YAxis:      chart.YAxis{Range: y.chartRange()},
	}
}

// renderPanel 渲染为图片
func renderPanel(c chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "chart render")
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "chart decode")
	}
	return img, nil
}

// categoryTicks 类别轴，两端各留半格
func categoryTicks(levels []string) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(levels)+2)
	ticks = append(ticks, chart.Tick{Value: -0.5, Label: ""})
	for i, l := range levels {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: l})
	}
	ticks = append(ticks, chart.Tick{Value: float64(len(levels)) - 0.5, Label: ""})
	return ticks
}
