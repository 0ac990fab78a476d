package render

import (
	"image"
	"math"

	"github.com/wcharczuk/go-chart/v2"

	"iris-eda/stats"
)

// distribution 单列直方图加密度曲线，曲线按 n*binWidth 缩放到计数
func (r *Renderer) distribution(spec Spec) (*image.RGBA, error) {
	v, err := r.numeric(spec.X)
	if err != nil {
		return nil, err
	}
	w, h := r.cfg.Width, r.cfg.Height
	base := paletteColor(0)

	hist := stats.NewHistogram(v, stats.AutoBins(v))
	bars := shapeSeries{
		name:   "count",
		style:  chart.Style{FillColor: base.WithAlpha(190), StrokeColor: colorWhite, StrokeWidth: 1},
		shapes: histShapes(hist, 1, false, chart.Style{}),
	}
	series := []chart.Series{bars}
	top := float64(hist.MaxCount())

	n := stats.Describe(v).Count
	if curve, err := stats.KDE(v, r.cfg.KdeGrid, 0); err == nil {
		curve = curve.Scale(float64(n) * hist.BinWidth())
		series = append(series, curveSeries("kde", curve, false, base, 2))
		top = math.Max(top, stats.Max(curve.Y))
	}

	c := r.newChart(w, h-headerHeight, boundsOf(hist.Edges).padded(0.05), countBounds(top))
	c.XAxis.Name = spec.X
	c.YAxis.Name = "Count"
	c.Series = series
	img, err := renderPanel(c)
	if err != nil {
		return nil, err
	}

	cv := newCanvas(w, h)
	cv.header(spec.Title)
	cv.paste(img, image.Point{Y: headerHeight})
	return cv.image(), nil
}
