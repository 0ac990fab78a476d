package render

import (
	"image"
	"math"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"iris-eda/rock-share/global/enum"
	"iris-eda/stats"
	"iris-eda/utils"
)

// marginal 一侧边缘图的内容
type marginal struct {
	series []chart.Series
	top    float64 // 计数/密度的最大值
}

func (m *marginal) add(s chart.Series, top float64) {
	m.series = append(m.series, s)
	m.top = math.Max(m.top, top)
}

// joint 主图加上方、右侧两个边缘分布
func (r *Renderer) joint(spec Spec) (*image.RGBA, error) {
	if spec.X == spec.Y {
		return nil, errors.Wrapf(utils.ErrParameter, "joint plot needs two different columns, got %s twice", spec.X)
	}
	xs, err := r.numeric(spec.X)
	if err != nil {
		return nil, err
	}
	ys, err := r.numeric(spec.Y)
	if err != nil {
		return nil, err
	}

	m := r.cfg.MarginalSize
	size := 2*r.cfg.PanelSize + m
	xb := boundsOf(xs).padded(0.05)
	yb := boundsOf(ys).padded(0.05)

	var (
		main         []chart.Series
		top, right   marginal
		legendSeries []chart.Series
	)
	switch spec.Kind {
	case enum.KIND_SCATTER, enum.KIND_KDE:
		if len(spec.HueLevels) == 0 {
			return nil, errors.Wrapf(utils.ErrParameter, "joint %s needs hue levels", spec.Kind)
		}
		gx, err := r.groups(spec.X, spec.HueLevels)
		if err != nil {
			return nil, err
		}
		gy, err := r.groups(spec.Y, spec.HueLevels)
		if err != nil {
			return nil, err
		}
		total := 0
		for _, g := range gx {
			total += len(g)
		}
		if spec.Kind == enum.KIND_SCATTER {
			for i, level := range spec.HueLevels {
				main = append(main, dotSeries(level, gx[i], gy[i], paletteColor(i), 3))
			}
		} else {
			contours, cb, err := r.hueContours(gx, gy, total)
			if err != nil {
				return nil, err
			}
			main = contours
			xb = xb.union(cb.x)
			yb = yb.union(cb.y)
		}
		for i, level := range spec.HueLevels {
			weight := float64(len(gx[i])) / float64(total)
			color := paletteColor(i)
			r.kdeMarginal(&top, gx[i], weight, false, color)
			r.kdeMarginal(&right, gy[i], weight, true, color)
			legendSeries = append(legendSeries, curveSeries(level, stats.Curve{}, false, color, 3))
		}
	case enum.KIND_REG:
		base := paletteColor(0)
		fit, err := stats.LinearFit(xs, ys, 100)
		if err != nil {
			return nil, err
		}
		band := stats.Curve{X: append(append([]float64{}, fit.X...), reversed(fit.X)...), Y: append(append([]float64{}, fit.Upper...), reversed(fit.Lower)...)}
		main = append(main,
			dotSeries(spec.Y, xs, ys, base.WithAlpha(204), 3),
			shapeSeries{name: "ci", shapes: []shape{{xs: band.X, ys: band.Y, style: chart.Style{FillColor: base.WithAlpha(38)}}}},
			curveSeries("fit", stats.Curve{X: fit.X, Y: fit.Y}, false, base, 2),
		)
		yb = yb.union(boundsOf(fit.Lower, fit.Upper))
		r.histMarginal(&top, xs, false, true)
		r.histMarginal(&right, ys, true, true)
	case enum.KIND_HEX:
		base := paletteColor(0)
		bins := stats.Hexbin(xs, ys, stats.JointGridSize(xs, ys))
		maxCount := float64(bins.MaxCount())
		shapes := make([]shape, 0, len(bins.Cells))
		for _, cell := range bins.Cells {
			poly := bins.Polygon(cell)
			sh := shape{style: chart.Style{FillColor: lightRamp(base, float64(cell.Count)/maxCount)}}
			for _, p := range poly {
				sh.xs = append(sh.xs, p[0])
				sh.ys = append(sh.ys, p[1])
			}
			shapes = append(shapes, sh)
		}
		main = append(main, shapeSeries{name: "hex", shapes: shapes})
		r.histMarginal(&top, xs, false, false)
		r.histMarginal(&right, ys, true, false)
	default:
		return nil, errors.Wrapf(utils.ErrParameter, "joint kind %q", spec.Kind)
	}

	c := r.newChart(size, size, xb, yb)
	c.Background.Padding = chart.Box{Top: m, Left: 12, Right: m, Bottom: 12}
	c.XAxis.Name = spec.X
	c.YAxis.Name = spec.Y
	c.Series = main
	c.Elements = []chart.Renderable{
		marginalRenderable(top, xb, countBounds(top.top), false, size, m),
		marginalRenderable(right, countBounds(right.top), yb, true, size, m),
	}
	if len(legendSeries) > 0 {
		proxy := chart.Chart{Series: legendSeries}
		c.Elements = append(c.Elements, chart.Legend(&proxy))
	}
	img, err := renderPanel(c)
	if err != nil {
		return nil, err
	}
	cv := newCanvas(size, size)
	cv.paste(img, image.Point{})
	return cv.image(), nil
}

// marginalRenderable 在主图外侧画边缘分布，和主图共用一条轴的像素映射
func marginalRenderable(mg marginal, x, y bounds, horizontal bool, width, m int) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		var box chart.Box
		if horizontal {
			box = chart.Box{Top: cb.Top, Bottom: cb.Bottom, Left: width - m + 6, Right: width - 8}
		} else {
			box = chart.Box{Top: 8, Bottom: cb.Top - 6, Left: cb.Left, Right: cb.Right}
		}
		if box.Width() <= 0 || box.Height() <= 0 {
			return
		}
		xr := &chart.ContinuousRange{Min: x.min, Max: x.max, Domain: box.Width()}
		yr := &chart.ContinuousRange{Min: y.min, Max: y.max, Domain: box.Height()}
		for _, s := range mg.series {
			s.Render(r, box, xr, yr, defaults)
		}
	}
}

// kdeMarginal 分组密度，按组大小加权
func (r *Renderer) kdeMarginal(mg *marginal, v []float64, weight float64, horizontal bool, color drawing.Color) {
	curve, err := stats.KDE(v, r.cfg.KdeGrid, 3)
	if err != nil {
		return
	}
	curve = curve.Scale(weight)
	fill := chart.Style{FillColor: color.WithAlpha(64), StrokeWidth: chart.Disabled}
	mg.add(shapeSeries{name: "kde", shapes: []shape{areaShape(curve, horizontal, fill)}}, stats.Max(curve.Y))
	mg.add(curveSeries("kde", curve, horizontal, color, 1.5), 0)
}

// histMarginal 直方图，withKDE 时叠加缩放后的密度曲线
func (r *Renderer) histMarginal(mg *marginal, v []float64, horizontal, withKDE bool) {
	base := paletteColor(0)
	hist := stats.NewHistogram(v, stats.AutoBins(v))
	style := chart.Style{FillColor: base.WithAlpha(160), StrokeColor: colorWhite, StrokeWidth: 1}
	mg.add(shapeSeries{name: "hist", style: style, shapes: histShapes(hist, 1, horizontal, chart.Style{})}, float64(hist.MaxCount()))
	if !withKDE {
		return
	}
	curve, err := stats.KDE(v, r.cfg.KdeGrid, 0)
	if err != nil {
		return
	}
	curve = curve.Scale(float64(stats.Describe(v).Count) * hist.BinWidth())
	mg.add(curveSeries("kde", curve, horizontal, base, 1.5), stats.Max(curve.Y))
}

// contourBounds 等值线覆盖的范围
type contourBounds struct {
	x bounds
	y bounds
}

// hueContours 各组二维密度按组大小加权后，在合并的密度上统一取等值线阈值
func (r *Renderer) hueContours(gx, gy [][]float64, total int) ([]chart.Series, contourBounds, error) {
	gridSize := r.cfg.KdeGrid / 2
	grids := make([]stats.Grid, len(gx))
	pooled := stats.Grid{}
	for i := range gx {
		g, err := stats.KDE2D(gx[i], gy[i], gridSize, 3)
		if err != nil {
			return nil, contourBounds{}, err
		}
		weight := float64(len(gx[i])) / float64(total)
		for _, row := range g.Z {
			for k := range row {
				row[k] *= weight
			}
		}
		grids[i] = g
		pooled.Z = append(pooled.Z, g.Z...)
	}
	levels := stats.IsoLevels(pooled, stats.DefaultIsoProps())

	var res []chart.Series
	var xsAll, ysAll []float64
	for i, g := range grids {
		var segs []stats.Segment
		for _, lv := range levels {
			segs = append(segs, stats.Contour(g, lv)...)
		}
		for _, s := range segs {
			xsAll = append(xsAll, s.X1, s.X2)
			ysAll = append(ysAll, s.Y1, s.Y2)
		}
		res = append(res, segmentSeries{
			name:     "contour",
			style:    chart.Style{StrokeColor: paletteColor(i), StrokeWidth: 1.2},
			segments: segs,
		})
	}
	cb := contourBounds{x: boundsOf(xsAll).padded(0.02), y: boundsOf(ysAll).padded(0.02)}
	if len(xsAll) == 0 {
		cb = contourBounds{x: boundsOf(gx...), y: boundsOf(gy...)}
	}
	return res, cb, nil
}

func reversed(v []float64) []float64 {
	res := make([]float64, len(v))
	for i, x := range v {
		res[len(v)-1-i] = x
	}
	return res
}
