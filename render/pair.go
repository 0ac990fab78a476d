package render

import (
	"image"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"iris-eda/stats"
	"iris-eda/utils"
)

// pair 所有数值列两两组合，对角线为分组密度，其余为分组散点
func (r *Renderer) pair(spec Spec) (*image.RGBA, error) {
	k := len(spec.Columns)
	if k == 0 || len(spec.HueLevels) == 0 {
		return nil, errors.Wrap(utils.ErrParameter, "pair plot needs columns and hue levels")
	}
	p := r.cfg.PanelSize
	grouped := make([][][]float64, k)
	colBounds := make([]bounds, k)
	for i, col := range spec.Columns {
		g, err := r.groups(col, spec.HueLevels)
		if err != nil {
			return nil, err
		}
		grouped[i] = g
		colBounds[i] = boundsOf(g...).padded(0.05)
		// 对角线的密度曲线会超出数据范围，整列共用同一个x范围
		for _, v := range g {
			if bw := stats.ScottBandwidth(v); bw > 0 {
				colBounds[i] = colBounds[i].union(bounds{min: stats.Min(v) - 3*bw, max: stats.Max(v) + 3*bw})
			}
		}
	}
	total := 0
	for _, g := range grouped[0] {
		total += len(g)
	}

	colors := make([]drawing.Color, len(spec.HueLevels))
	for i := range colors {
		colors[i] = paletteColor(i)
	}

	cv := newCanvas(k*p+legendWidth, k*p+headerHeight)
	cv.header(spec.Title)
	for row := 0; row < k; row++ {
		for col := 0; col < k; col++ {
			var c chart.Chart
			if row == col {
				c = r.pairDiagonal(grouped[row], total, colBounds[row], colors)
			} else {
				c = r.newChart(p, p, colBounds[col], colBounds[row])
				for i, level := range spec.HueLevels {
					c.Series = append(c.Series, dotSeries(level, grouped[col][i], grouped[row][i], colors[i], 2))
				}
			}
			if row == k-1 {
				c.XAxis.Name = spec.Columns[col]
			}
			if col == 0 && row != col {
				c.YAxis.Name = spec.Columns[row]
			}
			img, err := renderPanel(c)
			if err != nil {
				return nil, err
			}
			cv.paste(img, image.Point{X: col * p, Y: headerHeight + row*p})
		}
	}
	cv.legend(r.frame.LabelColumn(), spec.HueLevels, colors)
	return cv.image(), nil
}

// pairDiagonal 对角线面板，y轴是密度不显示刻度
func (r *Renderer) pairDiagonal(groups [][]float64, total int, xb bounds, colors []drawing.Color) chart.Chart {
	var (
		series []chart.Series
		top    float64
	)
	for i, g := range groups {
		curve, err := stats.KDE(g, r.cfg.KdeGrid, 3)
		if err != nil {
			continue
		}
		curve = curve.Scale(float64(len(g)) / float64(total))
		fill := chart.Style{FillColor: colors[i].WithAlpha(64), StrokeWidth: chart.Disabled}
		series = append(series,
			shapeSeries{name: "kde", shapes: []shape{areaShape(curve, false, fill)}},
			curveSeries("kde", curve, false, colors[i], 1.5),
		)
		if m := stats.Max(curve.Y); m > top {
			top = m
		}
	}
	c := r.newChart(r.cfg.PanelSize, r.cfg.PanelSize, xb, countBounds(top))
	c.YAxis.Style = chart.Hidden()
	c.Series = series
	if len(series) == 0 {
		// 所有组都是常数列时仍要有一个可见系列
		c.Series = []chart.Series{shapeSeries{name: "empty"}}
	}
	return c
}
