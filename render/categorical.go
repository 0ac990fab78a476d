package render

import (
	"image"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"

	"iris-eda/rock-share/global/enum"
	"iris-eda/stats"
	"iris-eda/utils"
)

const (
	categoryWidth = 0.8
	jitterWidth   = 0.1
)

// categorical 类别在X轴，数值列在Y轴
func (r *Renderer) categorical(spec Spec) (*image.RGBA, error) {
	if len(spec.Categories) == 0 {
		return nil, errors.Wrap(utils.ErrParameter, "categorical plot needs categories")
	}
	groups, err := r.groups(spec.Y, spec.Categories)
	if err != nil {
		return nil, err
	}
	w, h := r.cfg.Width, r.cfg.Height
	base := paletteColor(0)

	var series []chart.Series
	switch spec.Mode {
	case enum.MODE_BOXEN:
		series = boxenSeries(groups)
	case enum.MODE_STRIP:
		for i, g := range groups {
			offsets := stats.Jitter(len(g), jitterWidth, r.cfg.JitterSeed+int64(i))
			xs := make([]float64, len(g))
			for j := range g {
				xs[j] = float64(i) + offsets[j]
			}
			series = append(series, dotSeries(spec.Categories[i], xs, g, base, 3))
		}
	case enum.MODE_SWARM:
		series = append(series, swarmSeries{
			name:   spec.Y,
			style:  chart.Style{DotColor: base, DotWidth: 3},
			groups: groups,
			width:  categoryWidth,
		})
	default:
		return nil, errors.Wrapf(utils.ErrNoFigure, "mode %s is not categorical", spec.Mode)
	}

	xb := bounds{min: -0.5, max: float64(len(groups)) - 0.5}
	c := r.newChart(w, h-headerHeight, xb, boundsOf(groups...).padded(0.05))
	c.XAxis.Ticks = categoryTicks(spec.Categories)
	c.XAxis.Name = spec.Category
	c.YAxis.Name = spec.Y
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

// boxenSeries 每层一个箱体，外层更窄更浅，先画外层
func boxenSeries(groups [][]float64) []chart.Series {
	base := paletteColor(0)
	edge := chart.Style{StrokeColor: colorDarkGray, StrokeWidth: 1}
	var (
		boxes   []shape
		medians []stats.Segment
		outX    []float64
		outY    []float64
	)
	for i, g := range groups {
		lv := stats.LetterValue(g)
		k := len(lv.Boxes)
		center := float64(i)
		for j := k - 1; j >= 0; j-- {
			b := lv.Boxes[j]
			half := categoryWidth / 2 * float64(k-j) / float64(k)
			style := chart.Style{FillColor: mix(base, colorWhite, 0.7*float64(j)/float64(k))}
			boxes = append(boxes, rect(center-half, b.Lower, center+half, b.Upper, style))
		}
		if k > 0 {
			medians = append(medians, stats.Segment{X1: center - categoryWidth/2, Y1: lv.Median, X2: center + categoryWidth/2, Y2: lv.Median})
		}
		for _, o := range lv.Outliers {
			outX = append(outX, center)
			outY = append(outY, o)
		}
	}
	return []chart.Series{
		shapeSeries{name: "boxes", style: edge, shapes: boxes},
		segmentSeries{name: "median", style: chart.Style{StrokeColor: colorDarkGray, StrokeWidth: 2}, segments: medians},
		dotSeries("outliers", outX, outY, colorDarkGray, 2),
	}
}
